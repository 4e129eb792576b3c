package discord

import (
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

const (
	// customIDPrefix marks buttons this bot owns
	customIDPrefix = "pkr"

	customIDSeparator = ":"

	// MaxCustomIDLength is Discord's limit for custom IDs
	MaxCustomIDLength = 100
)

// EncodeCustomID builds the custom ID of a chat action button. Only the
// action ID travels; the payload stays in storage.
func EncodeCustomID(actionID string) (string, error) {
	if actionID == "" {
		return "", errors.InvalidArgument("action ID is required")
	}

	customID := customIDPrefix + customIDSeparator + actionID
	if len(customID) > MaxCustomIDLength {
		return "", errors.InvalidArgumentf("custom ID exceeds maximum length of %d characters", MaxCustomIDLength).
			WithMeta("action_id", actionID)
	}
	return customID, nil
}

// ParseCustomID returns the action ID behind a button
func ParseCustomID(customID string) (string, error) {
	prefix, actionID, found := strings.Cut(customID, customIDSeparator)
	if !found || prefix != customIDPrefix || actionID == "" {
		return "", errors.InvalidArgumentf("not a chat action button: %q", customID)
	}
	return actionID, nil
}
