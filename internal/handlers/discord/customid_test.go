package discord_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-bot/internal/handlers/discord"
)

func TestCustomIDRoundTrip(t *testing.T) {
	customID, err := discord.EncodeCustomID("act_42")
	require.NoError(t, err)
	assert.Equal(t, "pkr:act_42", customID)

	actionID, err := discord.ParseCustomID(customID)
	require.NoError(t, err)
	assert.Equal(t, "act_42", actionID)
}

func TestEncodeCustomIDLimits(t *testing.T) {
	_, err := discord.EncodeCustomID("")
	assert.Error(t, err)

	_, err = discord.EncodeCustomID(strings.Repeat("a", discord.MaxCustomIDLength))
	assert.Error(t, err)

	customID, err := discord.EncodeCustomID(strings.Repeat("a", discord.MaxCustomIDLength-4))
	require.NoError(t, err)
	assert.Len(t, customID, discord.MaxCustomIDLength)
}

func TestParseCustomIDRejectsOtherButtons(t *testing.T) {
	for _, customID := range []string{"", "pkr", "pkr:", "poll:vote_yes", "act_42"} {
		_, err := discord.ParseCustomID(customID)
		assert.Error(t, err, customID)
	}
}
