// Package combats stores the combat tracker for each channel
package combats

//go:generate mockgen -destination=mock/mock_repository.go -package=combatsmock github.com/KirkDiggler/pokerole-bot/internal/repositories/combats Repository

import (
	"context"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// Repository defines the storage interface for combats
type Repository interface {
	// Save stores a combat and makes it the channel's current combat
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a combat by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// GetByChannel retrieves the channel's current combat
	GetByChannel(ctx context.Context, input *GetByChannelInput) (*GetByChannelOutput, error)

	// Delete removes a combat
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the request for saving a combat
type SaveInput struct {
	Combat *entities.Combat
}

// SaveOutput defines the response for saving a combat
type SaveOutput struct {
	Combat *entities.Combat
}

// GetInput defines the request for retrieving a combat
type GetInput struct {
	CombatID string
}

// GetOutput defines the response for retrieving a combat
type GetOutput struct {
	Combat *entities.Combat
}

// GetByChannelInput defines the request for a channel's combat
type GetByChannelInput struct {
	ChannelID string
}

// GetByChannelOutput defines the response for a channel's combat
type GetByChannelOutput struct {
	Combat *entities.Combat
}

// DeleteInput defines the request for deleting a combat
type DeleteInput struct {
	CombatID string
}

// DeleteOutput defines the response for deleting a combat
type DeleteOutput struct {
	Success bool
}

func validateCombat(combat *entities.Combat) error {
	if combat == nil {
		return errors.InvalidArgument("combat is required")
	}
	if combat.ID == "" {
		return errors.InvalidArgument("combat ID is required")
	}
	if combat.ChannelID == "" {
		return errors.InvalidArgument("channel ID is required")
	}
	return nil
}
