// Package chatactions stores the payloads behind chat buttons
package chatactions

//go:generate mockgen -destination=mock/mock_repository.go -package=chatactionsmock github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// DefaultTTL is how long a button keeps working
const DefaultTTL = 6 * time.Hour

// Repository defines the interface for chat action storage
type Repository interface {
	// Save stores an action, assigning an ID when it has none
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves an action by ID
	// Returns errors.NotFound once the action has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes an action
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput contains the action to store
type SaveInput struct {
	Action *entities.ChatAction
}

// SaveOutput contains the stored action with its ID
type SaveOutput struct {
	Action *entities.ChatAction
}

// GetInput contains the ID to look up
type GetInput struct {
	ID string
}

// GetOutput contains the action
type GetOutput struct {
	Action *entities.ChatAction
}

// DeleteInput contains the ID to delete
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty
type DeleteOutput struct{}
