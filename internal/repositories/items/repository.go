// Package items provides the interface for move and gear persistence
package items

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/KirkDiggler/pokerole-bot/internal/repositories/items Repository

import (
	"context"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Create stores a new item and indexes it under its actor
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an item with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing item
	// Returns errors.NotFound if the item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByActor returns every item an actor holds
	ListByActor(ctx context.Context, input ListByActorInput) (*ListByActorOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *entities.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *entities.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.Item
}

// UpdateInput defines the input for updating an item
type UpdateInput struct {
	Item *entities.Item
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *entities.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ListByActorInput defines the input for listing an actor's items
type ListByActorInput struct {
	ActorID string
}

// ListByActorOutput defines the output for listing an actor's items
type ListByActorOutput struct {
	Items []*entities.Item
}
