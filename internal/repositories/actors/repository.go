// Package actors provides the interface for actor persistence
package actors

//go:generate mockgen -destination=mock/mock_repository.go -package=actorsmock github.com/KirkDiggler/pokerole-bot/internal/repositories/actors Repository

import (
	"context"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// Repository defines the interface for actor persistence
type Repository interface {
	// Create stores a new actor
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an actor with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.NotFound if the actor doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany retrieves several actors, reporting the IDs that no longer exist
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// Update replaces an existing actor
	// Returns errors.NotFound if the actor doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an actor and any assignments pointing at it
	// Returns errors.NotFound if the actor doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored actor
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByOwner returns the actors a user owns
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)

	// Assign binds a user to the actor they act as
	// Returns errors.NotFound if the actor doesn't exist
	Assign(ctx context.Context, input AssignInput) (*AssignOutput, error)

	// GetAssigned returns the actor a user is bound to
	// Returns errors.NotFound if the user has no assignment
	GetAssigned(ctx context.Context, input GetAssignedInput) (*GetAssignedOutput, error)
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *entities.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *entities.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *entities.Actor
}

// GetManyInput lists the actor IDs to load
type GetManyInput struct {
	IDs []string
}

// GetManyOutput holds the loaded actors keyed by ID
type GetManyOutput struct {
	Actors  map[string]*entities.Actor
	Missing []string
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *entities.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *entities.Actor
}

// DeleteInput defines the input for deleting an actor
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an actor
type DeleteOutput struct{}

// ListInput defines the input for listing all actors
type ListInput struct{}

// ListOutput defines the output for listing all actors
type ListOutput struct {
	Actors []*entities.Actor
}

// ListByOwnerInput defines the input for listing a user's actors
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput defines the output for listing a user's actors
type ListByOwnerOutput struct {
	Actors []*entities.Actor
}

// AssignInput binds UserID to ActorID
type AssignInput struct {
	UserID  string
	ActorID string
}

// AssignOutput returns the assigned actor
type AssignOutput struct {
	Actor *entities.Actor
}

// GetAssignedInput defines the input for looking up a user's actor
type GetAssignedInput struct {
	UserID string
}

// GetAssignedOutput defines the output for looking up a user's actor
type GetAssignedOutput struct {
	Actor *entities.Actor
}
