package actor

import "github.com/KirkDiggler/pokerole-bot/internal/entities"

// CreateActorInput defines the request for creating an actor
type CreateActorInput struct {
	User  *entities.User
	Actor *entities.Actor
}

// CreateActorOutput holds the stored actor
type CreateActorOutput struct {
	Actor *entities.Actor
}

// GetActorInput defines the request for an actor
type GetActorInput struct {
	ActorID string
}

// GetActorOutput holds the actor and its moves and gear
type GetActorOutput struct {
	Actor *entities.Actor
	Items []*entities.Item
}

// ListActorsInput lists every actor, or one owner's when OwnerID is set
type ListActorsInput struct {
	OwnerID string
}

// ListActorsOutput holds the actors
type ListActorsOutput struct {
	Actors []*entities.Actor
}

// DeleteActorInput defines the request for deleting an actor
type DeleteActorInput struct {
	User    *entities.User
	ActorID string
}

// DeleteActorOutput reports what was removed
type DeleteActorOutput struct {
	ItemsDeleted int
}

// AssignActorInput binds a user to the actor they play. UserID defaults to
// the acting user; only the GM may assign someone else.
type AssignActorInput struct {
	User    *entities.User
	UserID  string
	ActorID string
}

// AssignActorOutput holds the assigned actor
type AssignActorOutput struct {
	Actor *entities.Actor
}

// GetAssignedActorInput defines the request for a user's actor
type GetAssignedActorInput struct {
	UserID string
}

// GetAssignedActorOutput holds the user's actor
type GetAssignedActorOutput struct {
	Actor *entities.Actor
}

// RepairActorsInput asks for every stored actor to be normalized
type RepairActorsInput struct {
	User   *entities.User
	DryRun bool
}

// RepairActorsOutput reports the actors that needed fixing
type RepairActorsOutput struct {
	Checked  int
	Repaired []string
}
