// Package actor implements the actor orchestrator: creating actors, binding
// users to the actor they play and keeping stored actors consistent
package actor

//go:generate mockgen -destination=mock/mock_service.go -package=actormock github.com/KirkDiggler/pokerole-bot/internal/orchestrators/actor Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
)

// User facing messages
const (
	MsgActorGone        = "The actor doesn't exist anymore"
	MsgNoActorAssigned  = "You don't have an actor assigned."
	MsgCantModifyActor  = "You can't modify this actor."
	MsgAssignOthersGM   = "Only the GM can assign actors to other players."
	MsgRepairGMOnly     = "Only the GM can repair actors."
	MsgCreateForOthers  = "Only the GM can create actors for other players."
	MsgActorNameMissing = "An actor needs a name."
)

// Service defines the interface for actor operations
type Service interface {
	CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error)
	GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error)
	ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error)
	DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error)

	// Assignment
	AssignActor(ctx context.Context, input *AssignActorInput) (*AssignActorOutput, error)
	GetAssignedActor(ctx context.Context, input *GetAssignedActorInput) (*GetAssignedActorOutput, error)

	// Maintenance
	RepairActors(ctx context.Context, input *RepairActorsInput) (*RepairActorsOutput, error)
}

// Config holds the dependencies for the actor orchestrator
type Config struct {
	ActorRepo    actors.Repository
	ItemRepo     items.Repository
	IDGenerator  idgen.Generator
	ActionBudget int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ActionBudget < 0 {
		vb.InvalidField("ActionBudget", "must not be negative")
	}

	return vb.Build()
}

// Orchestrator implements the actor Service
type Orchestrator struct {
	actorRepo    actors.Repository
	itemRepo     items.Repository
	idGen        idgen.Generator
	actionBudget int
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// New creates a new actor orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	budget := cfg.ActionBudget
	if budget == 0 {
		budget = entities.DefaultActionBudget
	}

	return &Orchestrator{
		actorRepo:    cfg.ActorRepo,
		itemRepo:     cfg.ItemRepo,
		idGen:        cfg.IDGenerator,
		actionBudget: budget,
	}, nil
}

// CreateActor stores a new actor owned by the acting user unless the GM
// names other owners
func (o *Orchestrator) CreateActor(ctx context.Context, input *CreateActorInput) (*CreateActorOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if input.User == nil {
		return nil, errors.InvalidArgument("user is required")
	}

	actor := input.Actor.Clone()
	actor.Name = strings.TrimSpace(actor.Name)
	if actor.Name == "" {
		return nil, errors.Expression(MsgActorNameMissing)
	}

	switch {
	case len(actor.OwnerIDs) == 0:
		actor.OwnerIDs = []string{input.User.ID}
	case !input.User.IsGM && !slices.Equal(actor.OwnerIDs, []string{input.User.ID}):
		return nil, errors.Permission(MsgCreateForOthers)
	}

	if actor.ID == "" {
		actor.ID = o.idGen.Generate()
	}
	if actor.HP.Value == 0 {
		actor.HP.Value = actor.HP.Max
	}
	if actor.Will.Value == 0 {
		actor.Will.Value = actor.Will.Max
	}
	actor.Round = entities.NewRoundState(o.actionBudget)
	normalize(actor, o.actionBudget)

	output, err := o.actorRepo.Create(ctx, actors.CreateInput{Actor: actor})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actor")
	}

	slog.Info("Actor created",
		"actor_id", actor.ID,
		"name", actor.Name,
		"owners", actor.OwnerIDs)

	return &CreateActorOutput{Actor: output.Actor}, nil
}

// GetActor returns an actor with everything it holds
func (o *Orchestrator) GetActor(ctx context.Context, input *GetActorInput) (*GetActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	held, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: actor.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", actor.ID)
	}

	return &GetActorOutput{Actor: actor, Items: held.Items}, nil
}

// ListActors lists actors, optionally only those a user owns
func (o *Orchestrator) ListActors(ctx context.Context, input *ListActorsInput) (*ListActorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.OwnerID != "" {
		output, err := o.actorRepo.ListByOwner(ctx, actors.ListByOwnerInput{OwnerID: input.OwnerID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list actors")
		}
		return &ListActorsOutput{Actors: output.Actors}, nil
	}

	output, err := o.actorRepo.List(ctx, actors.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}
	return &ListActorsOutput{Actors: output.Actors}, nil
}

// DeleteActor removes an actor and everything it holds
func (o *Orchestrator) DeleteActor(ctx context.Context, input *DeleteActorInput) (*DeleteActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !input.User.CanModify(actor) {
		return nil, errors.Permission(MsgCantModifyActor)
	}

	held, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: actor.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", actor.ID)
	}

	deleted := 0
	for _, item := range held.Items {
		if _, err := o.itemRepo.Delete(ctx, items.DeleteInput{ID: item.ID}); err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to delete item %s", item.ID)
		}
		deleted++
	}

	if _, err := o.actorRepo.Delete(ctx, actors.DeleteInput{ID: actor.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete actor")
	}

	slog.Info("Actor deleted", "actor_id", actor.ID, "items_deleted", deleted)

	return &DeleteActorOutput{ItemsDeleted: deleted}, nil
}

// AssignActor binds a user to an actor. Players may only take actors they
// own; the GM may assign anyone to anything.
func (o *Orchestrator) AssignActor(ctx context.Context, input *AssignActorInput) (*AssignActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.User == nil {
		return nil, errors.InvalidArgument("user is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	userID := input.UserID
	if userID == "" {
		userID = input.User.ID
	}
	if userID != input.User.ID && !input.User.IsGM {
		return nil, errors.Permission(MsgAssignOthersGM)
	}

	actor, err := o.getActor(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	if !input.User.CanModify(actor) {
		return nil, errors.Permission(MsgCantModifyActor)
	}

	output, err := o.actorRepo.Assign(ctx, actors.AssignInput{UserID: userID, ActorID: actor.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign actor")
	}

	return &AssignActorOutput{Actor: output.Actor}, nil
}

// GetAssignedActor returns the actor a user plays
func (o *Orchestrator) GetAssignedActor(ctx context.Context, input *GetAssignedActorInput) (*GetAssignedActorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	output, err := o.actorRepo.GetAssigned(ctx, actors.GetAssignedInput{UserID: input.UserID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Reference(MsgNoActorAssigned)
		}
		return nil, errors.Wrap(err, "failed to load assigned actor")
	}

	return &GetAssignedActorOutput{Actor: output.Actor}, nil
}

// RepairActors normalizes every stored actor and saves the ones that changed
func (o *Orchestrator) RepairActors(ctx context.Context, input *RepairActorsInput) (*RepairActorsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.User == nil || !input.User.IsGM {
		return nil, errors.Permission(MsgRepairGMOnly)
	}

	all, err := o.actorRepo.List(ctx, actors.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list actors")
	}

	output := &RepairActorsOutput{Checked: len(all.Actors)}
	for _, actor := range all.Actors {
		if !normalize(actor, o.actionBudget) {
			continue
		}
		output.Repaired = append(output.Repaired, actor.ID)
		if input.DryRun {
			continue
		}
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
			return nil, errors.Wrapf(err, "failed to save %s", actor.ID)
		}
	}

	slog.Info("Actors repaired",
		"checked", output.Checked,
		"repaired", len(output.Repaired),
		"dry_run", input.DryRun)

	return output, nil
}

func (o *Orchestrator) getActor(ctx context.Context, id string) (*entities.Actor, error) {
	output, err := o.actorRepo.Get(ctx, actors.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Reference(MsgActorGone)
		}
		return nil, errors.Wrap(err, "failed to load actor")
	}
	return output.Actor, nil
}
