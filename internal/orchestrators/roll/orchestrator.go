// Package roll implements success checks and the per-channel roll log
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/KirkDiggler/pokerole-bot/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
	rolllog "github.com/KirkDiggler/pokerole-bot/internal/repositories/roll_log"
)

// Messages shown to users
const (
	MsgNoActorAssigned = "You don't have an actor assigned."
	MsgClearGMOnly     = "Only the GM can clear the roll log."
)

// Service defines the interface for roll operations
type Service interface {
	SuccessCheck(ctx context.Context, input *SuccessCheckInput) (*SuccessCheckOutput, error)
	GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error)
	ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	Engine      engine.Engine
	ActorRepo   actors.Repository
	ItemRepo    items.Repository
	RollLogRepo rolllog.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.RollLogRepo == nil {
		vb.RequiredField("RollLogRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine      engine.Engine
	actorRepo   actors.Repository
	itemRepo    items.Repository
	rollLogRepo rolllog.Repository
	idGen       idgen.Generator
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:      cfg.Engine,
		actorRepo:   cfg.ActorRepo,
		itemRepo:    cfg.ItemRepo,
		rollLogRepo: cfg.RollLogRepo,
		idGen:       cfg.IDGenerator,
	}, nil
}

// SuccessCheck resolves an expression for an actor and logs the roll
func (o *orchestrator) SuccessCheck(ctx context.Context, input *SuccessCheckInput) (*SuccessCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Expression) == "" {
		return nil, errors.Expression("Nothing to roll.")
	}

	if input.Values != nil {
		output, err := o.engine.ResolvePool(ctx, &engine.ResolvePoolInput{
			Expression: input.Expression,
			Lookup:     pool.MapLookup(input.Values),
			Penalties:  &entities.PenaltyContext{},
		})
		if err != nil {
			return nil, err
		}
		return &SuccessCheckOutput{Record: o.newRecord(nil, input, output.Result)}, nil
	}

	actor, err := o.loadActor(ctx, input)
	if err != nil {
		return nil, err
	}

	heldItems, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: actor.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load items for %s", actor.ID)
	}

	output, err := o.engine.ResolvePool(ctx, &engine.ResolvePoolInput{
		Expression: input.Expression,
		Actor:      actor,
		Items:      heldItems.Items,
	})
	if err != nil {
		return nil, err
	}

	record := o.newRecord(actor, input, output.Result)

	if input.ChannelID != "" {
		if _, err := o.rollLogRepo.Append(ctx, rolllog.AppendInput{
			ChannelID: input.ChannelID,
			Record:    record,
		}); err != nil {
			slog.WarnContext(ctx, "Failed to log roll",
				"channel_id", input.ChannelID,
				"roll_id", record.ID,
				"error", err.Error())
		}
	}

	slog.Info("Success check rolled",
		"actor_id", actor.ID,
		"expression", output.Result.Expression,
		"dice", output.Result.DiceRolled,
		"successes", output.Result.Successes)

	return &SuccessCheckOutput{Actor: actor, Record: record}, nil
}

// GetRollLog returns a channel's rolls
func (o *orchestrator) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.rollLogRepo.List(ctx, rolllog.ListInput{
		ChannelID: input.ChannelID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read roll log")
	}

	return &GetRollLogOutput{Records: output.Records}, nil
}

// ClearRollLog empties a channel's rolls
func (o *orchestrator) ClearRollLog(ctx context.Context, input *ClearRollLogInput) (*ClearRollLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.User == nil || !input.User.IsGM {
		return nil, errors.Permission(MsgClearGMOnly)
	}

	output, err := o.rollLogRepo.Clear(ctx, rolllog.ClearInput{ChannelID: input.ChannelID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear roll log")
	}

	slog.Info("Roll log cleared",
		"channel_id", input.ChannelID,
		"user_id", input.User.ID,
		"records_deleted", output.RecordsDeleted)

	return &ClearRollLogOutput{RecordsDeleted: output.RecordsDeleted}, nil
}

func (o *orchestrator) loadActor(ctx context.Context, input *SuccessCheckInput) (*entities.Actor, error) {
	if input.ActorID != "" {
		output, err := o.actorRepo.Get(ctx, actors.GetInput{ID: input.ActorID})
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.Reference("The actor doesn't exist anymore")
			}
			return nil, err
		}
		return output.Actor, nil
	}

	if input.User == nil {
		return nil, errors.Reference(MsgNoActorAssigned)
	}

	output, err := o.actorRepo.GetAssigned(ctx, actors.GetAssignedInput{UserID: input.User.ID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Reference(MsgNoActorAssigned)
		}
		return nil, err
	}
	return output.Actor, nil
}

func (o *orchestrator) newRecord(actor *entities.Actor, input *SuccessCheckInput, result *entities.RollResult) *entities.RollRecord {
	record := &entities.RollRecord{
		ID:     o.idGen.Generate(),
		Flavor: input.Flavor,
		Result: result,
	}
	if actor != nil {
		record.ActorID = actor.ID
		record.ActorName = actor.Name
	}
	if input.User != nil {
		record.UserID = input.User.ID
	}
	return record
}
