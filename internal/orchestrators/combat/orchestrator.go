// Package combat implements the combat orchestrator: the round tracker, move
// use, reactions and damage application behind the chat buttons
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/combats"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
)

// User facing messages
const (
	MsgNoActorSelected  = "No actor selected"
	MsgActorGone        = "The actor doesn't exist anymore"
	MsgGMOnly           = "Only the GM can run combat."
	MsgCombatRunning    = "A combat is already running in this channel."
	MsgNoCombat         = "There is no combat in this channel."
	MsgNoCombatants     = "A combat needs at least one actor."
	MsgCantUseItem      = "You can't use this item."
	MsgMoveGone         = "The move doesn't exist anymore"
	MsgNotAMove         = "Only moves can be used."
	MsgNotYourClash     = "You can't clash for this actor."
	MsgWrongAction      = "This button doesn't do that."
	MsgPainApplied      = "Applied the pain penalization."
	MsgNoWillLeft       = "You don't have any Will left."
	MsgToughedThrough   = "It toughed through the pain with its Will power!"
	MsgCantModifyActor  = "You can't modify this actor."
	MsgClashCancelled   = "The clash was cancelled."
	MsgCombatEndedClash = "The combat ended."
)

// Service defines the interface for combat operations
type Service interface {
	// Combat tracker
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)
	GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error)

	// UseMove rolls a move's accuracy and damage and posts the reaction buttons
	UseMove(ctx context.Context, input *UseMoveInput) (*UseMoveOutput, error)

	// Reactions
	ProposeClash(ctx context.Context, input *ProposeClashInput) (*ProposeClashOutput, error)
	ResolveClash(ctx context.Context, input *ResolveClashInput) (*ResolveClashOutput, error)
	AbortClash(ctx context.Context, input *AbortClashInput) (*AbortClashOutput, error)
	Clash(ctx context.Context, input *ClashInput) (*ClashOutput, error)
	Evade(ctx context.Context, input *EvadeInput) (*EvadeOutput, error)

	// Damage
	Recoil(ctx context.Context, input *RecoilInput) (*RecoilOutput, error)
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	ApplyPainPenalty(ctx context.Context, input *ApplyPainPenaltyInput) (*ApplyPainPenaltyOutput, error)
	IgnorePainPenalty(ctx context.Context, input *IgnorePainPenaltyInput) (*IgnorePainPenaltyOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	Engine         engine.Engine
	ActorRepo      actors.Repository
	ItemRepo       items.Repository
	CombatRepo     combats.Repository
	ChatActionRepo chatactions.Repository
	IDGenerator    idgen.Generator
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
	if c.CombatRepo == nil {
		vb.RequiredField("CombatRepo")
	}
	if c.ChatActionRepo == nil {
		vb.RequiredField("ChatActionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine         engine.Engine
	actorRepo      actors.Repository
	itemRepo       items.Repository
	combatRepo     combats.Repository
	chatActionRepo chatactions.Repository
	idGen          idgen.Generator

	// Clash attempts only live as long as the interaction
	mu       sync.Mutex
	attempts map[string]*pendingAttempt
}

type pendingAttempt struct {
	attempt        *contest.Attempt
	channelID      string
	damageActionID string
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:         cfg.Engine,
		actorRepo:      cfg.ActorRepo,
		itemRepo:       cfg.ItemRepo,
		combatRepo:     cfg.CombatRepo,
		chatActionRepo: cfg.ChatActionRepo,
		idGen:          cfg.IDGenerator,
		attempts:       make(map[string]*pendingAttempt),
	}, nil
}

// StartCombat rolls initiative and opens round 1 in the channel
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGM(input.User); err != nil {
		return nil, err
	}
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID is required")
	}
	if len(input.ActorIDs) == 0 {
		return nil, errors.Expression(MsgNoCombatants)
	}

	existing, err := o.combatRepo.GetByChannel(ctx, &combats.GetByChannelInput{ChannelID: input.ChannelID})
	switch {
	case err == nil && existing.Combat.Active:
		return nil, errors.State(MsgCombatRunning)
	case err != nil && !errors.IsNotFound(err):
		return nil, errors.Wrap(err, "failed to check for a running combat")
	}

	loaded, err := o.actorRepo.GetMany(ctx, actors.GetManyInput{IDs: input.ActorIDs})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load combatants")
	}
	if len(loaded.Missing) > 0 {
		return nil, errors.Reference(MsgActorGone).WithMeta("actor_ids", loaded.Missing)
	}

	combatants := make([]*entities.Actor, 0, len(input.ActorIDs))
	heldItems := make(map[string][]*entities.Item, len(input.ActorIDs))
	for _, id := range input.ActorIDs {
		actor := loaded.Actors[id]
		combatants = append(combatants, actor)

		list, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load items for %s", id)
		}
		heldItems[id] = list.Items
	}

	initiative, err := o.engine.RollInitiative(ctx, &engine.RollInitiativeInput{
		Actors: combatants,
		Items:  heldItems,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll initiative")
	}

	combat := &entities.Combat{
		ID:        o.idGen.Generate(),
		ChannelID: input.ChannelID,
		Round:     1,
		Active:    true,
		Order:     initiative.Order,
	}

	ordered, err := o.beginRound(ctx, combat, byOrder(combat, loaded.Actors), heldItems)
	if err != nil {
		return nil, err
	}

	slog.Info("Combat started",
		"combat_id", combat.ID,
		"channel_id", combat.ChannelID,
		"combatants", len(ordered))

	return &StartCombatOutput{Combat: combat, Actors: ordered}, nil
}

// NextRound resets every combatant's reactions and moves and bumps the round
func (o *orchestrator) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGM(input.User); err != nil {
		return nil, err
	}

	combat, err := o.activeCombat(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	loaded, err := o.actorRepo.GetMany(ctx, actors.GetManyInput{IDs: combat.ActorIDs()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load combatants")
	}
	for _, id := range loaded.Missing {
		slog.Warn("Combatant no longer exists", "combat_id", combat.ID, "actor_id", id)
	}

	heldItems := make(map[string][]*entities.Item, len(loaded.Actors))
	for id := range loaded.Actors {
		list, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load items for %s", id)
		}
		heldItems[id] = list.Items
	}

	next := *combat
	next.Round++
	next.Turn = 0

	ordered, err := o.beginRound(ctx, &next, byOrder(&next, loaded.Actors), heldItems)
	if err != nil {
		return nil, err
	}

	slog.Info("Combat round started",
		"combat_id", next.ID,
		"round", next.Round)

	return &NextRoundOutput{Combat: &next, Actors: ordered}, nil
}

// EndCombat removes the channel's combat and drops its open clashes
func (o *orchestrator) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := requireGM(input.User); err != nil {
		return nil, err
	}

	combat, err := o.activeCombat(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	if _, err := o.combatRepo.Delete(ctx, &combats.DeleteInput{CombatID: combat.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to end combat")
	}

	aborted := o.abortChannelAttempts(ctx, input.ChannelID)
	combat.Active = false

	slog.Info("Combat ended",
		"combat_id", combat.ID,
		"rounds", combat.Round,
		"aborted_clashes", aborted)

	return &EndCombatOutput{Combat: combat, AbortedAttempts: aborted}, nil
}

// GetCombat returns the channel's combat with its combatants in turn order
func (o *orchestrator) GetCombat(ctx context.Context, input *GetCombatInput) (*GetCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	combat, err := o.activeCombat(ctx, input.ChannelID)
	if err != nil {
		return nil, err
	}

	loaded, err := o.actorRepo.GetMany(ctx, actors.GetManyInput{IDs: combat.ActorIDs()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load combatants")
	}

	return &GetCombatOutput{Combat: combat, Actors: byOrder(combat, loaded.Actors)}, nil
}

// beginRound resets the combatants, persists them and their moves, and only
// then saves the combat at its new round
func (o *orchestrator) beginRound(ctx context.Context, combat *entities.Combat, combatants []*entities.Actor, heldItems map[string][]*entities.Item) ([]*entities.Actor, error) {
	started, err := o.engine.StartRound(ctx, &engine.StartRoundInput{
		CombatID: combat.ID,
		Round:    combat.Round,
		Actors:   combatants,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start round")
	}

	for _, actor := range started.Actors {
		if _, err := o.actorRepo.Update(ctx, actors.UpdateInput{Actor: actor}); err != nil {
			return nil, errors.Wrapf(err, "failed to save %s", actor.ID)
		}
		for _, item := range heldItems[actor.ID] {
			if !item.UsedInRound {
				continue
			}
			item.UsedInRound = false
			if _, err := o.itemRepo.Update(ctx, items.UpdateInput{Item: item}); err != nil {
				return nil, errors.Wrapf(err, "failed to reset move %s", item.ID)
			}
		}
	}

	if _, err := o.combatRepo.Save(ctx, &combats.SaveInput{Combat: combat}); err != nil {
		return nil, errors.Wrap(err, "failed to save combat")
	}

	return started.Actors, nil
}

func (o *orchestrator) activeCombat(ctx context.Context, channelID string) (*entities.Combat, error) {
	if channelID == "" {
		return nil, errors.InvalidArgument("channel ID is required")
	}

	output, err := o.combatRepo.GetByChannel(ctx, &combats.GetByChannelInput{ChannelID: channelID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.State(MsgNoCombat)
		}
		return nil, errors.Wrap(err, "failed to load combat")
	}
	if !output.Combat.Active {
		return nil, errors.State(MsgNoCombat)
	}
	return output.Combat, nil
}

// byOrder lists the loaded actors in initiative order, skipping missing ones
func byOrder(combat *entities.Combat, loaded map[string]*entities.Actor) []*entities.Actor {
	ordered := make([]*entities.Actor, 0, len(combat.Order))
	for _, id := range combat.ActorIDs() {
		if actor, ok := loaded[id]; ok && actor != nil {
			ordered = append(ordered, actor)
		}
	}
	return ordered
}

func requireGM(user *entities.User) error {
	if user == nil || !user.IsGM {
		return errors.Permission(MsgGMOnly)
	}
	return nil
}
