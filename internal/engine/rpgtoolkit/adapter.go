// Package rpgtoolkit implements the engine interface on top of rpg-toolkit dice and events.
package rpgtoolkit

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/round"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// roundResetPriority runs the gate reset ahead of any other round listener
const roundResetPriority = 1000

// Rules are the world settings and house rules the engine plays by
type Rules struct {
	SuccessThreshold         int
	OnesReduceSuccesses      bool
	SpecialDefenseStat       string
	CombatResourceAutomation bool
	ActionBudget             int
	MaxPool                  int
	Mitigation               damage.MitigationPolicy
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	Rules      Rules
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
	resolver   *pool.Resolver
	gate       *round.Gate
	arbiter    *contest.Arbiter
	calculator *damage.Calculator
	rules      Rules
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver, err := pool.NewResolver(&pool.ResolverConfig{
		Roller:              cfg.DiceRoller,
		SuccessThreshold:    cfg.Rules.SuccessThreshold,
		OnesReduceSuccesses: cfg.Rules.OnesReduceSuccesses,
		MaxPool:             cfg.Rules.MaxPool,
	})
	if err != nil {
		return nil, err
	}

	gate := round.NewGate(round.GateConfig{
		Enforced:     cfg.Rules.CombatResourceAutomation,
		ActionBudget: cfg.Rules.ActionBudget,
	})

	arbiter, err := contest.NewArbiter(&contest.Config{
		Resolver:           resolver,
		Gate:               gate,
		SpecialDefenseStat: cfg.Rules.SpecialDefenseStat,
	})
	if err != nil {
		return nil, err
	}

	calculator, err := damage.NewCalculator(&damage.Config{
		Resolver:           resolver,
		SpecialDefenseStat: cfg.Rules.SpecialDefenseStat,
		Mitigation:         cfg.Rules.Mitigation,
	})
	if err != nil {
		return nil, err
	}

	a := &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
		resolver:   resolver,
		gate:       gate,
		arbiter:    arbiter,
		calculator: calculator,
		rules:      cfg.Rules,
	}

	cfg.EventBus.SubscribeFunc(engine.EventRoundStart, roundResetPriority, a.resetRoundState)

	return a, nil
}

// AutomationEnabled reports whether round resources are tracked
func (a *Adapter) AutomationEnabled() bool {
	return a.gate.Enforced()
}

// ActionBudget returns the actions granted per round
func (a *Adapter) ActionBudget() int {
	return a.gate.Budget()
}

// ResolvePool rolls an expression for an actor and announces the result
func (a *Adapter) ResolvePool(ctx context.Context, input *engine.ResolvePoolInput) (*engine.ResolvePoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	lookup := input.Lookup
	if lookup == nil {
		if input.Actor == nil {
			return nil, errors.Reference("No actor to roll for.")
		}
		lookup = pool.NewActorLookup(input.Actor, input.Items, a.rules.SpecialDefenseStat)
	}

	penalties := pool.PenaltiesFor(input.Actor)
	if input.Penalties != nil {
		penalties = *input.Penalties
	}

	result, err := a.resolver.Resolve(input.Expression, lookup, penalties)
	if err != nil {
		return nil, err
	}

	event := events.NewGameEvent(engine.EventRollResolved, entityOrNil(input.Actor), nil)
	event.Context().Set(engine.ContextResult, result)
	if err := a.eventBus.Publish(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish roll event")
	}

	return &engine.ResolvePoolOutput{Result: result}, nil
}

// RollInitiative rolls 1d6 plus dexterity, alert and the custom modifier
func (a *Adapter) RollInitiative(_ context.Context, input *engine.RollInitiativeInput) (*engine.RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	order := make([]entities.InitiativeEntry, 0, len(input.Actors))
	for _, actor := range input.Actors {
		if actor == nil {
			continue
		}
		roll, err := a.diceRoller.Roll(6)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll initiative for %s", actor.ID)
		}

		lookup := pool.NewActorLookup(actor, input.Items[actor.ID], a.rules.SpecialDefenseStat)
		bonus, _ := lookup.Value(pool.DerivedInitiative)

		order = append(order, entities.InitiativeEntry{
			ActorID: actor.ID,
			Roll:    roll,
			Total:   roll + bonus,
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Total != order[j].Total {
			return order[i].Total > order[j].Total
		}
		return order[i].Roll > order[j].Roll
	})

	return &engine.RollInitiativeOutput{Order: order}, nil
}

// ProposeClash validates a clash and presents it to the defender
func (a *Adapter) ProposeClash(_ context.Context, input *engine.ProposeClashInput) (*engine.ProposeClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attempt, err := a.arbiter.Propose(input.ProposeInput)
	if err != nil {
		return nil, err
	}
	if err := a.arbiter.Present(attempt); err != nil {
		return nil, err
	}

	return &engine.ProposeClashOutput{Attempt: attempt}, nil
}

// ResolveClash rolls the defender's chosen clash
func (a *Adapter) ResolveClash(_ context.Context, input *engine.ResolveClashInput) (*engine.ResolveClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	attempt, err := a.arbiter.Clash(input.ClashInput)
	if err != nil {
		return nil, err
	}

	slog.Debug("Clash resolved",
		"attempt_id", attempt.ID,
		"defender_id", attempt.DefenderID,
		"successes", attempt.Result.Successes,
		"expected", attempt.ExpectedSuccesses,
		"outcome", attempt.Outcome,
	)

	return &engine.ResolveClashOutput{Attempt: attempt}, nil
}

// AbortClash drops an attempt
func (a *Adapter) AbortClash(_ context.Context, input *engine.AbortClashInput) (*engine.AbortClashOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := a.arbiter.Abort(input.Attempt, input.Reason); err != nil {
		return nil, err
	}
	return &engine.AbortClashOutput{Attempt: input.Attempt}, nil
}

// Evade rolls the defender's evade pool
func (a *Adapter) Evade(_ context.Context, input *engine.EvadeInput) (*engine.EvadeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := a.arbiter.Evade(input.EvadeInput)
	if err != nil {
		return nil, err
	}

	return &engine.EvadeOutput{EvadeResult: result}, nil
}

// ConsumePermission spends a reaction on the actor when automation is on
func (a *Adapter) ConsumePermission(_ context.Context, input *engine.ConsumePermissionInput) (*engine.ConsumePermissionOutput, error) {
	if input == nil || input.Actor == nil {
		return nil, errors.InvalidArgument("actor is required")
	}
	if !a.gate.Enforced() {
		return &engine.ConsumePermissionOutput{Consumed: false}, nil
	}

	if err := a.gate.Consume(&input.Actor.Round, input.Permission); err != nil {
		return nil, err
	}

	return &engine.ConsumePermissionOutput{Consumed: true}, nil
}

// StartRound publishes the round boundary. The gate reset listener runs
// synchronously, so every actor is fresh when this returns.
func (a *Adapter) StartRound(ctx context.Context, input *engine.StartRoundInput) (*engine.StartRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	event := events.NewGameEvent(engine.EventRoundStart, &CombatEntity{ID: input.CombatID}, nil)
	event.Context().Set(engine.ContextCombat, input.CombatID)
	event.Context().Set(engine.ContextRound, input.Round)
	event.Context().Set(engine.ContextActors, input.Actors)

	if err := a.eventBus.Publish(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish round start")
	}

	return &engine.StartRoundOutput{Actors: input.Actors}, nil
}

func (a *Adapter) resetRoundState(_ context.Context, event events.Event) error {
	value, ok := event.Context().Get(engine.ContextActors)
	if !ok {
		return nil
	}
	actors, ok := value.([]*entities.Actor)
	if !ok {
		return errors.Internalf("round start carried %T instead of actors", value)
	}

	for _, actor := range actors {
		if actor == nil {
			continue
		}
		a.gate.ResetForRound(&actor.Round)
	}
	return nil
}

// ApplyDamage runs a damage batch
func (a *Adapter) ApplyDamage(ctx context.Context, input *engine.ApplyDamageInput) (*engine.ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record := a.calculator.Apply(input.Updates, input.Targets, input.Checker)

	event := events.NewGameEvent(engine.EventDamageApplied, nil, nil)
	event.Context().Set(engine.ContextResults, record.Results)
	if err := a.eventBus.Publish(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish damage event")
	}

	return &engine.ApplyDamageOutput{Record: record}, nil
}

// RollRecoil rolls recoil damage for the attacker
func (a *Adapter) RollRecoil(_ context.Context, input *engine.RollRecoilInput) (*engine.RollRecoilOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := a.calculator.RollRecoil(input.Attacker, input.Items, input.DamageAmount)
	if err != nil {
		return nil, err
	}

	return &engine.RollRecoilOutput{RecoilResult: result}, nil
}

// RollMoveDamage rolls a move's damage against its target
func (a *Adapter) RollMoveDamage(_ context.Context, input *engine.RollMoveDamageInput) (*engine.RollMoveDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	result, err := a.calculator.RollMoveDamage(input.MoveDamageInput)
	if err != nil {
		return nil, err
	}

	return &engine.RollMoveDamageOutput{MoveDamageResult: result}, nil
}

// Mitigate applies the configured clash mitigation policy
func (a *Adapter) Mitigate(incoming, successes, expected int) int {
	return a.calculator.Mitigate(incoming, successes, expected)
}

// entityOrNil avoids handing the bus a typed nil
func entityOrNil(actor *entities.Actor) core.Entity {
	if actor == nil {
		return nil
	}
	return actor
}
