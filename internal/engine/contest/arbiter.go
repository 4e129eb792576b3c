// Package contest arbitrates the reactions a defender can take against an
// incoming move: clashing it with a move of their own or evading it.
package contest

import (
	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/round"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// Messages for reference and state failures
const (
	MsgNoActor             = "You don't control an actor to react with."
	MsgAttackerGone        = "The attacking actor doesn't exist anymore"
	MsgOwnAttack           = "You can't clash your own attack!"
	MsgMoveGone            = "The move to be clashed doesn't exist anymore"
	MsgClashMoveGone       = "The move chosen to clash with doesn't exist anymore"
	MsgClashMoveNotOwned   = "You can only clash with one of your own moves."
	MsgClashMoveNotDamage  = "Only physical or special moves can clash."
	MsgAttemptFinished     = "This clash has already been settled."
	MsgAttemptNotPresented = "This clash is not waiting for a choice."
)

// Config holds the dependencies for the arbiter
type Config struct {
	Resolver           *pool.Resolver
	Gate               *round.Gate
	SpecialDefenseStat string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.Gate == nil {
		vb.RequiredField("Gate")
	}

	return vb.Build()
}

// Arbiter resolves clash and evade reactions. It reads round state through
// the gate but never changes it.
type Arbiter struct {
	resolver           *pool.Resolver
	gate               *round.Gate
	specialDefenseStat string
}

// NewArbiter creates an arbiter from cfg
func NewArbiter(cfg *Config) (*Arbiter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Arbiter{
		resolver:           cfg.Resolver,
		gate:               cfg.Gate,
		specialDefenseStat: cfg.SpecialDefenseStat,
	}, nil
}

// ProposeInput describes a defender wanting to clash an attacker's move
type ProposeInput struct {
	ID                string
	Defender          *entities.Actor
	Attacker          *entities.Actor
	Move              *entities.Item
	ExpectedSuccesses int
}

// Propose validates a clash and returns a new attempt in StateProposed
func (a *Arbiter) Propose(input ProposeInput) (*Attempt, error) {
	if input.Defender == nil {
		return nil, errors.Reference(MsgNoActor)
	}
	if err := a.checkGate(input.Defender, round.PermissionClash); err != nil {
		return nil, err
	}
	if input.Attacker == nil {
		return nil, errors.Reference(MsgAttackerGone)
	}
	if input.Attacker.ID == input.Defender.ID {
		return nil, errors.State(MsgOwnAttack)
	}
	if input.Move == nil {
		return nil, errors.Reference(MsgMoveGone)
	}

	expected := input.ExpectedSuccesses
	if expected < 1 {
		expected = 1
	}

	return &Attempt{
		ID:                input.ID,
		DefenderID:        input.Defender.ID,
		AttackerID:        input.Attacker.ID,
		MoveID:            input.Move.ID,
		ExpectedSuccesses: expected,
		State:             StateProposed,
	}, nil
}

// Present marks the attempt as waiting on the defender's move choice
func (a *Arbiter) Present(attempt *Attempt) error {
	if attempt == nil {
		return errors.InvalidArgument("attempt is required")
	}
	if attempt.State != StateProposed {
		return errors.State(MsgAttemptNotPresented)
	}
	attempt.State = StateAwaitingDefenderChoice
	return nil
}

// ClashInput is the defender's choice of move to clash with
type ClashInput struct {
	Attempt   *Attempt
	Defender  *entities.Actor
	ClashMove *entities.Item
	Items     []*entities.Item
}

// Clash rolls the defender's clash pool and settles the attempt. A full
// success needs at least as many successes as the attacker expected.
func (a *Arbiter) Clash(input ClashInput) (*Attempt, error) {
	attempt := input.Attempt
	if attempt == nil {
		return nil, errors.InvalidArgument("attempt is required")
	}
	if attempt.State.IsTerminal() {
		return nil, errors.State(MsgAttemptFinished)
	}
	if input.Defender == nil || input.Defender.ID != attempt.DefenderID {
		return nil, errors.Reference(MsgNoActor)
	}
	if input.ClashMove == nil {
		return nil, errors.Reference(MsgClashMoveGone)
	}
	if input.ClashMove.ActorID != input.Defender.ID {
		return nil, errors.Permission(MsgClashMoveNotOwned)
	}

	attribute, err := ClashAttribute(input.ClashMove)
	if err != nil {
		return nil, err
	}

	lookup := pool.NewActorLookup(input.Defender, input.Items, a.specialDefenseStat)
	result, err := a.resolver.Resolve(attribute+" + "+entities.SkillClash, lookup, pool.PenaltiesFor(input.Defender))
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve clash pool")
	}

	attempt.ClashMoveID = input.ClashMove.ID
	attempt.Result = result
	attempt.Outcome = OutcomeNotFullSuccess
	if result.Successes >= attempt.ExpectedSuccesses {
		attempt.Outcome = OutcomeFullSuccess
	}
	attempt.State = StateResolved

	return attempt, nil
}

// Abort ends an attempt without side effects
func (a *Arbiter) Abort(attempt *Attempt, reason string) error {
	if attempt == nil {
		return errors.InvalidArgument("attempt is required")
	}
	if attempt.State.IsTerminal() {
		return errors.State(MsgAttemptFinished)
	}
	attempt.State = StateAborted
	attempt.AbortReason = reason
	return nil
}

// EvadeInput is a defender trying to evade
type EvadeInput struct {
	Defender *entities.Actor
	Items    []*entities.Item
}

// EvadeResult is the outcome of an evade roll
type EvadeResult struct {
	Result *entities.RollResult
	Evaded bool
}

// Evade rolls the defender's evade pool. Any success evades.
func (a *Arbiter) Evade(input EvadeInput) (*EvadeResult, error) {
	if input.Defender == nil {
		return nil, errors.Reference(MsgNoActor)
	}
	if err := a.checkGate(input.Defender, round.PermissionEvade); err != nil {
		return nil, err
	}

	lookup := pool.NewActorLookup(input.Defender, input.Items, a.specialDefenseStat)
	result, err := a.resolver.Resolve(pool.DerivedEvade, lookup, pool.PenaltiesFor(input.Defender))
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve evade pool")
	}

	return &EvadeResult{
		Result: result,
		Evaded: result.Successes > 0,
	}, nil
}

// checkGate only blocks when round resources are automated
func (a *Arbiter) checkGate(defender *entities.Actor, permission round.Permission) error {
	if !a.gate.Enforced() {
		return nil
	}
	return a.gate.CanUse(defender.Round, permission)
}

// ClashAttribute returns the attribute a move clashes with
func ClashAttribute(move *entities.Item) (string, error) {
	switch move.Category {
	case entities.MoveCategoryPhysical:
		return entities.AttributeStrength, nil
	case entities.MoveCategorySpecial:
		return entities.AttributeSpecial, nil
	default:
		return "", errors.State(MsgClashMoveNotDamage)
	}
}
