package engine

import (
	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/round"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// Event types published on the event bus
const (
	EventRoundStart    = "pokerole.round.start"
	EventRollResolved  = "pokerole.roll.resolved"
	EventDamageApplied = "pokerole.damage.applied"
)

// Event context keys
const (
	ContextActors  = "actors"
	ContextRound   = "round"
	ContextCombat  = "combat_id"
	ContextResult  = "result"
	ContextResults = "results"
)

// ResolvePoolInput asks for an expression to be rolled for an actor
type ResolvePoolInput struct {
	Expression string
	Actor      *entities.Actor
	Items      []*entities.Item

	// Lookup replaces the actor lookup, e.g. for offline rolls
	Lookup pool.Lookup

	// Penalties overrides the penalties derived from the actor's state
	Penalties *entities.PenaltyContext
}

// ResolvePoolOutput holds the roll
type ResolvePoolOutput struct {
	Result *entities.RollResult
}

// RollInitiativeInput lists the combatants
type RollInitiativeInput struct {
	Actors []*entities.Actor
	Items  map[string][]*entities.Item
}

// RollInitiativeOutput is the turn order, highest first
type RollInitiativeOutput struct {
	Order []entities.InitiativeEntry
}

// ProposeClashInput wraps contest.ProposeInput
type ProposeClashInput struct {
	contest.ProposeInput
}

// ProposeClashOutput holds an attempt awaiting the defender's choice
type ProposeClashOutput struct {
	Attempt *contest.Attempt
}

// ResolveClashInput wraps contest.ClashInput
type ResolveClashInput struct {
	contest.ClashInput
}

// ResolveClashOutput holds the settled attempt
type ResolveClashOutput struct {
	Attempt *contest.Attempt
}

// AbortClashInput cancels an attempt
type AbortClashInput struct {
	Attempt *contest.Attempt
	Reason  string
}

// AbortClashOutput holds the aborted attempt
type AbortClashOutput struct {
	Attempt *contest.Attempt
}

// EvadeInput wraps contest.EvadeInput
type EvadeInput struct {
	contest.EvadeInput
}

// EvadeOutput holds the evade roll
type EvadeOutput struct {
	*contest.EvadeResult
}

// ConsumePermissionInput spends a reaction of the actor, in place
type ConsumePermissionInput struct {
	Actor      *entities.Actor
	Permission round.Permission
}

// ConsumePermissionOutput reports whether anything was spent. It is false
// when automation is disabled.
type ConsumePermissionOutput struct {
	Consumed bool
}

// StartRoundInput lists the actors entering a new round
type StartRoundInput struct {
	CombatID string
	Round    int
	Actors   []*entities.Actor
}

// StartRoundOutput holds the actors with fresh round state
type StartRoundOutput struct {
	Actors []*entities.Actor
}

// ApplyDamageInput is a batch of updates against loaded targets
type ApplyDamageInput struct {
	Updates []entities.DamageUpdate
	Targets map[string]*entities.Actor
	Checker damage.PermissionChecker
}

// ApplyDamageOutput holds the per-target record
type ApplyDamageOutput struct {
	Record *damage.AppliedRecord
}

// RollRecoilInput asks for recoil on the attacker
type RollRecoilInput struct {
	Attacker     *entities.Actor
	Items        []*entities.Item
	DamageAmount int
}

// RollRecoilOutput holds the recoil roll
type RollRecoilOutput struct {
	*damage.RecoilResult
}

// RollMoveDamageInput wraps damage.MoveDamageInput
type RollMoveDamageInput struct {
	damage.MoveDamageInput
}

// RollMoveDamageOutput holds the damage roll
type RollMoveDamageOutput struct {
	*damage.MoveDamageResult
}
