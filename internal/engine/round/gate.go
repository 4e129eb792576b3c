// Package round enforces the per-round action limits of an actor.
package round

import (
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// Permission is a once-per-round reaction
type Permission string

const (
	PermissionClash Permission = "clash"
	PermissionEvade Permission = "evade"
)

// Messages shown when a permission or the action budget is exhausted
const (
	MsgNoActionsLeft = "You can't take any more actions this round."
	MsgClashSpent    = "You can only clash once per round."
	MsgEvadeSpent    = "You can only evade once per round."
	MsgAdvisoryMode  = "Combat resource automation is disabled."
)

// GateConfig configures a Gate
type GateConfig struct {
	// Enforced mirrors the combat resource automation setting
	Enforced bool

	// ActionBudget defaults to entities.DefaultActionBudget
	ActionBudget int
}

// Gate decides whether an actor may still react this round. It only ever
// changes the ActorRoundState handed to it.
type Gate struct {
	enforced bool
	budget   int
}

// NewGate creates a gate from cfg
func NewGate(cfg GateConfig) *Gate {
	budget := cfg.ActionBudget
	if budget <= 0 {
		budget = entities.DefaultActionBudget
	}
	return &Gate{
		enforced: cfg.Enforced,
		budget:   budget,
	}
}

// Enforced reports whether consumption is tracked. When false the gate is
// advisory and callers must not block on it.
func (g *Gate) Enforced() bool {
	return g.enforced
}

// Budget returns the number of actions granted each round
func (g *Gate) Budget() int {
	return g.budget
}

// HasAvailableActions reports whether the actor has any action left
func (g *Gate) HasAvailableActions(state entities.ActorRoundState) bool {
	return state.ActionsRemaining > 0
}

// CanUse reports whether permission is still available without consuming it
func (g *Gate) CanUse(state entities.ActorRoundState, permission Permission) error {
	if !g.HasAvailableActions(state) {
		return errors.State(MsgNoActionsLeft)
	}

	switch permission {
	case PermissionClash:
		if !state.CanClash {
			return errors.State(MsgClashSpent)
		}
	case PermissionEvade:
		if !state.CanEvade {
			return errors.State(MsgEvadeSpent)
		}
	default:
		return errors.InvalidArgumentf("unknown permission: %s", permission)
	}

	return nil
}

// Consume spends permission and one action. On error state is untouched.
func (g *Gate) Consume(state *entities.ActorRoundState, permission Permission) error {
	if state == nil {
		return errors.InvalidArgument("round state is required")
	}
	if !g.enforced {
		return errors.State(MsgAdvisoryMode)
	}
	if err := g.CanUse(*state, permission); err != nil {
		return err
	}

	switch permission {
	case PermissionClash:
		state.CanClash = false
	case PermissionEvade:
		state.CanEvade = false
	}
	state.ActionsRemaining--

	return nil
}

// ResetForRound restores every permission and the full action budget
func (g *Gate) ResetForRound(state *entities.ActorRoundState) {
	if state == nil {
		return
	}
	*state = entities.NewRoundState(g.budget)
}
