package combat

import (
	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// StartCombatInput defines the request for starting a combat in a channel
type StartCombatInput struct {
	ChannelID string
	User      *entities.User
	ActorIDs  []string
}

// StartCombatOutput holds the new combat and its fresh combatants
type StartCombatOutput struct {
	Combat *entities.Combat
	Actors []*entities.Actor
}

// NextRoundInput defines the request for advancing a channel's combat
type NextRoundInput struct {
	ChannelID string
	User      *entities.User
}

// NextRoundOutput holds the combat and its combatants after the reset
type NextRoundOutput struct {
	Combat *entities.Combat
	Actors []*entities.Actor
}

// EndCombatInput defines the request for ending a channel's combat
type EndCombatInput struct {
	ChannelID string
	User      *entities.User
}

// EndCombatOutput holds the ended combat
type EndCombatOutput struct {
	Combat          *entities.Combat
	AbortedAttempts int
}

// GetCombatInput defines the request for a channel's combat
type GetCombatInput struct {
	ChannelID string
}

// GetCombatOutput holds the combat and its combatants in turn order
type GetCombatOutput struct {
	Combat *entities.Combat
	Actors []*entities.Actor
}

// UseMoveInput defines the request for using a move
type UseMoveInput struct {
	ChannelID string
	User      *entities.User
	MoveID    string
	TargetIDs []string
}

// UseMoveOutput holds the rolls and the follow-up actions offered in chat
type UseMoveOutput struct {
	Actor *entities.Actor
	Move  *entities.Item

	// Accuracy is nil for moves that never miss
	Accuracy *entities.RollResult
	Hit      bool
	Damage   []*damage.MoveDamageResult
	Actions  []*entities.ChatAction
}

// ProposeClashInput defines a defender pressing a clash button
type ProposeClashInput struct {
	ActionID string
	User     *entities.User
}

// ProposeClashOutput holds the attempt and the defender's choices
type ProposeClashOutput struct {
	Attempt    *contest.Attempt
	Defender   *entities.Actor
	ClashMoves []*entities.Item
	Choices    []*entities.ChatAction
}

// ResolveClashInput is the defender's choice. Either ActionID points at a
// clashChoice action or AttemptID and ClashMoveID are given directly.
type ResolveClashInput struct {
	ActionID    string
	AttemptID   string
	ClashMoveID string
	User        *entities.User
}

// ResolveClashOutput holds the settled attempt
type ResolveClashOutput struct {
	Attempt  *contest.Attempt
	Defender *entities.Actor

	// Consumed reports whether the defender's clash was spent
	Consumed bool

	// Mitigation is set when the clash changed pending damage
	Mitigation *Mitigation
}

// Mitigation is how a clash changed the damage waiting to be applied to
// the defender
type Mitigation struct {
	ActionID string
	Before   int
	After    int
}

// AbortClashInput cancels an attempt, by clashCancel action or attempt ID
type AbortClashInput struct {
	ActionID  string
	AttemptID string
	User      *entities.User
	Reason    string
}

// AbortClashOutput holds the aborted attempt
type AbortClashOutput struct {
	Attempt *contest.Attempt
}

// ClashInput proposes and resolves a clash in one step. ClashMoveID is
// optional.
type ClashInput struct {
	ActionID    string
	ClashMoveID string
	User        *entities.User
}

// ClashOutput holds the settled attempt, or the open proposal when the
// defender still has to pick a move
type ClashOutput struct {
	Attempt    *contest.Attempt
	Defender   *entities.Actor
	Consumed   bool
	Mitigation *Mitigation

	Proposed *ProposeClashOutput
}

// EvadeInput defines a defender pressing an evade button
type EvadeInput struct {
	ActionID string
	User     *entities.User
}

// EvadeOutput holds the evade roll
type EvadeOutput struct {
	Defender *entities.Actor
	Result   *entities.RollResult
	Evaded   bool
	Consumed bool
}

// RecoilInput defines a recoil button press
type RecoilInput struct {
	ActionID string
	User     *entities.User
}

// RecoilOutput holds the recoil roll and the self damage
type RecoilOutput struct {
	Attacker *entities.Actor
	Roll     *entities.RollResult
	Result   *damage.TargetResult
}

// ApplyDamageInput applies the batch of an applyDamage action, or Updates
// when no action is given
type ApplyDamageInput struct {
	ActionID  string
	ChannelID string
	Updates   []entities.DamageUpdate
	User      *entities.User
}

// ApplyDamageOutput holds per-target results and pain penalty follow-ups
type ApplyDamageOutput struct {
	Record  *damage.AppliedRecord
	Actions []*entities.ChatAction
}

// ApplyPainPenaltyInput defines a painPenalty button press
type ApplyPainPenaltyInput struct {
	ActionID string
	User     *entities.User
}

// ApplyPainPenaltyOutput holds the updated actor
type ApplyPainPenaltyOutput struct {
	Actor   *entities.Actor
	Message string
}

// IgnorePainPenaltyInput defines an ignorePainPenalty button press
type IgnorePainPenaltyInput struct {
	ActionID string
	User     *entities.User
}

// IgnorePainPenaltyOutput holds the updated actor
type IgnorePainPenaltyOutput struct {
	Actor   *entities.Actor
	Message string
}
