package contest

import "github.com/KirkDiggler/pokerole-bot/internal/entities"

// State is where a clash attempt is in its lifecycle
type State string

const (
	StateProposed               State = "proposed"
	StateAwaitingDefenderChoice State = "awaiting_defender_choice"
	StateResolved               State = "resolved"
	StateAborted                State = "aborted"
)

// IsTerminal reports whether no further transition is allowed
func (s State) IsTerminal() bool {
	return s == StateResolved || s == StateAborted
}

// Outcome of a resolved clash
type Outcome string

const (
	OutcomeFullSuccess    Outcome = "full_success"
	OutcomeNotFullSuccess Outcome = "not_full_success"
)

// Attempt is an in-flight clash. It lives only as long as the interaction.
type Attempt struct {
	ID                string
	DefenderID        string
	AttackerID        string
	MoveID            string
	ExpectedSuccesses int
	State             State
	ClashMoveID       string
	Result            *entities.RollResult
	Outcome           Outcome
	AbortReason       string
}

// Succeeded reports whether the attempt resolved as a full success
func (a *Attempt) Succeeded() bool {
	return a.State == StateResolved && a.Outcome == OutcomeFullSuccess
}
