// Package engine is the boundary between the adapters and the Pokérole rules
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/pokerole-bot/internal/engine Engine

import (
	"context"
)

// Engine provides the rules calculations. It works on the data handed to it
// and never reads or writes storage.
type Engine interface {
	// Dice pools
	ResolvePool(ctx context.Context, input *ResolvePoolInput) (*ResolvePoolOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)

	// Reactions
	ProposeClash(ctx context.Context, input *ProposeClashInput) (*ProposeClashOutput, error)
	ResolveClash(ctx context.Context, input *ResolveClashInput) (*ResolveClashOutput, error)
	AbortClash(ctx context.Context, input *AbortClashInput) (*AbortClashOutput, error)
	Evade(ctx context.Context, input *EvadeInput) (*EvadeOutput, error)

	// Round state
	ConsumePermission(ctx context.Context, input *ConsumePermissionInput) (*ConsumePermissionOutput, error)
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// Damage
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	RollRecoil(ctx context.Context, input *RollRecoilInput) (*RollRecoilOutput, error)
	RollMoveDamage(ctx context.Context, input *RollMoveDamageInput) (*RollMoveDamageOutput, error)
	Mitigate(incoming, successes, expected int) int

	// Settings
	AutomationEnabled() bool
	ActionBudget() int
}
