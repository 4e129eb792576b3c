package roll

import (
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

// SuccessCheckInput asks for an expression to be rolled
type SuccessCheckInput struct {
	ChannelID  string
	User       *entities.User
	Expression string
	Flavor     string

	// ActorID rolls for a specific actor instead of the user's assigned one
	ActorID string

	// Values rolls without an actor, e.g. from the command line. Nothing is logged.
	Values map[string]int
}

// SuccessCheckOutput holds the logged roll
type SuccessCheckOutput struct {
	Actor  *entities.Actor
	Record *entities.RollRecord
}

// GetRollLogInput defines the request for reading a channel's rolls
type GetRollLogInput struct {
	ChannelID string
	Limit     int
}

// GetRollLogOutput holds the rolls, newest first
type GetRollLogOutput struct {
	Records []*entities.RollRecord
}

// ClearRollLogInput defines the request for clearing a channel's rolls
type ClearRollLogInput struct {
	ChannelID string
	User      *entities.User
}

// ClearRollLogOutput reports how many rolls were removed
type ClearRollLogOutput struct {
	RecordsDeleted int
}
