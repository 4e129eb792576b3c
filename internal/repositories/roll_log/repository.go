// Package rolllog provides repository interface and types for the per-channel roll log
package rolllog

import (
	"context"
	"time"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=rolllogmock github.com/KirkDiggler/pokerole-bot/internal/repositories/roll_log Repository

// AppendInput contains a roll to record in a channel's log
type AppendInput struct {
	ChannelID string
	Record    *entities.RollRecord
}

// AppendOutput contains the stored record
type AppendOutput struct {
	Record *entities.RollRecord
}

// ListInput contains parameters for reading a channel's log
type ListInput struct {
	ChannelID string

	// Limit caps the number of records returned, newest first. Zero means all.
	Limit int
}

// ListOutput contains the records, newest first
type ListOutput struct {
	Records []*entities.RollRecord
}

// ClearInput contains parameters for clearing a channel's log
type ClearInput struct {
	ChannelID string
}

// ClearOutput contains the result of clearing a log
type ClearOutput struct {
	RecordsDeleted int
}

// Repository defines the interface for roll log storage operations
type Repository interface {
	// Append records a roll and refreshes the log's TTL
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// List returns the recorded rolls, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Clear removes every roll in a channel's log
	Clear(ctx context.Context, input ClearInput) (*ClearOutput, error)
}

// Defaults for the Redis repository
const (
	DefaultTTL        = 24 * time.Hour
	DefaultMaxEntries = 200
)
