// Package idgen hands out identifiers for actors, items, rolls and the
// pending chat actions behind message buttons.
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen Generator

// Prefixes used by the bot's records
const (
	PrefixChatAction = "act"
	PrefixRoll       = "roll"
	PrefixClash      = "clash"
	PrefixActor      = "actor"
	PrefixItem       = "item"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// SequentialGenerator produces prefix_1, prefix_2, ... for tests
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates compact UUIDs with an optional prefix. Dashes
// are dropped so chat action IDs stay well inside button ID limits.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	if g.prefix != "" {
		return g.prefix + "_" + id
	}
	return id
}
