package combats

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu        sync.RWMutex
	store     map[string]*entities.Combat
	byChannel map[string]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store:     make(map[string]*entities.Combat),
		byChannel: make(map[string]string),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Save stores a combat
func (r *InMemoryRepository) Save(_ context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCombat(input.Combat); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Combat.ID] = copyCombat(input.Combat)
	r.byChannel[input.Combat.ChannelID] = input.Combat.ID

	return &SaveOutput{Combat: input.Combat}, nil
}

// Get retrieves a combat by ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.CombatID == "" {
		return nil, errors.InvalidArgument("combat ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	combat, exists := r.store[input.CombatID]
	if !exists {
		return nil, errors.NotFound("combat not found")
	}

	// Return a copy to prevent external modification
	return &GetOutput{Combat: copyCombat(combat)}, nil
}

// GetByChannel retrieves the channel's current combat
func (r *InMemoryRepository) GetByChannel(_ context.Context, input *GetByChannelInput) (*GetByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	combat, exists := r.store[r.byChannel[input.ChannelID]]
	if !exists {
		return nil, errors.NotFound("no combat in this channel")
	}

	return &GetByChannelOutput{Combat: copyCombat(combat)}, nil
}

// Delete removes a combat
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.CombatID == "" {
		return nil, errors.InvalidArgument("combat ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	combat, exists := r.store[input.CombatID]
	if !exists {
		return nil, errors.NotFound("combat not found")
	}

	delete(r.store, input.CombatID)
	if r.byChannel[combat.ChannelID] == input.CombatID {
		delete(r.byChannel, combat.ChannelID)
	}

	return &DeleteOutput{Success: true}, nil
}

func copyCombat(c *entities.Combat) *entities.Combat {
	out := *c
	out.Order = append([]entities.InitiativeEntry(nil), c.Order...)
	return &out
}
