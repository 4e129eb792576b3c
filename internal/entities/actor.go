// Package entities provides the core data structures for pokerole-bot.
package entities

import (
	"slices"
	"strings"
)

// ActorKind distinguishes pokemon from their trainers
type ActorKind string

const (
	ActorKindPokemon ActorKind = "pokemon"
	ActorKindTrainer ActorKind = "trainer"
)

// Attribute names
const (
	AttributeStrength  = "strength"
	AttributeDexterity = "dexterity"
	AttributeVitality  = "vitality"
	AttributeSpecial   = "special"
	AttributeInsight   = "insight"
)

// Skill names used by the combat rules
const (
	SkillAlert   = "alert"
	SkillClash   = "clash"
	SkillEvasion = "evasion"
	SkillBrawl   = "brawl"
	SkillChannel = "channel"
)

// DefaultActionBudget is the number of actions an actor may take per round
const DefaultActionBudget = 5

// Resource is a bounded pool such as HP or Will
type Resource struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Clamp keeps Value inside [0, Max]
func (r *Resource) Clamp() {
	if r.Value < 0 {
		r.Value = 0
	}
	if r.Max > 0 && r.Value > r.Max {
		r.Value = r.Max
	}
}

// ActorRoundState tracks the per-round action permissions of an actor
type ActorRoundState struct {
	CanClash         bool `json:"can_clash"`
	CanEvade         bool `json:"can_evade"`
	ActionsRemaining int  `json:"actions_remaining"`
}

// NewRoundState returns a fresh state with both permissions available
func NewRoundState(budget int) ActorRoundState {
	return ActorRoundState{
		CanClash:         true,
		CanEvade:         true,
		ActionsRemaining: budget,
	}
}

// Actor is a pokemon or trainer taking part in play
type Actor struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Kind          ActorKind       `json:"kind"`
	OwnerIDs      []string        `json:"owner_ids,omitempty"`
	Attributes    map[string]int  `json:"attributes"`
	Skills        map[string]int  `json:"skills"`
	HP            Resource        `json:"hp"`
	Will          Resource        `json:"will"`
	PainPenalty   int             `json:"pain_penalty"`
	Ailments      []AilmentID     `json:"ailments,omitempty"`
	Round         ActorRoundState `json:"round"`
	InitiativeMod int             `json:"initiative_mod"`
	ItemIDs       []string        `json:"item_ids,omitempty"`
	CreatedAt     int64           `json:"created_at"`
	UpdatedAt     int64           `json:"updated_at"`
}

// GetID returns the actor's ID
func (a *Actor) GetID() string {
	return a.ID
}

// GetType returns the entity type used on the event bus
func (a *Actor) GetType() string {
	return string(a.Kind)
}

// IsOwnedBy reports whether userID is one of the actor's owners
func (a *Actor) IsOwnedBy(userID string) bool {
	return userID != "" && slices.Contains(a.OwnerIDs, userID)
}

// Attribute returns the base value of an attribute or skill by name
func (a *Actor) Attribute(name string) (int, bool) {
	name = strings.ToLower(name)
	if v, ok := a.Attributes[name]; ok {
		return v, true
	}
	if v, ok := a.Skills[name]; ok {
		return v, true
	}
	return 0, false
}

// HasAilment reports whether the actor currently suffers from id
func (a *Actor) HasAilment(id AilmentID) bool {
	return slices.Contains(a.Ailments, id)
}

// AddAilment adds id unless already present
func (a *Actor) AddAilment(id AilmentID) {
	if !a.HasAilment(id) {
		a.Ailments = append(a.Ailments, id)
	}
}

// RemoveAilment removes id if present
func (a *Actor) RemoveAilment(id AilmentID) {
	a.Ailments = slices.DeleteFunc(a.Ailments, func(existing AilmentID) bool {
		return existing == id
	})
}

// Clone returns a deep copy so callers can stage changes before persisting
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}
	c := *a
	c.OwnerIDs = slices.Clone(a.OwnerIDs)
	c.Ailments = slices.Clone(a.Ailments)
	c.ItemIDs = slices.Clone(a.ItemIDs)
	c.Attributes = cloneInts(a.Attributes)
	c.Skills = cloneInts(a.Skills)
	return &c
}

func cloneInts(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
