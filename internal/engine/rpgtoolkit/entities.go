package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

// CombatEntity identifies a combat as the source of round events
type CombatEntity struct {
	ID string
}

// GetID returns the combat's ID
func (c *CombatEntity) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CombatEntity) GetType() string {
	return "combat"
}

var _ core.Entity = (*CombatEntity)(nil)
