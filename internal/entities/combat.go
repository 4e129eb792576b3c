package entities

// InitiativeEntry is one combatant's place in the turn order
type InitiativeEntry struct {
	ActorID string `json:"actor_id"`
	Roll    int    `json:"roll"`
	Total   int    `json:"total"`
}

// Combat tracks rounds for the actors fighting in a channel
type Combat struct {
	ID        string            `json:"id"`
	ChannelID string            `json:"channel_id"`
	Round     int               `json:"round"`
	Turn      int               `json:"turn"`
	Active    bool              `json:"active"`
	Order     []InitiativeEntry `json:"order"`
	CreatedAt int64             `json:"created_at"`
	UpdatedAt int64             `json:"updated_at"`
}

// ActorIDs returns the combatants in initiative order
func (c *Combat) ActorIDs() []string {
	ids := make([]string, 0, len(c.Order))
	for _, entry := range c.Order {
		ids = append(ids, entry.ActorID)
	}
	return ids
}

// User is a person interacting through chat
type User struct {
	ID   string
	Name string
	IsGM bool
}

// CanModify reports whether the user may change the actor
func (u *User) CanModify(actor *Actor) bool {
	if u == nil || actor == nil {
		return false
	}
	return u.IsGM || actor.IsOwnedBy(u.ID)
}
