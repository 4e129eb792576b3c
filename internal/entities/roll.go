package entities

// DefaultSuccessThreshold is the lowest d6 face that counts as a success
const DefaultSuccessThreshold = 4

// PenaltyContext holds modifiers applied to a pool size before rolling
type PenaltyContext struct {
	PainPenalty      int  `json:"pain_penalty"`
	ConfusionPenalty bool `json:"confusion_penalty"`
	FlatModifier     int  `json:"flat_modifier"`
}

// RollResult is the immutable outcome of resolving a dice pool
type RollResult struct {
	Expression          string `json:"expression"`
	PoolBeforePenalties int    `json:"pool_before_penalties"`
	DiceRolled          int    `json:"dice_rolled"`
	SuccessThreshold    int    `json:"success_threshold"`
	Successes           int    `json:"successes"`
	OnesCancelled       int    `json:"ones_cancelled"`
	RawFaces            []int  `json:"raw_faces,omitempty"`
}

// RollRecord is a roll as kept in a channel's roll log
type RollRecord struct {
	ID        string      `json:"id"`
	ActorID   string      `json:"actor_id"`
	ActorName string      `json:"actor_name"`
	UserID    string      `json:"user_id"`
	Flavor    string      `json:"flavor,omitempty"`
	Result    *RollResult `json:"result"`
	RolledAt  int64       `json:"rolled_at"`
}

// DamageUpdate is one target's change in a damage batch
type DamageUpdate struct {
	TargetID       string      `json:"target_id"`
	Delta          int         `json:"delta"`
	AddAilments    []AilmentID `json:"add_ailments,omitempty"`
	RemoveAilments []AilmentID `json:"remove_ailments,omitempty"`

	// Clashed is set once a clash has been weighed against Delta
	Clashed bool `json:"clashed,omitempty"`
}
