package entities

// ChatActionKind names what a chat button does when pressed
type ChatActionKind string

// Chat action kinds
const (
	ChatActionClash             ChatActionKind = "clash"
	ChatActionClashChoice       ChatActionKind = "clashChoice"
	ChatActionClashCancel       ChatActionKind = "clashCancel"
	ChatActionEvade             ChatActionKind = "evade"
	ChatActionRecoil            ChatActionKind = "recoil"
	ChatActionApplyDamage       ChatActionKind = "applyDamage"
	ChatActionPainPenalty       ChatActionKind = "painPenalty"
	ChatActionIgnorePainPenalty ChatActionKind = "ignorePainPenalty"
	ChatActionSuccessCheck      ChatActionKind = "sc"
)

// IsValid reports whether the kind is known
func (k ChatActionKind) IsValid() bool {
	switch k {
	case ChatActionClash, ChatActionClashChoice, ChatActionClashCancel, ChatActionEvade,
		ChatActionRecoil, ChatActionApplyDamage, ChatActionPainPenalty,
		ChatActionIgnorePainPenalty, ChatActionSuccessCheck:
		return true
	}
	return false
}

// ChatAction is the payload behind a chat button. Buttons only carry the
// action's ID; everything else lives in storage until it expires.
type ChatAction struct {
	ID        string         `json:"id"`
	Kind      ChatActionKind `json:"kind"`
	ChannelID string         `json:"channel_id"`

	// AuthorID is the user whose message carries the button
	AuthorID string `json:"author_id"`

	// Move that was used, and by whom
	AttackerID string `json:"attacker_id,omitempty"`
	MoveID     string `json:"move_id,omitempty"`

	// ExpectedSuccesses is what a clash must match
	ExpectedSuccesses int `json:"expected_successes,omitempty"`

	// DamageActionID is the applyDamage action a clash softens
	DamageActionID string `json:"damage_action_id,omitempty"`

	// DamageAmount is the damage the move dealt, for recoil
	DamageAmount int `json:"damage_amount,omitempty"`

	// Updates is the damage batch for applyDamage
	Updates []DamageUpdate `json:"updates,omitempty"`

	// TargetID and PainPenalty drive painPenalty and ignorePainPenalty
	TargetID    string `json:"target_id,omitempty"`
	PainPenalty int    `json:"pain_penalty,omitempty"`

	// AttemptID and ClashMoveID drive the defender's clash prompt
	AttemptID   string `json:"attempt_id,omitempty"`
	ClashMoveID string `json:"clash_move_id,omitempty"`

	// Expression and Flavor are an inline success check
	Expression string `json:"expression,omitempty"`
	Flavor     string `json:"flavor,omitempty"`

	CreatedAt int64 `json:"created_at"`
}
