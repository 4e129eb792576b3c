package entities

// ItemKind distinguishes moves from held gear
type ItemKind string

const (
	ItemKindMove ItemKind = "move"
	ItemKindGear ItemKind = "gear"
)

// MoveCategory decides which attribute a move clashes and defends with
type MoveCategory string

const (
	MoveCategoryPhysical MoveCategory = "physical"
	MoveCategorySpecial  MoveCategory = "special"
	MoveCategorySupport  MoveCategory = "support"
)

// RuleOperator is how a rule combines with the base value
type RuleOperator string

const (
	RuleOperatorAdd     RuleOperator = "add"
	RuleOperatorReplace RuleOperator = "replace"
)

// IsValid reports whether the operator is supported
func (o RuleOperator) IsValid() bool {
	return o == RuleOperatorAdd || o == RuleOperatorReplace
}

// Rule modifies an attribute or skill of the item's owner
type Rule struct {
	Attribute string       `json:"attribute"`
	Operator  RuleOperator `json:"operator"`
	Value     int          `json:"value"`
}

// Item is anything owned by an actor. Moves carry the combat fields.
type Item struct {
	ID              string       `json:"id"`
	ActorID         string       `json:"actor_id"`
	Name            string       `json:"name"`
	Kind            ItemKind     `json:"kind"`
	Category        MoveCategory `json:"category,omitempty"`
	Accuracy        string       `json:"accuracy,omitempty"`
	DamageAttribute string       `json:"damage_attribute,omitempty"`
	Power           int          `json:"power,omitempty"`
	Recoil          bool         `json:"recoil,omitempty"`
	UsedInRound     bool         `json:"used_in_round,omitempty"`
	Rules           []Rule       `json:"rules,omitempty"`
	CreatedAt       int64        `json:"created_at"`
	UpdatedAt       int64        `json:"updated_at"`
}

// IsMove reports whether the item is a move
func (i *Item) IsMove() bool {
	return i.Kind == ItemKindMove
}
