package item

import "github.com/KirkDiggler/pokerole-bot/internal/entities"

// CreateItemInput defines the request for giving an actor a move or gear
type CreateItemInput struct {
	User *entities.User
	Item *entities.Item
}

// CreateItemOutput holds the stored item
type CreateItemOutput struct {
	Item *entities.Item
}

// ListItemsInput defines the request for an actor's items
type ListItemsInput struct {
	ActorID string
}

// ListItemsOutput holds the actor's items
type ListItemsOutput struct {
	Items []*entities.Item
}

// AddRuleInput appends a rule to an item
type AddRuleInput struct {
	User   *entities.User
	ItemID string
	Rule   entities.Rule
}

// AddRuleOutput holds the updated item
type AddRuleOutput struct {
	Item *entities.Item
}

// UpdateRuleInput changes the fields that are set on the rule at Index
type UpdateRuleInput struct {
	User      *entities.User
	ItemID    string
	Index     int
	Attribute *string
	Operator  *entities.RuleOperator
	Value     *int
}

// UpdateRuleOutput holds the updated item
type UpdateRuleOutput struct {
	Item *entities.Item
}

// RemoveRuleInput removes the rule at Index
type RemoveRuleInput struct {
	User   *entities.User
	ItemID string
	Index  int
}

// RemoveRuleOutput holds the updated item
type RemoveRuleOutput struct {
	Item *entities.Item
}
