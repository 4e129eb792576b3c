// Package item implements the item orchestrator: moves, gear and the rules
// they apply to their owner's attributes
package item

//go:generate mockgen -destination=mock/mock_service.go -package=itemmock github.com/KirkDiggler/pokerole-bot/internal/orchestrators/item Service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
)

// User facing messages
const (
	MsgItemGone          = "The item doesn't exist anymore"
	MsgActorGone         = "The actor doesn't exist anymore"
	MsgCantModifyItem    = "You can't modify this item."
	MsgRuleNeedsName     = "A rule needs an attribute."
	MsgNoRuleAtIndex     = "There is no rule at that position."
	MsgUnknownOperator   = "Rules can only add to or replace a value."
	MsgItemNameMissing   = "An item needs a name."
	MsgUnknownItemKind   = "Items are either moves or gear."
	MsgUnknownCategory   = "Moves are physical, special or support."
	MsgNegativePower     = "A move's power can't be negative."
	MsgSupportHasNoPower = "Support moves don't deal damage."
)

// Service defines the interface for item operations
type Service interface {
	CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// Rules
	AddRule(ctx context.Context, input *AddRuleInput) (*AddRuleOutput, error)
	UpdateRule(ctx context.Context, input *UpdateRuleInput) (*UpdateRuleOutput, error)
	RemoveRule(ctx context.Context, input *RemoveRuleInput) (*RemoveRuleOutput, error)
}

// Config holds the dependencies for the item orchestrator
type Config struct {
	ActorRepo   actors.Repository
	ItemRepo    items.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ActorRepo == nil {
		vb.RequiredField("ActorRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	actorRepo actors.Repository
	itemRepo  items.Repository
	idGen     idgen.Generator
}

// NewOrchestrator creates a new item orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		actorRepo: cfg.ActorRepo,
		itemRepo:  cfg.ItemRepo,
		idGen:     cfg.IDGenerator,
	}, nil
}

// CreateItem gives an actor a new move or piece of gear
func (o *orchestrator) CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error) {
	if input == nil || input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}

	item := *input.Item
	item.Rules = slices.Clone(input.Item.Rules)
	item.Name = strings.TrimSpace(item.Name)
	item.UsedInRound = false

	if err := o.authorize(ctx, item.ActorID, input.User); err != nil {
		return nil, err
	}
	if err := checkItem(&item); err != nil {
		return nil, err
	}
	for i := range item.Rules {
		rule, err := checkRule(item.Rules[i])
		if err != nil {
			return nil, err
		}
		item.Rules[i] = rule
	}

	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}

	output, err := o.itemRepo.Create(ctx, items.CreateInput{Item: &item})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	slog.Info("Item created",
		"item_id", item.ID,
		"actor_id", item.ActorID,
		"kind", item.Kind)

	return &CreateItemOutput{Item: output.Item}, nil
}

// ListItems returns everything an actor holds
func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument("actor ID is required")
	}

	output, err := o.itemRepo.ListByActor(ctx, items.ListByActorInput{ActorID: input.ActorID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return &ListItemsOutput{Items: output.Items}, nil
}

// AddRule appends a rule. The operator defaults to add.
func (o *orchestrator) AddRule(ctx context.Context, input *AddRuleInput) (*AddRuleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	rule := input.Rule
	if rule.Operator == "" {
		rule.Operator = entities.RuleOperatorAdd
	}
	rule, err := checkRule(rule)
	if err != nil {
		return nil, err
	}

	item, err := o.editableItem(ctx, input.ItemID, input.User)
	if err != nil {
		return nil, err
	}

	item.Rules = append(item.Rules, rule)
	if err := o.save(ctx, item); err != nil {
		return nil, err
	}

	return &AddRuleOutput{Item: item}, nil
}

// UpdateRule changes the set fields of one rule
func (o *orchestrator) UpdateRule(ctx context.Context, input *UpdateRuleInput) (*UpdateRuleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.editableItem(ctx, input.ItemID, input.User)
	if err != nil {
		return nil, err
	}
	if input.Index < 0 || input.Index >= len(item.Rules) {
		return nil, errors.Expression(MsgNoRuleAtIndex).WithMeta("index", input.Index)
	}

	rule := item.Rules[input.Index]
	// An empty attribute leaves the rule as it was
	if input.Attribute != nil && strings.TrimSpace(*input.Attribute) != "" {
		rule.Attribute = *input.Attribute
	}
	if input.Operator != nil {
		rule.Operator = *input.Operator
	}
	if input.Value != nil {
		rule.Value = *input.Value
	}

	rule, err = checkRule(rule)
	if err != nil {
		return nil, err
	}

	item.Rules[input.Index] = rule
	if err := o.save(ctx, item); err != nil {
		return nil, err
	}

	return &UpdateRuleOutput{Item: item}, nil
}

// RemoveRule deletes one rule
func (o *orchestrator) RemoveRule(ctx context.Context, input *RemoveRuleInput) (*RemoveRuleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.editableItem(ctx, input.ItemID, input.User)
	if err != nil {
		return nil, err
	}
	if input.Index < 0 || input.Index >= len(item.Rules) {
		return nil, errors.Expression(MsgNoRuleAtIndex).WithMeta("index", input.Index)
	}

	item.Rules = slices.Delete(item.Rules, input.Index, input.Index+1)
	if err := o.save(ctx, item); err != nil {
		return nil, err
	}

	return &RemoveRuleOutput{Item: item}, nil
}

func (o *orchestrator) editableItem(ctx context.Context, itemID string, user *entities.User) (*entities.Item, error) {
	if itemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	output, err := o.itemRepo.Get(ctx, items.GetInput{ID: itemID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Reference(MsgItemGone)
		}
		return nil, errors.Wrap(err, "failed to load item")
	}

	if err := o.authorize(ctx, output.Item.ActorID, user); err != nil {
		return nil, err
	}
	return output.Item, nil
}

// authorize checks the user may change what the actor holds
func (o *orchestrator) authorize(ctx context.Context, actorID string, user *entities.User) error {
	if actorID == "" {
		return errors.InvalidArgument("actor ID is required")
	}

	output, err := o.actorRepo.Get(ctx, actors.GetInput{ID: actorID})
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.Reference(MsgActorGone)
		}
		return errors.Wrap(err, "failed to load actor")
	}
	if !user.CanModify(output.Actor) {
		return errors.Permission(MsgCantModifyItem)
	}
	return nil
}

func (o *orchestrator) save(ctx context.Context, item *entities.Item) error {
	if _, err := o.itemRepo.Update(ctx, items.UpdateInput{Item: item}); err != nil {
		return errors.Wrapf(err, "failed to save item %s", item.ID)
	}

	slog.Info("Item rules updated",
		"item_id", item.ID,
		"rules", len(item.Rules))
	return nil
}

func checkRule(rule entities.Rule) (entities.Rule, error) {
	rule.Attribute = strings.ToLower(strings.TrimSpace(rule.Attribute))
	if rule.Attribute == "" {
		return rule, errors.Expression(MsgRuleNeedsName)
	}
	if !rule.Operator.IsValid() {
		return rule, errors.Expression(MsgUnknownOperator).WithMeta("operator", string(rule.Operator))
	}
	return rule, nil
}

func checkItem(item *entities.Item) error {
	if item.Name == "" {
		return errors.Expression(MsgItemNameMissing)
	}

	switch item.Kind {
	case entities.ItemKindGear:
		return nil
	case entities.ItemKindMove:
	default:
		return errors.Expression(MsgUnknownItemKind)
	}

	switch item.Category {
	case entities.MoveCategoryPhysical, entities.MoveCategorySpecial:
		if item.Power < 0 {
			return errors.Expression(MsgNegativePower)
		}
	case entities.MoveCategorySupport:
		if item.Power != 0 || item.Recoil {
			return errors.Expression(MsgSupportHasNoPower)
		}
	default:
		return errors.Expression(MsgUnknownCategory)
	}

	if item.Accuracy != "" {
		if _, err := pool.Parse(item.Accuracy); err != nil {
			return err
		}
	}
	return nil
}
