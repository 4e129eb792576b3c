package item_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/item"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
	"github.com/KirkDiggler/pokerole-bot/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	items   items.Repository
	service item.Service

	ash  *entities.User
	gary *entities.User
	gm   *entities.User
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	_, client := testutils.CreateTestRedisServer(s.T())

	actorRepo, err := actors.NewRedis(&actors.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.items, err = items.NewRedis(&items.RedisConfig{Client: client})
	s.Require().NoError(err)

	s.service, err = item.NewOrchestrator(&item.Config{
		ActorRepo:   actorRepo,
		ItemRepo:    s.items,
		IDGenerator: idgen.NewSequential("item"),
	})
	s.Require().NoError(err)

	s.ash = &entities.User{ID: "ash"}
	s.gary = &entities.User{ID: "gary"}
	s.gm = &entities.User{ID: "oak", IsGM: true}

	_, err = actorRepo.Create(s.ctx, actors.CreateInput{Actor: &entities.Actor{
		ID:       "pikachu",
		Name:     "Pikachu",
		Kind:     entities.ActorKindPokemon,
		OwnerIDs: []string{"ash"},
	}})
	s.Require().NoError(err)

	_, err = s.items.Create(s.ctx, items.CreateInput{Item: &entities.Item{
		ID:      "light-ball",
		ActorID: "pikachu",
		Name:    "Light Ball",
		Kind:    entities.ItemKindGear,
		Rules: []entities.Rule{
			{Attribute: "special", Operator: entities.RuleOperatorAdd, Value: 2},
		},
	}})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) stored(id string) *entities.Item {
	output, err := s.items.Get(s.ctx, items.GetInput{ID: id})
	s.Require().NoError(err)
	return output.Item
}

func (s *OrchestratorTestSuite) TestCreateItem() {
	output, err := s.service.CreateItem(s.ctx, &item.CreateItemInput{
		User: s.ash,
		Item: &entities.Item{
			ActorID:         "pikachu",
			Name:            " Thunderbolt ",
			Kind:            entities.ItemKindMove,
			Category:        entities.MoveCategorySpecial,
			Accuracy:        "dexterity + channel",
			DamageAttribute: entities.AttributeSpecial,
			Power:           3,
			UsedInRound:     true,
		},
	})
	s.Require().NoError(err)
	s.Equal("item_1", output.Item.ID)
	s.Equal("Thunderbolt", output.Item.Name)
	s.False(output.Item.UsedInRound)

	list, err := s.service.ListItems(s.ctx, &item.ListItemsInput{ActorID: "pikachu"})
	s.Require().NoError(err)
	s.Len(list.Items, 2)
}

func (s *OrchestratorTestSuite) TestCreateItemRejections() {
	testCases := []struct {
		name    string
		user    *entities.User
		item    *entities.Item
		wantMsg string
	}{
		{
			name:    "someone else's actor",
			user:    s.gary,
			item:    &entities.Item{ActorID: "pikachu", Name: "Stolen", Kind: entities.ItemKindGear},
			wantMsg: item.MsgCantModifyItem,
		},
		{
			name:    "missing actor",
			user:    s.gm,
			item:    &entities.Item{ActorID: "missingno", Name: "Glitch", Kind: entities.ItemKindGear},
			wantMsg: item.MsgActorGone,
		},
		{
			name:    "no name",
			user:    s.ash,
			item:    &entities.Item{ActorID: "pikachu", Kind: entities.ItemKindGear},
			wantMsg: item.MsgItemNameMissing,
		},
		{
			name:    "unknown kind",
			user:    s.ash,
			item:    &entities.Item{ActorID: "pikachu", Name: "Pokeflute", Kind: "instrument"},
			wantMsg: item.MsgUnknownItemKind,
		},
		{
			name:    "move without category",
			user:    s.ash,
			item:    &entities.Item{ActorID: "pikachu", Name: "Splash", Kind: entities.ItemKindMove},
			wantMsg: item.MsgUnknownCategory,
		},
		{
			name: "support move with power",
			user: s.ash,
			item: &entities.Item{
				ActorID: "pikachu", Name: "Growl", Kind: entities.ItemKindMove,
				Category: entities.MoveCategorySupport, Power: 2,
			},
			wantMsg: item.MsgSupportHasNoPower,
		},
		{
			name: "bad rule",
			user: s.ash,
			item: &entities.Item{
				ActorID: "pikachu", Name: "Band", Kind: entities.ItemKindGear,
				Rules: []entities.Rule{{Attribute: "strength", Operator: "multiply", Value: 2}},
			},
			wantMsg: item.MsgUnknownOperator,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.CreateItem(s.ctx, &item.CreateItemInput{User: tc.user, Item: tc.item})
			s.Require().Error(err)
			s.Equal(tc.wantMsg, errors.UserMessage(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestCreateMoveWithBadAccuracy() {
	_, err := s.service.CreateItem(s.ctx, &item.CreateItemInput{
		User: s.ash,
		Item: &entities.Item{
			ActorID: "pikachu", Name: "Quick Attack", Kind: entities.ItemKindMove,
			Category: entities.MoveCategoryPhysical, Accuracy: "dexterity +",
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAddRuleDefaultsToAdd() {
	output, err := s.service.AddRule(s.ctx, &item.AddRuleInput{
		User:   s.ash,
		ItemID: "light-ball",
		Rule:   entities.Rule{Attribute: " Strength ", Value: 1},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Item.Rules, 2)
	s.Equal(entities.Rule{Attribute: "strength", Operator: entities.RuleOperatorAdd, Value: 1}, output.Item.Rules[1])
	s.Len(s.stored("light-ball").Rules, 2)
}

func (s *OrchestratorTestSuite) TestAddRuleNeedsAttribute() {
	_, err := s.service.AddRule(s.ctx, &item.AddRuleInput{User: s.ash, ItemID: "light-ball"})
	s.Require().Error(err)
	s.Equal(item.MsgRuleNeedsName, errors.UserMessage(err))
}

func (s *OrchestratorTestSuite) TestUpdateRule() {
	replace := entities.RuleOperatorReplace
	value := 5
	empty := ""

	output, err := s.service.UpdateRule(s.ctx, &item.UpdateRuleInput{
		User:      s.ash,
		ItemID:    "light-ball",
		Index:     0,
		Attribute: &empty,
		Operator:  &replace,
		Value:     &value,
	})
	s.Require().NoError(err)
	s.Equal(entities.Rule{Attribute: "special", Operator: entities.RuleOperatorReplace, Value: 5}, output.Item.Rules[0])
	s.Equal(output.Item.Rules, s.stored("light-ball").Rules)

	_, err = s.service.UpdateRule(s.ctx, &item.UpdateRuleInput{User: s.ash, ItemID: "light-ball", Index: 3})
	s.Require().Error(err)
	s.Equal(item.MsgNoRuleAtIndex, errors.UserMessage(err))
}

func (s *OrchestratorTestSuite) TestRemoveRule() {
	_, err := s.service.RemoveRule(s.ctx, &item.RemoveRuleInput{User: s.gary, ItemID: "light-ball", Index: 0})
	s.Require().Error(err)
	s.True(errors.IsPermissionDenied(err))

	output, err := s.service.RemoveRule(s.ctx, &item.RemoveRuleInput{User: s.gm, ItemID: "light-ball", Index: 0})
	s.Require().NoError(err)
	s.Empty(output.Item.Rules)
	s.Empty(s.stored("light-ball").Rules)
}

func (s *OrchestratorTestSuite) TestEditGoneItem() {
	_, err := s.service.RemoveRule(s.ctx, &item.RemoveRuleInput{User: s.gm, ItemID: "master-ball", Index: 0})
	s.Require().Error(err)
	s.Equal(item.MsgItemGone, errors.UserMessage(err))
}
