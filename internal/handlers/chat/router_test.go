package chat_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/handlers/chat"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/actor"
	actormock "github.com/KirkDiggler/pokerole-bot/internal/orchestrators/actor/mock"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat"
	combatmock "github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat/mock"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/roll"
	rollmock "github.com/KirkDiggler/pokerole-bot/internal/orchestrators/roll/mock"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
	chatactionsmock "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions/mock"
)

type RouterTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockCombat  *combatmock.MockService
	mockRoll    *rollmock.MockService
	mockActor   *actormock.MockService
	mockActions *chatactionsmock.MockRepository
	router      chat.Service

	ash      *entities.User
	squirtle *entities.Actor
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockCombat = combatmock.NewMockService(s.ctrl)
	s.mockRoll = rollmock.NewMockService(s.ctrl)
	s.mockActor = actormock.NewMockService(s.ctrl)
	s.mockActions = chatactionsmock.NewMockRepository(s.ctrl)

	var err error
	s.router, err = chat.NewRouter(&chat.Config{
		Combat:         s.mockCombat,
		Roll:           s.mockRoll,
		Actor:          s.mockActor,
		ChatActionRepo: s.mockActions,
	})
	s.Require().NoError(err)

	s.ash = &entities.User{ID: "ash", Name: "Ash"}
	s.squirtle = &entities.Actor{ID: "squirtle", Name: "Squirtle", HP: entities.Resource{Value: 4, Max: 4}}
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) expectAction(action *entities.ChatAction) {
	s.mockActions.EXPECT().
		Get(s.ctx, chatactions.GetInput{ID: action.ID}).
		Return(&chatactions.GetOutput{Action: action}, nil)
}

func (s *RouterTestSuite) TestNewRouterValidation() {
	_, err := chat.NewRouter(&chat.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RouterTestSuite) TestSuccessCheck() {
	s.mockRoll.EXPECT().
		SuccessCheck(s.ctx, &roll.SuccessCheckInput{
			ChannelID:  "route-1",
			User:       s.ash,
			Expression: "dexterity + alert",
		}).
		Return(&roll.SuccessCheckOutput{Record: &entities.RollRecord{
			ActorName: "Squirtle",
			Result: &entities.RollResult{
				Expression: "dexterity + alert",
				DiceRolled: 3,
				Successes:  2,
				RawFaces:   []int{6, 4, 2},
			},
		}}, nil)

	reply := s.router.SuccessCheck(s.ctx, &chat.SuccessCheckInput{
		ChannelID: "route-1",
		User:      s.ash,
		Text:      "/sc dexterity + alert",
	})

	s.False(reply.Private)
	s.Equal("**Squirtle** rolled `dexterity + alert` 3 dice [6, 4, 2]: **2** successes", reply.Content)
}

func (s *RouterTestSuite) TestSuccessCheckWithoutExpression() {
	// No roll is attempted
	reply := s.router.SuccessCheck(s.ctx, &chat.SuccessCheckInput{ChannelID: "route-1", User: s.ash, Text: "/sc"})

	s.True(reply.Private)
	s.Equal(chat.MsgCommandArgs, reply.Content)
}

func (s *RouterTestSuite) TestMessageStoresInlineRolls() {
	s.mockActions.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input chatactions.SaveInput) (*chatactions.SaveOutput, error) {
			s.Equal(entities.ChatActionSuccessCheck, input.Action.Kind)
			s.Equal("route-1", input.Action.ChannelID)
			s.Equal("ash", input.Action.AuthorID)
			s.Equal("dexterity + evasion", input.Action.Expression)
			s.Equal("Dodge", input.Action.Flavor)
			input.Action.ID = "act_1"
			return &chatactions.SaveOutput{Action: input.Action}, nil
		})

	reply := s.router.Message(s.ctx, &chat.MessageInput{
		ChannelID: "route-1",
		User:      s.ash,
		Content:   "Roll this [[/sc dexterity + evasion]]{Dodge}",
	})

	s.Require().NotNil(reply)
	s.Equal("Roll this **Dodge**", reply.Content)
	s.Equal([]chat.Button{{ActionID: "act_1", Label: "Dodge", Style: chat.ButtonPrimary}}, reply.Buttons)
}

func (s *RouterTestSuite) TestMessageWithoutInlineRolls() {
	s.Nil(s.router.Message(s.ctx, &chat.MessageInput{ChannelID: "route-1", User: s.ash, Content: "hello"}))
}

func (s *RouterTestSuite) TestInlineRollUsesWhoeverPressed() {
	gary := &entities.User{ID: "gary"}
	s.expectAction(&entities.ChatAction{
		ID:         "act_1",
		Kind:       entities.ChatActionSuccessCheck,
		ChannelID:  "route-1",
		AuthorID:   "ash",
		Expression: "dexterity + evasion",
		Flavor:     "Dodge",
	})
	s.mockRoll.EXPECT().
		SuccessCheck(s.ctx, &roll.SuccessCheckInput{
			ChannelID:  "route-1",
			User:       gary,
			Expression: "dexterity + evasion",
			Flavor:     "Dodge",
		}).
		Return(&roll.SuccessCheckOutput{Record: &entities.RollRecord{
			ActorName: "Charmander",
			Flavor:    "Dodge",
			Result:    &entities.RollResult{Expression: "dexterity + evasion", DiceRolled: 2, Successes: 1},
		}}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_1", User: gary})

	s.Equal("*Dodge*\n**Charmander** rolled `dexterity + evasion` 2 dice: **1** success", reply.Content)
}

func (s *RouterTestSuite) TestExpiredButton() {
	s.mockActions.EXPECT().
		Get(s.ctx, chatactions.GetInput{ID: "act_9"}).
		Return(nil, errors.Reference(chatactions.MsgExpired))

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_9", User: s.ash})

	s.True(reply.Private)
	s.Equal(chatactions.MsgExpired, reply.Content)
}

func (s *RouterTestSuite) TestClashOffersChoices() {
	s.expectAction(&entities.ChatAction{ID: "act_1", Kind: entities.ChatActionClash})
	s.mockCombat.EXPECT().
		Clash(s.ctx, &combat.ClashInput{ActionID: "act_1", User: s.ash}).
		Return(&combat.ClashOutput{Proposed: &combat.ProposeClashOutput{
			Attempt:  &contest.Attempt{ID: "att_1", ExpectedSuccesses: 2},
			Defender: s.squirtle,
			ClashMoves: []*entities.Item{
				{ID: "tackle", Name: "Tackle"},
				{ID: "water-gun", Name: "Water Gun"},
			},
			Choices: []*entities.ChatAction{
				{ID: "act_2", Kind: entities.ChatActionClashChoice, ClashMoveID: "tackle"},
				{ID: "act_3", Kind: entities.ChatActionClashChoice, ClashMoveID: "water-gun"},
				{ID: "act_4", Kind: entities.ChatActionClashCancel},
			},
		}}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_1", User: s.ash})

	s.True(reply.Private)
	s.Equal("**Squirtle** gets ready to clash. Pick a move to match 2 successes.", reply.Content)
	s.Equal([]chat.Button{
		{ActionID: "act_2", Label: "Tackle", Style: chat.ButtonPrimary},
		{ActionID: "act_3", Label: "Water Gun", Style: chat.ButtonPrimary},
		{ActionID: "act_4", Label: "Cancel", Style: chat.ButtonDanger},
	}, reply.Buttons)
}

func (s *RouterTestSuite) TestClashWithOnlyOneMoveSettlesAtOnce() {
	s.expectAction(&entities.ChatAction{ID: "act_1", Kind: entities.ChatActionClash})
	s.mockCombat.EXPECT().
		Clash(s.ctx, &combat.ClashInput{ActionID: "act_1", User: s.ash}).
		Return(&combat.ClashOutput{
			Attempt: &contest.Attempt{
				State:             contest.StateResolved,
				Outcome:           contest.OutcomeNotFullSuccess,
				ExpectedSuccesses: 3,
				Result:            &entities.RollResult{Expression: "special + clash", DiceRolled: 4, Successes: 1},
			},
			Defender: s.squirtle,
			Consumed: true,
		}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_1", User: s.ash})

	s.False(reply.Private)
	s.Contains(reply.Content, "Not enough to stop the attack.")
	s.NotContains(reply.Content, "Pending damage")
	s.Empty(reply.Buttons)
}

func (s *RouterTestSuite) TestClashChoice() {
	s.expectAction(&entities.ChatAction{ID: "act_2", Kind: entities.ChatActionClashChoice})
	s.mockCombat.EXPECT().
		ResolveClash(s.ctx, &combat.ResolveClashInput{ActionID: "act_2", User: s.ash}).
		Return(&combat.ResolveClashOutput{
			Attempt: &contest.Attempt{
				State:             contest.StateResolved,
				Outcome:           contest.OutcomeFullSuccess,
				ExpectedSuccesses: 2,
				Result:            &entities.RollResult{Expression: "special + clash", DiceRolled: 4, Successes: 2},
			},
			Defender:   s.squirtle,
			Consumed:   true,
			Mitigation: &combat.Mitigation{ActionID: "act_9", Before: 3, After: 0},
		}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_2", User: s.ash})

	s.False(reply.Private)
	s.Contains(reply.Content, "Full success!")
	s.Contains(reply.Content, "Pending damage to Squirtle: 3 -> 0")
}

func (s *RouterTestSuite) TestClashCancel() {
	s.expectAction(&entities.ChatAction{ID: "act_3", Kind: entities.ChatActionClashCancel})
	s.mockCombat.EXPECT().
		AbortClash(s.ctx, &combat.AbortClashInput{ActionID: "act_3", User: s.ash}).
		Return(&combat.AbortClashOutput{Attempt: &contest.Attempt{State: contest.StateAborted}}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_3", User: s.ash})

	s.Equal(combat.MsgClashCancelled, reply.Content)
}

func (s *RouterTestSuite) TestRuleErrorsBecomeNotifications() {
	s.expectAction(&entities.ChatAction{ID: "act_1", Kind: entities.ChatActionEvade})
	s.mockCombat.EXPECT().
		Evade(s.ctx, gomock.Any()).
		Return(nil, errors.Wrap(errors.State("You have no actions left this round."), "evade failed"))

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_1", User: s.ash})

	s.True(reply.Private)
	s.Equal("You have no actions left this round.", reply.Content)
}

func (s *RouterTestSuite) TestInternalErrorsStayGeneric() {
	s.expectAction(&entities.ChatAction{ID: "act_1", Kind: entities.ChatActionRecoil})
	s.mockCombat.EXPECT().
		Recoil(s.ctx, gomock.Any()).
		Return(nil, stderrors.New("redis: connection refused"))

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_1", User: s.ash})

	s.True(reply.Private)
	s.NotContains(reply.Content, "redis")
}

func (s *RouterTestSuite) TestApplyDamageReportsEachTarget() {
	pikachu := &entities.Actor{ID: "pikachu", Name: "Pikachu"}
	s.expectAction(&entities.ChatAction{ID: "act_4", Kind: entities.ChatActionApplyDamage})
	s.mockCombat.EXPECT().
		ApplyDamage(s.ctx, &combat.ApplyDamageInput{ActionID: "act_4", ChannelID: "route-1", User: s.ash}).
		Return(&combat.ApplyDamageOutput{
			Record: &damage.AppliedRecord{Results: []*damage.TargetResult{
				{TargetID: "squirtle", Applied: true, HPBefore: 4, HPAfter: 2, Actor: s.squirtle},
				{TargetID: "pikachu", Err: errors.Permission(damage.MsgNotYourTarget), Actor: pikachu},
			}},
			Actions: []*entities.ChatAction{
				{ID: "act_5", Kind: entities.ChatActionPainPenalty, PainPenalty: 1},
				{ID: "act_6", Kind: entities.ChatActionIgnorePainPenalty},
			},
		}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_4", ChannelID: "route-1", User: s.ash})

	s.Equal("Squirtle: HP 4 -> 2\nPikachu: not applied\n"+damage.MsgNotYourTarget, reply.Content)
	s.Equal([]chat.Button{
		{ActionID: "act_5", Label: "Pain penalty -1", Style: chat.ButtonSecondary},
		{ActionID: "act_6", Label: "Ignore pain (1 Will)", Style: chat.ButtonSuccess},
	}, reply.Buttons)
}

func (s *RouterTestSuite) TestPainPenaltyButtons() {
	s.expectAction(&entities.ChatAction{ID: "act_5", Kind: entities.ChatActionPainPenalty})
	s.mockCombat.EXPECT().
		ApplyPainPenalty(s.ctx, &combat.ApplyPainPenaltyInput{ActionID: "act_5", User: s.ash}).
		Return(&combat.ApplyPainPenaltyOutput{Actor: s.squirtle, Message: combat.MsgPainApplied}, nil)

	reply := s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_5", User: s.ash})
	s.Equal("**Squirtle**: "+combat.MsgPainApplied, reply.Content)

	s.expectAction(&entities.ChatAction{ID: "act_6", Kind: entities.ChatActionIgnorePainPenalty})
	s.mockCombat.EXPECT().
		IgnorePainPenalty(s.ctx, &combat.IgnorePainPenaltyInput{ActionID: "act_6", User: s.ash}).
		Return(nil, errors.State(combat.MsgNoWillLeft))

	reply = s.router.Activate(s.ctx, &chat.ActivateInput{ActionID: "act_6", User: s.ash})
	s.True(reply.Private)
	s.Equal(combat.MsgNoWillLeft, reply.Content)
}

func (s *RouterTestSuite) TestUseMove() {
	s.mockCombat.EXPECT().
		UseMove(s.ctx, &combat.UseMoveInput{
			ChannelID: "route-1",
			User:      s.ash,
			MoveID:    "water-gun",
			TargetIDs: []string{"charmander"},
		}).
		Return(&combat.UseMoveOutput{
			Actor:    s.squirtle,
			Move:     &entities.Item{ID: "water-gun", Name: "Water Gun"},
			Accuracy: &entities.RollResult{Expression: "dexterity + channel", DiceRolled: 2, Successes: 1},
			Hit:      true,
			Damage: []*damage.MoveDamageResult{{
				Roll:   &entities.RollResult{Expression: "damage", DiceRolled: 3, Successes: 2},
				Damage: 2,
				Update: entities.DamageUpdate{TargetID: "charmander", Delta: -2},
			}},
			Actions: []*entities.ChatAction{
				{ID: "act_1", Kind: entities.ChatActionClash},
				{ID: "act_2", Kind: entities.ChatActionEvade},
				{ID: "act_3", Kind: entities.ChatActionApplyDamage},
			},
		}, nil)

	reply := s.router.UseMove(s.ctx, &chat.UseMoveInput{
		ChannelID: "route-1",
		User:      s.ash,
		MoveID:    "water-gun",
		TargetIDs: []string{"charmander"},
	})

	s.Contains(reply.Content, "**Squirtle** used **Water Gun**")
	s.Contains(reply.Content, "Damage to charmander")
	s.Len(reply.Buttons, 3)
	s.Equal("Clash", reply.Buttons[0].Label)
}

func (s *RouterTestSuite) TestRound() {
	s.mockCombat.EXPECT().
		StartCombat(s.ctx, &combat.StartCombatInput{ChannelID: "route-1", User: s.ash, ActorIDs: []string{"squirtle"}}).
		Return(&combat.StartCombatOutput{
			Combat: &entities.Combat{Round: 1, Order: []entities.InitiativeEntry{{ActorID: "squirtle", Total: 7}}},
			Actors: []*entities.Actor{s.squirtle},
		}, nil)

	reply := s.router.Round(s.ctx, &chat.RoundInput{
		ChannelID: "route-1",
		User:      s.ash,
		Step:      chat.RoundStart,
		ActorIDs:  []string{"squirtle"},
	})
	s.Equal("**Combat started** (round 1)\n1. Squirtle (7)", reply.Content)

	s.mockCombat.EXPECT().
		EndCombat(s.ctx, &combat.EndCombatInput{ChannelID: "route-1", User: s.ash}).
		Return(&combat.EndCombatOutput{Combat: &entities.Combat{Round: 3}, AbortedAttempts: 1}, nil)

	reply = s.router.Round(s.ctx, &chat.RoundInput{ChannelID: "route-1", User: s.ash, Step: chat.RoundEnd})
	s.Equal("**Combat ended** after 3 rounds. 1 open clash was cancelled.", reply.Content)

	reply = s.router.Round(s.ctx, &chat.RoundInput{ChannelID: "route-1", User: s.ash, Step: "rewind"})
	s.True(reply.Private)
}

func (s *RouterTestSuite) TestAssign() {
	s.mockActor.EXPECT().
		AssignActor(s.ctx, &actor.AssignActorInput{User: s.ash, ActorID: "squirtle"}).
		Return(&actor.AssignActorOutput{Actor: s.squirtle}, nil)

	reply := s.router.Assign(s.ctx, &chat.AssignInput{User: s.ash, ActorID: "squirtle"})

	s.True(reply.Private)
	s.Equal("You are now playing **Squirtle**.", reply.Content)
}

func (s *RouterTestSuite) TestRoundStatus() {
	s.mockCombat.EXPECT().
		GetCombat(s.ctx, &combat.GetCombatInput{ChannelID: "route-1"}).
		Return(&combat.GetCombatOutput{
			Combat: &entities.Combat{Round: 2, Order: []entities.InitiativeEntry{
				{ActorID: "squirtle", Total: 7},
				{ActorID: "charmander", Total: 5},
			}},
			Actors: []*entities.Actor{s.squirtle},
		}, nil)

	reply := s.router.Round(s.ctx, &chat.RoundInput{ChannelID: "route-1", User: s.ash, Step: chat.RoundStatus})
	s.True(reply.Private)
	s.Equal("**Combat** (round 2)\n1. Squirtle (7)\n2. charmander (5)", reply.Content)

	s.mockCombat.EXPECT().
		GetCombat(s.ctx, &combat.GetCombatInput{ChannelID: "quiet"}).
		Return(nil, errors.State(combat.MsgNoCombat))

	reply = s.router.Round(s.ctx, &chat.RoundInput{ChannelID: "quiet", User: s.ash, Step: chat.RoundStatus})
	s.True(reply.Private)
	s.Equal(combat.MsgNoCombat, reply.Content)
}

func (s *RouterTestSuite) TestLog() {
	s.mockRoll.EXPECT().
		GetRollLog(s.ctx, &roll.GetRollLogInput{ChannelID: "route-1", Limit: chat.DefaultLogLimit}).
		Return(&roll.GetRollLogOutput{Records: []*entities.RollRecord{
			{ID: "r2", ActorName: "Squirtle", Result: &entities.RollResult{Expression: "2", DiceRolled: 2, Successes: 1}},
			{ID: "r1", ActorName: "Squirtle", Flavor: "dodge", Result: &entities.RollResult{Expression: "3", DiceRolled: 3}},
		}}, nil)

	reply := s.router.Log(s.ctx, &chat.LogInput{ChannelID: "route-1", User: s.ash})
	s.True(reply.Private)
	s.Equal("**Recent rolls**\n"+
		"**Squirtle** rolled `2` 2 dice: **1** success\n"+
		"*dodge*\n**Squirtle** rolled `3` 3 dice: **0** successes", reply.Content)

	s.mockRoll.EXPECT().
		GetRollLog(s.ctx, &roll.GetRollLogInput{ChannelID: "empty", Limit: 3}).
		Return(&roll.GetRollLogOutput{}, nil)

	reply = s.router.Log(s.ctx, &chat.LogInput{ChannelID: "empty", User: s.ash, Limit: 3})
	s.Equal("No rolls yet.", reply.Content)
}

func (s *RouterTestSuite) TestLogClear() {
	gm := &entities.User{ID: "oak", IsGM: true}
	s.mockRoll.EXPECT().
		ClearRollLog(s.ctx, &roll.ClearRollLogInput{ChannelID: "route-1", User: gm}).
		Return(&roll.ClearRollLogOutput{RecordsDeleted: 4}, nil)

	reply := s.router.Log(s.ctx, &chat.LogInput{ChannelID: "route-1", User: gm, Clear: true})
	s.False(reply.Private)
	s.Equal("Cleared 4 rolls.", reply.Content)

	s.mockRoll.EXPECT().
		ClearRollLog(s.ctx, &roll.ClearRollLogInput{ChannelID: "route-1", User: s.ash}).
		Return(nil, errors.Permission(roll.MsgClearGMOnly))

	reply = s.router.Log(s.ctx, &chat.LogInput{ChannelID: "route-1", User: s.ash, Clear: true})
	s.True(reply.Private)
	s.Equal(roll.MsgClearGMOnly, reply.Content)
}
