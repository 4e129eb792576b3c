package combat_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/contest"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/damage"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/round"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/combat"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/combats"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/items"
	"github.com/KirkDiggler/pokerole-bot/internal/testutils"
)

// FlowTestSuite drives the orchestrator through the rules adapter with
// fixed dice and miniredis-backed storage
type FlowTestSuite struct {
	suite.Suite
	ctx     context.Context
	roller  *testutils.FixedRoller
	actors  actors.Repository
	items   items.Repository
	actions chatactions.Repository
	service combat.Service

	ash  *entities.User
	gary *entities.User
	gm   *entities.User
}

func TestFlowSuite(t *testing.T) {
	suite.Run(t, new(FlowTestSuite))
}

func (s *FlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	_, client := testutils.CreateTestRedisServer(s.T())

	var err error
	s.actors, err = actors.NewRedis(&actors.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.items, err = items.NewRedis(&items.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.actions, err = chatactions.NewRedisRepository(&chatactions.Config{
		Client:      client,
		IDGenerator: idgen.NewSequential("action"),
	})
	s.Require().NoError(err)

	s.roller = testutils.NewFixedRoller()
	s.service = s.newService(s.items, damage.MitigationAllOrNothing)

	s.ash = &entities.User{ID: "ash", Name: "Ash"}
	s.gary = &entities.User{ID: "gary", Name: "Gary"}
	s.gm = &entities.User{ID: "oak", Name: "Oak", IsGM: true}

	s.createActor(&entities.Actor{
		ID:       "charmander",
		Name:     "Charmander",
		Kind:     entities.ActorKindPokemon,
		OwnerIDs: []string{"gary"},
		Attributes: map[string]int{
			entities.AttributeStrength:  2,
			entities.AttributeDexterity: 2,
			entities.AttributeVitality:  2,
			entities.AttributeSpecial:   3,
			entities.AttributeInsight:   1,
		},
		Skills: map[string]int{entities.SkillChannel: 1, entities.SkillClash: 1},
		HP:     entities.Resource{Value: 10, Max: 10},
		Will:   entities.Resource{Value: 2, Max: 2},
		Round:  entities.NewRoundState(entities.DefaultActionBudget),
	}, "gary")
	s.createActor(&entities.Actor{
		ID:       "squirtle",
		Name:     "Squirtle",
		Kind:     entities.ActorKindPokemon,
		OwnerIDs: []string{"ash"},
		Attributes: map[string]int{
			entities.AttributeStrength:  2,
			entities.AttributeDexterity: 2,
			entities.AttributeVitality:  2,
			entities.AttributeSpecial:   2,
			entities.AttributeInsight:   1,
		},
		Skills: map[string]int{entities.SkillClash: 2, entities.SkillEvasion: 1},
		HP:     entities.Resource{Value: 10, Max: 10},
		Will:   entities.Resource{Value: 1, Max: 2},
		Round:  entities.NewRoundState(entities.DefaultActionBudget),
	}, "ash")

	s.createItem(&entities.Item{
		ID: "ember", ActorID: "charmander", Name: "Ember", Kind: entities.ItemKindMove,
		Category: entities.MoveCategorySpecial, Accuracy: "dexterity + channel",
		DamageAttribute: entities.AttributeSpecial, Power: 2,
	})
	s.createItem(&entities.Item{
		ID: "water-gun", ActorID: "squirtle", Name: "Water Gun", Kind: entities.ItemKindMove,
		Category: entities.MoveCategorySpecial, DamageAttribute: entities.AttributeSpecial, Power: 2,
	})
	s.createItem(&entities.Item{
		ID: "tackle", ActorID: "squirtle", Name: "Tackle", Kind: entities.ItemKindMove,
		Category: entities.MoveCategoryPhysical, DamageAttribute: entities.AttributeStrength, Power: 2,
	})
	s.createItem(&entities.Item{
		ID: "withdraw", ActorID: "squirtle", Name: "Withdraw", Kind: entities.ItemKindMove,
		Category: entities.MoveCategorySupport,
	})
}

// newService builds an orchestrator over the suite's storage and dice
func (s *FlowTestSuite) newService(itemRepo items.Repository, policy damage.MitigationPolicy) combat.Service {
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: s.roller,
		Rules: rpgtoolkit.Rules{
			SuccessThreshold:         entities.DefaultSuccessThreshold,
			SpecialDefenseStat:       entities.AttributeVitality,
			CombatResourceAutomation: true,
			ActionBudget:             entities.DefaultActionBudget,
			Mitigation:               policy,
		},
	})
	s.Require().NoError(err)

	service, err := combat.NewOrchestrator(&combat.Config{
		Engine:         adapter,
		ActorRepo:      s.actors,
		ItemRepo:       itemRepo,
		CombatRepo:     combats.NewInMemory(),
		ChatActionRepo: s.actions,
		IDGenerator:    idgen.NewSequential("combat"),
	})
	s.Require().NoError(err)
	return service
}

// failingItems refuses item writes while fail is set
type failingItems struct {
	items.Repository
	fail bool
}

func (f *failingItems) Update(ctx context.Context, input items.UpdateInput) (*items.UpdateOutput, error) {
	if f.fail {
		return nil, stderrors.New("redis down")
	}
	return f.Repository.Update(ctx, input)
}

func (s *FlowTestSuite) createActor(actor *entities.Actor, userID string) {
	_, err := s.actors.Create(s.ctx, actors.CreateInput{Actor: actor})
	s.Require().NoError(err)
	_, err = s.actors.Assign(s.ctx, actors.AssignInput{UserID: userID, ActorID: actor.ID})
	s.Require().NoError(err)
}

func (s *FlowTestSuite) createItem(item *entities.Item) {
	_, err := s.items.Create(s.ctx, items.CreateInput{Item: item})
	s.Require().NoError(err)
}

func (s *FlowTestSuite) saveAction(action *entities.ChatAction) string {
	output, err := s.actions.Save(s.ctx, chatactions.SaveInput{Action: action})
	s.Require().NoError(err)
	return output.Action.ID
}

func (s *FlowTestSuite) clashButton(expected int) string {
	return s.saveAction(&entities.ChatAction{
		Kind:              entities.ChatActionClash,
		ChannelID:         "battle",
		AuthorID:          "gary",
		AttackerID:        "charmander",
		MoveID:            "ember",
		ExpectedSuccesses: expected,
	})
}

func (s *FlowTestSuite) actor(id string) *entities.Actor {
	output, err := s.actors.Get(s.ctx, actors.GetInput{ID: id})
	s.Require().NoError(err)
	return output.Actor
}

func (s *FlowTestSuite) item(id string) *entities.Item {
	output, err := s.items.Get(s.ctx, items.GetInput{ID: id})
	s.Require().NoError(err)
	return output.Item
}

func (s *FlowTestSuite) TestUseMoveOffersReactions() {
	// accuracy: dexterity 2 + channel 1
	s.roller.Push(4, 5, 1)
	// damage: power 2 + special 3 - squirtle's special defense 2
	s.roller.Push(6, 4, 2)

	output, err := s.service.UseMove(s.ctx, &combat.UseMoveInput{
		ChannelID: "battle",
		User:      s.gary,
		MoveID:    "ember",
		TargetIDs: []string{"squirtle"},
	})
	s.Require().NoError(err)

	s.True(output.Hit)
	s.Equal(2, output.Accuracy.Successes)
	s.Require().Len(output.Damage, 1)
	s.Equal(2, output.Damage[0].Damage)

	s.Require().Len(output.Actions, 3)
	s.Equal(entities.ChatActionClash, output.Actions[0].Kind)
	s.Equal(2, output.Actions[0].ExpectedSuccesses)
	s.Equal(entities.ChatActionEvade, output.Actions[1].Kind)
	s.Equal(entities.ChatActionApplyDamage, output.Actions[2].Kind)
	s.Equal([]entities.DamageUpdate{{TargetID: "squirtle", Delta: 2}}, output.Actions[2].Updates)

	// Damage is only offered, never applied by the roll itself
	s.Equal(10, s.actor("squirtle").HP.Value)

	// The defender presses the clash button from the move's message
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: output.Actions[0].ID,
		User:     s.ash,
	})
	s.Require().NoError(err)
	s.Equal(2, proposed.Attempt.ExpectedSuccesses)
}

func (s *FlowTestSuite) TestUseMoveMissOffersNothing() {
	s.roller.Push(1, 2, 3)

	output, err := s.service.UseMove(s.ctx, &combat.UseMoveInput{
		ChannelID: "battle",
		User:      s.gary,
		MoveID:    "ember",
		TargetIDs: []string{"squirtle"},
	})
	s.Require().NoError(err)
	s.False(output.Hit)
	s.Empty(output.Actions)
	s.Empty(output.Damage)
}

func (s *FlowTestSuite) TestUseMoveRejectsSomeoneElsesMove() {
	_, err := s.service.UseMove(s.ctx, &combat.UseMoveInput{
		ChannelID: "battle",
		User:      s.ash,
		MoveID:    "ember",
	})
	s.Require().Error(err)
	s.Equal(combat.MsgCantUseItem, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestClashFullSuccessSpendsClashAndMove() {
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(2),
		User:     s.ash,
	})
	s.Require().NoError(err)

	s.Equal(contest.StateAwaitingDefenderChoice, proposed.Attempt.State)
	s.Equal("squirtle", proposed.Defender.ID)
	s.Require().Len(proposed.ClashMoves, 2)
	s.Equal("tackle", proposed.ClashMoves[0].ID)
	s.Equal("water-gun", proposed.ClashMoves[1].ID)
	s.Require().Len(proposed.Choices, 3)
	s.Equal(entities.ChatActionClashCancel, proposed.Choices[2].Kind)

	// special 2 + clash 2
	s.roller.Push(5, 5, 1, 2)

	resolved, err := s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		ActionID: proposed.Choices[1].ID,
		User:     s.ash,
	})
	s.Require().NoError(err)
	s.True(resolved.Attempt.Succeeded())
	s.True(resolved.Consumed)

	stored := s.actor("squirtle")
	s.False(stored.Round.CanClash)
	s.True(stored.Round.CanEvade)
	s.Equal(entities.DefaultActionBudget-1, stored.Round.ActionsRemaining)
	s.True(s.item("water-gun").UsedInRound)
	s.False(s.item("tackle").UsedInRound)

	// The other choice of the settled prompt is dead
	_, err = s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		ActionID: proposed.Choices[0].ID,
		User:     s.ash,
	})
	s.Require().Error(err)
	s.Equal(contest.MsgAttemptFinished, errors.UserMessage(err))

	// and a second clash this round is refused
	_, err = s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.ash,
	})
	s.Require().Error(err)
	s.Equal(round.MsgClashSpent, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestFailedClashIsStillSpent() {
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(3),
		User:     s.ash,
	})
	s.Require().NoError(err)

	// strength 2 + clash 2, one success
	s.roller.Push(1, 2, 3, 4)

	resolved, err := s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "tackle",
		User:        s.ash,
	})
	s.Require().NoError(err)
	s.False(resolved.Attempt.Succeeded())
	s.Equal(contest.OutcomeNotFullSuccess, resolved.Attempt.Outcome)
	s.True(resolved.Consumed)
	s.False(s.actor("squirtle").Round.CanClash)
	s.True(s.item("tackle").UsedInRound)
}

func (s *FlowTestSuite) TestFailedMoveWriteLeavesClashUnspent() {
	failing := &failingItems{Repository: s.items, fail: true}
	service := s.newService(failing, damage.MitigationAllOrNothing)

	proposed, err := service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(2),
		User:     s.ash,
	})
	s.Require().NoError(err)

	resolve := &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "water-gun",
		User:        s.ash,
	}

	s.roller.Push(5, 5, 1, 2)
	_, err = service.ResolveClash(s.ctx, resolve)
	s.Require().Error(err)

	stored := s.actor("squirtle")
	s.True(stored.Round.CanClash)
	s.Equal(entities.DefaultActionBudget, stored.Round.ActionsRemaining)
	s.False(s.item("water-gun").UsedInRound)

	failing.fail = false
	s.roller.Push(5, 5, 1, 2)
	resolved, err := service.ResolveClash(s.ctx, resolve)
	s.Require().NoError(err)
	s.True(resolved.Consumed)
	s.False(s.actor("squirtle").Round.CanClash)
	s.True(s.item("water-gun").UsedInRound)
}

// emberAtSquirtle uses ember for 2 damage against squirtle and returns the
// clash button and the pending damage batch
func (s *FlowTestSuite) emberAtSquirtle(service combat.Service) (clash, apply *entities.ChatAction) {
	s.roller.Push(4, 5, 1)
	s.roller.Push(6, 4, 2)

	output, err := service.UseMove(s.ctx, &combat.UseMoveInput{
		ChannelID: "battle",
		User:      s.gary,
		MoveID:    "ember",
		TargetIDs: []string{"squirtle"},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Actions, 3)
	s.Equal(output.Actions[2].ID, output.Actions[0].DamageActionID)
	return output.Actions[0], output.Actions[2]
}

func (s *FlowTestSuite) TestFullClashCancelsPendingDamage() {
	clash, apply := s.emberAtSquirtle(s.service)

	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{ActionID: clash.ID, User: s.ash})
	s.Require().NoError(err)

	// special 2 + clash 2, both succeed
	s.roller.Push(5, 5, 1, 2)
	resolved, err := s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "water-gun",
		User:        s.ash,
	})
	s.Require().NoError(err)
	s.Equal(&combat.Mitigation{ActionID: apply.ID, Before: 2, After: 0}, resolved.Mitigation)

	stored, err := s.actions.Get(s.ctx, chatactions.GetInput{ID: apply.ID})
	s.Require().NoError(err)
	s.Equal([]entities.DamageUpdate{{TargetID: "squirtle", Delta: 0, Clashed: true}}, stored.Action.Updates)

	_, err = s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{ActionID: apply.ID, User: s.gm})
	s.Require().NoError(err)
	s.Equal(10, s.actor("squirtle").HP.Value)
}

func (s *FlowTestSuite) TestPartialClashLeavesDamageWhole() {
	clash, apply := s.emberAtSquirtle(s.service)

	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{ActionID: clash.ID, User: s.ash})
	s.Require().NoError(err)

	// strength 2 + clash 2, one success
	s.roller.Push(1, 2, 3, 4)
	resolved, err := s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "tackle",
		User:        s.ash,
	})
	s.Require().NoError(err)
	s.Equal(&combat.Mitigation{ActionID: apply.ID, Before: 2, After: 2}, resolved.Mitigation)

	_, err = s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{ActionID: apply.ID, User: s.gm})
	s.Require().NoError(err)
	s.Equal(8, s.actor("squirtle").HP.Value)
}

func (s *FlowTestSuite) TestPartialClashReducesDamageProportionally() {
	service := s.newService(s.items, damage.MitigationProportional)
	clash, apply := s.emberAtSquirtle(service)

	proposed, err := service.ProposeClash(s.ctx, &combat.ProposeClashInput{ActionID: clash.ID, User: s.ash})
	s.Require().NoError(err)

	s.roller.Push(1, 2, 3, 4)
	resolved, err := service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "tackle",
		User:        s.ash,
	})
	s.Require().NoError(err)
	s.Equal(&combat.Mitigation{ActionID: apply.ID, Before: 2, After: 1}, resolved.Mitigation)

	_, err = service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{ActionID: apply.ID, User: s.gm})
	s.Require().NoError(err)
	s.Equal(9, s.actor("squirtle").HP.Value)
}

func (s *FlowTestSuite) TestClashWithoutPendingDamageReportsNoMitigation() {
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(2),
		User:     s.ash,
	})
	s.Require().NoError(err)

	s.roller.Push(5, 5, 1, 2)
	resolved, err := s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "water-gun",
		User:        s.ash,
	})
	s.Require().NoError(err)
	s.Nil(resolved.Mitigation)
}

func (s *FlowTestSuite) TestClashChoiceByAnotherUserKeepsAttemptOpen() {
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.ash,
	})
	s.Require().NoError(err)

	_, err = s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		ActionID: proposed.Choices[0].ID,
		User:     s.gary,
	})
	s.Require().Error(err)
	s.Equal(combat.MsgNotYourClash, errors.UserMessage(err))
	s.Equal(0, s.roller.Calls())

	s.roller.Push(4, 1, 1, 1)
	resolved, err := s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		ActionID: proposed.Choices[0].ID,
		User:     s.ash,
	})
	s.Require().NoError(err)
	s.True(resolved.Attempt.Succeeded())
}

func (s *FlowTestSuite) TestClashWithSupportMoveIsRefusedAndNothingSpent() {
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.ash,
	})
	s.Require().NoError(err)

	_, err = s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		AttemptID:   proposed.Attempt.ID,
		ClashMoveID: "withdraw",
		User:        s.ash,
	})
	s.Require().Error(err)
	s.Equal(contest.MsgClashMoveNotDamage, errors.UserMessage(err))

	stored := s.actor("squirtle")
	s.True(stored.Round.CanClash)
	s.Equal(entities.DefaultActionBudget, stored.Round.ActionsRemaining)
	s.False(s.item("withdraw").UsedInRound)
}

func (s *FlowTestSuite) TestCancelClash() {
	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.ash,
	})
	s.Require().NoError(err)

	aborted, err := s.service.AbortClash(s.ctx, &combat.AbortClashInput{
		ActionID: proposed.Choices[len(proposed.Choices)-1].ID,
		User:     s.ash,
	})
	s.Require().NoError(err)
	s.Equal(contest.StateAborted, aborted.Attempt.State)
	s.Equal(combat.MsgClashCancelled, aborted.Attempt.AbortReason)

	_, err = s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{
		ActionID: proposed.Choices[0].ID,
		User:     s.ash,
	})
	s.Require().Error(err)
	s.Equal(contest.MsgAttemptFinished, errors.UserMessage(err))
	s.True(s.actor("squirtle").Round.CanClash)
}

func (s *FlowTestSuite) TestCannotClashOwnAttack() {
	_, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.gary,
	})
	s.Require().Error(err)
	s.Equal(contest.MsgOwnAttack, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestClashAgainstDeletedAttacker() {
	actionID := s.clashButton(1)
	_, err := s.actors.Delete(s.ctx, actors.DeleteInput{ID: "charmander"})
	s.Require().NoError(err)

	_, err = s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{ActionID: actionID, User: s.ash})
	s.Require().Error(err)
	s.Equal(contest.MsgAttackerGone, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestOneShotClash() {
	s.roller.Push(6, 6, 6, 6)

	output, err := s.service.Clash(s.ctx, &combat.ClashInput{
		ActionID:    s.clashButton(4),
		ClashMoveID: "water-gun",
		User:        s.ash,
	})
	s.Require().NoError(err)
	s.True(output.Attempt.Succeeded())
	s.True(output.Consumed)
}

func (s *FlowTestSuite) TestClashWithSeveralMovesAsksForOne() {
	output, err := s.service.Clash(s.ctx, &combat.ClashInput{ActionID: s.clashButton(2), User: s.ash})
	s.Require().NoError(err)
	s.Require().NotNil(output.Proposed)
	s.Nil(output.Attempt)
	s.Len(output.Proposed.ClashMoves, 2)
	s.True(s.actor("squirtle").Round.CanClash)
}

func (s *FlowTestSuite) TestClashWithOnlyMoveSettlesAtOnce() {
	_, err := s.items.Delete(s.ctx, items.DeleteInput{ID: "tackle"})
	s.Require().NoError(err)

	s.roller.Push(5, 5, 1, 2)
	output, err := s.service.Clash(s.ctx, &combat.ClashInput{ActionID: s.clashButton(2), User: s.ash})
	s.Require().NoError(err)
	s.Nil(output.Proposed)
	s.True(output.Attempt.Succeeded())
	s.Equal("water-gun", output.Attempt.ClashMoveID)
	s.True(output.Consumed)
	s.True(s.item("water-gun").UsedInRound)
}

func (s *FlowTestSuite) TestEvadeOnlySpentWhenItWorks() {
	evade := s.saveAction(&entities.ChatAction{
		Kind:       entities.ChatActionEvade,
		ChannelID:  "battle",
		AuthorID:   "gary",
		AttackerID: "charmander",
		MoveID:     "ember",
	})

	// dexterity 2 + evasion 1
	s.roller.Push(1, 2, 3)
	missed, err := s.service.Evade(s.ctx, &combat.EvadeInput{ActionID: evade, User: s.ash})
	s.Require().NoError(err)
	s.False(missed.Evaded)
	s.False(missed.Consumed)
	s.True(s.actor("squirtle").Round.CanEvade)

	s.roller.Push(6, 1, 1)
	evaded, err := s.service.Evade(s.ctx, &combat.EvadeInput{ActionID: evade, User: s.ash})
	s.Require().NoError(err)
	s.True(evaded.Evaded)
	s.True(evaded.Consumed)

	stored := s.actor("squirtle")
	s.False(stored.Round.CanEvade)
	s.Equal(entities.DefaultActionBudget-1, stored.Round.ActionsRemaining)

	_, err = s.service.Evade(s.ctx, &combat.EvadeInput{ActionID: evade, User: s.ash})
	s.Require().Error(err)
	s.Equal(round.MsgEvadeSpent, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestEvadeWithoutAssignedActor() {
	evade := s.saveAction(&entities.ChatAction{Kind: entities.ChatActionEvade, ChannelID: "battle"})

	_, err := s.service.Evade(s.ctx, &combat.EvadeInput{ActionID: evade, User: &entities.User{ID: "brock"}})
	s.Require().Error(err)
	s.Equal(combat.MsgNoActorSelected, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestWrongButtonKind() {
	evade := s.saveAction(&entities.ChatAction{Kind: entities.ChatActionEvade, ChannelID: "battle"})

	_, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{ActionID: evade, User: s.ash})
	s.Require().Error(err)
	s.Equal(combat.MsgWrongAction, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestExpiredButton() {
	_, err := s.service.Evade(s.ctx, &combat.EvadeInput{ActionID: "action_404", User: s.ash})
	s.Require().Error(err)
	s.Equal(chatactions.MsgExpired, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestApplyDamageThenPainPenalty() {
	apply := s.saveAction(&entities.ChatAction{
		Kind:      entities.ChatActionApplyDamage,
		ChannelID: "battle",
		AuthorID:  "gary",
		Updates: []entities.DamageUpdate{
			{TargetID: "squirtle", Delta: 5},
			{TargetID: "charmander", Delta: 1},
		},
	})

	// Ash may only change squirtle
	output, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{ActionID: apply, User: s.ash})
	s.Require().NoError(err)
	s.Require().Len(output.Record.Results, 2)
	s.True(output.Record.Results[0].Applied)
	s.False(output.Record.Results[1].Applied)
	s.Equal(damage.MsgNotYourTarget, errors.UserMessage(output.Record.Results[1].Err))

	s.Equal(5, s.actor("squirtle").HP.Value)
	s.Equal(10, s.actor("charmander").HP.Value)

	s.Require().Len(output.Actions, 2)
	penalty, ignore := output.Actions[0], output.Actions[1]
	s.Equal(entities.ChatActionPainPenalty, penalty.Kind)
	s.Equal(combat.PainPenaltyHalfHP, penalty.PainPenalty)
	s.Equal("battle", penalty.ChannelID)
	s.Equal(entities.ChatActionIgnorePainPenalty, ignore.Kind)

	_, err = s.service.ApplyPainPenalty(s.ctx, &combat.ApplyPainPenaltyInput{ActionID: penalty.ID, User: s.gary})
	s.Require().Error(err)
	s.Equal(combat.MsgCantModifyActor, errors.UserMessage(err))

	applied, err := s.service.ApplyPainPenalty(s.ctx, &combat.ApplyPainPenaltyInput{ActionID: penalty.ID, User: s.ash})
	s.Require().NoError(err)
	s.Equal(combat.MsgPainApplied, applied.Message)
	s.Equal(combat.PainPenaltyHalfHP, s.actor("squirtle").PainPenalty)

	ignored, err := s.service.IgnorePainPenalty(s.ctx, &combat.IgnorePainPenaltyInput{ActionID: ignore.ID, User: s.ash})
	s.Require().NoError(err)
	s.Equal(combat.MsgToughedThrough, ignored.Message)
	s.Equal(0, s.actor("squirtle").Will.Value)

	_, err = s.service.IgnorePainPenalty(s.ctx, &combat.IgnorePainPenaltyInput{ActionID: ignore.ID, User: s.ash})
	s.Require().Error(err)
	s.Equal(combat.MsgNoWillLeft, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestDamageToTheSameTargetStacks() {
	output, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		ChannelID: "battle",
		User:      s.gm,
		Updates: []entities.DamageUpdate{
			{TargetID: "squirtle", Delta: 3},
			{TargetID: "squirtle", Delta: 2},
		},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Record.Applied(), 2)
	s.Equal(7, output.Record.Results[0].HPAfter)
	s.Equal(7, output.Record.Results[1].HPBefore)
	s.Equal(5, output.Record.Results[1].HPAfter)

	s.Equal(5, s.actor("squirtle").HP.Value)

	// one offer for the final state
	s.Require().Len(output.Actions, 2)
	s.Equal(entities.ChatActionPainPenalty, output.Actions[0].Kind)
	s.Equal(entities.ChatActionIgnorePainPenalty, output.Actions[1].Kind)
}

func (s *FlowTestSuite) TestFaintingOffersNoPainPenalty() {
	output, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		ChannelID: "battle",
		Updates:   []entities.DamageUpdate{{TargetID: "squirtle", Delta: 12}},
		User:      s.gm,
	})
	s.Require().NoError(err)
	s.True(output.Record.Results[0].Fainted)
	s.Empty(output.Actions)

	stored := s.actor("squirtle")
	s.Equal(0, stored.HP.Value)
	s.True(stored.HasAilment(entities.AilmentFainted))
}

func (s *FlowTestSuite) TestPainPenaltyForGoneActor() {
	penalty := s.saveAction(&entities.ChatAction{
		Kind:        entities.ChatActionPainPenalty,
		ChannelID:   "battle",
		TargetID:    "missingno",
		PainPenalty: 1,
	})

	_, err := s.service.ApplyPainPenalty(s.ctx, &combat.ApplyPainPenaltyInput{ActionID: penalty, User: s.gm})
	s.Require().Error(err)
	s.Equal(combat.MsgActorGone, errors.UserMessage(err))
}

func (s *FlowTestSuite) TestRecoil() {
	recoil := s.saveAction(&entities.ChatAction{
		Kind:         entities.ChatActionRecoil,
		ChannelID:    "battle",
		AuthorID:     "gary",
		AttackerID:   "charmander",
		DamageAmount: 4,
	})

	_, err := s.service.Recoil(s.ctx, &combat.RecoilInput{ActionID: recoil, User: s.ash})
	s.Require().Error(err)
	s.Equal(combat.MsgCantUseItem, errors.UserMessage(err))

	// 4 damage dice less charmander's defense 2
	s.roller.Push(5, 6)
	output, err := s.service.Recoil(s.ctx, &combat.RecoilInput{ActionID: recoil, User: s.gary})
	s.Require().NoError(err)
	s.Equal(2, output.Roll.DiceRolled)
	s.Equal(8, output.Attacker.HP.Value)
	s.Equal(8, s.actor("charmander").HP.Value)
}

func (s *FlowTestSuite) TestRecoilForGoneAttacker() {
	recoil := s.saveAction(&entities.ChatAction{
		Kind:         entities.ChatActionRecoil,
		AuthorID:     "gary",
		AttackerID:   "missingno",
		DamageAmount: 2,
	})

	_, err := s.service.Recoil(s.ctx, &combat.RecoilInput{ActionID: recoil, User: s.gm})
	s.Require().Error(err)
	s.Equal("The attacking actor doesn't exist anymore", errors.UserMessage(err))
}

func (s *FlowTestSuite) TestRoundsResetReactions() {
	// initiative: charmander 3 + dexterity 2, squirtle 5 + dexterity 2
	s.roller.Push(3, 5)

	started, err := s.service.StartCombat(s.ctx, &combat.StartCombatInput{
		ChannelID: "battle",
		User:      s.gm,
		ActorIDs:  []string{"charmander", "squirtle"},
	})
	s.Require().NoError(err)
	s.Equal(1, started.Combat.Round)
	s.Equal([]string{"squirtle", "charmander"}, started.Combat.ActorIDs())

	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.ash,
	})
	s.Require().NoError(err)
	s.roller.Push(6, 6, 6, 6)
	_, err = s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{ActionID: proposed.Choices[1].ID, User: s.ash})
	s.Require().NoError(err)
	s.True(s.item("water-gun").UsedInRound)

	_, err = s.service.NextRound(s.ctx, &combat.NextRoundInput{ChannelID: "battle", User: s.ash})
	s.Require().Error(err)
	s.Equal(combat.MsgGMOnly, errors.UserMessage(err))

	next, err := s.service.NextRound(s.ctx, &combat.NextRoundInput{ChannelID: "battle", User: s.gm})
	s.Require().NoError(err)
	s.Equal(2, next.Combat.Round)

	stored := s.actor("squirtle")
	s.True(stored.Round.CanClash)
	s.Equal(entities.DefaultActionBudget, stored.Round.ActionsRemaining)
	s.False(s.item("water-gun").UsedInRound)

	current, err := s.service.GetCombat(s.ctx, &combat.GetCombatInput{ChannelID: "battle"})
	s.Require().NoError(err)
	s.Equal(2, current.Combat.Round)
	s.Len(current.Actors, 2)
}

func (s *FlowTestSuite) TestEndCombatAbortsOpenClashes() {
	s.roller.Push(3, 5)
	_, err := s.service.StartCombat(s.ctx, &combat.StartCombatInput{
		ChannelID: "battle",
		User:      s.gm,
		ActorIDs:  []string{"charmander", "squirtle"},
	})
	s.Require().NoError(err)

	proposed, err := s.service.ProposeClash(s.ctx, &combat.ProposeClashInput{
		ActionID: s.clashButton(1),
		User:     s.ash,
	})
	s.Require().NoError(err)

	ended, err := s.service.EndCombat(s.ctx, &combat.EndCombatInput{ChannelID: "battle", User: s.gm})
	s.Require().NoError(err)
	s.Equal(1, ended.AbortedAttempts)
	s.False(ended.Combat.Active)

	_, err = s.service.ResolveClash(s.ctx, &combat.ResolveClashInput{ActionID: proposed.Choices[0].ID, User: s.ash})
	s.Require().Error(err)
	s.Equal(contest.MsgAttemptFinished, errors.UserMessage(err))

	_, err = s.service.GetCombat(s.ctx, &combat.GetCombatInput{ChannelID: "battle"})
	s.Require().Error(err)
	s.Equal(combat.MsgNoCombat, errors.UserMessage(err))
}
