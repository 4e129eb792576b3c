package round_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokerole-bot/internal/engine/round"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

type GateTestSuite struct {
	suite.Suite
	gate  *round.Gate
	state entities.ActorRoundState
}

func TestGateSuite(t *testing.T) {
	suite.Run(t, new(GateTestSuite))
}

func (s *GateTestSuite) SetupTest() {
	s.gate = round.NewGate(round.GateConfig{Enforced: true})
	s.state = entities.NewRoundState(s.gate.Budget())
}

func (s *GateTestSuite) TestDefaults() {
	s.True(s.gate.Enforced())
	s.Equal(entities.DefaultActionBudget, s.gate.Budget())
	s.True(s.gate.HasAvailableActions(s.state))
}

func (s *GateTestSuite) TestConsumeClashTwice() {
	s.Require().NoError(s.gate.Consume(&s.state, round.PermissionClash))
	s.False(s.state.CanClash)
	s.True(s.state.CanEvade)
	s.Equal(entities.DefaultActionBudget-1, s.state.ActionsRemaining)

	before := s.state
	err := s.gate.Consume(&s.state, round.PermissionClash)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(round.MsgClashSpent, errors.GetMessage(err))
	s.Equal(before, s.state)
}

func (s *GateTestSuite) TestClashAndEvadeAreIndependent() {
	s.Require().NoError(s.gate.Consume(&s.state, round.PermissionEvade))
	s.Require().NoError(s.gate.Consume(&s.state, round.PermissionClash))

	err := s.gate.Consume(&s.state, round.PermissionEvade)
	s.Equal(round.MsgEvadeSpent, errors.GetMessage(err))
}

func (s *GateTestSuite) TestNoActionsLeft() {
	s.state.ActionsRemaining = 0
	s.False(s.gate.HasAvailableActions(s.state))

	err := s.gate.Consume(&s.state, round.PermissionEvade)
	s.Equal(round.MsgNoActionsLeft, errors.GetMessage(err))
	s.True(s.state.CanEvade)
}

func (s *GateTestSuite) TestResetRestoresEverything() {
	s.Require().NoError(s.gate.Consume(&s.state, round.PermissionClash))
	s.Require().NoError(s.gate.Consume(&s.state, round.PermissionEvade))

	s.gate.ResetForRound(&s.state)
	s.True(s.gate.HasAvailableActions(s.state))
	s.NoError(s.gate.CanUse(s.state, round.PermissionClash))
	s.NoError(s.gate.CanUse(s.state, round.PermissionEvade))
	s.Equal(entities.DefaultActionBudget, s.state.ActionsRemaining)

	s.NotPanics(func() { s.gate.ResetForRound(nil) })
}

func (s *GateTestSuite) TestAdvisoryMode() {
	gate := round.NewGate(round.GateConfig{Enforced: false, ActionBudget: 3})
	state := entities.NewRoundState(gate.Budget())

	err := gate.Consume(&state, round.PermissionClash)
	s.True(errors.IsFailedPrecondition(err))
	s.True(state.CanClash)
	s.Equal(3, state.ActionsRemaining)
}

func (s *GateTestSuite) TestInvalidInput() {
	s.True(errors.IsInvalidArgument(s.gate.Consume(nil, round.PermissionClash)))
	s.True(errors.IsInvalidArgument(s.gate.CanUse(s.state, round.Permission("dodge"))))
}
