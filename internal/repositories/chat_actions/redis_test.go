package chatactions_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/clock"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	chatactions "github.com/KirkDiggler/pokerole-bot/internal/repositories/chat_actions"
	"github.com/KirkDiggler/pokerole-bot/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	mr   *miniredis.Miniredis
	repo chatactions.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, client := testutils.CreateTestRedisServer(s.T())
	s.mr = mr

	repo, err := chatactions.NewRedisRepository(&chatactions.Config{
		Client:      client,
		Clock:       clock.NewFixed(time.Unix(1700000000, 0)),
		IDGenerator: idgen.NewSequential("act"),
		TTL:         time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TestSaveAssignsIDAndTTL() {
	out, err := s.repo.Save(s.ctx, chatactions.SaveInput{Action: &entities.ChatAction{
		Kind:       entities.ChatActionApplyDamage,
		ChannelID:  "chan",
		AuthorID:   "ash",
		AttackerID: "pikachu",
		Updates:    []entities.DamageUpdate{{TargetID: "onix", Delta: 3}},
	}})
	s.Require().NoError(err)
	s.Equal("act_1", out.Action.ID)
	s.Equal(int64(1700000000), out.Action.CreatedAt)
	s.Equal(time.Minute, s.mr.TTL("chat_action:act_1"))

	got, err := s.repo.Get(s.ctx, chatactions.GetInput{ID: "act_1"})
	s.Require().NoError(err)
	s.Equal(entities.ChatActionApplyDamage, got.Action.Kind)
	s.Equal(3, got.Action.Updates[0].Delta)
}

func (s *RedisRepositoryTestSuite) TestExpiredActionIsReferenceError() {
	_, err := s.repo.Save(s.ctx, chatactions.SaveInput{Action: &entities.ChatAction{Kind: entities.ChatActionEvade}})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, chatactions.GetInput{ID: "act_1"})
	s.True(errors.IsNotFound(err))
	s.Equal(chatactions.MsgExpired, errors.UserMessage(err))
}

func (s *RedisRepositoryTestSuite) TestSaveRejectsUnknownKind() {
	_, err := s.repo.Save(s.ctx, chatactions.SaveInput{Action: &entities.ChatAction{Kind: "explode"}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, chatactions.SaveInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, chatactions.SaveInput{Action: &entities.ChatAction{ID: "fixed", Kind: entities.ChatActionRecoil}})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, chatactions.DeleteInput{ID: "fixed"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("chat_action:fixed"))
}
