package rolllog_test

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	mockclock "github.com/KirkDiggler/pokerole-bot/internal/pkg/clock/mock"
	rolllog "github.com/KirkDiggler/pokerole-bot/internal/repositories/roll_log"
	"github.com/KirkDiggler/pokerole-bot/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	repo      rolllog.Repository
	now       time.Time
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mr, client := testutils.CreateTestRedisServer(s.T())
	s.mr = mr

	repo, err := rolllog.NewRedisRepository(&rolllog.Config{
		Client:     client,
		Clock:      s.mockClock,
		TTL:        time.Hour,
		MaxEntries: 3,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RedisRepositoryTestSuite) record(id string, successes int) *entities.RollRecord {
	return &entities.RollRecord{
		ID:      id,
		ActorID: "eevee",
		Result:  &entities.RollResult{Expression: "dexterity + alert", Successes: successes, DiceRolled: 4},
	}
}

func (s *RedisRepositoryTestSuite) TestAppendStampsAndExpires() {
	s.mockClock.EXPECT().Now().Return(s.now)

	out, err := s.repo.Append(s.ctx, rolllog.AppendInput{ChannelID: "chan", Record: s.record("r1", 2)})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), out.Record.RolledAt)
	s.Equal(time.Hour, s.mr.TTL("roll_log:chan"))

	s.mr.FastForward(2 * time.Hour)
	list, err := s.repo.List(s.ctx, rolllog.ListInput{ChannelID: "chan"})
	s.Require().NoError(err)
	s.Empty(list.Records)
}

func (s *RedisRepositoryTestSuite) TestListNewestFirstAndTrimmed() {
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	for i := 1; i <= 4; i++ {
		_, err := s.repo.Append(s.ctx, rolllog.AppendInput{ChannelID: "chan", Record: s.record(fmt.Sprintf("r%d", i), i)})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, rolllog.ListInput{ChannelID: "chan"})
	s.Require().NoError(err)
	s.Require().Len(list.Records, 3)
	s.Equal("r4", list.Records[0].ID)
	s.Equal("r2", list.Records[2].ID)
	s.Equal(4, list.Records[0].Result.Successes)

	limited, err := s.repo.List(s.ctx, rolllog.ListInput{ChannelID: "chan", Limit: 1})
	s.Require().NoError(err)
	s.Len(limited.Records, 1)
}

func (s *RedisRepositoryTestSuite) TestClear() {
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	for i := 0; i < 2; i++ {
		_, err := s.repo.Append(s.ctx, rolllog.AppendInput{ChannelID: "chan", Record: s.record("r", 1)})
		s.Require().NoError(err)
	}

	out, err := s.repo.Clear(s.ctx, rolllog.ClearInput{ChannelID: "chan"})
	s.Require().NoError(err)
	s.Equal(2, out.RecordsDeleted)
	s.False(s.mr.Exists("roll_log:chan"))
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Append(s.ctx, rolllog.AppendInput{Record: s.record("r", 1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, rolllog.AppendInput{ChannelID: "chan"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.List(s.ctx, rolllog.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestNewRedisRepository_Validation(t *testing.T) {
	_, err := rolllog.NewRedisRepository(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	db, _ := redismock.NewClientMock()
	_, err = rolllog.NewRedisRepository(&rolllog.Config{Client: db})
	assert.Error(t, err)
}

func TestList_StorageFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	ctrl := gomock.NewController(t)

	repo, err := rolllog.NewRedisRepository(&rolllog.Config{Client: db, Clock: mockclock.NewMockClock(ctrl)})
	require.NoError(t, err)

	mock.ExpectLRange("roll_log:chan", 0, -1).SetErr(stderrors.New("timeout"))
	_, err = repo.List(context.Background(), rolllog.ListInput{ChannelID: "chan"})
	assert.Error(t, err)

	mock.ExpectLRange("roll_log:chan", 0, -1).SetVal([]string{"not json"})
	_, err = repo.List(context.Background(), rolllog.ListInput{ChannelID: "chan"})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
