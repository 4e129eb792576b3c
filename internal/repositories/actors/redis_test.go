package actors_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/repositories/actors"
	"github.com/KirkDiggler/pokerole-bot/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx  context.Context
	mr   *miniredis.Miniredis
	repo actors.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	mr, client := testutils.CreateTestRedisServer(s.T())
	s.mr = mr

	repo, err := actors.NewRedis(&actors.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) newActor(id string, owners ...string) *entities.Actor {
	return &entities.Actor{
		ID:         id,
		Name:       id,
		Kind:       entities.ActorKindPokemon,
		OwnerIDs:   owners,
		Attributes: map[string]int{"strength": 2, "vitality": 2},
		HP:         entities.Resource{Value: 5, Max: 5},
		Will:       entities.Resource{Value: 3, Max: 3},
		Round:      entities.NewRoundState(entities.DefaultActionBudget),
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidation() {
	_, err := actors.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = actors.NewRedis(&actors.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	created, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: s.newActor("pikachu", "ash")})
	s.Require().NoError(err)
	s.NotZero(created.Actor.CreatedAt)
	s.True(s.mr.Exists("actor:pikachu"))

	_, err = s.repo.Create(s.ctx, actors.CreateInput{Actor: s.newActor("pikachu")})
	s.True(errors.IsAlreadyExists(err))

	got, err := s.repo.Get(s.ctx, actors.GetInput{ID: "pikachu"})
	s.Require().NoError(err)
	s.Equal(5, got.Actor.HP.Value)
	s.Equal(2, got.Actor.Attributes["strength"])

	got.Actor.HP.Value = 2
	got.Actor.OwnerIDs = []string{"misty"}
	_, err = s.repo.Update(s.ctx, actors.UpdateInput{Actor: got.Actor})
	s.Require().NoError(err)

	byAsh, err := s.repo.ListByOwner(s.ctx, actors.ListByOwnerInput{OwnerID: "ash"})
	s.Require().NoError(err)
	s.Empty(byAsh.Actors)

	byMisty, err := s.repo.ListByOwner(s.ctx, actors.ListByOwnerInput{OwnerID: "misty"})
	s.Require().NoError(err)
	s.Require().Len(byMisty.Actors, 1)
	s.Equal(2, byMisty.Actors[0].HP.Value)

	_, err = s.repo.Delete(s.ctx, actors.DeleteInput{ID: "pikachu"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("actor:pikachu"))

	_, err = s.repo.Get(s.ctx, actors.GetInput{ID: "pikachu"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateMissing() {
	_, err := s.repo.Update(s.ctx, actors.UpdateInput{Actor: s.newActor("ghost")})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, actors.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGetMany() {
	for _, id := range []string{"a", "b"} {
		_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: s.newActor(id)})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetMany(s.ctx, actors.GetManyInput{IDs: []string{"a", "gone", "b"}})
	s.Require().NoError(err)
	s.Len(out.Actors, 2)
	s.Equal([]string{"gone"}, out.Missing)

	empty, err := s.repo.GetMany(s.ctx, actors.GetManyInput{})
	s.Require().NoError(err)
	s.Empty(empty.Actors)
}

func (s *RedisRepositoryTestSuite) TestListPrunesStaleIndex() {
	for _, id := range []string{"a", "b"} {
		_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: s.newActor(id)})
		s.Require().NoError(err)
	}
	s.mr.Del("actor:b")

	out, err := s.repo.List(s.ctx, actors.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Actors, 1)
	s.Equal("a", out.Actors[0].ID)

	members, err := s.mr.SMembers("actor:all")
	s.Require().NoError(err)
	s.Equal([]string{"a"}, members)
}

func (s *RedisRepositoryTestSuite) TestAssignment() {
	_, err := s.repo.GetAssigned(s.ctx, actors.GetAssignedInput{UserID: "ash"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Assign(s.ctx, actors.AssignInput{UserID: "ash", ActorID: "nobody"})
	s.True(errors.IsNotFound(err))

	for _, id := range []string{"pikachu", "bulbasaur"} {
		_, err := s.repo.Create(s.ctx, actors.CreateInput{Actor: s.newActor(id, "ash")})
		s.Require().NoError(err)
	}

	_, err = s.repo.Assign(s.ctx, actors.AssignInput{UserID: "ash", ActorID: "pikachu"})
	s.Require().NoError(err)
	_, err = s.repo.Assign(s.ctx, actors.AssignInput{UserID: "ash", ActorID: "bulbasaur"})
	s.Require().NoError(err)

	got, err := s.repo.GetAssigned(s.ctx, actors.GetAssignedInput{UserID: "ash"})
	s.Require().NoError(err)
	s.Equal("bulbasaur", got.Actor.ID)
	s.False(s.mr.Exists("actor:assigned:pikachu"))

	_, err = s.repo.Delete(s.ctx, actors.DeleteInput{ID: "bulbasaur"})
	s.Require().NoError(err)

	_, err = s.repo.GetAssigned(s.ctx, actors.GetAssignedInput{UserID: "ash"})
	s.True(errors.IsNotFound(err))
}

func TestRedisRepository_StorageFailures(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()

	repo, err := actors.NewRedis(&actors.RedisConfig{Client: db})
	if err != nil {
		t.Fatal(err)
	}

	mock.ExpectGet("actor:pikachu").SetErr(stderrors.New("connection refused"))
	_, err = repo.Get(ctx, actors.GetInput{ID: "pikachu"})
	if err == nil || errors.IsNotFound(err) {
		t.Fatalf("expected storage error, got %v", err)
	}

	mock.ExpectExists("actor:pikachu").SetErr(stderrors.New("connection refused"))
	_, err = repo.Create(ctx, actors.CreateInput{Actor: &entities.Actor{ID: "pikachu"}})
	if err == nil {
		t.Fatal("expected storage error")
	}

	mock.ExpectGet("actor:assignment:ash").SetVal("pikachu")
	mock.ExpectGet("actor:pikachu").SetVal(`{"id":`)
	_, err = repo.GetAssigned(ctx, actors.GetAssignedInput{UserID: "ash"})
	if err == nil {
		t.Fatal("expected decode error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
