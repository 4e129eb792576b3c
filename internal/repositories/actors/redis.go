package actors

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokerole-bot/internal/redis"
)

const (
	actorKeyPrefix      = "actor:"
	allActorsKey        = "actor:all"
	ownerIndexPrefix    = "actor:owner:"
	assignmentKeyPrefix = "actor:assignment:"
	assignedIndexPrefix = "actor:assigned:"

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
	errOwnerIDEmpty = "owner ID cannot be empty"
	errUserIDEmpty  = "user ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	now := r.clock.Now().Unix()
	input.Actor.CreatedAt = now
	input.Actor.UpdatedAt = now

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allActorsKey, input.Actor.ID)
	for _, owner := range input.Actor.OwnerIDs {
		pipe.SAdd(ctx, ownerIndexPrefix+owner, input.Actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	result, err := r.client.Get(ctx, actorKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	actor, err := decode(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Actor: actor}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	output := &GetManyOutput{Actors: make(map[string]*entities.Actor, len(input.IDs))}
	if len(input.IDs) == 0 {
		return output, nil
	}

	keys := make([]string, len(input.IDs))
	for i, id := range input.IDs {
		keys[i] = actorKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors")
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			output.Missing = append(output.Missing, input.IDs[i])
			continue
		}
		actor, err := decode(raw)
		if err != nil {
			return nil, err
		}
		output.Actors[actor.ID] = actor
	}

	return output, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Actor.ID})
	if err != nil {
		return nil, err
	}

	input.Actor.CreatedAt = existing.Actor.CreatedAt
	input.Actor.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+input.Actor.ID, data, 0)

	// Update owner index if changed
	for _, owner := range existing.Actor.OwnerIDs {
		if !input.Actor.IsOwnedBy(owner) {
			pipe.SRem(ctx, ownerIndexPrefix+owner, input.Actor.ID)
		}
	}
	for _, owner := range input.Actor.OwnerIDs {
		if !existing.Actor.IsOwnedBy(owner) {
			pipe.SAdd(ctx, ownerIndexPrefix+owner, input.Actor.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	users, err := r.client.SMembers(ctx, assignedIndexPrefix+input.ID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read assignments")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID, assignedIndexPrefix+input.ID)
	pipe.SRem(ctx, allActorsKey, input.ID)
	for _, owner := range existing.Actor.OwnerIDs {
		pipe.SRem(ctx, ownerIndexPrefix+owner, input.ID)
	}
	for _, user := range users {
		pipe.Del(ctx, assignmentKeyPrefix+user)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	actors, err := r.listByIndex(ctx, allActorsKey)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Actors: actors}, nil
}

func (r *redisRepository) ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	actors, err := r.listByIndex(ctx, ownerIndexPrefix+input.OwnerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list actors by owner",
			"owner_id", input.OwnerID,
			"error", err.Error())
		return nil, err
	}

	return &ListByOwnerOutput{Actors: actors}, nil
}

func (r *redisRepository) Assign(ctx context.Context, input AssignInput) (*AssignOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if input.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.Get(ctx, GetInput{ID: input.ActorID})
	if err != nil {
		return nil, err
	}

	previous, err := r.client.Get(ctx, assignmentKeyPrefix+input.UserID).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read assignment")
	}

	pipe := r.client.TxPipeline()
	if previous != "" && previous != input.ActorID {
		pipe.SRem(ctx, assignedIndexPrefix+previous, input.UserID)
	}
	pipe.Set(ctx, assignmentKeyPrefix+input.UserID, input.ActorID, 0)
	pipe.SAdd(ctx, assignedIndexPrefix+input.ActorID, input.UserID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to assign actor")
	}

	slog.InfoContext(ctx, "Actor assigned",
		"user_id", input.UserID,
		"actor_id", input.ActorID)

	return &AssignOutput{Actor: actor.Actor}, nil
}

func (r *redisRepository) GetAssigned(ctx context.Context, input GetAssignedInput) (*GetAssignedOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	actorID, err := r.client.Get(ctx, assignmentKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no actor assigned to user %s", input.UserID)
		}
		return nil, errors.Wrapf(err, "failed to read assignment")
	}

	output, err := r.Get(ctx, GetInput{ID: actorID})
	if err != nil {
		return nil, err
	}

	return &GetAssignedOutput{Actor: output.Actor}, nil
}

// listByIndex loads every actor in a set index, pruning IDs that no longer exist
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*entities.Actor, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors from index %s", indexKey)
	}

	found, err := r.GetMany(ctx, GetManyInput{IDs: ids})
	if err != nil {
		return nil, err
	}

	if len(found.Missing) > 0 {
		slog.WarnContext(ctx, "actors not found, cleaning up index",
			"index_key", indexKey,
			"actor_ids", found.Missing)
		members := make([]any, len(found.Missing))
		for i, id := range found.Missing {
			members[i] = id
		}
		r.client.SRem(ctx, indexKey, members...)
	}

	actors := make([]*entities.Actor, 0, len(found.Actors))
	for _, id := range ids {
		if actor, ok := found.Actors[id]; ok {
			actors = append(actors, actor)
		}
	}

	return actors, nil
}

func decode(raw string) (*entities.Actor, error) {
	var actor entities.Actor
	if err := json.Unmarshal([]byte(raw), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}
	return &actor, nil
}
