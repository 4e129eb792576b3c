package combats

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	redisclient "github.com/KirkDiggler/pokerole-bot/internal/redis"
)

const (
	combatKeyPrefix  = "combat:"
	channelKeyPrefix = "combat:channel:"
)

// RedisConfig contains configuration for the Redis combat repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a new Redis-backed combat repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCombat(input.Combat); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Combat)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal combat")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, combatKeyPrefix+input.Combat.ID, data, 0)
	pipe.Set(ctx, channelKeyPrefix+input.Combat.ChannelID, input.Combat.ID, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save combat")
	}

	return &SaveOutput{Combat: input.Combat}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.CombatID == "" {
		return nil, errors.InvalidArgument("combat ID is required")
	}

	combat, err := r.load(ctx, input.CombatID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Combat: combat}, nil
}

func (r *redisRepository) GetByChannel(ctx context.Context, input *GetByChannelInput) (*GetByChannelOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID is required")
	}

	combatID, err := r.client.Get(ctx, channelKeyPrefix+input.ChannelID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no combat in this channel")
		}
		return nil, errors.Wrapf(err, "failed to read channel combat")
	}

	combat, err := r.load(ctx, combatID)
	if err != nil {
		return nil, err
	}

	return &GetByChannelOutput{Combat: combat}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.CombatID == "" {
		return nil, errors.InvalidArgument("combat ID is required")
	}

	combat, err := r.load(ctx, input.CombatID)
	if err != nil {
		return nil, err
	}

	channelKey := channelKeyPrefix + combat.ChannelID
	current, err := r.client.Get(ctx, channelKey).Result()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to read channel combat")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, combatKeyPrefix+input.CombatID)
	if current == input.CombatID {
		pipe.Del(ctx, channelKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete combat")
	}

	return &DeleteOutput{Success: true}, nil
}

func (r *redisRepository) load(ctx context.Context, combatID string) (*entities.Combat, error) {
	raw, err := r.client.Get(ctx, combatKeyPrefix+combatID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("combat with ID %s not found", combatID)
		}
		return nil, errors.Wrapf(err, "failed to get combat")
	}

	var combat entities.Combat
	if err := json.Unmarshal([]byte(raw), &combat); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal combat")
	}
	return &combat, nil
}
