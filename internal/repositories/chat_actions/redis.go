package chatactions

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/clock"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/pokerole-bot/internal/redis"
)

const (
	actionKeyPrefix = "chat_action:"

	// MsgExpired is shown when a button outlives its payload
	MsgExpired = "This action has expired."
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
	TTL         time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.TTL < 0 {
		vb.InvalidField("TTL", "must not be negative")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ids    idgen.Generator
	ttl    time.Duration
}

// NewRedisRepository creates a chat action store backed by Redis
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		ids:    cfg.IDGenerator,
		ttl:    ttl,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Action == nil {
		return nil, errors.InvalidArgument("action cannot be nil")
	}
	if !input.Action.Kind.IsValid() {
		return nil, errors.InvalidArgumentf("unknown chat action: %s", input.Action.Kind)
	}

	if input.Action.ID == "" {
		input.Action.ID = r.ids.Generate()
	}
	if input.Action.CreatedAt == 0 {
		input.Action.CreatedAt = r.clock.Now().Unix()
	}

	data, err := json.Marshal(input.Action)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal chat action")
	}

	if err := r.client.Set(ctx, actionKeyPrefix+input.Action.ID, data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store chat action")
	}

	return &SaveOutput{Action: input.Action}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("action ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, actionKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.Reference(MsgExpired).WithMeta("action_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get chat action")
	}

	var action entities.ChatAction
	if err := json.Unmarshal([]byte(raw), &action); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal chat action")
	}

	return &GetOutput{Action: &action}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("action ID cannot be empty")
	}
	if err := r.client.Del(ctx, actionKeyPrefix+input.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete chat action")
	}
	return &DeleteOutput{}, nil
}
