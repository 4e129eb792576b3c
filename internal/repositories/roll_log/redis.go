package rolllog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokerole-bot/internal/redis"
)

const (
	// Key pattern: roll_log:{channel_id}
	logKeyPrefix = "roll_log:"

	// Error messages
	errRecordNil      = "record cannot be nil"
	errChannelIDEmpty = "channel ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client     redisclient.Client
	Clock      clock.Clock
	TTL        time.Duration
	MaxEntries int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl must not be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	clock      clock.Clock
	ttl        time.Duration
	maxEntries int
}

// NewRedisRepository creates a new Redis repository for roll logs
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.Client,
		clock:      cfg.Clock,
		ttl:        ttl,
		maxEntries: maxEntries,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append pushes a record to the head of the channel's log
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}

	if input.Record.RolledAt == 0 {
		input.Record.RolledAt = r.clock.Now().Unix()
	}

	recordJSON, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll record")
	}

	key := buildKey(input.ChannelID)
	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, key, recordJSON)
	pipe.LTrim(ctx, key, 0, int64(r.maxEntries-1))
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append roll to log")
	}

	return &AppendOutput{Record: input.Record}, nil
}

// List reads the channel's log, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	raw, err := r.client.LRange(ctx, buildKey(input.ChannelID), 0, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read roll log")
	}

	output := &ListOutput{}
	for _, entry := range raw {
		var record entities.RollRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal roll record")
		}
		output.Records = append(output.Records, &record)
	}

	return output, nil
}

// Clear deletes the channel's log
func (r *redisRepository) Clear(ctx context.Context, input ClearInput) (*ClearOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	key := buildKey(input.ChannelID)
	pipe := r.client.TxPipeline()
	count := pipe.LLen(ctx, key)
	pipe.Del(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to clear roll log")
	}

	return &ClearOutput{RecordsDeleted: int(count.Val())}, nil
}

func buildKey(channelID string) string {
	return logKeyPrefix + channelID
}
