package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := redis.Connect(ctx, "", mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	require.NoError(t, client.Set(ctx, "actor:pikachu", "{}", 0).Err())
	assert.True(t, mr.Exists("actor:pikachu"))

	client, err = redis.Connect(ctx, "redis://"+mr.Addr()+"/0", "ignored:1", nil)
	require.NoError(t, err)
	assert.NoError(t, client.Ping(ctx).Err())
}

func TestConnectFailures(t *testing.T) {
	ctx := context.Background()

	_, err := redis.Connect(ctx, "mysql://nope", "", nil)
	assert.True(t, errors.IsInvalidArgument(err))

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = redis.Connect(ctx, "", addr, &redis.Options{MaxRetries: -1})
	require.Error(t, err)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}
