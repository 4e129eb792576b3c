// Package testutils provides shared test helpers: an in-memory Redis and
// a scripted dice roller.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokerole-bot/internal/redis"
)

// CreateTestRedisServer creates an in-memory Redis client and exposes the
// server so tests can inspect keys and fast-forward TTLs. The server is
// closed when the test ends.
func CreateTestRedisServer(t *testing.T) (*miniredis.Miniredis, redis.Client) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return mr, client
}
