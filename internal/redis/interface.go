package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the Redis client every repository takes. Tests pass a
// miniredis-backed client or a redismock one.
type Client interface {
	redis.UniversalClient
}
