package redis

import (
	"context"
	"time"
)

// RedisRepository exposes the counter primitive the fixed-window limiter runs on.
type RedisRepository interface {
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
