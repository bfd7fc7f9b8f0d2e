package redis

import (
	"context"
	"medrecord-service/internal/pkg/exceptions"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	Client *redis.Client
}

func NewRedisRepository(client *redis.Client) RedisRepository {
	return &redisRepository{
		Client: client,
	}
}

// IncrementWithTTL increments the counter and stamps the TTL only when the key
// was just created, so the window does not slide on every hit.
func (r *redisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := r.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, exceptions.ErrRedisIncrement(err)
	}
	if count == 1 {
		if err := r.Client.Expire(ctx, key, ttl).Err(); err != nil {
			return count, exceptions.ErrRedisExpire(err)
		}
	}
	return count, nil
}
