package geocache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache backs the geocode cache with a shared redis instance so the
// debounce window survives restarts and is shared across replicas. TTL
// enforcement is server-side via key expiry.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// NewRedisCache creates a redis-backed cache. A non-positive TTL falls
// back to DefaultTTL.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
		prefix: "geocache:",
		logger: logger,
	}
}

// Get implements Cache. Redis errors are logged and treated as a miss;
// the cache is advisory and must never fail a lookup.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("geocache redis get failed",
				slog.String("key", key),
				slog.Any("error", err),
			)
		}

		return nil, false
	}

	return val, true
}

// Set implements Cache.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Warn("geocache redis set failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// Clear implements Cache. Only keys under the cache prefix are dropped.
func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Warn("geocache redis del failed",
				slog.String("key", iter.Val()),
				slog.Any("error", err),
			)
		}
	}
}
