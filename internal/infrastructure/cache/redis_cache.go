package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces every cache key
const DefaultKeyPrefix = "hrms:cache:"

// RedisCache implements shared.Cache on Redis
type RedisCache struct {
	client    redis.UniversalClient
	keyPrefix string
}

// NewRedisCache creates a cache with an existing Redis client
func NewRedisCache(client redis.UniversalClient, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisCache{client: client, keyPrefix: keyPrefix}
}

// Get returns shared.ErrCacheMiss when the key does not exist
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get %s: %w", key, err)
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.keyPrefix + k
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

var _ shared.Cache = (*RedisCache)(nil)
