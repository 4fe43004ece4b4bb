package shared

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// Cache is a byte-oriented key/value store with expiry. Implementations
// live in infrastructure/cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
