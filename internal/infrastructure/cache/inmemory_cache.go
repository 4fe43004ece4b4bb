package cache

import (
	"context"
	"sync"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
)

type entry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// InMemoryCache implements shared.Cache in process memory.
// Suitable for single-instance deployments and tests.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewInMemoryCache creates an empty in-memory cache
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (c *InMemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, shared.ErrCacheMiss
	}
	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, shared.ErrCacheMiss
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (c *InMemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired or not
func (c *InMemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ shared.Cache = (*InMemoryCache)(nil)
