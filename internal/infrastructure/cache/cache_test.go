package cache

import (
	"context"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewInMemoryCache()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, err := c.Get(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "settings", []byte(`{"v":1}`), time.Minute))
	require.NoError(t, c.Set(ctx, "forever", []byte("x"), 0))

	got, err := c.Get(ctx, "settings")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(got))

	got[0] = 'X'
	again, _ := c.Get(ctx, "settings")
	assert.Equal(t, `{"v":1}`, string(again), "callers get a copy")

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "settings")
	assert.ErrorIs(t, err, shared.ErrCacheMiss)

	_, err = c.Get(ctx, "forever")
	require.NoError(t, err)

	require.NoError(t, c.Delete(ctx, "forever", "unknown"))
	assert.Equal(t, 0, c.Len())
}

func TestFactory_DisabledRedisFallsBack(t *testing.T) {
	f := NewFactory(config.RedisConfig{Enabled: false}, WithLogger(zap.NewNop()))
	stores, err := f.CreateStores(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stores.Client)
	assert.Equal(t, BlacklistInMemory, stores.Blacklist)
	assert.IsType(t, &InMemoryCache{}, stores.Cache)
	assert.NoError(t, stores.Close())
}

func TestFactory_UnreachableRedis(t *testing.T) {
	cfg := config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1}

	f := NewFactory(cfg)
	f.pingTimeout = 200 * time.Millisecond
	stores, err := f.CreateStores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BlacklistInMemory, stores.Blacklist)

	strict := NewFactory(cfg, WithInMemoryFallback(false))
	strict.pingTimeout = 200 * time.Millisecond
	_, err = strict.CreateStores(context.Background())
	assert.Error(t, err)
}
