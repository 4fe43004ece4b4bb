package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Factory builds the Redis client and the stores layered on it
type Factory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
	pingTimeout           time.Duration
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to in-memory stores when Redis is unavailable.
// Default is true.
func WithInMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowInMemoryFallback = allow
	}
}

// NewFactory creates a new factory
func NewFactory(cfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
		pingTimeout:           5 * time.Second,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Connect opens a Redis client and pings it. It returns (nil, nil) when
// Redis is disabled in configuration.
func (f *Factory) Connect(ctx context.Context) (*redis.Client, error) {
	if !f.redisConfig.Enabled {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     f.redisConfig.Addr(),
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, f.pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", f.redisConfig.Addr(), err)
	}
	return client, nil
}

// Stores bundles the shared stores handed to services
type Stores struct {
	Client    *redis.Client
	Cache     shared.Cache
	Blacklist BlacklistKind
}

// BlacklistKind reports which token blacklist backend should be used
type BlacklistKind string

const (
	BlacklistRedis    BlacklistKind = "redis"
	BlacklistInMemory BlacklistKind = "memory"
)

// CreateStores connects to Redis and builds the cache on it, falling back
// to in-memory stores when Redis is disabled or unreachable and fallback is allowed.
func (f *Factory) CreateStores(ctx context.Context) (*Stores, error) {
	client, err := f.Connect(ctx)
	if err == nil && client != nil {
		f.logger.Info("using Redis cache", zap.String("addr", f.redisConfig.Addr()))
		return &Stores{
			Client:    client,
			Cache:     NewRedisCache(client, DefaultKeyPrefix),
			Blacklist: BlacklistRedis,
		}, nil
	}

	if err != nil {
		if !f.allowInMemoryFallback {
			return nil, fmt.Errorf("Redis required but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory cache. "+
			"Token revocations will not be shared between instances.",
			zap.Error(err),
		)
	} else {
		f.logger.Info("Redis disabled, using in-memory cache")
	}
	return &Stores{
		Cache:     NewInMemoryCache(),
		Blacklist: BlacklistInMemory,
	}, nil
}

// Close releases the Redis client, if any
func (s *Stores) Close() error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Close()
}
