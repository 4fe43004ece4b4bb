package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes tokens before they expire
type TokenBlacklist interface {
	// Revoke blacklists one token id for ttl (its remaining lifetime)
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// RevokeUser rejects every token of the user issued at or before now
	RevokeUser(ctx context.Context, userID string, ttl time.Duration) error
	IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error)
}

const blacklistPrefix = "hrms:token:blacklist:"

// RedisTokenBlacklist keeps revocations in Redis so every instance sees them
type RedisTokenBlacklist struct {
	client redis.UniversalClient
}

// NewRedisTokenBlacklist wraps an existing client
func NewRedisTokenBlacklist(client redis.UniversalClient) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

func (b *RedisTokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, blacklistPrefix+"jti:"+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistPrefix+"jti:"+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

func (b *RedisTokenBlacklist) RevokeUser(ctx context.Context, userID string, ttl time.Duration) error {
	now := strconv.FormatInt(time.Now().Unix(), 10)
	if err := b.client.Set(ctx, blacklistPrefix+"user:"+userID, now, ttl).Err(); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsUserRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	raw, err := b.client.Get(ctx, blacklistPrefix+"user:"+userID).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user revocation: %w", err)
	}
	at, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse revocation time: %w", err)
	}
	return issuedAt.Unix() <= at, nil
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist is the single-instance fallback used when Redis is disabled
type InMemoryTokenBlacklist struct {
	mu    sync.Mutex
	jtis  map[string]time.Time // jti -> expiry
	users map[string]time.Time // user -> revoked at
}

// NewInMemoryTokenBlacklist creates an empty blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtis:  make(map[string]time.Time),
		users: make(map[string]time.Time),
	}
}

func (b *InMemoryTokenBlacklist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtis[jti] = time.Now().Add(ttl)
	return nil
}

func (b *InMemoryTokenBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.jtis[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(exp) {
		delete(b.jtis, jti)
		return false, nil
	}
	return true, nil
}

func (b *InMemoryTokenBlacklist) RevokeUser(_ context.Context, userID string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[userID] = time.Now()
	return nil
}

func (b *InMemoryTokenBlacklist) IsUserRevoked(_ context.Context, userID string, issuedAt time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	at, ok := b.users[userID]
	if !ok {
		return false, nil
	}
	return !issuedAt.After(at), nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)
