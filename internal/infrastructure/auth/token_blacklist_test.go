package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist_Revoke(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()

	require.NoError(t, bl.Revoke(ctx, "jti-1", time.Minute))
	require.NoError(t, bl.Revoke(ctx, "jti-expired", time.Nanosecond))
	require.NoError(t, bl.Revoke(ctx, "jti-zero", 0))
	time.Sleep(time.Millisecond)

	revoked, err := bl.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	for _, jti := range []string{"jti-expired", "jti-zero", "unknown"} {
		revoked, err = bl.IsRevoked(ctx, jti)
		require.NoError(t, err)
		assert.False(t, revoked, jti)
	}
}

func TestInMemoryTokenBlacklist_RevokeUser(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()
	issued := time.Now().Add(-time.Minute)

	revoked, err := bl.IsUserRevoked(ctx, "emp-1", issued)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, bl.RevokeUser(ctx, "emp-1", time.Hour))

	revoked, err = bl.IsUserRevoked(ctx, "emp-1", issued)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = bl.IsUserRevoked(ctx, "emp-1", time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = bl.IsUserRevoked(ctx, "emp-2", issued)
	require.NoError(t, err)
	assert.False(t, revoked)
}
