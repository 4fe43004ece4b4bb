package auth

import (
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "hrms-test",
		MaxRefreshCount:        2,
	})
}

func testSubject() Subject {
	return Subject{UserID: uuid.New(), Username: "asha", Role: "hr"}
}

func TestNewJWTService_UsesSecretForRefreshIfNotProvided(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{Secret: "only-secret"})
	assert.Equal(t, svc.accessSecret, svc.refreshSecret)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestJWTService()
	sub := testSubject()

	pair, err := svc.GenerateTokenPair(sub)
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, sub.UserID.String(), claims.UserID)
	assert.Equal(t, "asha", claims.Username)
	assert.Equal(t, "hr", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.Greater(t, claims.RemainingTTL(), 14*time.Minute)

	refresh, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Empty(t, refresh.Role)
	assert.Equal(t, 0, refresh.RefreshCount)
}

func TestValidate_Failures(t *testing.T) {
	svc := newTestJWTService()
	pair, err := svc.GenerateTokenPair(testSubject())
	require.NoError(t, err)

	t.Run("wrong type", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                 "test-secret-key-at-least-32-chars",
			AccessTokenExpiration:  time.Minute,
			RefreshTokenExpiration: time.Hour,
			Issuer:                 "hrms-test",
		})
		p, err := other.GenerateTokenPair(testSubject())
		require.NoError(t, err)
		_, err = other.ValidateAccessToken(p.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("refresh token signed with refresh secret", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("different secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{Secret: "another-secret-key-of-32-characters", Issuer: "hrms-test"})
		_, err := other.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := newTestJWTService()
		later.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := later.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	sub := testSubject()
	pair, err := svc.GenerateTokenPair(sub)
	require.NoError(t, err)

	sub.Role = "admin"
	next, err := svc.RefreshTokenPair(pair.RefreshToken, sub)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	rc, err := svc.ValidateRefreshToken(next.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, 1, rc.RefreshCount)

	third, err := svc.RefreshTokenPair(next.RefreshToken, sub)
	require.NoError(t, err)
	_, err = svc.RefreshTokenPair(third.RefreshToken, sub)
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)

	_, err = svc.RefreshTokenPair(pair.RefreshToken, testSubject())
	assert.ErrorIs(t, err, ErrInvalidClaims)

	_, err = svc.RefreshTokenPair(pair.AccessToken, sub)
	assert.Error(t, err)
}
