package auth

import (
	"errors"
	"time"

	"github.com/asnhr/hrms/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType distinguishes access from refresh tokens
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidTokenType   = errors.New("invalid token type")
	ErrInvalidClaims      = errors.New("invalid token claims")
	ErrMaxRefreshExceeded = errors.New("maximum refresh count exceeded")
	ErrTokenRevoked       = errors.New("token has been revoked")
)

// Claims are the HRMS token claims. Access tokens carry the role; refresh
// tokens carry only the subject.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	Role         string    `json:"role,omitempty"`
	TokenType    TokenType `json:"token_type"`
	RefreshCount int       `json:"refresh_count,omitempty"`
}

// UserUUID parses the subject id
func (c *Claims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// IssuedAtTime returns iat or the zero time
func (c *Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// RemainingTTL returns the time left before expiry, never negative
func (c *Claims) RemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := time.Until(c.ExpiresAt.Time); d > 0 {
		return d
	}
	return 0
}

// TokenPair is what login and refresh hand back to the client
type TokenPair struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// Subject identifies whom a token pair is issued to
type Subject struct {
	UserID   uuid.UUID
	Username string
	Role     string
}

// JWTService signs and validates HS256 tokens
type JWTService struct {
	accessSecret      []byte
	refreshSecret     []byte
	accessExpiration  time.Duration
	refreshExpiration time.Duration
	issuer            string
	maxRefreshCount   int
	now               func() time.Time
}

// NewJWTService creates a JWT service; the refresh secret falls back to the access secret
func NewJWTService(cfg config.JWTConfig) *JWTService {
	refreshSecret := cfg.RefreshSecret
	if refreshSecret == "" {
		refreshSecret = cfg.Secret
	}
	return &JWTService{
		accessSecret:      []byte(cfg.Secret),
		refreshSecret:     []byte(refreshSecret),
		accessExpiration:  cfg.AccessTokenExpiration,
		refreshExpiration: cfg.RefreshTokenExpiration,
		issuer:            cfg.Issuer,
		maxRefreshCount:   cfg.MaxRefreshCount,
		now:               time.Now,
	}
}

// GenerateTokenPair issues a fresh access/refresh pair
func (s *JWTService) GenerateTokenPair(sub Subject) (*TokenPair, error) {
	return s.issue(sub, 0)
}

// RefreshTokenPair validates refreshToken and issues a new pair for sub, which the
// caller reloads from storage so role changes take effect.
func (s *JWTService) RefreshTokenPair(refreshToken string, sub Subject) (*TokenPair, error) {
	claims, err := s.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.UserID != sub.UserID.String() {
		return nil, ErrInvalidClaims
	}
	if claims.RefreshCount >= s.maxRefreshCount {
		return nil, ErrMaxRefreshExceeded
	}
	return s.issue(sub, claims.RefreshCount+1)
}

func (s *JWTService) issue(sub Subject, refreshCount int) (*TokenPair, error) {
	now := s.now()
	accessExp := now.Add(s.accessExpiration)
	refreshExp := now.Add(s.refreshExpiration)

	access, err := s.sign(&Claims{
		RegisteredClaims: s.registered(sub.UserID, now, accessExp),
		UserID:           sub.UserID.String(),
		Username:         sub.Username,
		Role:             sub.Role,
		TokenType:        TokenTypeAccess,
	}, s.accessSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(&Claims{
		RegisteredClaims: s.registered(sub.UserID, now, refreshExp),
		UserID:           sub.UserID.String(),
		TokenType:        TokenTypeRefresh,
		RefreshCount:     refreshCount,
	}, s.refreshSecret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:           access,
		RefreshToken:          refresh,
		AccessTokenExpiresAt:  accessExp,
		RefreshTokenExpiresAt: refreshExp,
		TokenType:             "Bearer",
	}, nil
}

func (s *JWTService) registered(userID uuid.UUID, now, exp time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    s.issuer,
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings{s.issuer},
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func (s *JWTService) sign(claims *Claims, secret []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateAccessToken parses an access token
func (s *JWTService) ValidateAccessToken(token string) (*Claims, error) {
	return s.validate(token, s.accessSecret, TokenTypeAccess)
}

// ValidateRefreshToken parses a refresh token
func (s *JWTService) ValidateRefreshToken(token string) (*Claims, error) {
	return s.validate(token, s.refreshSecret, TokenTypeRefresh)
}

func (s *JWTService) validate(token string, secret []byte, want TokenType) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.TokenType != want {
		return nil, ErrInvalidTokenType
	}
	if _, err := claims.UserUUID(); err != nil {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

// AccessTokenExpiration returns the configured access token lifetime
func (s *JWTService) AccessTokenExpiration() time.Duration {
	return s.accessExpiration
}

// RefreshTokenExpiration returns the configured refresh token lifetime
func (s *JWTService) RefreshTokenExpiration() time.Duration {
	return s.refreshExpiration
}
