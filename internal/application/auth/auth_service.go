package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/shared"
	jwtauth "github.com/asnhr/hrms/internal/infrastructure/auth"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService handles authentication operations
type AuthService struct {
	empRepo    employee.Repository
	jwtService *jwtauth.JWTService
	blacklist  jwtauth.TokenBlacklist
	metrics    *telemetry.HRMetrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(
	empRepo employee.Repository,
	jwtService *jwtauth.JWTService,
	blacklist jwtauth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		empRepo:    empRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
		now:        time.Now,
	}
}

// SetMetrics attaches business metrics
func (s *AuthService) SetMetrics(m *telemetry.HRMetrics) {
	s.metrics = m
}

// Login authenticates an employee and returns tokens
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	username := strings.ToLower(strings.TrimSpace(input.Username))
	s.logger.Info("Login attempt", zap.String("username", username), zap.String("ip", input.IP))

	e, err := s.empRepo.FindByUsername(ctx, username)
	if err != nil {
		s.metrics.RecordLogin(ctx, false)
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("User not found during login", zap.String("username", username))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		s.logger.Error("Failed to load user during login", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to sign in")
	}

	if !e.IsActive {
		s.metrics.RecordLogin(ctx, false)
		s.logger.Warn("Login attempt for deactivated account", zap.String("username", username))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !e.VerifyPassword(input.Password) {
		s.metrics.RecordLogin(ctx, false)
		s.logger.Warn("Invalid password attempt", zap.String("username", username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	pair, err := s.jwtService.GenerateTokenPair(subjectOf(e))
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	e.RecordLogin(s.now())
	if err := s.empRepo.Update(ctx, e); err != nil {
		s.logger.Error("Failed to record login time", zap.Error(err))
	}
	s.metrics.RecordLogin(ctx, true)

	s.logger.Info("User logged in successfully",
		zap.String("username", username),
		zap.String("user_id", e.ID.String()))

	return &LoginResult{Token: toTokenResult(pair), User: ToUserInfo(e)}, nil
}

// RefreshToken rotates a refresh token. The presented token is revoked so it
// cannot be replayed.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*TokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, tokenError(err)
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	userID, err := claims.UserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	}
	e, err := s.empRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid token")
		}
		s.logger.Error("Failed to load user during refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to refresh token")
	}
	if !e.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	pair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, subjectOf(e))
	if err != nil {
		return nil, tokenError(err)
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke rotated refresh token", zap.Error(err))
	}

	result := toTokenResult(pair)
	return &result, nil
}

// Logout revokes the access token and, when given, the refresh token
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessTokenJTI != "" {
		if err := s.blacklist.Revoke(ctx, input.AccessTokenJTI, input.AccessTokenTTL); err != nil {
			s.logger.Error("Failed to revoke access token", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
		}
	}
	if input.RefreshToken != "" {
		claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
		if err == nil {
			if err := s.blacklist.Revoke(ctx, claims.ID, claims.RemainingTTL()); err != nil {
				s.logger.Error("Failed to revoke refresh token", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Failed to log out")
			}
		}
	}
	s.logger.Info("User logged out", zap.String("jti", input.AccessTokenJTI))
	return nil
}

// GetCurrentUser returns the signed-in employee
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	e, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	info := ToUserInfo(e)
	return &info, nil
}

// ChangePassword verifies the current password, stores the new one and
// revokes every token issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	e, err := s.find(ctx, input.UserID)
	if err != nil {
		return err
	}
	if err := e.ChangePassword(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}
	if err := s.empRepo.Update(ctx, e); err != nil {
		s.logger.Error("Failed to save new password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to change password")
	}
	if err := s.blacklist.RevokeUser(ctx, e.ID.String(), s.jwtService.RefreshTokenExpiration()); err != nil {
		s.logger.Error("Failed to revoke existing sessions", zap.Error(err))
	}
	s.logger.Info("Password changed", zap.String("user_id", e.ID.String()))
	return nil
}

func (s *AuthService) checkRevoked(ctx context.Context, claims *jwtauth.Claims) error {
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Failed to check token blacklist", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to validate token")
	}
	if !revoked {
		revoked, err = s.blacklist.IsUserRevoked(ctx, claims.UserID, claims.IssuedAtTime())
		if err != nil {
			s.logger.Error("Failed to check user revocation", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to validate token")
		}
	}
	if revoked {
		return shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
	}
	return nil
}

func (s *AuthService) find(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	e, err := s.empRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to load user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user")
	}
	return e, nil
}

func subjectOf(e *employee.Employee) jwtauth.Subject {
	return jwtauth.Subject{UserID: e.ID, Username: e.Username, Role: string(e.Role)}
}

func toTokenResult(p *jwtauth.TokenPair) TokenResult {
	return TokenResult{
		AccessToken:           p.AccessToken,
		RefreshToken:          p.RefreshToken,
		AccessTokenExpiresAt:  p.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: p.RefreshTokenExpiresAt,
		TokenType:             p.TokenType,
	}
}

func tokenError(err error) error {
	switch {
	case errors.Is(err, jwtauth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Token has expired")
	case errors.Is(err, jwtauth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Token has been refreshed too many times, please log in again")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid token")
	}
}
