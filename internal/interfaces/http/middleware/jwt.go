package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/infrastructure/auth"
	"github.com/asnhr/hrms/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey   = "jwt_claims"
	JWTUserIDKey   = "jwt_user_id"
	JWTUsernameKey = "jwt_username"
	JWTRoleKey     = "jwt_role"
	AuthHeaderKey  = "Authorization"
	BearerPrefix   = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// SkipPaths are paths that don't require authentication
	SkipPaths []string
	// SkipPathPrefixes are path prefixes that don't require authentication
	SkipPathPrefixes []string
	// Optional callback if token is invalid (default: return 401)
	OnError func(c *gin.Context, err error)
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultJWTConfig returns default JWT middleware configuration
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{
			"/swagger",
		},
	}
}

// JWTAuthMiddleware creates JWT authentication middleware
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig creates JWT authentication middleware with custom config
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing authorization header")
			return
		}
		if !strings.HasPrefix(authHeader, BearerPrefix) {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Invalid authorization header format")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		if tokenString == "" {
			handleAuthError(c, cfg, auth.ErrInvalidToken, "Missing token")
			return
		}

		claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
		if err != nil {
			handleAuthError(c, cfg, err, "Token validation failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()

			// Individual logout
			if claims.ID != "" {
				revoked, err := cfg.TokenBlacklist.IsRevoked(ctx, claims.ID)
				if err != nil {
					// fail open
					if cfg.Logger != nil {
						cfg.Logger.Error("Failed to check token blacklist",
							zap.String("jti", claims.ID),
							zap.Error(err))
					}
				} else if revoked {
					handleAuthError(c, cfg, auth.ErrTokenRevoked, "Token has been revoked")
					return
				}
			}

			// Deactivation, role change or password change
			revoked, err := cfg.TokenBlacklist.IsUserRevoked(ctx, claims.UserID, claims.IssuedAtTime())
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.Error("Failed to check user token revocation",
						zap.String("user_id", claims.UserID),
						zap.Error(err))
				}
			} else if revoked {
				handleAuthError(c, cfg, auth.ErrTokenRevoked, "User session has been invalidated")
				return
			}
		}

		setClaims(c, claims)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))

		if cfg.Logger != nil {
			cfg.Logger.Debug("JWT authentication successful",
				zap.String("user_id", claims.UserID),
				zap.String("username", claims.Username),
				zap.String("role", claims.Role),
			)
		}

		c.Next()
	}
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(JWTClaimsKey, claims)
	c.Set(JWTUserIDKey, claims.UserID)
	c.Set(JWTUsernameKey, claims.Username)
	c.Set(JWTRoleKey, claims.Role)
	// read by the request logger
	c.Set("user_id", claims.UserID)
}

// handleAuthError handles authentication errors
func handleAuthError(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("JWT authentication failed",
			zap.Error(err),
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
		)
	}

	errorCode := "UNAUTHORIZED"
	errorMessage := "Authentication required"

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		errorCode = "TOKEN_EXPIRED"
		errorMessage = "Token has expired"
	case errors.Is(err, auth.ErrInvalidTokenType):
		errorCode = "TOKEN_INVALID"
		errorMessage = "Invalid token type"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidClaims):
		errorCode = "TOKEN_INVALID"
		errorMessage = "Invalid token"
	case errors.Is(err, auth.ErrTokenRevoked):
		errorCode = "TOKEN_REVOKED"
		errorMessage = "Token has been revoked"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":       errorCode,
			"message":    errorMessage,
			"request_id": c.GetString(RequestIDKey),
		},
	})
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetJWTUserID retrieves the user ID from JWT claims in context
func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}

// GetJWTUsername retrieves the username from JWT claims in context
func GetJWTUsername(c *gin.Context) string {
	return c.GetString(JWTUsernameKey)
}

// GetJWTRole retrieves the role from JWT claims in context
func GetJWTRole(c *gin.Context) string {
	return c.GetString(JWTRoleKey)
}

// GetPrincipal returns the authenticated caller. ok is false when the
// request carries no valid claims.
func GetPrincipal(c *gin.Context) (employee.Principal, bool) {
	claims := GetJWTClaims(c)
	if claims == nil {
		return employee.Principal{}, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return employee.Principal{}, false
	}
	return employee.Principal{ID: id, Role: employee.Role(claims.Role)}, true
}
