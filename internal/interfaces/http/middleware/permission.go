package middleware

import (
	"net/http"
	"strings"

	"github.com/asnhr/hrms/internal/infrastructure/authz"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PermissionConfig holds configuration for permission middleware
type PermissionConfig struct {
	// Authorizer evaluates the role policy; required
	Authorizer *authz.Authorizer
	// Logger for middleware logging
	Logger *zap.Logger
	// OnDenied is called when permission is denied (optional)
	OnDenied func(c *gin.Context, resource, action string)
}

// RequireResource checks the caller's role against resource with an action
// derived from the HTTP method:
//   - GET, HEAD -> read
//   - anything else -> write
func RequireResource(cfg PermissionConfig, resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		check(c, cfg, resource, methodToAction(c.Request.Method))
	}
}

// RequireResourceAction checks a fixed resource and action
func RequireResourceAction(cfg PermissionConfig, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		check(c, cfg, resource, action)
	}
}

func check(c *gin.Context, cfg PermissionConfig, resource, action string) {
	claims := GetJWTClaims(c)
	if claims == nil {
		handlePermissionDenied(c, cfg, resource, action, "No authentication claims found")
		return
	}

	allowed, enforced, err := cfg.Authorizer.Authorize(claims.Role, resource, action)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("Policy evaluation failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err))
		}
		handlePermissionDenied(c, cfg, resource, action, "Policy evaluation failed")
		return
	}
	if !allowed && enforced {
		handlePermissionDenied(c, cfg, resource, action, "Role lacks required permission")
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Debug("Permission check passed",
			zap.String("user_id", claims.UserID),
			zap.String("role", claims.Role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Bool("enforced", enforced),
		)
	}
	c.Next()
}

// methodToAction converts HTTP method to policy action
func methodToAction(method string) string {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead:
		return authz.ActionRead
	default:
		return authz.ActionWrite
	}
}

// handlePermissionDenied handles permission denied scenarios
func handlePermissionDenied(c *gin.Context, cfg PermissionConfig, resource, action, reason string) {
	if cfg.OnDenied != nil {
		cfg.OnDenied(c, resource, action)
		return
	}

	if cfg.Logger != nil {
		cfg.Logger.Warn("Permission denied",
			zap.String("reason", reason),
			zap.String("user_id", GetJWTUserID(c)),
			zap.String("role", GetJWTRole(c)),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
	}

	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":       "FORBIDDEN",
			"message":    "Access denied: insufficient permissions",
			"request_id": c.GetString(RequestIDKey),
		},
	})
}
