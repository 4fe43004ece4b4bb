package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SwaggerConfig holds configuration for Swagger endpoint protection
type SwaggerConfig struct {
	Enabled     bool     // Whether Swagger endpoint is enabled
	RequireAuth bool     // Require JWT authentication to access Swagger
	AllowedIPs  []string // IP whitelist (CIDR notation supported, empty = allow all)
}

// SwaggerProtection returns a middleware that guards the API docs.
//
// A disabled endpoint answers 404. When AllowedIPs is set only matching
// clients get through, and RequireAuth additionally runs jwtMiddleware.
func SwaggerProtection(cfg SwaggerConfig, jwtMiddleware gin.HandlerFunc) gin.HandlerFunc {
	allowedIPs, allowedNets := parseAllowList(cfg.AllowedIPs)

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeNotFound, "API documentation is not available", c.GetString(RequestIDKey)))
			return
		}

		if len(cfg.AllowedIPs) > 0 && !isIPAllowed(getClientIP(c), allowedIPs, allowedNets) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden, "Access to API documentation is restricted", c.GetString(RequestIDKey)))
			return
		}

		if cfg.RequireAuth && jwtMiddleware != nil {
			jwtMiddleware(c)
			if c.IsAborted() {
				return
			}
		}

		c.Next()
	}
}

func parseAllowList(entries []string) ([]net.IP, []*net.IPNet) {
	var ips []net.IP
	var nets []*net.IPNet
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.Contains(entry, "/") {
			if _, network, err := net.ParseCIDR(entry); err == nil {
				nets = append(nets, network)
			}
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			ips = append(ips, ip)
		}
	}
	return ips, nets
}

// getClientIP prefers gin's ClientIP, which honours trusted proxies
func getClientIP(c *gin.Context) net.IP {
	if ip := net.ParseIP(c.ClientIP()); ip != nil {
		return ip
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		host = c.Request.RemoteAddr
	}
	return net.ParseIP(host)
}

func isIPAllowed(ip net.IP, allowedIPs []net.IP, allowedNets []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, allowed := range allowedIPs {
		if allowed.Equal(ip) {
			return true
		}
	}
	for _, network := range allowedNets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
