package middleware

import (
	"net/http"
	"strings"

	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimitConfig caps request bodies. Multipart uploads (challans, MLWF and
// holiday imports) get their own, larger cap.
type BodyLimitConfig struct {
	MaxBytes       int64
	MaxUploadBytes int64
}

// BodyLimit returns a middleware that limits request body size
func BodyLimit(cfg BodyLimitConfig) gin.HandlerFunc {
	if cfg.MaxUploadBytes < cfg.MaxBytes {
		cfg.MaxUploadBytes = cfg.MaxBytes
	}
	return func(c *gin.Context) {
		limit := cfg.MaxBytes
		if isMultipart(c.Request) {
			limit = cfg.MaxUploadBytes
		}
		if limit <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
				"REQUEST_TOO_LARGE", "Request body exceeds maximum allowed size", c.GetString(RequestIDKey)))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
