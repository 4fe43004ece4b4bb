package middleware

import (
	"context"

	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// ProfilingLabels tags CPU samples taken while serving a request with its
// route template, so flame graphs can be split per endpoint.
func ProfilingLabels() gin.HandlerFunc {
	return func(c *gin.Context) {
		telemetry.WithProfilingLabels(c.Request.Context(), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		}, telemetry.ProfilingLabelRoute, getRoutePattern(c))
	}
}
