package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MaxRequestIDLength bounds the request id copied into span attributes
const MaxRequestIDLength = 128

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
	// TracerProvider overrides the global provider when set.
	TracerProvider trace.TracerProvider
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "hrms-backend",
		Enabled:     true,
	}
}

// TracingWithConfig returns otelgin followed by a handler that tags the
// request span. Spans are named "METHOD /route/:param" and carry request_id,
// and user_id and role once authenticated. Register the chain with Use(chain...).
func TracingWithConfig(cfg TracingConfig) gin.HandlersChain {
	if !cfg.Enabled {
		return gin.HandlersChain{func(c *gin.Context) {
			c.Next()
		}}
	}

	var opts []otelgin.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}
	return gin.HandlersChain{otelgin.Middleware(cfg.ServiceName, opts...), spanAttributes}
}

// spanAttributes runs inside the otelgin span, so the span is still open
// when the rest of the chain returns
func spanAttributes(c *gin.Context) {
	c.Next()

	span := trace.SpanFromContext(c.Request.Context())
	if span.IsRecording() {
		enrichSpanWithAttributes(c, span)
	}
}

func enrichSpanWithAttributes(c *gin.Context, span trace.Span) {
	if requestID := c.GetString(RequestIDKey); requestID != "" {
		if len(requestID) > MaxRequestIDLength {
			requestID = requestID[:MaxRequestIDLength]
		}
		span.SetAttributes(attribute.String("request_id", requestID))
	}
	if userID := GetJWTUserID(c); userID != "" {
		span.SetAttributes(attribute.String("user_id", userID))
	}
	if role := GetJWTRole(c); role != "" {
		span.SetAttributes(attribute.String("user_role", role))
	}
}

// SpanErrorMarker marks the current span as failed for 4xx and 5xx responses.
// Place it after TracingWithConfig.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode < http.StatusBadRequest {
			return
		}
		span.SetStatus(codes.Error, http.StatusText(statusCode))
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
}
