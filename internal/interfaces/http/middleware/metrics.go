package middleware

import (
	"time"

	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// httpMetrics holds all HTTP-related metrics instruments.
type httpMetrics struct {
	requestTotal    *telemetry.Counter
	requestDuration *telemetry.Histogram
	responseSize    *telemetry.Histogram
	activeRequests  metric.Int64UpDownCounter
}

func newHTTPMetrics(meter metric.Meter) (*httpMetrics, error) {
	requestTotal, err := telemetry.NewCounter(meter,
		"http_server_request_total",
		"Total number of HTTP requests",
		"{request}",
	)
	if err != nil {
		return nil, err
	}
	requestDuration, err := telemetry.NewHistogram(meter,
		"http_server_request_duration_seconds",
		"HTTP request latency distribution in seconds",
		"s",
		telemetry.HTTPDurationBuckets,
	)
	if err != nil {
		return nil, err
	}
	// reports can be several megabytes
	responseSize, err := telemetry.NewHistogram(meter,
		"http_server_response_size_bytes",
		"HTTP response body size distribution in bytes",
		"By",
		[]float64{100, 1000, 10000, 100000, 1000000, 5000000, 20000000},
	)
	if err != nil {
		return nil, err
	}
	activeRequests, err := meter.Int64UpDownCounter(
		"http_server_active_requests",
		metric.WithDescription("Number of currently active HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	return &httpMetrics{
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		responseSize:    responseSize,
		activeRequests:  activeRequests,
	}, nil
}

// HTTPMetrics returns a middleware recording request count, latency,
// response size and in-flight requests. A nil meter disables it.
//
// Routes are labelled by pattern (/api/v1/employees/:id), never by raw path.
func HTTPMetrics(meter metric.Meter) (gin.HandlerFunc, error) {
	if meter == nil {
		return func(c *gin.Context) { c.Next() }, nil
	}
	m, err := newHTTPMetrics(meter)
	if err != nil {
		return nil, err
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()
		m.activeRequests.Add(ctx, 1)

		c.Next()

		m.activeRequests.Add(ctx, -1)
		route := getRoutePattern(c)
		base := []attribute.KeyValue{
			telemetry.AttrHTTPMethod.String(c.Request.Method),
			telemetry.AttrHTTPRoute.String(route),
		}
		m.requestTotal.Inc(ctx, append(base, telemetry.AttrHTTPStatusCode.Int(c.Writer.Status()))...)
		m.requestDuration.RecordDuration(ctx, time.Since(start), base...)
		if size := c.Writer.Size(); size > 0 {
			m.responseSize.Record(ctx, float64(size), base...)
		}
	}, nil
}

func getRoutePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}
