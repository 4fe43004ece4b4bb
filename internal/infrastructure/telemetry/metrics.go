package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ExportInterval    time.Duration
	ServiceName       string
	Insecure          bool
}

// MeterProvider wraps the SDK meter provider with lifecycle management
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
}

// NewMeterProvider pushes metrics over OTLP gRPC at ExportInterval (default 60s)
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{logger: logger}
	if !cfg.Enabled {
		logger.Info("Metrics disabled, using no-op meter provider")
		return mp, nil
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = 60 * time.Second
	}
	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
	)
	return mp, nil
}

// Shutdown flushes pending metrics
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp == nil || mp.provider == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		mp.logger.Error("Error shutting down meter provider", zap.Error(err))
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	return nil
}

// Meter returns a named meter, falling back to the global provider
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if mp == nil || mp.provider == nil {
		return otel.GetMeterProvider().Meter(name, opts...)
	}
	return mp.provider.Meter(name, opts...)
}

// IsEnabled reports whether metrics are exported
func (mp *MeterProvider) IsEnabled() bool {
	return mp != nil && mp.provider != nil
}

// Counter is a monotonically increasing int64 instrument
type Counter struct {
	counter metric.Int64Counter
}

// NewCounter creates a counter
func NewCounter(meter metric.Meter, name, description, unit string) (*Counter, error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(description), metric.WithUnit(unit))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return &Counter{counter: c}, nil
}

// Inc adds one
func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// Histogram records a float64 distribution
type Histogram struct {
	histogram metric.Float64Histogram
}

// NewHistogram creates a histogram with explicit bucket boundaries
func NewHistogram(meter metric.Meter, name, description, unit string, boundaries []float64) (*Histogram, error) {
	opts := []metric.Float64HistogramOption{metric.WithDescription(description), metric.WithUnit(unit)}
	if len(boundaries) > 0 {
		opts = append(opts, metric.WithExplicitBucketBoundaries(boundaries...))
	}
	h, err := meter.Float64Histogram(name, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", name, err)
	}
	return &Histogram{histogram: h}, nil
}

// Record records a raw value
func (h *Histogram) Record(ctx context.Context, v float64, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, v, metric.WithAttributes(attrs...))
}

// RecordDuration records d in seconds
func (h *Histogram) RecordDuration(ctx context.Context, d time.Duration, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, d.Seconds(), metric.WithAttributes(attrs...))
}

// Metric attribute keys
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrHTTPRoute      = attribute.Key("http.route")

	AttrDBOperation = attribute.Key("db.operation")
	AttrDBTable     = attribute.Key("db.table")
	AttrDBState     = attribute.Key("db.pool.state")

	AttrReport     = attribute.Key("report")
	AttrFormat     = attribute.Key("format")
	AttrOutcome    = attribute.Key("outcome")
	AttrLeaveType  = attribute.Key("leave_type")
	AttrLeaveState = attribute.Key("leave_status")
	AttrAttendance = attribute.Key("attendance_status")
)

// Histogram bucket boundaries in seconds
var (
	HTTPDurationBuckets   = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	DBDurationBuckets     = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}
	RenderDurationBuckets = []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30}
)
