package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogsConfig holds OTLP log export configuration
type LogsConfig struct {
	Enabled           bool
	CollectorEndpoint string
	ServiceName       string
	Insecure          bool
}

// LoggerProvider wraps the SDK logger provider with lifecycle management
type LoggerProvider struct {
	provider *sdklog.LoggerProvider
	logger   *zap.Logger
	service  string
}

// NewLoggerProvider batches log records to the collector over OTLP gRPC
func NewLoggerProvider(ctx context.Context, cfg LogsConfig, logger *zap.Logger) (*LoggerProvider, error) {
	lp := &LoggerProvider{logger: logger, service: cfg.ServiceName}
	if !cfg.Enabled {
		logger.Info("OTEL logs disabled, using no-op logger provider")
		return lp, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP logs exporter: %w", err)
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, err
	}

	lp.provider = sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	)
	global.SetLoggerProvider(lp.provider)
	logger.Info("OpenTelemetry LoggerProvider initialized", zap.String("collector_endpoint", cfg.CollectorEndpoint))
	return lp, nil
}

// Shutdown flushes pending log records
func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp == nil || lp.provider == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := lp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown logger provider: %w", err)
	}
	return nil
}

// IsEnabled reports whether log records are exported
func (lp *LoggerProvider) IsEnabled() bool {
	return lp != nil && lp.provider != nil
}

// ZapCore returns a core that forwards entries at or above minLevel to the
// collector, for teeing with the console core. Returns nil when disabled.
func (lp *LoggerProvider) ZapCore(minLevel zapcore.Level) zapcore.Core {
	if !lp.IsEnabled() {
		return nil
	}
	core := otelzap.NewCore(lp.service, otelzap.WithLoggerProvider(lp.provider))
	return &levelFilterCore{Core: core, minLevel: minLevel}
}

// levelFilterCore drops entries below minLevel; the otelzap core has no level of its own
type levelFilterCore struct {
	zapcore.Core
	minLevel zapcore.Level
}

func (c *levelFilterCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.minLevel && c.Core.Enabled(lvl)
}

func (c *levelFilterCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(entry.Level) {
		return ce
	}
	return c.Core.Check(entry, ce)
}

func (c *levelFilterCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilterCore{Core: c.Core.With(fields), minLevel: c.minLevel}
}
