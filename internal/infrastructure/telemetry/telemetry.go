// Package telemetry wires OpenTelemetry traces, metrics and logs, plus
// Pyroscope profiling, for the HRMS backend. Every provider degrades to a
// no-op when its signal is disabled.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"github.com/asnhr/hrms/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.uber.org/zap"
)

// ServiceVersion is reported as service.version on every signal
const ServiceVersion = "1.0.0"

// Providers bundles the three signal providers started for one process
type Providers struct {
	Tracer   *TracerProvider
	Meter    *MeterProvider
	Logs     *LoggerProvider
	Profiler *Profiler
}

// Setup starts the providers enabled by cfg
func Setup(ctx context.Context, cfg config.TelemetryConfig, logger *zap.Logger) (*Providers, error) {
	tp, err := NewTracerProvider(ctx, Config{
		Enabled:           cfg.Enabled,
		CollectorEndpoint: cfg.CollectorEndpoint,
		SamplingRatio:     cfg.SamplingRatio,
		ServiceName:       cfg.ServiceName,
		Insecure:          cfg.Insecure,
	}, logger)
	if err != nil {
		return nil, err
	}
	mp, err := NewMeterProvider(ctx, MetricsConfig{
		Enabled:           cfg.Enabled && cfg.MetricsEnabled,
		CollectorEndpoint: cfg.CollectorEndpoint,
		ExportInterval:    cfg.MetricsInterval,
		ServiceName:       cfg.ServiceName,
		Insecure:          cfg.Insecure,
	}, logger)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	lp, err := NewLoggerProvider(ctx, LogsConfig{
		Enabled:           cfg.Enabled && cfg.LogsEnabled,
		CollectorEndpoint: cfg.CollectorEndpoint,
		ServiceName:       cfg.ServiceName,
		Insecure:          cfg.Insecure,
	}, logger)
	if err != nil {
		_ = mp.Shutdown(ctx)
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	prof, err := NewProfiler(ProfilerConfig{
		Enabled:           cfg.ProfilingEnabled,
		ServerAddress:     cfg.ProfilingServerAddress,
		ApplicationName:   cfg.ServiceName,
		BasicAuthUser:     cfg.ProfilingBasicAuthUser,
		BasicAuthPassword: cfg.ProfilingBasicAuthPassword,
	}, logger)
	if err != nil {
		_ = lp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		_ = tp.Shutdown(ctx)
		return nil, err
	}
	if prof.IsEnabled() {
		tp.EnableSpanProfiles()
	}
	return &Providers{Tracer: tp, Meter: mp, Logs: lp, Profiler: prof}, nil
}

// Shutdown flushes and stops every provider, logs last. The profiler
// stops first since it has no context-aware shutdown.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}
	return errors.Join(
		p.Profiler.Stop(),
		p.Tracer.Shutdown(ctx),
		p.Meter.Shutdown(ctx),
		p.Logs.Shutdown(ctx),
	)
}

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}
