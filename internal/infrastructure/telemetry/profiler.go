package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// Profiling label keys. Keep values low-cardinality: report names and
// formats, never employee ids.
const (
	ProfilingLabelReport = "report"
	ProfilingLabelFormat = "format"
	ProfilingLabelRoute  = "route"
)

// ProfilerConfig configures Pyroscope continuous profiling
type ProfilerConfig struct {
	Enabled           bool
	ServerAddress     string // e.g. "http://pyroscope:4040"
	ApplicationName   string
	BasicAuthUser     string
	BasicAuthPassword string
	// Contention profiles are off unless a rate is set
	MutexProfileFraction int
	BlockProfileRate     int
}

// Profiler owns the Pyroscope session
type Profiler struct {
	profiler *pyroscope.Profiler
	logger   *zap.Logger
	config   ProfilerConfig
	mu       sync.Mutex
	stopped  bool
}

// NewProfiler starts profiling when enabled; otherwise it returns a no-op profiler.
func NewProfiler(cfg ProfilerConfig, logger *zap.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger, config: cfg}
	if !cfg.Enabled {
		logger.Info("Continuous profiling disabled")
		return p, nil
	}
	if cfg.ServerAddress == "" {
		return nil, fmt.Errorf("profiler server address is required when profiling is enabled")
	}
	if cfg.ApplicationName == "" {
		return nil, fmt.Errorf("profiler application name is required when profiling is enabled")
	}

	if cfg.MutexProfileFraction > 0 {
		runtime.SetMutexProfileFraction(cfg.MutexProfileFraction)
	}
	if cfg.BlockProfileRate > 0 {
		runtime.SetBlockProfileRate(cfg.BlockProfileRate)
	}

	tags := map[string]string{}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		tags["hostname"] = hostname
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.ApplicationName,
		ServerAddress:     cfg.ServerAddress,
		BasicAuthUser:     cfg.BasicAuthUser,
		BasicAuthPassword: cfg.BasicAuthPassword,
		Logger:            pyroscopeLogger{logger.Named("pyroscope").Sugar()},
		Tags:              tags,
		ProfileTypes:      p.profileTypes(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	p.profiler = profiler

	logger.Info("Pyroscope profiler started",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
	)
	return p, nil
}

func (p *Profiler) profileTypes() []pyroscope.ProfileType {
	types := []pyroscope.ProfileType{
		pyroscope.ProfileCPU,
		pyroscope.ProfileAllocObjects,
		pyroscope.ProfileAllocSpace,
		pyroscope.ProfileInuseObjects,
		pyroscope.ProfileInuseSpace,
		pyroscope.ProfileGoroutines,
	}
	if p.config.MutexProfileFraction > 0 {
		types = append(types, pyroscope.ProfileMutexCount, pyroscope.ProfileMutexDuration)
	}
	if p.config.BlockProfileRate > 0 {
		types = append(types, pyroscope.ProfileBlockCount, pyroscope.ProfileBlockDuration)
	}
	return types
}

// Stop flushes pending profiles. Safe to call more than once.
func (p *Profiler) Stop() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped || p.profiler == nil {
		p.stopped = true
		return nil
	}
	p.stopped = true
	if err := p.profiler.Stop(); err != nil {
		p.logger.Error("Error stopping profiler", zap.Error(err))
		return fmt.Errorf("failed to stop profiler: %w", err)
	}
	p.logger.Info("Pyroscope profiler stopped")
	return nil
}

// IsEnabled reports whether profiles are being pushed
func (p *Profiler) IsEnabled() bool {
	return p != nil && p.profiler != nil
}

// WithProfilingLabels runs fn with pprof labels attached, so CPU samples
// taken inside can be filtered by them. kv holds key, value pairs; a
// trailing key without a value is dropped.
func WithProfilingLabels(ctx context.Context, fn func(context.Context), kv ...string) {
	if len(kv)%2 == 1 {
		kv = kv[:len(kv)-1]
	}
	if len(kv) == 0 {
		fn(ctx)
		return
	}
	pyroscope.TagWrapper(ctx, pyroscope.Labels(kv...), fn)
}

type pyroscopeLogger struct {
	s *zap.SugaredLogger
}

func (l pyroscopeLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l pyroscopeLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l pyroscopeLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
