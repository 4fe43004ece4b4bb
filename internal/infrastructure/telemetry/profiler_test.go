package telemetry

import (
	"context"
	"runtime/pprof"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

func TestNewProfiler_Disabled(t *testing.T) {
	p, err := NewProfiler(ProfilerConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())

	var nilProfiler *Profiler
	assert.NoError(t, nilProfiler.Stop())
	assert.False(t, nilProfiler.IsEnabled())
}

func TestNewProfiler_RequiresTarget(t *testing.T) {
	_, err := NewProfiler(ProfilerConfig{Enabled: true, ApplicationName: "hrms"}, zap.NewNop())
	assert.ErrorContains(t, err, "server address")

	_, err = NewProfiler(ProfilerConfig{Enabled: true, ServerAddress: "http://pyroscope:4040"}, zap.NewNop())
	assert.ErrorContains(t, err, "application name")
}

func TestProfiler_ContentionTypes(t *testing.T) {
	base := (&Profiler{}).profileTypes()
	assert.Len(t, base, 6)

	all := (&Profiler{config: ProfilerConfig{MutexProfileFraction: 5, BlockProfileRate: 5}}).profileTypes()
	assert.Len(t, all, 10)
}

func TestWithProfilingLabels(t *testing.T) {
	var report, format string
	var ok bool
	WithProfilingLabels(context.Background(), func(ctx context.Context) {
		report, ok = pprof.Label(ctx, ProfilingLabelReport)
		format, _ = pprof.Label(ctx, ProfilingLabelFormat)
	}, ProfilingLabelReport, "mlwf-statement", ProfilingLabelFormat, "pdf")

	assert.True(t, ok)
	assert.Equal(t, "mlwf-statement", report)
	assert.Equal(t, "pdf", format)

	called := false
	WithProfilingLabels(context.Background(), func(ctx context.Context) {
		called = true
		_, has := pprof.Label(ctx, ProfilingLabelRoute)
		assert.False(t, has)
	}, ProfilingLabelRoute)
	assert.True(t, called)
}

func TestEnableSpanProfiles(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	disabled := &TracerProvider{logger: zap.NewNop()}
	disabled.EnableSpanProfiles()
	assert.False(t, disabled.SpanProfilesEnabled())

	sdk := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = sdk.Shutdown(context.Background()) })
	tp := &TracerProvider{provider: sdk, logger: zap.NewNop()}
	tp.EnableSpanProfiles()
	tp.EnableSpanProfiles()
	assert.True(t, tp.SpanProfilesEnabled())
	_, unwrapped := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	assert.False(t, unwrapped)
}
