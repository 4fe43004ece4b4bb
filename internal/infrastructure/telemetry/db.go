package telemetry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBConfig controls database instrumentation
type DBConfig struct {
	TraceEnabled    bool
	LogFullSQL      bool // query variables in spans; never in production
	SlowQueryThresh time.Duration
	DBName          string
}

const queryStartKey = "hrms:query_start"

// DBInstrumentation records spans, query metrics and slow queries for a gorm.DB
type DBInstrumentation struct {
	cfg    DBConfig
	logger *zap.Logger

	queries   metric.Int64Counter
	slow      metric.Int64Counter
	durations metric.Float64Histogram
}

// InstrumentDB registers otelgorm (when tracing is on) plus timing callbacks on db.
// meter may be nil to skip metrics; pool gauges read from sqlDB when it is not nil.
func InstrumentDB(db *gorm.DB, sqlDB *sql.DB, meter metric.Meter, cfg DBConfig, logger *zap.Logger) (*DBInstrumentation, error) {
	if cfg.SlowQueryThresh <= 0 {
		cfg.SlowQueryThresh = 200 * time.Millisecond
	}
	in := &DBInstrumentation{cfg: cfg, logger: logger}

	if cfg.TraceEnabled {
		opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
		if !cfg.LogFullSQL {
			opts = append(opts, otelgorm.WithoutQueryVariables())
		}
		if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
			return nil, fmt.Errorf("register otelgorm: %w", err)
		}
	}

	if meter != nil {
		if err := in.createInstruments(meter, sqlDB); err != nil {
			return nil, err
		}
	}
	if err := in.registerCallbacks(db); err != nil {
		return nil, err
	}

	logger.Info("Database instrumentation enabled",
		zap.Bool("tracing", cfg.TraceEnabled),
		zap.Bool("metrics", meter != nil),
		zap.Duration("slow_query_threshold", cfg.SlowQueryThresh),
	)
	return in, nil
}

func (in *DBInstrumentation) createInstruments(meter metric.Meter, sqlDB *sql.DB) error {
	var err error
	if in.queries, err = meter.Int64Counter("db_query_total",
		metric.WithDescription("Database queries by operation and table"), metric.WithUnit("{query}")); err != nil {
		return err
	}
	if in.slow, err = meter.Int64Counter("db_slow_query_total",
		metric.WithDescription("Queries slower than the slow query threshold"), metric.WithUnit("{query}")); err != nil {
		return err
	}
	if in.durations, err = meter.Float64Histogram("db_query_duration_seconds",
		metric.WithDescription("Database query latency"), metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DBDurationBuckets...)); err != nil {
		return err
	}
	if sqlDB == nil {
		return nil
	}
	_, err = meter.Int64ObservableGauge("db_pool_connections",
		metric.WithDescription("Connections in the pool by state"), metric.WithUnit("{connection}"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			s := sqlDB.Stats()
			o.Observe(int64(s.InUse), metric.WithAttributes(AttrDBState.String("in_use")))
			o.Observe(int64(s.Idle), metric.WithAttributes(AttrDBState.String("idle")))
			o.Observe(int64(s.MaxOpenConnections), metric.WithAttributes(AttrDBState.String("max")))
			return nil
		}))
	return err
}

type registerFunc func(name string, fn func(*gorm.DB)) error

func (in *DBInstrumentation) registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		op            string
		before, after registerFunc
	}{
		{"create",
			func(n string, f func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Create().After("gorm:create").Register(n, f) }},
		{"query",
			func(n string, f func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Query().After("gorm:query").Register(n, f) }},
		{"update",
			func(n string, f func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Update().After("gorm:update").Register(n, f) }},
		{"delete",
			func(n string, f func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Delete().After("gorm:delete").Register(n, f) }},
		{"row",
			func(n string, f func(*gorm.DB)) error { return cb.Row().Before("gorm:row").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Row().After("gorm:row").Register(n, f) }},
		{"raw",
			func(n string, f func(*gorm.DB)) error { return cb.Raw().Before("gorm:raw").Register(n, f) },
			func(n string, f func(*gorm.DB)) error { return cb.Raw().After("gorm:raw").Register(n, f) }},
	}
	for _, h := range hooks {
		op := h.op
		if err := h.before("hrms:before_"+op, startTimer); err != nil {
			return err
		}
		if err := h.after("hrms:after_"+op, func(db *gorm.DB) { in.observe(db, op) }); err != nil {
			return err
		}
	}
	return nil
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func (in *DBInstrumentation) observe(db *gorm.DB, op string) {
	v, ok := db.InstanceGet(queryStartKey)
	if !ok {
		return
	}
	start, ok := v.(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(start)
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	table := db.Statement.Table
	attrs := metric.WithAttributes(AttrDBOperation.String(op), AttrDBTable.String(table))

	if in.queries != nil {
		in.queries.Add(ctx, 1, attrs)
		in.durations.Record(ctx, elapsed.Seconds(), attrs)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(attribute.Int64("db.rows_affected", db.Statement.RowsAffected))
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, db.Error.Error())
		}
	}

	if elapsed <= in.cfg.SlowQueryThresh {
		return
	}
	if in.slow != nil {
		in.slow.Add(ctx, 1, attrs)
	}
	if span.IsRecording() {
		span.SetAttributes(attribute.Bool("db.slow_query", true))
	}
	in.logger.Warn("Slow query",
		zap.String("operation", op),
		zap.String("table", table),
		zap.Duration("elapsed", elapsed),
		zap.Duration("threshold", in.cfg.SlowQueryThresh),
	)
}
