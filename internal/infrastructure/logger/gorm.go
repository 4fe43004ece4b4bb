package logger

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// bcrypt hashes appear in employee INSERT/UPDATE statements
var passwordHashPattern = regexp.MustCompile(`\$2[aby]\$\d{2}\$[./A-Za-z0-9]{53}`)

const redacted = "[REDACTED]"

// GormLogger routes GORM's logging through zap with the request's fields attached
type GormLogger struct {
	logger        *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	logNotFound   bool
}

// GormLoggerOption configures a GormLogger
type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets the duration above which a statement is logged as slow
func WithSlowThreshold(threshold time.Duration) GormLoggerOption {
	return func(l *GormLogger) {
		l.slowThreshold = threshold
	}
}

// WithRecordNotFound reports gorm.ErrRecordNotFound as an SQL error instead of a plain query
func WithRecordNotFound(enabled bool) GormLoggerOption {
	return func(l *GormLogger) {
		l.logNotFound = enabled
	}
}

// NewGormLogger creates a GORM logger backed by zap
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	gl := &GormLogger{
		logger:        zapLogger.Named("gorm"),
		level:         level,
		slowThreshold: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		Enrich(ctx, l.logger).Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		Enrich(ctx, l.logger).Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		Enrich(ctx, l.logger).Sugar().Errorf(msg, data...)
	}
}

// Trace logs one statement: errors at error level, slow statements at warn, the rest at debug.
// Password hashes are masked in the logged SQL.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold
	failed := err != nil && (l.logNotFound || !errors.Is(err, gormlogger.ErrRecordNotFound))

	var msg string
	switch {
	case failed && l.level >= gormlogger.Error:
		msg = "SQL Error"
	case slow && l.level >= gormlogger.Warn:
		msg = "SLOW SQL"
	case l.level >= gormlogger.Info:
		msg = "SQL Query"
	default:
		return
	}

	sql, rows := fc()
	fields := []zap.Field{
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", RedactSQL(sql)),
	}
	log := Enrich(ctx, l.logger)
	switch msg {
	case "SQL Error":
		log.Error(msg, append(fields, zap.Error(err))...)
	case "SLOW SQL":
		log.Warn(msg, append(fields, zap.Duration("threshold", l.slowThreshold))...)
	default:
		log.Debug(msg, fields...)
	}
}

// RedactSQL masks bcrypt password hashes in a rendered statement
func RedactSQL(sql string) string {
	return passwordHashPattern.ReplaceAllString(sql, redacted)
}

// GormLevel maps the application log level onto GORM's levels
func GormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info", "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
