package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew(t *testing.T) {
	t.Run("console and json", func(t *testing.T) {
		for _, env := range []string{"development", "production"} {
			l, err := New(ConfigForEnvironment(env, "debug"))
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
		}
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New(&Config{Level: "chatty"})
		assert.Error(t, err)
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l, err := New(&Config{Level: "info", Format: "json", Output: path})
		require.NoError(t, err)
		l.Info("hello")
		require.NoError(t, l.Sync())
		assert.FileExists(t, path)
	})

	t.Run("extra cores receive entries", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		l, err := New(&Config{Level: "info", Output: "stderr"}, core)
		require.NoError(t, err)
		l.Info("teed")
		assert.Equal(t, 1, logs.FilterMessage("teed").Len())
	})
}

func TestEnrich(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := WithContext(context.Background(), zap.New(core))
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithUserID(ctx, "emp-7")

	L(ctx).Info("approved")

	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "emp-7", fields["user_id"])
	assert.NotContains(t, fields, "trace_id")

	assert.Equal(t, "", GetTraceID(context.Background()))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.DebugLevel)

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("request_id", "abc") })
	r.Use(GinMiddleware(zap.New(core)), Recovery(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) {
		assert.Equal(t, "abc", GetRequestID(c.Request.Context()))
		GetGinLogger(c).Info("inside")
		c.Status(http.StatusOK)
	})
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	for _, path := range []string{"/ok", "/missing", "/panic"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if path == "/panic" {
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
		}
	}

	requests := logs.FilterMessage("HTTP Request").All()
	require.Len(t, requests, 3)
	assert.Equal(t, zapcore.InfoLevel, requests[0].Level)
	assert.Equal(t, zapcore.WarnLevel, requests[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, requests[2].Level)
	assert.Equal(t, 1, logs.FilterMessage("inside").Len())
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Info, WithSlowThreshold(10*time.Millisecond))
	fc := func() (string, int64) { return "SELECT * FROM employees", 1 }

	gl.Trace(context.Background(), time.Now(), fc, nil)
	gl.Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
	gl.Trace(context.Background(), time.Now(), fc, errors.New("relation missing"))
	gl.Trace(context.Background(), time.Now(), fc, gormlogger.ErrRecordNotFound)

	assert.Equal(t, 2, logs.FilterMessage("SQL Query").Len())
	assert.Equal(t, 1, logs.FilterMessage("SQL Error").Len())
	assert.Equal(t, 1, logs.FilterMessage("SLOW SQL").Len())

	strict := NewGormLogger(zap.New(core), gormlogger.Error, WithRecordNotFound(true))
	strict.Trace(context.Background(), time.Now(), fc, gormlogger.ErrRecordNotFound)
	strict.Trace(context.Background(), time.Now(), fc, nil)
	assert.Equal(t, 2, logs.FilterMessage("SQL Error").Len())
	assert.Equal(t, 2, logs.FilterMessage("SQL Query").Len())

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), fc, errors.New("ignored"))
	assert.Equal(t, 2, logs.FilterMessage("SQL Error").Len())
}

func TestGormLogger_RedactsPasswordHashes(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), gormlogger.Info)
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	insert := `INSERT INTO "employees" ("username","password_hash") VALUES ('asha','` + hash + `')`

	gl.Trace(context.Background(), time.Now(), func() (string, int64) { return insert, 1 }, nil)

	entries := logs.FilterMessage("SQL Query").All()
	require.Len(t, entries, 1)
	logged := entries[0].ContextMap()["sql"].(string)
	assert.NotContains(t, logged, hash)
	assert.Contains(t, logged, "'[REDACTED]'")
	assert.Equal(t, "SELECT 1", RedactSQL("SELECT 1"))
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLevel("debug"))
	assert.Equal(t, gormlogger.Error, GormLevel("error"))
	assert.Equal(t, gormlogger.Warn, GormLevel("whatever"))
}
