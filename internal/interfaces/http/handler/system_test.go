package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemHandler_Health(t *testing.T) {
	ok := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("healthy", func(t *testing.T) {
		h := NewSystemHandler("1.0.0", map[string]Pinger{"database": ok})
		r := newEngine()
		r.GET("/health", h.Health)

		w := perform(t, r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, map[string]string{"database": "ok"}, resp.Components)
	})

	t.Run("one dependency down", func(t *testing.T) {
		h := NewSystemHandler("1.0.0", map[string]Pinger{"database": ok, "redis": down})
		r := newEngine()
		r.GET("/health", h.Health)

		w := perform(t, r, http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "ok", resp.Components["database"])
		assert.Equal(t, "error", resp.Components["redis"])
	})

	t.Run("no checks", func(t *testing.T) {
		h := NewSystemHandler("1.0.0", nil)
		r := newEngine()
		r.GET("/health", h.Health)
		assert.Equal(t, http.StatusOK, perform(t, r, http.MethodGet, "/health", nil).Code)
	})
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	h := NewSystemHandler("2.3.1", nil)
	r := newEngine()
	r.GET("/system/info", h.GetSystemInfo)

	info := decodeData[SystemInfoResponse](t, perform(t, r, http.MethodGet, "/system/info", nil))
	assert.Equal(t, "HRMS API", info.Name)
	assert.Equal(t, "2.3.1", info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
