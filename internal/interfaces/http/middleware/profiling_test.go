package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProfilingLabels(t *testing.T) {
	var route string
	r := gin.New()
	r.Use(ProfilingLabels())
	r.GET("/api/v1/employees/:id", func(c *gin.Context) {
		route, _ = pprof.Label(c.Request.Context(), telemetry.ProfilingLabelRoute)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/employees/42", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "/api/v1/employees/:id", route)
}
