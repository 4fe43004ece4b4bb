package handler

import (
	"context"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/asnhr/hrms/internal/infrastructure/logger"
	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is a dependency the health check pings
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

// Ping calls f
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// SystemHandler serves health and build information
type SystemHandler struct {
	BaseHandler
	version   string
	startTime time.Time
	checks    map[string]Pinger
	timeout   time.Duration
}

// NewSystemHandler creates a new SystemHandler; Health runs the checks
func NewSystemHandler(version string, checks map[string]Pinger) *SystemHandler {
	return &SystemHandler{
		version:   version,
		startTime: time.Now(),
		checks:    checks,
		timeout:   2 * time.Second,
	}
}

// HealthResponse reports the state of each dependency
type HealthResponse struct {
	Status     string            `json:"status" example:"healthy"`
	Time       string            `json:"time" example:"2025-03-10T09:30:00Z"`
	Components map[string]string `json:"components"`
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name" example:"HRMS API"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// Health godoc
// @ID           health
// @Summary      Health check
// @Description  503 when any dependency fails its ping
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{
		Status:     "healthy",
		Time:       time.Now().UTC().Format(time.RFC3339),
		Components: make(map[string]string, len(names)),
	}
	status := http.StatusOK
	for _, name := range names {
		if err := h.checks[name].Ping(ctx); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.String("component", name), zap.Error(err))
			resp.Components[name] = "error"
			resp.Status = "unhealthy"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Components[name] = "ok"
	}
	c.JSON(status, resp)
}

// GetSystemInfo godoc
// @ID           getSystemInfo
// @Summary      Get system information
// @Tags         system
// @Produce      json
// @Success      200 {object} APIResponse[SystemInfoResponse]
// @Security     BearerAuth
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(SystemInfoResponse{
		Name:      "HRMS API",
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}))
}
