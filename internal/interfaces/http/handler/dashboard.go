package handler

import (
	appdash "github.com/asnhr/hrms/internal/application/dashboard"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing page figures
type DashboardHandler struct {
	BaseHandler
	dashboardService *appdash.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *appdash.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get godoc
// @ID           getDashboard
// @Summary      Dashboard
// @Description  Today's headcount figures, the next three holidays and the caller's month
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[appdash.Dashboard]
// @Security     BearerAuth
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	dash, err := h.dashboardService.Get(c.Request.Context(), p)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dash)
}
