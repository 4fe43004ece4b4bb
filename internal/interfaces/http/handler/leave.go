package handler

import (
	"net/http"
	"strconv"
	"time"

	appleave "github.com/asnhr/hrms/internal/application/leave"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeaveHandler handles leave request endpoints
type LeaveHandler struct {
	BaseHandler
	leaveService *appleave.LeaveService
}

// NewLeaveHandler creates a new leave handler
func NewLeaveHandler(leaveService *appleave.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveService: leaveService}
}

// ListLeaveRequest holds the leave listing query
type ListLeaveRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Type     string `form:"type" binding:"omitempty,oneof=annual sick personal halfday other unpaid workfromhome"`
	Search   string `form:"search" binding:"max=100"`
}

// SubmitLeaveRequest is the body of POST /leave-requests.
// employee_id defaults to the caller; only admin and hr may file for others.
type SubmitLeaveRequest struct {
	EmployeeID *uuid.UUID `json:"employee_id"`
	Type       string     `json:"type" binding:"required,oneof=annual sick personal halfday other unpaid workfromhome" example:"annual"`
	StartDate  string     `json:"start_date" binding:"required,datetime=2006-01-02" example:"2025-03-10"`
	EndDate    string     `json:"end_date" binding:"required,datetime=2006-01-02" example:"2025-03-11"`
	Reason     string     `json:"reason" binding:"required,max=500"`
}

// DecideLeaveRequest is the body of PUT /leave-requests/:id
type DecideLeaveRequest struct {
	Status  string `json:"status" binding:"required,oneof=approved rejected" example:"approved"`
	Remarks string `json:"remarks" binding:"max=500"`
}

// List godoc
// @ID           listLeaveRequests
// @Summary      List leave requests
// @Description  Employees only see their own requests
// @Tags         leave
// @Produce      json
// @Param        page query int false "Page" default(1)
// @Param        page_size query int false "Page size" default(20)
// @Param        userId query string false "Employee" format(uuid)
// @Param        status query string false "pending, approved or rejected"
// @Param        type query string false "Leave type"
// @Param        search query string false "Type, reason, status or employee name"
// @Success      200 {object} PagedResponse[appleave.LeaveResponse]
// @Security     BearerAuth
// @Router       /leave-requests [get]
func (h *LeaveHandler) List(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req ListLeaveRequest
	if !h.bindQuery(c, &req) {
		return
	}
	empID, ok := h.queryUUID(c, "userId")
	if !ok {
		return
	}

	page, err := h.leaveService.List(c.Request.Context(), p, appleave.ListLeaveInput{
		Page:       req.Page,
		PageSize:   req.PageSize,
		EmployeeID: empID,
		Status:     leave.Status(req.Status),
		Type:       leave.Type(req.Type),
		Search:     req.Search,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get godoc
// @ID           getLeaveRequest
// @Summary      Get a leave request
// @Tags         leave
// @Produce      json
// @Param        id path string true "Leave request ID" format(uuid)
// @Success      200 {object} APIResponse[appleave.LeaveResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /leave-requests/{id} [get]
func (h *LeaveHandler) Get(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.leaveService.Get(c.Request.Context(), p, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Submit godoc
// @ID           submitLeaveRequest
// @Summary      Apply for leave
// @Description  Requests over the monthly paid limit are accepted as unpaid
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        request body SubmitLeaveRequest true "Leave request"
// @Success      201 {object} APIResponse[appleave.LeaveResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /leave-requests [post]
func (h *LeaveHandler) Submit(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req SubmitLeaveRequest
	if !h.bindJSON(c, &req) {
		return
	}
	empID := p.ID
	if req.EmployeeID != nil && *req.EmployeeID != p.ID {
		if !p.Role.CanManagePeople() {
			h.Error(c, http.StatusForbidden, dto.ErrCodeForbidden, "You can only apply for your own leave")
			return
		}
		empID = *req.EmployeeID
	}
	start, _ := time.Parse(DateLayout, req.StartDate)
	end, _ := time.Parse(DateLayout, req.EndDate)

	resp, err := h.leaveService.Submit(c.Request.Context(), appleave.SubmitLeaveInput{
		EmployeeID: empID,
		Type:       leave.Type(req.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Decide godoc
// @ID           decideLeaveRequest
// @Summary      Approve or reject a leave request
// @Tags         leave
// @Accept       json
// @Produce      json
// @Param        id path string true "Leave request ID" format(uuid)
// @Param        request body DecideLeaveRequest true "Decision"
// @Success      200 {object} APIResponse[appleave.LeaveResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /leave-requests/{id} [put]
func (h *LeaveHandler) Decide(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req DecideLeaveRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.leaveService.Decide(c.Request.Context(), p, id, appleave.DecideLeaveInput{
		Status:  leave.Status(req.Status),
		Remarks: req.Remarks,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cancel godoc
// @ID           cancelLeaveRequest
// @Summary      Cancel a pending leave request
// @Tags         leave
// @Param        id path string true "Leave request ID" format(uuid)
// @Success      204
// @Failure      403 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /leave-requests/{id} [delete]
func (h *LeaveHandler) Cancel(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.leaveService.Cancel(c.Request.Context(), p, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Analytics godoc
// @ID           leaveAnalytics
// @Summary      Leave request counters
// @Tags         leave
// @Produce      json
// @Success      200 {object} APIResponse[leave.Analytics]
// @Security     BearerAuth
// @Router       /leave-requests/analytics [get]
func (h *LeaveHandler) Analytics(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	a, err := h.leaveService.Analytics(c.Request.Context(), p)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, a)
}

// MonthlyUsage godoc
// @ID           leaveMonthlyUsage
// @Summary      Paid leave used in a month
// @Tags         leave
// @Produce      json
// @Param        userId query string false "Employee, defaults to the caller" format(uuid)
// @Param        month query string false "Month as YYYY-MM, defaults to the current month"
// @Success      200 {object} APIResponse[leave.MonthlyUsage]
// @Security     BearerAuth
// @Router       /leave-requests/monthly-usage [get]
func (h *LeaveHandler) MonthlyUsage(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	empID, ok := h.queryUUID(c, "userId")
	if !ok {
		return
	}
	var month time.Time
	if raw := c.Query("month"); raw != "" {
		m, err := time.Parse("2006-01", raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, "INVALID_MONTH", "month must be in the form YYYY-MM")
			return
		}
		month = m
	}
	id := uuid.Nil
	if empID != nil {
		id = *empID
	}

	usage, err := h.leaveService.MonthlyUsage(c.Request.Context(), p, id, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, usage)
}

// Balance godoc
// @ID           leaveBalance
// @Summary      Yearly leave balance of an employee
// @Tags         leave
// @Produce      json
// @Param        id path string true "Employee ID" format(uuid)
// @Param        year query int false "Calendar year, defaults to the current year"
// @Success      200 {object} APIResponse[leave.Balance]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /employees/{id}/leave-balance [get]
func (h *LeaveHandler) Balance(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	year := 0
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			h.Error(c, http.StatusBadRequest, "INVALID_YEAR", "year must be a four digit year")
			return
		}
		year = y
	}

	b, err := h.leaveService.Balance(c.Request.Context(), p, id, year)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}
