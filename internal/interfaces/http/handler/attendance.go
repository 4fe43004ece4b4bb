package handler

import (
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	"github.com/asnhr/hrms/internal/application/report"
	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AttendanceHandler handles attendance endpoints and attendance reports
type AttendanceHandler struct {
	BaseHandler
	attendanceService *appatt.AttendanceService
	reportService     *report.ReportService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *appatt.AttendanceService, reportService *report.ReportService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService, reportService: reportService}
}

// RecordAttendanceRequest is the body of POST /attendance.
// employee_id defaults to the caller and date to today.
type RecordAttendanceRequest struct {
	EmployeeID   *uuid.UUID `json:"employee_id"`
	Date         string     `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2025-03-10"`
	Status       string     `json:"status" binding:"required,oneof=present absent halfday late" example:"present"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Remarks      string     `json:"remarks" binding:"max=500"`
}

// List godoc
// @ID           listAttendance
// @Summary      List attendance records
// @Description  date wins over from/to; employees only see their own records
// @Tags         attendance
// @Produce      json
// @Param        userId query string false "Employee" format(uuid)
// @Param        date query string false "Single date YYYY-MM-DD"
// @Param        from query string false "First date YYYY-MM-DD"
// @Param        to query string false "Last date YYYY-MM-DD"
// @Param        status query string false "present, absent, halfday or late"
// @Success      200 {object} APIResponse[[]appatt.AttendanceResponse]
// @Security     BearerAuth
// @Router       /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	input := appatt.ListAttendanceInput{Status: attendance.Status(c.Query("status"))}
	if input.EmployeeID, ok = h.queryUUID(c, "userId"); !ok {
		return
	}
	if input.Date, ok = h.queryDate(c, "date"); !ok {
		return
	}
	if input.From, ok = h.queryDate(c, "from"); !ok {
		return
	}
	if input.To, ok = h.queryDate(c, "to"); !ok {
		return
	}

	records, err := h.attendanceService.List(c.Request.Context(), p, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// Record godoc
// @ID           recordAttendance
// @Summary      Record attendance
// @Description  Creates or replaces the record of one employee for one date
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        request body RecordAttendanceRequest true "Attendance"
// @Success      200 {object} APIResponse[appatt.AttendanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /attendance [post]
func (h *AttendanceHandler) Record(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	var req RecordAttendanceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	input := appatt.RecordAttendanceInput{
		Status:       attendance.Status(req.Status),
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Remarks:      req.Remarks,
	}
	if req.EmployeeID != nil {
		input.EmployeeID = *req.EmployeeID
	}
	if req.Date != "" {
		input.Date, _ = time.Parse(DateLayout, req.Date)
	}

	rec, err := h.attendanceService.Record(c.Request.Context(), p, input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rec)
}

// CheckIn godoc
// @ID           checkIn
// @Summary      Check in for today
// @Description  Checking in after the late threshold marks the day late
// @Tags         attendance
// @Produce      json
// @Success      200 {object} APIResponse[appatt.AttendanceResponse]
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/check-in [post]
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	rec, err := h.attendanceService.CheckIn(c.Request.Context(), p.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rec)
}

// CheckOut godoc
// @ID           checkOut
// @Summary      Check out for today
// @Tags         attendance
// @Produce      json
// @Success      200 {object} APIResponse[appatt.AttendanceResponse]
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/check-out [post]
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	rec, err := h.attendanceService.CheckOut(c.Request.Context(), p.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rec)
}

// UnitWiseReport godoc
// @ID           attendanceUnitWiseReport
// @Summary      Unit-wise attendance report
// @Description  JSON by default; format selects a pdf, xlsx, csv or txt download
// @Tags         reports
// @Produce      json,application/pdf,text/csv,text/plain
// @Param        period query string false "day, week, month or year" default(month)
// @Param        date query string false "Any date inside the period, YYYY-MM-DD"
// @Param        unitId query string false "Unit" format(uuid)
// @Param        departmentId query string false "Department" format(uuid)
// @Param        search query string false "Employee name or code"
// @Param        format query string false "json, pdf, xlsx, csv or txt"
// @Success      200 {object} APIResponse[appatt.UnitWiseReport]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/reports/unit-wise [get]
func (h *AttendanceHandler) UnitWiseReport(c *gin.Context) {
	q, ok := h.parseReportQuery(c)
	if !ok {
		return
	}
	input := appatt.ReportInput{
		Period:       q.Period,
		Date:         q.Date,
		UnitID:       q.UnitID,
		DepartmentID: q.DepartmentID,
		Search:       q.Search,
	}
	if q.Format == export.FormatJSON {
		rep, err := h.attendanceService.UnitWiseReport(c.Request.Context(), input)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, rep)
		return
	}
	file, err := h.reportService.UnitWiseAttendance(c.Request.Context(), input, q.Format)
	h.sendReport(c, file, err)
}

// IndividualReport godoc
// @ID           attendanceIndividualReport
// @Summary      Individual attendance report
// @Tags         reports
// @Produce      json,application/pdf,text/csv,text/plain
// @Param        id path string true "Employee ID" format(uuid)
// @Param        period query string false "day, week, month or year" default(month)
// @Param        date query string false "Any date inside the period, YYYY-MM-DD"
// @Param        format query string false "json, pdf, xlsx, csv or txt"
// @Success      200 {object} APIResponse[appatt.IndividualReport]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /attendance/reports/individual/{id} [get]
func (h *AttendanceHandler) IndividualReport(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	q, ok := h.parseReportQuery(c)
	if !ok {
		return
	}
	input := appatt.ReportInput{Period: q.Period, Date: q.Date}
	if q.Format == export.FormatJSON {
		rep, err := h.attendanceService.IndividualReport(c.Request.Context(), p, id, input)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, rep)
		return
	}
	file, err := h.reportService.IndividualAttendance(c.Request.Context(), p, id, input, q.Format)
	h.sendReport(c, file, err)
}
