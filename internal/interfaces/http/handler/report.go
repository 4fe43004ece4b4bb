package handler

import (
	"net/http"
	"time"

	"github.com/asnhr/hrms/internal/application/report"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// reportQuery is the period and scope shared by the report endpoints
type reportQuery struct {
	Period       payroll.PeriodKind
	Date         time.Time
	UnitID       *uuid.UUID
	DepartmentID *uuid.UUID
	Search       string
	Format       export.Format
}

// parseReportQuery reads period, date, unitId, departmentId, search and format
func (h *BaseHandler) parseReportQuery(c *gin.Context) (reportQuery, bool) {
	var q reportQuery
	kind, err := payroll.ParsePeriodKind(c.Query("period"))
	if err != nil {
		h.HandleError(c, err)
		return q, false
	}
	q.Period = kind

	date, ok := h.queryDate(c, "date")
	if !ok {
		return q, false
	}
	if date != nil {
		q.Date = *date
	}
	if q.UnitID, ok = h.queryUUID(c, "unitId"); !ok {
		return q, false
	}
	if q.DepartmentID, ok = h.queryUUID(c, "departmentId"); !ok {
		return q, false
	}
	q.Search = c.Query("search")

	if q.Format, ok = h.parseFormat(c); !ok {
		return q, false
	}
	return q, true
}

// parseFormat reads the format query value; empty means JSON
func (h *BaseHandler) parseFormat(c *gin.Context) (export.Format, bool) {
	f, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be one of json, pdf, xlsx, csv or txt")
		return "", false
	}
	return f, true
}

// sendReport streams a rendered report or maps its error
func (h *BaseHandler) sendReport(c *gin.Context, file *report.File, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.File(c, file.FileName, file.ContentType, file.Data)
}
