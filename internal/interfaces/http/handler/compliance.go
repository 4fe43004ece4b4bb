package handler

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/asnhr/hrms/internal/application/compliance"
	"github.com/asnhr/hrms/internal/application/report"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/gin-gonic/gin"
)

// maxImportFileSize bounds MLWF spreadsheet uploads
const maxImportFileSize = 5 << 20

// ComplianceHandler handles the MLWF statement, challans and bonus register
type ComplianceHandler struct {
	BaseHandler
	complianceService *compliance.ComplianceService
	reportService     *report.ReportService
}

// NewComplianceHandler creates a new compliance handler
func NewComplianceHandler(complianceService *compliance.ComplianceService, reportService *report.ReportService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService, reportService: reportService}
}

// MLWFStatement godoc
// @ID           mlwfStatement
// @Summary      MLWF summary statement
// @Description  Employee 25 and employer 75 per eligible employee, grouped by unit and department
// @Tags         compliance
// @Produce      json,application/pdf,text/csv,text/plain
// @Param        period query string false "day, week, month or year" default(month)
// @Param        date query string false "Any date inside the period, YYYY-MM-DD"
// @Param        unitId query string false "Unit" format(uuid)
// @Param        departmentId query string false "Department" format(uuid)
// @Param        format query string false "json, pdf, xlsx, csv or txt"
// @Success      200 {object} APIResponse[payroll.MLWFStatement]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /compliance/mlwf [get]
func (h *ComplianceHandler) MLWFStatement(c *gin.Context) {
	q, ok := h.parseReportQuery(c)
	if !ok {
		return
	}
	input := compliance.StatementInput{
		Period:       q.Period,
		Date:         q.Date,
		UnitID:       q.UnitID,
		DepartmentID: q.DepartmentID,
	}
	if q.Format == export.FormatJSON {
		st, err := h.complianceService.MLWFStatement(c.Request.Context(), input)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, st)
		return
	}
	file, err := h.reportService.MLWFStatement(c.Request.Context(), input, q.Format)
	h.sendReport(c, file, err)
}

// MLWFTemplate godoc
// @ID           mlwfTemplate
// @Summary      Download the MLWF import template
// @Tags         compliance
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200 {file} file
// @Security     BearerAuth
// @Router       /compliance/mlwf/template [get]
func (h *ComplianceHandler) MLWFTemplate(c *gin.Context) {
	data, err := h.complianceService.MLWFTemplate()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.File(c, "mlwf-import-template.xlsx", export.FormatXLSX.ContentType(), data)
}

// ImportMLWF godoc
// @ID           importMLWF
// @Summary      Validate an MLWF contribution sheet
// @Description  Accepts xlsx, xls or csv with the template headers; returns the accepted rows and per-row errors
// @Tags         compliance
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Spreadsheet"
// @Success      200 {object} APIResponse[compliance.ImportResult]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /compliance/mlwf/import [post]
func (h *ComplianceHandler) ImportMLWF(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_FILE", "Attach the spreadsheet as the file field")
		return
	}
	if fh.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Import file cannot exceed 5 MB")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read upload")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, maxImportFileSize))
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read upload")
		return
	}

	result, err := h.complianceService.ImportMLWF(c.Request.Context(), fh.Filename, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UploadChallan godoc
// @ID           uploadChallan
// @Summary      Upload a paid MLWF challan
// @Tags         compliance
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Challan"
// @Param        year formData int true "Period year"
// @Param        month formData int true "Period month"
// @Success      201 {object} APIResponse[compliance.ChallanResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /compliance/mlwf/challans [post]
func (h *ComplianceHandler) UploadChallan(c *gin.Context) {
	p, ok := h.principal(c)
	if !ok {
		return
	}
	year, yerr := strconv.Atoi(c.PostForm("year"))
	month, merr := strconv.Atoi(c.PostForm("month"))
	if yerr != nil || merr != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "year and month are required")
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_FILE", "Attach the challan as the file field")
		return
	}
	if fh.Size > payroll.MaxChallanSize {
		h.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Challan file cannot exceed 10 MB")
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_FILE", "Failed to read upload")
		return
	}
	defer f.Close()

	resp, err := h.complianceService.UploadChallan(c.Request.Context(), compliance.UploadChallanInput{
		Year:        year,
		Month:       time.Month(month),
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
		UploadedBy:  p.ID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListChallans godoc
// @ID           listChallans
// @Summary      List MLWF challans
// @Tags         compliance
// @Produce      json
// @Param        year query int false "Period year"
// @Param        month query int false "Period month"
// @Success      200 {object} APIResponse[[]compliance.ChallanResponse]
// @Security     BearerAuth
// @Router       /compliance/mlwf/challans [get]
func (h *ComplianceHandler) ListChallans(c *gin.Context) {
	var input compliance.ListChallansInput
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "year must be a number")
			return
		}
		input.Year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, "INVALID_PERIOD", "month must be a number")
			return
		}
		input.Month = time.Month(m)
	}
	challans, err := h.complianceService.ListChallans(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, challans)
}

// DownloadChallan godoc
// @ID           downloadChallan
// @Summary      Presigned download link for a challan
// @Tags         compliance
// @Produce      json
// @Param        id path string true "Challan ID" format(uuid)
// @Success      200 {object} APIResponse[compliance.DownloadURL]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /compliance/mlwf/challans/{id}/download [get]
func (h *ComplianceHandler) DownloadChallan(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	link, err := h.complianceService.ChallanDownloadURL(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, link)
}

// BonusRegister godoc
// @ID           bonusRegister
// @Summary      Bonus register of a fiscal year
// @Description  8.33 percent of the eligible wage per month worked, April to March
// @Tags         compliance
// @Produce      json,application/pdf,text/csv,text/plain
// @Param        year query int false "Fiscal year start, e.g. 2024 for 2024-25"
// @Param        unitId query string false "Unit" format(uuid)
// @Param        departmentId query string false "Department" format(uuid)
// @Param        search query string false "Employee name or code"
// @Param        format query string false "json, pdf, xlsx, csv or txt"
// @Success      200 {object} APIResponse[payroll.BonusRegister]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /compliance/bonus [get]
func (h *ComplianceHandler) BonusRegister(c *gin.Context) {
	input := compliance.BonusInput{Search: c.Query("search")}
	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 2000 || y > 2100 {
			h.Error(c, http.StatusBadRequest, "INVALID_YEAR", "year must be a four digit year")
			return
		}
		input.Year = y
	}
	var ok bool
	if input.UnitID, ok = h.queryUUID(c, "unitId"); !ok {
		return
	}
	if input.DepartmentID, ok = h.queryUUID(c, "departmentId"); !ok {
		return
	}
	format, ok := h.parseFormat(c)
	if !ok {
		return
	}

	if format == export.FormatJSON {
		reg, err := h.complianceService.BonusRegister(c.Request.Context(), input)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, reg)
		return
	}
	file, err := h.reportService.BonusRegister(c.Request.Context(), input, format)
	h.sendReport(c, file, err)
}
