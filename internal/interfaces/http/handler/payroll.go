package handler

import (
	"net/http"

	apppayroll "github.com/asnhr/hrms/internal/application/payroll"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PayrollHandler handles system settings and the salary calculators
type PayrollHandler struct {
	BaseHandler
	payrollService *apppayroll.PayrollService
}

// NewPayrollHandler creates a new payroll handler
func NewPayrollHandler(payrollService *apppayroll.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollService: payrollService}
}

// UpdateSettingsRequest is the body of PUT /settings/system; absent sections are kept.
// A non-zero version must match the stored one.
type UpdateSettingsRequest struct {
	SalaryComponents *payroll.SalaryComponents `json:"salary_components"`
	Company          *payroll.CompanyProfile   `json:"company"`
	Version          int                       `json:"version" binding:"min=0"`
}

// CalculateCTCRequest is the body of POST /payroll/ctc
type CalculateCTCRequest struct {
	CTC         decimal.Decimal      `json:"ctc" swaggertype:"string" example:"600000"`
	Yearly      bool                 `json:"yearly"`
	Regime      string               `json:"regime" binding:"omitempty,oneof=new old" example:"new"`
	Percentages *payroll.Percentages `json:"percentages"`
	Options     *payroll.Options     `json:"options"`
	Month       int                  `json:"month" binding:"min=0,max=12"`
}

// CompareTaxRequest is the body of POST /payroll/tax-compare
type CompareTaxRequest struct {
	AnnualIncome decimal.Decimal `json:"annual_income" swaggertype:"string" example:"1200000"`
	MonthlyPF    decimal.Decimal `json:"monthly_pf" swaggertype:"string" example:"1800"`
}

// GetSettings godoc
// @ID           getSystemSettings
// @Summary      Get system settings
// @Tags         settings
// @Produce      json
// @Success      200 {object} APIResponse[payroll.SystemSettings]
// @Security     BearerAuth
// @Router       /settings/system [get]
func (h *PayrollHandler) GetSettings(c *gin.Context) {
	settings, err := h.payrollService.Settings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// UpdateSettings godoc
// @ID           updateSystemSettings
// @Summary      Update system settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "Settings"
// @Success      200 {object} APIResponse[payroll.SystemSettings]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /settings/system [put]
func (h *PayrollHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.SalaryComponents == nil && req.Company == nil {
		h.BadRequest(c, "Nothing to update")
		return
	}
	settings, err := h.payrollService.UpdateSettings(c.Request.Context(), apppayroll.UpdateSettingsInput{
		SalaryComponents: req.SalaryComponents,
		Company:          req.Company,
		Version:          req.Version,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}

// CalculateCTC godoc
// @ID           calculateCTC
// @Summary      Split a CTC into its monthly breakup
// @Description  Statutory PF, ESI, PT, MLWF and income tax under the chosen regime
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body CalculateCTCRequest true "CTC"
// @Success      200 {object} APIResponse[payroll.CTCBreakup]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payroll/ctc [post]
func (h *PayrollHandler) CalculateCTC(c *gin.Context) {
	var req CalculateCTCRequest
	if !h.bindJSON(c, &req) {
		return
	}
	breakup, err := h.payrollService.CalculateCTC(c.Request.Context(), apppayroll.CalculateCTCInput{
		CTC:         req.CTC,
		Yearly:      req.Yearly,
		Regime:      req.Regime,
		Percentages: req.Percentages,
		Options:     req.Options,
		Month:       req.Month,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, breakup)
}

// CompareTax godoc
// @ID           compareTax
// @Summary      Compare annual tax under both regimes
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        request body CompareTaxRequest true "Income"
// @Success      200 {object} APIResponse[apppayroll.TaxComparison]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payroll/tax-compare [post]
func (h *PayrollHandler) CompareTax(c *gin.Context) {
	var req CompareTaxRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cmp, err := h.payrollService.CompareTax(c.Request.Context(), req.AnnualIncome, req.MonthlyPF)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cmp)
}

// Structure godoc
// @ID           salaryStructure
// @Summary      Salary structure from the configured components
// @Tags         payroll
// @Produce      json
// @Param        ctc query string false "Monthly CTC to price the structure for"
// @Success      200 {object} APIResponse[payroll.Structure]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /payroll/structure [get]
func (h *PayrollHandler) Structure(c *gin.Context) {
	var monthly *decimal.Decimal
	if raw := c.Query("ctc"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			h.Error(c, http.StatusBadRequest, "INVALID_AMOUNT", "ctc must be a number")
			return
		}
		monthly = &d
	}
	st, err := h.payrollService.Structure(c.Request.Context(), monthly)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, st)
}
