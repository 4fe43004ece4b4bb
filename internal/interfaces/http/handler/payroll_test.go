package handler

import (
	"net/http"
	"testing"

	apppayroll "github.com/asnhr/hrms/internal/application/payroll"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPayrollEngine() *gin.Engine {
	svc := apppayroll.NewPayrollService(testutil.NewSettingsRepository(), nil,
		payroll.CompanyProfile{Name: "Sahyadri Engineering"}, zap.NewNop())
	h := NewPayrollHandler(svc)
	r := newEngine()
	r.GET("/settings/system", h.GetSettings)
	r.PUT("/settings/system", h.UpdateSettings)
	r.POST("/payroll/ctc", h.CalculateCTC)
	r.POST("/payroll/tax-compare", h.CompareTax)
	r.GET("/payroll/structure", h.Structure)
	return r
}

func TestPayrollHandler_CalculateCTC(t *testing.T) {
	r := newPayrollEngine()

	w := perform(t, r, http.MethodPost, "/payroll/ctc", CalculateCTCRequest{CTC: decimal.NewFromInt(240000), Yearly: true, Month: 4})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	breakup := decodeData[payroll.CTCBreakup](t, w)
	assert.True(t, breakup.MonthlyCTC.Equal(decimal.NewFromInt(20000)), breakup.MonthlyCTC.String())
	assert.True(t, breakup.AnnualCTC.Equal(decimal.NewFromInt(240000)), breakup.AnnualCTC.String())

	tests := []struct {
		name string
		body any
		code string
	}{
		{"zero ctc", CalculateCTCRequest{Month: 4}, "INVALID_AMOUNT"},
		{"unknown regime", map[string]any{"ctc": "50000", "regime": "flat"}, "VALIDATION_ERROR"},
		{"month out of range", map[string]any{"ctc": "50000", "month": 13}, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, r, http.MethodPost, "/payroll/ctc", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestPayrollHandler_CompareTax(t *testing.T) {
	r := newPayrollEngine()

	w := perform(t, r, http.MethodPost, "/payroll/tax-compare", CompareTaxRequest{AnnualIncome: decimal.NewFromInt(1275000)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cmp := decodeData[apppayroll.TaxComparison](t, w)
	assert.Equal(t, payroll.RegimeNew, cmp.Recommended)
	assert.True(t, cmp.New.AnnualTax.IsZero())
	assert.True(t, cmp.Savings.Equal(cmp.Old.AnnualTax))

	w = perform(t, r, http.MethodPost, "/payroll/tax-compare", CompareTaxRequest{AnnualIncome: decimal.NewFromInt(-1)})
	assert.Equal(t, "INVALID_AMOUNT", errorCode(t, w))
}

func TestPayrollHandler_Structure(t *testing.T) {
	r := newPayrollEngine()

	w := perform(t, r, http.MethodGet, "/payroll/structure", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decodeData[payroll.Structure](t, w)
	assert.Len(t, st.Components, 6)
	assert.Nil(t, st.MonthlyCTC)

	w = perform(t, r, http.MethodGet, "/payroll/structure?ctc=30000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st = decodeData[payroll.Structure](t, w)
	require.NotNil(t, st.MonthlyCTC)
	assert.True(t, st.MonthlyCTC.Equal(decimal.NewFromInt(30000)))

	w = perform(t, r, http.MethodGet, "/payroll/structure?ctc=thirty", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_AMOUNT", errorCode(t, w))
}

func TestPayrollHandler_Settings(t *testing.T) {
	r := newPayrollEngine()

	w := perform(t, r, http.MethodGet, "/settings/system", nil)
	require.Equal(t, http.StatusOK, w.Code)
	settings := decodeData[payroll.SystemSettings](t, w)
	assert.Equal(t, "Sahyadri Engineering", settings.Company.Name)
	assert.Equal(t, 0, settings.Version)

	w = perform(t, r, http.MethodPut, "/settings/system", UpdateSettingsRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	comps := payroll.DefaultSalaryComponents()
	comps.HRAPercentage = decimal.NewFromInt(25)
	w = perform(t, r, http.MethodPut, "/settings/system", UpdateSettingsRequest{SalaryComponents: &comps})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeData[payroll.SystemSettings](t, w)
	assert.Equal(t, 1, updated.Version)
	assert.True(t, updated.SalaryComponents.HRAPercentage.Equal(decimal.NewFromInt(25)))

	w = perform(t, r, http.MethodPut, "/settings/system", UpdateSettingsRequest{Company: &payroll.CompanyProfile{Name: "Other"}, Version: 5})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONCURRENCY_CONFLICT", errorCode(t, w))
}
