package payroll

import (
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// UpdateSettingsInput changes the system settings. Nil sections are kept.
// A non-zero Version must match the stored version.
type UpdateSettingsInput struct {
	SalaryComponents *payroll.SalaryComponents
	Company          *payroll.CompanyProfile
	Version          int
}

// CalculateCTCInput describes a CTC calculation request. Nil percentages and
// options fall back to the defaults; Month 0 means the current month.
type CalculateCTCInput struct {
	CTC         decimal.Decimal
	Yearly      bool
	Regime      string
	Percentages *payroll.Percentages
	Options     *payroll.Options
	Month       int
}

// TaxComparison is the annual tax under both regimes
type TaxComparison struct {
	AnnualIncome decimal.Decimal   `json:"annual_income"`
	New          payroll.TaxResult `json:"new"`
	Old          payroll.TaxResult `json:"old"`
	Recommended  payroll.Regime    `json:"recommended"`
	Savings      decimal.Decimal   `json:"savings"`
}
