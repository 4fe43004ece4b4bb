package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Regime selects the income tax regime
type Regime string

const (
	RegimeNew Regime = "new"
	RegimeOld Regime = "old"
)

// ParseRegime accepts "", "new" and "old"; empty means new
func ParseRegime(s string) (Regime, error) {
	switch Regime(s) {
	case "", RegimeNew:
		return RegimeNew, nil
	case RegimeOld:
		return RegimeOld, nil
	}
	return "", fmt.Errorf("unknown tax regime %q", s)
}

type slab struct {
	from decimal.Decimal
	rate decimal.Decimal
}

var (
	cess = decimal.RequireFromString("1.04")

	newRegimeStandardDeduction = decimal.NewFromInt(75000)
	newRegimeRebateLimit       = decimal.NewFromInt(1200000)
	newRegimeSlabs             = []slab{
		{decimal.NewFromInt(2400000), decimal.RequireFromString("0.30")},
		{decimal.NewFromInt(2000000), decimal.RequireFromString("0.25")},
		{decimal.NewFromInt(1600000), decimal.RequireFromString("0.20")},
		{decimal.NewFromInt(1200000), decimal.RequireFromString("0.15")},
		{decimal.NewFromInt(800000), decimal.RequireFromString("0.10")},
		{decimal.NewFromInt(400000), decimal.RequireFromString("0.05")},
	}

	oldRegimeStandardDeduction = decimal.NewFromInt(50000)
	oldRegimeBaseDeduction     = decimal.NewFromInt(100000)
	oldRegimeDeductionCap      = decimal.NewFromInt(150000)
	oldRegimeRebateLimit       = decimal.NewFromInt(500000)
	oldRegimeSlabs             = []slab{
		{decimal.NewFromInt(1000000), decimal.RequireFromString("0.30")},
		{decimal.NewFromInt(500000), decimal.RequireFromString("0.20")},
		{decimal.NewFromInt(250000), decimal.RequireFromString("0.05")},
	}
)

// TaxResult is the annual income tax for one regime
type TaxResult struct {
	Regime            Regime          `json:"regime"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	OtherDeductions   decimal.Decimal `json:"other_deductions"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	AnnualTax         decimal.Decimal `json:"annual_tax"`
	MonthlyTax        decimal.Decimal `json:"monthly_tax"`
}

// IncomeTax computes annual tax including 4% cess. monthlyPF is the employee PF
// contribution, used by the old regime's deduction.
func IncomeTax(annualIncome decimal.Decimal, regime Regime, monthlyPF decimal.Decimal) TaxResult {
	res := TaxResult{Regime: regime}
	var (
		rebate decimal.Decimal
		slabs  []slab
	)
	switch regime {
	case RegimeOld:
		res.StandardDeduction = oldRegimeStandardDeduction
		res.OtherDeductions = decimal.Min(monthlyPF.Mul(twelve).Add(oldRegimeBaseDeduction), oldRegimeDeductionCap)
		rebate, slabs = oldRegimeRebateLimit, oldRegimeSlabs
	default:
		res.Regime = RegimeNew
		res.StandardDeduction = newRegimeStandardDeduction
		res.OtherDeductions = decimal.Zero
		rebate, slabs = newRegimeRebateLimit, newRegimeSlabs
	}

	res.TaxableIncome = MaxZero(annualIncome.Sub(res.StandardDeduction).Sub(res.OtherDeductions))
	res.AnnualTax = decimal.Zero
	res.MonthlyTax = decimal.Zero
	if res.TaxableIncome.LessThanOrEqual(rebate) {
		return res
	}

	tax := decimal.Zero
	upper := res.TaxableIncome
	for _, s := range slabs {
		if res.TaxableIncome.GreaterThan(s.from) {
			tax = tax.Add(decimal.Min(res.TaxableIncome, upper).Sub(s.from).Mul(s.rate))
		}
		upper = s.from
	}
	res.AnnualTax = tax.Mul(cess).Round(2)
	res.MonthlyTax = res.AnnualTax.Div(twelve).Round(2)
	return res
}
