// Package payroll holds the statutory payroll arithmetic: CTC breakup, income tax,
// salary structure, the labour welfare fund statement and the bonus register.
package payroll

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// RoundRupee rounds half away from zero to whole rupees
func RoundRupee(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Percent returns base × pct / 100 without rounding
func Percent(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// MaxZero floors d at zero
func MaxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
