package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statutory constants
var (
	ESICWageCeiling    = decimal.NewFromInt(21000)
	ESICEmployeeRate   = decimal.RequireFromString("0.75")
	ESICEmployerRate   = decimal.RequireFromString("3.25")
	PFWageCeiling      = decimal.NewFromInt(15000)
	PFEmployeeRate     = decimal.NewFromInt(12)
	PFEmployerRate     = decimal.NewFromInt(13)
	MonthlyProfTax     = decimal.NewFromInt(200)
	MLWFEmployeeShare  = decimal.NewFromInt(25)
	MLWFEmployerShare  = decimal.NewFromInt(75)
	MLWFTotalShare     = MLWFEmployeeShare.Add(MLWFEmployerShare)
	BonusWageCeiling   = decimal.NewFromInt(7000)
	BonusRate          = decimal.RequireFromString("8.33")
	BasicShareOfCTC    = decimal.RequireFromString("0.5")
	mlwfDeductionMonth = map[time.Month]bool{time.June: true, time.December: true}
)

// IsMLWFMonth reports whether welfare fund is deducted in month m
func IsMLWFMonth(m time.Month) bool {
	return mlwfDeductionMonth[m]
}

// Percentages are the earning components as a share of gross
type Percentages struct {
	Basic       decimal.Decimal `json:"basic"`
	HRA         decimal.Decimal `json:"hra"`
	DA          decimal.Decimal `json:"da"`
	LTA         decimal.Decimal `json:"lta"`
	Special     decimal.Decimal `json:"special"`
	Performance decimal.Decimal `json:"performance"`
}

// DefaultPercentages returns basic 50, hra 20, da 10, lta 5, special 10, performance 5.
// Special is informational; the allowance itself is the remainder of gross.
func DefaultPercentages() Percentages {
	return Percentages{
		Basic:       decimal.NewFromInt(50),
		HRA:         decimal.NewFromInt(20),
		DA:          decimal.NewFromInt(10),
		LTA:         decimal.NewFromInt(5),
		Special:     decimal.NewFromInt(10),
		Performance: decimal.NewFromInt(5),
	}
}

// Options toggles statutory deductions
type Options struct {
	EPF             bool `json:"epf"`
	ProfessionalTax bool `json:"professional_tax"`
	ESI             bool `json:"esi"`
	MLWF            bool `json:"mlwf"`
	MetroCity       bool `json:"metro_city"`
}

// DefaultOptions enables every deduction
func DefaultOptions() Options {
	return Options{EPF: true, ProfessionalTax: true, ESI: true, MLWF: true, MetroCity: true}
}

// CTCInput describes one calculation
type CTCInput struct {
	CTC         decimal.Decimal
	Yearly      bool
	Regime      Regime
	Percentages Percentages
	Options     Options
	Month       time.Month
}

// Earnings is the monthly earnings breakup
type Earnings struct {
	Basic       decimal.Decimal `json:"basic"`
	HRA         decimal.Decimal `json:"hra"`
	DA          decimal.Decimal `json:"da"`
	LTA         decimal.Decimal `json:"lta"`
	Performance decimal.Decimal `json:"performance"`
	Special     decimal.Decimal `json:"special"`
}

// Deductions is the monthly employee side deductions
type Deductions struct {
	PF              decimal.Decimal `json:"pf"`
	ESIC            decimal.Decimal `json:"esic"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	MLWF            decimal.Decimal `json:"mlwf"`
	IncomeTax       decimal.Decimal `json:"income_tax"`
	Total           decimal.Decimal `json:"total"`
}

// EmployerContributions is the monthly employer side cost
type EmployerContributions struct {
	PF   decimal.Decimal `json:"pf"`
	ESIC decimal.Decimal `json:"esic"`
	MLWF decimal.Decimal `json:"mlwf"`
}

// CTCBreakup is the result of CalculateCTC
type CTCBreakup struct {
	MonthlyCTC     decimal.Decimal       `json:"monthly_ctc"`
	AnnualCTC      decimal.Decimal       `json:"annual_ctc"`
	Gross          decimal.Decimal       `json:"gross"`
	Earnings       Earnings              `json:"earnings"`
	Deductions     Deductions            `json:"deductions"`
	Employer       EmployerContributions `json:"employer"`
	ESICApplicable bool                  `json:"esic_applicable"`
	Tax            TaxResult             `json:"tax"`
	NetMonthly     decimal.Decimal       `json:"net_monthly"`
	NetYearly      decimal.Decimal       `json:"net_yearly"`
	EmployerCost   decimal.Decimal       `json:"employer_cost"`
}

// CalculateCTC splits a cost-to-company figure into earnings, statutory deductions,
// income tax and take-home pay.
func CalculateCTC(in CTCInput) CTCBreakup {
	monthly := in.CTC
	if in.Yearly {
		monthly = in.CTC.Div(twelve)
	}
	gross := monthly
	p := in.Percentages

	var b CTCBreakup
	b.MonthlyCTC = monthly
	b.AnnualCTC = monthly.Mul(twelve)
	b.Gross = gross

	e := Earnings{
		Basic:       Percent(gross, p.Basic),
		HRA:         Percent(gross, p.HRA),
		DA:          Percent(gross, p.DA),
		LTA:         Percent(gross, p.LTA),
		Performance: Percent(gross, p.Performance),
	}
	e.Special = MaxZero(gross.Sub(e.Basic.Add(e.HRA).Add(e.DA).Add(e.LTA).Add(e.Performance)))
	b.Earnings = e

	d := Deductions{
		PF:              decimal.Zero,
		ESIC:            decimal.Zero,
		ProfessionalTax: decimal.Zero,
		MLWF:            decimal.Zero,
	}
	er := EmployerContributions{PF: decimal.Zero, ESIC: decimal.Zero, MLWF: decimal.Zero}

	b.ESICApplicable = in.Options.ESI && gross.LessThanOrEqual(ESICWageCeiling)
	if b.ESICApplicable {
		d.ESIC = RoundRupee(Percent(gross, ESICEmployeeRate))
		er.ESIC = RoundRupee(Percent(gross, ESICEmployerRate))
	}
	if in.Options.EPF {
		wage := decimal.Min(e.Basic, PFWageCeiling)
		d.PF = RoundRupee(Percent(wage, PFEmployeeRate))
		er.PF = RoundRupee(Percent(wage, PFEmployerRate))
	}
	if in.Options.ProfessionalTax {
		d.ProfessionalTax = MonthlyProfTax
	}
	if in.Options.MLWF && IsMLWFMonth(in.Month) {
		d.MLWF = MLWFEmployeeShare
		er.MLWF = MLWFEmployerShare
	}

	b.Tax = IncomeTax(b.AnnualCTC, in.Regime, d.PF)
	d.IncomeTax = b.Tax.MonthlyTax
	d.Total = d.ESIC.Add(d.PF).Add(d.ProfessionalTax).Add(d.MLWF).Add(d.IncomeTax)
	b.Deductions = d
	b.Employer = er

	b.NetMonthly = monthly.Sub(d.Total)
	b.NetYearly = b.NetMonthly.Mul(twelve)
	b.EmployerCost = monthly.Add(er.PF).Add(er.ESIC).Add(er.MLWF)
	return b
}
