package payroll

import "github.com/shopspring/decimal"

// ComponentKind separates earnings from deductions
type ComponentKind string

const (
	KindEarning   ComponentKind = "earning"
	KindDeduction ComponentKind = "deduction"
)

// ValueKind says whether Value is a percentage or a fixed rupee amount
type ValueKind string

const (
	ValuePercent ValueKind = "percent"
	ValueFixed   ValueKind = "fixed"
)

// Component is one line of the salary structure
type Component struct {
	Name      string           `json:"name"`
	Kind      ComponentKind    `json:"kind"`
	ValueKind ValueKind        `json:"value_kind"`
	Value     decimal.Decimal  `json:"value"`
	Taxable   bool             `json:"taxable"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
}

// Structure is the organisation's salary structure, optionally priced for a CTC
type Structure struct {
	Components      []Component      `json:"components"`
	MonthlyCTC      *decimal.Decimal `json:"monthly_ctc,omitempty"`
	TotalEarnings   *decimal.Decimal `json:"total_earnings,omitempty"`
	TotalDeductions *decimal.Decimal `json:"total_deductions,omitempty"`
}

var daPercentage = decimal.NewFromInt(10)

// BuildSalaryStructure lists the structure defined by c. When monthlyCTC is not nil
// every component carries its rupee amount: PF on basic, ESIC on gross.
func BuildSalaryStructure(c SalaryComponents, monthlyCTC *decimal.Decimal) Structure {
	comps := []Component{
		{Name: "Basic Salary", Kind: KindEarning, ValueKind: ValuePercent, Value: c.BasicSalaryPercentage, Taxable: true},
		{Name: "House Rent Allowance (HRA)", Kind: KindEarning, ValueKind: ValuePercent, Value: c.HRAPercentage},
		{Name: "Dearness Allowance (DA)", Kind: KindEarning, ValueKind: ValuePercent, Value: daPercentage, Taxable: true},
		{Name: "PF (Employee)", Kind: KindDeduction, ValueKind: ValuePercent, Value: c.EPFPercentage},
		{Name: "ESIC", Kind: KindDeduction, ValueKind: ValuePercent, Value: c.ESICPercentage},
		{Name: "Professional Tax", Kind: KindDeduction, ValueKind: ValueFixed, Value: c.ProfessionalTax},
	}
	s := Structure{Components: comps}
	if monthlyCTC == nil {
		return s
	}

	gross := *monthlyCTC
	basic := RoundRupee(Percent(gross, c.BasicSalaryPercentage))
	amounts := []decimal.Decimal{
		basic,
		RoundRupee(Percent(gross, c.HRAPercentage)),
		RoundRupee(Percent(gross, daPercentage)),
		RoundRupee(Percent(basic, c.EPFPercentage)),
		RoundRupee(Percent(gross, c.ESICPercentage)),
		c.ProfessionalTax,
	}
	earn, ded := decimal.Zero, decimal.Zero
	for i := range s.Components {
		amt := amounts[i]
		s.Components[i].Amount = &amt
		if s.Components[i].Kind == KindEarning {
			earn = earn.Add(amt)
		} else {
			ded = ded.Add(amt)
		}
	}
	s.MonthlyCTC = &gross
	s.TotalEarnings = &earn
	s.TotalDeductions = &ded
	return s
}
