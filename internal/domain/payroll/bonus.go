package payroll

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BonusMonth is one month of the bonus register
type BonusMonth struct {
	Month time.Time       `json:"month"`
	Wages decimal.Decimal `json:"wages"`
	Bonus decimal.Decimal `json:"bonus"`
}

// BonusRow is one employee line of the bonus register
type BonusRow struct {
	EmployeeID     uuid.UUID       `json:"employee_id"`
	EmployeeCode   string          `json:"employee_code"`
	EmployeeName   string          `json:"employee_name"`
	Designation    string          `json:"designation"`
	UnitName       string          `json:"unit_name"`
	DepartmentName string          `json:"department_name"`
	MonthlyBasic   decimal.Decimal `json:"monthly_basic"`
	EligibleWage   decimal.Decimal `json:"eligible_wage"`
	Months         []BonusMonth    `json:"months"`
	TotalWages     decimal.Decimal `json:"total_wages"`
	TotalBonus     decimal.Decimal `json:"total_bonus"`
}

// BonusDepartmentGroup holds the rows of one department
type BonusDepartmentGroup struct {
	Name       string          `json:"name"`
	Rows       []BonusRow      `json:"rows"`
	TotalWages decimal.Decimal `json:"total_wages"`
	TotalBonus decimal.Decimal `json:"total_bonus"`
}

// BonusUnitGroup holds the departments of one unit
type BonusUnitGroup struct {
	Name        string                 `json:"name"`
	Departments []BonusDepartmentGroup `json:"departments"`
	TotalWages  decimal.Decimal        `json:"total_wages"`
	TotalBonus  decimal.Decimal        `json:"total_bonus"`
}

// BonusStats are the headline figures of the register
type BonusStats struct {
	TotalBonus        decimal.Decimal `json:"total_bonus"`
	EligibleEmployees int             `json:"eligible_employees"`
	AverageBonus      decimal.Decimal `json:"average_bonus"`
	Units             int             `json:"units"`
}

// BonusRegister is the statutory bonus register for one fiscal year
type BonusRegister struct {
	FiscalYear FiscalYear       `json:"fiscal_year"`
	Units      []BonusUnitGroup `json:"units"`
	TotalWages decimal.Decimal  `json:"total_wages"`
	Stats      BonusStats       `json:"stats"`
}

// Rows flattens the register in group order
func (r *BonusRegister) Rows() []BonusRow {
	var rows []BonusRow
	for _, u := range r.Units {
		for _, d := range u.Departments {
			rows = append(rows, d.Rows...)
		}
	}
	return rows
}

// MonthlyBonus returns the bonus accrued in one month for a monthly CTC:
// 8.33% of basic (half of CTC) capped at 7000.
func MonthlyBonus(monthlyCTC decimal.Decimal) (basic, eligible, bonus decimal.Decimal) {
	basic = RoundRupee(monthlyCTC.Mul(BasicShareOfCTC))
	eligible = decimal.Min(basic, BonusWageCeiling)
	bonus = RoundRupee(Percent(eligible, BonusRate))
	return basic, eligible, bonus
}

// BonusRowFor computes the register line of one employee for fy
func BonusRowFor(e *employee.Employee, fy FiscalYear) BonusRow {
	basic, eligible, bonus := MonthlyBonus(e.Salary)
	row := BonusRow{
		EmployeeID:   e.ID,
		EmployeeCode: e.EmployeeCode,
		EmployeeName: e.FullName(),
		Designation:  e.Position,
		MonthlyBasic: basic,
		EligibleWage: eligible,
		TotalWages:   decimal.Zero,
		TotalBonus:   decimal.Zero,
	}
	for _, m := range fy.Months() {
		bm := BonusMonth{Month: m, Wages: decimal.Zero, Bonus: decimal.Zero}
		if e.JoinedBy(shared.MonthEnd(m)) {
			bm.Wages, bm.Bonus = basic, bonus
		}
		row.Months = append(row.Months, bm)
		row.TotalWages = row.TotalWages.Add(bm.Wages)
		row.TotalBonus = row.TotalBonus.Add(bm.Bonus)
	}
	return row
}

// BuildBonusRegister lists payroll eligible employees with their monthly bonus accrual
// for the fiscal year.
func BuildBonusRegister(emps []*employee.Employee, dir *organization.Directory, fy FiscalYear, f RegisterFilter) *BonusRegister {
	var rows []BonusRow
	for _, e := range emps {
		if !e.IsPayrollEligible() || !dir.Matches(e.DepartmentID, f.UnitID, f.DepartmentID) || !e.MatchesSearch(f.Search) {
			continue
		}
		row := BonusRowFor(e, fy)
		row.UnitName = dir.UnitName(e.DepartmentID)
		row.DepartmentName = dir.DepartmentName(e.DepartmentID)
		rows = append(rows, row)
	}

	reg := &BonusRegister{
		FiscalYear: fy,
		Units:      []BonusUnitGroup{},
		TotalWages: decimal.Zero,
		Stats: BonusStats{
			TotalBonus:   decimal.Zero,
			AverageBonus: decimal.Zero,
			Units:        dir.UnitCount(),
		},
	}
	for _, ub := range organization.GroupByUnit(rows, func(r BonusRow) (string, string) { return r.UnitName, r.DepartmentName }) {
		ug := BonusUnitGroup{Name: ub.Name, TotalWages: decimal.Zero, TotalBonus: decimal.Zero}
		for _, db := range ub.Departments {
			dg := BonusDepartmentGroup{Name: db.Name, Rows: db.Rows, TotalWages: decimal.Zero, TotalBonus: decimal.Zero}
			for _, r := range db.Rows {
				dg.TotalWages = dg.TotalWages.Add(r.TotalWages)
				dg.TotalBonus = dg.TotalBonus.Add(r.TotalBonus)
			}
			ug.TotalWages = ug.TotalWages.Add(dg.TotalWages)
			ug.TotalBonus = ug.TotalBonus.Add(dg.TotalBonus)
			ug.Departments = append(ug.Departments, dg)
		}
		reg.TotalWages = reg.TotalWages.Add(ug.TotalWages)
		reg.Stats.TotalBonus = reg.Stats.TotalBonus.Add(ug.TotalBonus)
		reg.Units = append(reg.Units, ug)
	}
	reg.Stats.EligibleEmployees = len(rows)
	if len(rows) > 0 {
		reg.Stats.AverageBonus = RoundRupee(reg.Stats.TotalBonus.Div(decimal.NewFromInt(int64(len(rows)))))
	}
	return reg
}
