package payroll

import (
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mlwfDayCap is the number of days a monthly wage is spread over
const mlwfDayCap = 30

var thirty = decimal.NewFromInt(mlwfDayCap)

// RegisterFilter narrows statutory registers to a unit, a department or a search term
type RegisterFilter struct {
	UnitID       *uuid.UUID
	DepartmentID *uuid.UUID
	Search       string
}

// MLWFRow is one employee line of the welfare fund statement
type MLWFRow struct {
	EmployeeID           uuid.UUID       `json:"employee_id"`
	EmployeeCode         string          `json:"employee_code"`
	EmployeeName         string          `json:"employee_name"`
	UnitName             string          `json:"unit_name"`
	DepartmentName       string          `json:"department_name"`
	GrossWages           decimal.Decimal `json:"gross_wages"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Total                decimal.Decimal `json:"total"`
}

// MLWFTotals sums a set of statement rows
type MLWFTotals struct {
	Employees            int             `json:"employees"`
	GrossWages           decimal.Decimal `json:"gross_wages"`
	EmployeeContribution decimal.Decimal `json:"employee_contribution"`
	EmployerContribution decimal.Decimal `json:"employer_contribution"`
	Total                decimal.Decimal `json:"total"`
}

func (t *MLWFTotals) add(r MLWFRow) {
	t.Employees++
	t.GrossWages = t.GrossWages.Add(r.GrossWages)
	t.EmployeeContribution = t.EmployeeContribution.Add(r.EmployeeContribution)
	t.EmployerContribution = t.EmployerContribution.Add(r.EmployerContribution)
	t.Total = t.Total.Add(r.Total)
}

func (t *MLWFTotals) merge(o MLWFTotals) {
	t.Employees += o.Employees
	t.GrossWages = t.GrossWages.Add(o.GrossWages)
	t.EmployeeContribution = t.EmployeeContribution.Add(o.EmployeeContribution)
	t.EmployerContribution = t.EmployerContribution.Add(o.EmployerContribution)
	t.Total = t.Total.Add(o.Total)
}

func zeroMLWFTotals() MLWFTotals {
	return MLWFTotals{
		GrossWages:           decimal.Zero,
		EmployeeContribution: decimal.Zero,
		EmployerContribution: decimal.Zero,
		Total:                decimal.Zero,
	}
}

// MLWFDepartmentGroup holds the rows of one department
type MLWFDepartmentGroup struct {
	Name   string     `json:"name"`
	Rows   []MLWFRow  `json:"rows"`
	Totals MLWFTotals `json:"totals"`
}

// MLWFUnitGroup holds the departments of one unit
type MLWFUnitGroup struct {
	Name        string                `json:"name"`
	Departments []MLWFDepartmentGroup `json:"departments"`
	Totals      MLWFTotals            `json:"totals"`
}

// MLWFStatement is the labour welfare fund summary statement for a period
type MLWFStatement struct {
	Period ReportPeriod    `json:"period"`
	Units  []MLWFUnitGroup `json:"units"`
	Totals MLWFTotals      `json:"totals"`
}

// Rows flattens the statement in group order
func (s *MLWFStatement) Rows() []MLWFRow {
	var rows []MLWFRow
	for _, u := range s.Units {
		for _, d := range u.Departments {
			rows = append(rows, d.Rows...)
		}
	}
	return rows
}

// MLWFWageDays returns the days of wages counted for a period: the period's dates
// plus one, capped at thirty.
func MLWFWageDays(p ReportPeriod) int {
	days := p.Days() + 1
	if days > mlwfDayCap {
		return mlwfDayCap
	}
	return days
}

// MLWFGrossWages prorates a monthly CTC over the wage days of p
func MLWFGrossWages(monthlyCTC decimal.Decimal, p ReportPeriod) decimal.Decimal {
	return RoundRupee(monthlyCTC.Div(thirty).Mul(decimal.NewFromInt(int64(MLWFWageDays(p)))))
}

// BuildMLWFStatement lists every payroll eligible employee who joined by the end of
// the period, with fixed contributions of 25 and 75.
func BuildMLWFStatement(emps []*employee.Employee, dir *organization.Directory, p ReportPeriod, f RegisterFilter) *MLWFStatement {
	var rows []MLWFRow
	for _, e := range emps {
		if !e.IsPayrollEligible() || !dir.Matches(e.DepartmentID, f.UnitID, f.DepartmentID) {
			continue
		}
		if !e.JoinedBy(p.End) {
			continue
		}
		rows = append(rows, MLWFRow{
			EmployeeID:           e.ID,
			EmployeeCode:         e.EmployeeCode,
			EmployeeName:         e.FullName(),
			UnitName:             dir.UnitName(e.DepartmentID),
			DepartmentName:       dir.DepartmentName(e.DepartmentID),
			GrossWages:           MLWFGrossWages(e.Salary, p),
			EmployeeContribution: MLWFEmployeeShare,
			EmployerContribution: MLWFEmployerShare,
			Total:                MLWFTotalShare,
		})
	}

	st := &MLWFStatement{Period: p, Totals: zeroMLWFTotals(), Units: []MLWFUnitGroup{}}
	for _, ub := range organization.GroupByUnit(rows, func(r MLWFRow) (string, string) { return r.UnitName, r.DepartmentName }) {
		ug := MLWFUnitGroup{Name: ub.Name, Totals: zeroMLWFTotals()}
		for _, db := range ub.Departments {
			dg := MLWFDepartmentGroup{Name: db.Name, Rows: db.Rows, Totals: zeroMLWFTotals()}
			for _, r := range db.Rows {
				dg.Totals.add(r)
			}
			ug.Totals.merge(dg.Totals)
			ug.Departments = append(ug.Departments, dg)
		}
		st.Totals.merge(ug.Totals)
		st.Units = append(st.Units, ug)
	}
	return st
}
