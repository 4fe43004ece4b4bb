package report

import (
	"fmt"
	"strconv"
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/infrastructure/export"
	"github.com/asnhr/hrms/internal/infrastructure/printing"
	"github.com/shopspring/decimal"
)

// Report titles as printed on the letterhead
const (
	TitleMLWF                 = "L.W.F. SUMMARY STATEMENT FOR THE MONTH OF"
	TitleBonus                = "BONUS REGISTER"
	TitleUnitWiseAttendance   = "UNIT-WISE ATTENDANCE REPORT"
	TitleIndividualAttendance = "INDIVIDUAL ATTENDANCE REPORT"
)

// content is one report in both its tabular and printable shape
type content struct {
	baseName  string
	refPrefix string
	dataset   *export.Dataset
	document  *printing.Document
}

func rupees(d decimal.Decimal) string {
	return printing.FormatINR(d, 0)
}

// PeriodLabel renders a report period for titles and file names
func PeriodLabel(p payroll.ReportPeriod) string {
	switch p.Kind {
	case payroll.PeriodDay:
		return printing.FormatLongDate(p.Start)
	case payroll.PeriodWeek:
		return printing.FormatLongDate(p.Start) + " to " + printing.FormatLongDate(p.End)
	case payroll.PeriodYear:
		return p.Start.Format("2006")
	default:
		return p.Start.Format("January 2006")
	}
}

func mlwfTitle(p payroll.ReportPeriod) string {
	if p.Kind == payroll.PeriodMonth {
		return TitleMLWF + " " + PeriodLabel(p)
	}
	return "L.W.F. SUMMARY STATEMENT FOR " + PeriodLabel(p)
}

func mlwfContent(st *payroll.MLWFStatement) *content {
	title := mlwfTitle(st.Period)
	ds := &export.Dataset{
		Title: title,
		Columns: []string{"Sr No", "Unit", "Department", "Employee ID", "Employee Name",
			"Gross Wages", "Employee Contribution", "Employer Contribution", "Total"},
	}
	doc := &printing.Document{
		Title:   title,
		Summary: []string{fmt.Sprintf("Employees: %d", st.Totals.Employees)},
	}

	sr := 0
	for _, u := range st.Units {
		for _, d := range u.Departments {
			t := printing.Table{
				Heading: u.Name + " / " + d.Name,
				Columns: []string{"Sr No", "Employee ID", "Name", "Gross Wages", "Employee", "Employer", "Total"},
			}
			for _, r := range d.Rows {
				sr++
				ds.AddRow(sr, u.Name, d.Name, r.EmployeeCode, r.EmployeeName,
					r.GrossWages, r.EmployeeContribution, r.EmployerContribution, r.Total)
				t.Rows = append(t.Rows, []string{strconv.Itoa(sr), r.EmployeeCode, r.EmployeeName,
					rupees(r.GrossWages), rupees(r.EmployeeContribution), rupees(r.EmployerContribution), rupees(r.Total)})
			}
			t.Totals = []string{"", "", "Subtotal", rupees(d.Totals.GrossWages),
				rupees(d.Totals.EmployeeContribution), rupees(d.Totals.EmployerContribution), rupees(d.Totals.Total)}
			doc.Tables = append(doc.Tables, t)
		}
	}
	doc.GrandTotals = &printing.Table{
		Columns: []string{"Employees", "Gross Wages", "Employee Contribution", "Employer Contribution", "Total"},
		Totals: []string{strconv.Itoa(st.Totals.Employees), rupees(st.Totals.GrossWages),
			rupees(st.Totals.EmployeeContribution), rupees(st.Totals.EmployerContribution), rupees(st.Totals.Total)},
	}
	doc.AmountInWords = printing.AmountInWords(st.Totals.Total)

	return &content{
		baseName:  ReportMLWF + "-" + st.Period.Start.Format("2006-01-02"),
		refPrefix: printing.RefPrefixMLWF,
		dataset:   ds,
		document:  doc,
	}
}

func bonusContent(reg *payroll.BonusRegister) *content {
	months := reg.FiscalYear.Months()
	ds := &export.Dataset{
		Title:   TitleBonus + " " + reg.FiscalYear.Label(),
		Columns: []string{"Sr No", "Unit", "Department", "Employee ID", "Employee Name", "Designation", "Monthly Basic", "Eligible Wage"},
	}
	pdfCols := []string{"Sr No", "Employee ID", "Name", "Basic", "Eligible"}
	for _, m := range months {
		ds.Columns = append(ds.Columns, m.Format("Jan 2006"))
		pdfCols = append(pdfCols, m.Format("Jan"))
	}
	ds.Columns = append(ds.Columns, "Total Wages", "Total Bonus")
	pdfCols = append(pdfCols, "Total Bonus")

	doc := &printing.Document{
		Title:     TitleBonus,
		Subtitle:  reg.FiscalYear.Label(),
		Landscape: true,
		Summary: []string{
			fmt.Sprintf("Eligible employees: %d", reg.Stats.EligibleEmployees),
			"Average bonus: " + rupees(reg.Stats.AverageBonus),
		},
	}

	sr := 0
	for _, u := range reg.Units {
		for _, d := range u.Departments {
			t := printing.Table{Heading: u.Name + " / " + d.Name, Columns: pdfCols}
			for _, r := range d.Rows {
				sr++
				values := []any{sr, u.Name, d.Name, r.EmployeeCode, r.EmployeeName, r.Designation, r.MonthlyBasic, r.EligibleWage}
				cells := []string{strconv.Itoa(sr), r.EmployeeCode, r.EmployeeName, rupees(r.MonthlyBasic), rupees(r.EligibleWage)}
				for _, m := range r.Months {
					values = append(values, m.Bonus)
					cells = append(cells, rupees(m.Bonus))
				}
				ds.AddRow(append(values, r.TotalWages, r.TotalBonus)...)
				t.Rows = append(t.Rows, append(cells, rupees(r.TotalBonus)))
			}
			totals := make([]string, len(pdfCols))
			totals[2] = "Subtotal"
			totals[len(totals)-1] = rupees(d.TotalBonus)
			t.Totals = totals
			doc.Tables = append(doc.Tables, t)
		}
	}
	doc.GrandTotals = &printing.Table{
		Columns: []string{"Employees", "Total Wages", "Total Bonus", "Average Bonus"},
		Totals: []string{strconv.Itoa(reg.Stats.EligibleEmployees), rupees(reg.TotalWages),
			rupees(reg.Stats.TotalBonus), rupees(reg.Stats.AverageBonus)},
	}
	doc.AmountInWords = printing.AmountInWords(reg.Stats.TotalBonus)

	return &content{
		baseName:  fmt.Sprintf("%s-%d-%02d", ReportBonus, reg.FiscalYear.StartYear, (reg.FiscalYear.StartYear+1)%100),
		refPrefix: printing.RefPrefixBonus,
		dataset:   ds,
		document:  doc,
	}
}

func summaryCells(s attendance.Summary) []string {
	return []string{
		strconv.Itoa(s.Present), strconv.Itoa(s.Absent), strconv.Itoa(s.HalfDay),
		strconv.Itoa(s.Late), strconv.Itoa(s.Leaves), strconv.Itoa(s.Total), strconv.Itoa(s.PayableDays),
	}
}

var summaryColumns = []string{"Present", "Absent", "Half Day", "Late", "Leaves", "Total Days", "Payable Days"}

func unitWiseContent(rep *appatt.UnitWiseReport) *content {
	label := PeriodLabel(rep.Period)
	ds := &export.Dataset{
		Title:   TitleUnitWiseAttendance + " " + label,
		Columns: append([]string{"Sr No", "Unit", "Department", "Employee ID", "Employee Name"}, summaryColumns...),
	}
	doc := &printing.Document{
		Title:     TitleUnitWiseAttendance,
		Subtitle:  label,
		Landscape: true,
		Summary: []string{
			fmt.Sprintf("Employees: %d", rep.EmployeeCount),
			fmt.Sprintf("Units: %d", rep.UnitCount),
			fmt.Sprintf("Present today: %d", rep.PresentToday),
		},
	}

	var total attendance.Summary
	sr := 0
	for _, u := range rep.Units {
		for _, d := range u.Departments {
			t := printing.Table{
				Heading: u.Name + " / " + d.Name,
				Columns: append([]string{"Sr No", "Employee ID", "Name"}, summaryColumns...),
			}
			for _, r := range d.Rows {
				sr++
				ds.AddRow(sr, u.Name, d.Name, r.EmployeeCode, r.EmployeeName,
					r.Present, r.Absent, r.HalfDay, r.Late, r.Leaves, r.Total, r.PayableDays)
				t.Rows = append(t.Rows, append([]string{strconv.Itoa(sr), r.EmployeeCode, r.EmployeeName}, summaryCells(r.Summary)...))
				total.Present += r.Present
				total.Absent += r.Absent
				total.HalfDay += r.HalfDay
				total.Late += r.Late
				total.Leaves += r.Leaves
				total.Total += r.Total
				total.PayableDays += r.PayableDays
			}
			doc.Tables = append(doc.Tables, t)
		}
	}
	doc.GrandTotals = &printing.Table{
		Columns: append([]string{"Employees"}, summaryColumns...),
		Totals:  append([]string{strconv.Itoa(rep.EmployeeCount)}, summaryCells(total)...),
	}

	return &content{
		baseName:  ReportUnitWiseAttendance + "-" + rep.Period.Start.Format("2006-01-02"),
		refPrefix: printing.RefPrefixAttendance,
		dataset:   ds,
		document:  doc,
	}
}

func clock(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format("15:04")
}

func individualContent(rep *appatt.IndividualReport, loc *time.Location) *content {
	label := PeriodLabel(rep.Period)
	s := rep.Summary
	ds := &export.Dataset{
		Title:   TitleIndividualAttendance + " " + s.EmployeeCode + " " + label,
		Columns: []string{"Date", "Day", "Status", "Check In", "Check Out", "Worked Hours", "Remarks"},
	}
	table := printing.Table{Columns: []string{"Date", "Day", "Status", "Check In", "Check Out", "Hours", "Remarks"}}
	for _, r := range rep.Records {
		ds.AddRow(r.Date, r.Date.Weekday().String(), r.Status, clock(r.CheckInTime, loc), clock(r.CheckOutTime, loc), r.WorkedHours, r.Remarks)
		table.Rows = append(table.Rows, []string{
			r.Date.Format("02-01-2006"), r.Date.Weekday().String(), r.Status,
			clock(r.CheckInTime, loc), clock(r.CheckOutTime, loc),
			strconv.FormatFloat(r.WorkedHours, 'f', 2, 64), r.Remarks,
		})
	}

	doc := &printing.Document{
		Title:    TitleIndividualAttendance,
		Subtitle: label,
		Summary: []string{
			fmt.Sprintf("Employee: %s (%s)", s.EmployeeName, s.EmployeeCode),
			"Unit: " + s.UnitName,
			"Department: " + s.DepartmentName,
		},
		Tables: []printing.Table{table},
		GrandTotals: &printing.Table{
			Heading: "Summary",
			Columns: summaryColumns,
			Totals:  summaryCells(s.Summary),
		},
	}

	return &content{
		baseName:  fmt.Sprintf("attendance-%s-%s", s.EmployeeCode, rep.Period.Start.Format("2006-01-02")),
		refPrefix: printing.RefPrefixIndividualAttendance,
		dataset:   ds,
		document:  doc,
	}
}
