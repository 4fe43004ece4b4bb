package payroll

import (
	"fmt"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
)

// PeriodKind is the granularity of a report period
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// ParsePeriodKind accepts day, week, month and year; empty means month
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch k := PeriodKind(s); k {
	case "":
		return PeriodMonth, nil
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return k, nil
	}
	return "", shared.NewDomainError("INVALID_PERIOD", fmt.Sprintf("Unknown period: %s", s))
}

// ReportPeriod is an inclusive date range; End is the last date of the period
type ReportPeriod struct {
	Kind  PeriodKind `json:"kind"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// NewReportPeriod returns the period of the given kind around ref.
// Weeks start on Monday.
func NewReportPeriod(kind PeriodKind, ref time.Time) ReportPeriod {
	ref = shared.DateOf(ref)
	p := ReportPeriod{Kind: kind}
	switch kind {
	case PeriodDay:
		p.Start, p.End = ref, ref
	case PeriodWeek:
		offset := (int(ref.Weekday()) + 6) % 7
		p.Start = ref.AddDate(0, 0, -offset)
		p.End = p.Start.AddDate(0, 0, 6)
	case PeriodYear:
		p.Start = time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location())
		p.End = time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location())
	default:
		p.Kind = PeriodMonth
		p.Start = shared.MonthStart(ref)
		p.End = shared.MonthEnd(ref)
	}
	return p
}

// Days returns the number of calendar dates in the period
func (p ReportPeriod) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24+0.5) + 1
}

// Contains reports whether d falls on a date inside the period
func (p ReportPeriod) Contains(d time.Time) bool {
	d = shared.DateOf(d)
	return !d.Before(p.Start) && !d.After(p.End)
}

// FiscalYear is the Indian financial year from 1 April Y to 31 March Y+1
type FiscalYear struct {
	StartYear int       `json:"start_year"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// NewFiscalYear returns the fiscal year starting in April of startYear
func NewFiscalYear(startYear int, loc *time.Location) FiscalYear {
	if loc == nil {
		loc = time.UTC
	}
	return FiscalYear{
		StartYear: startYear,
		Start:     time.Date(startYear, time.April, 1, 0, 0, 0, 0, loc),
		End:       time.Date(startYear+1, time.March, 31, 0, 0, 0, 0, loc),
	}
}

// FiscalYearOf returns the fiscal year containing d
func FiscalYearOf(d time.Time) FiscalYear {
	y := d.Year()
	if d.Month() < time.April {
		y--
	}
	return NewFiscalYear(y, time.UTC)
}

// Months returns the first day of each of the twelve months, April first
func (f FiscalYear) Months() []time.Time {
	months := make([]time.Time, 12)
	for i := range months {
		months[i] = f.Start.AddDate(0, i, 0)
	}
	return months
}

// Label renders "1st April 2025 to 31st March 2026"
func (f FiscalYear) Label() string {
	return fmt.Sprintf("1st April %d to 31st March %d", f.StartYear, f.StartYear+1)
}
