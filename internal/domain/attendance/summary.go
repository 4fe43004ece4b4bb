package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Summary totals one employee's attendance over a period
type Summary struct {
	EmployeeID  uuid.UUID `json:"employee_id"`
	Present     int       `json:"present"`
	Absent      int       `json:"absent"`
	HalfDay     int       `json:"halfday"`
	Late        int       `json:"late"`
	Total       int       `json:"total"`
	Leaves      int       `json:"leaves"`
	PayableDays int       `json:"payable_days"`
}

// LeaveStart is the start date of an approved leave, used to count leaves in a period
type LeaveStart struct {
	EmployeeID uuid.UUID
	StartDate  time.Time
}

// Summarize counts records and approved leaves of employeeID inside [from, to].
// Payable days are present plus half days minus leaves taken.
func Summarize(employeeID uuid.UUID, records []*Record, leaves []LeaveStart, from, to time.Time) Summary {
	s := Summary{EmployeeID: employeeID}
	for _, r := range records {
		if r.EmployeeID != employeeID || r.Date.Before(from) || r.Date.After(to) {
			continue
		}
		s.Total++
		switch r.Status {
		case StatusPresent:
			s.Present++
		case StatusAbsent:
			s.Absent++
		case StatusHalfDay:
			s.HalfDay++
		case StatusLate:
			s.Late++
		}
	}
	for _, l := range leaves {
		if l.EmployeeID == employeeID && !l.StartDate.Before(from) && !l.StartDate.After(to) {
			s.Leaves++
		}
	}
	s.PayableDays = s.Present + s.HalfDay - s.Leaves
	return s
}
