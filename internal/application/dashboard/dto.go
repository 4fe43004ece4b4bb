package dashboard

import (
	"github.com/asnhr/hrms/internal/application/holiday"
)

// Stats are the organisation-wide figures for today
type Stats struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int   `json:"present_today"`
	OnLeaveToday   int   `json:"on_leave_today"`
	AbsentToday    int64 `json:"absent_today"`
	Departments    int   `json:"departments"`
	PendingLeaves  int64 `json:"pending_leaves"`
}

// MonthlyStats is the caller's attendance in the current month
type MonthlyStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	HalfDay int `json:"halfday"`
	Leaves  int `json:"leaves"`
}

// Dashboard is the landing page payload
type Dashboard struct {
	Stats            Stats                     `json:"stats"`
	UpcomingHolidays []holiday.HolidayResponse `json:"upcoming_holidays"`
	MyMonth          MonthlyStats              `json:"my_month"`
}
