package attendance

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/google/uuid"
)

// RecordAttendanceInput creates or replaces the record of one employee for one date
type RecordAttendanceInput struct {
	EmployeeID   uuid.UUID
	Date         time.Time
	Status       attendance.Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Remarks      string
}

// ListAttendanceInput narrows the attendance listing. Date wins over From/To.
type ListAttendanceInput struct {
	EmployeeID *uuid.UUID
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	Status     attendance.Status
}

// ReportInput selects the period and employees of an attendance report
type ReportInput struct {
	Period       payroll.PeriodKind
	Date         time.Time
	UnitID       *uuid.UUID
	DepartmentID *uuid.UUID
	Search       string
}

// AttendanceResponse is one attendance record with the employee's name
type AttendanceResponse struct {
	ID           uuid.UUID  `json:"id"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	EmployeeCode string     `json:"employee_code"`
	EmployeeName string     `json:"employee_name"`
	Date         time.Time  `json:"date"`
	Status       string     `json:"status"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	WorkedHours  float64    `json:"worked_hours"`
	Remarks      string     `json:"remarks,omitempty"`
}

// ToAttendanceResponse converts a record; e may be nil when the employee is unknown
func ToAttendanceResponse(r *attendance.Record, e *employee.Employee) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Date:         r.Date,
		Status:       string(r.Status),
		CheckInTime:  r.CheckInTime,
		CheckOutTime: r.CheckOutTime,
		WorkedHours:  float64(int(r.WorkedHours().Hours()*100+0.5)) / 100,
		Remarks:      r.Remarks,
	}
	if e != nil {
		resp.EmployeeCode = e.EmployeeCode
		resp.EmployeeName = e.FullName()
	}
	return resp
}

// SummaryRow is one employee line of an attendance report
type SummaryRow struct {
	EmployeeCode   string `json:"employee_code"`
	EmployeeName   string `json:"employee_name"`
	UnitName       string `json:"unit_name"`
	DepartmentName string `json:"department_name"`
	attendance.Summary
}

func newSummaryRow(e *employee.Employee, dir *organization.Directory, s attendance.Summary) SummaryRow {
	return SummaryRow{
		EmployeeCode:   e.EmployeeCode,
		EmployeeName:   e.FullName(),
		UnitName:       dir.UnitName(e.DepartmentID),
		DepartmentName: dir.DepartmentName(e.DepartmentID),
		Summary:        s,
	}
}

// DepartmentGroup is the rows of one department within a unit
type DepartmentGroup struct {
	Name string       `json:"name"`
	Rows []SummaryRow `json:"rows"`
}

// UnitGroup is one unit heading of the unit-wise report
type UnitGroup struct {
	Name        string            `json:"name"`
	Departments []DepartmentGroup `json:"departments"`
}

// UnitWiseReport summarises attendance of every matching employee, grouped by unit and department
type UnitWiseReport struct {
	Period          payroll.ReportPeriod `json:"period"`
	Units           []UnitGroup          `json:"units"`
	EmployeeCount   int                  `json:"employee_count"`
	UnitCount       int                  `json:"unit_count"`
	DepartmentCount int                  `json:"department_count"`
	PresentToday    int                  `json:"present_today"`
}

// Rows flattens the report in display order
func (r *UnitWiseReport) Rows() []SummaryRow {
	var rows []SummaryRow
	for _, u := range r.Units {
		for _, d := range u.Departments {
			rows = append(rows, d.Rows...)
		}
	}
	return rows
}

// IndividualReport is one employee's daily records and totals for a period
type IndividualReport struct {
	Period  payroll.ReportPeriod `json:"period"`
	Summary SummaryRow           `json:"summary"`
	Records []AttendanceResponse `json:"records"`
}
