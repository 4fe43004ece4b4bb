package attendance

import (
	"fmt"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// Status is the day's attendance outcome
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "halfday"
	StatusLate    Status = "late"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLate:
		return true
	}
	return false
}

// Record is one employee's attendance for one date
type Record struct {
	shared.BaseAggregateRoot
	EmployeeID   uuid.UUID
	Date         time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Remarks      string
}

// NewRecord creates an attendance record for the date of d
func NewRecord(employeeID uuid.UUID, d time.Time, status Status) (*Record, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee is required")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_ATTENDANCE_STATUS", fmt.Sprintf("Unknown attendance status: %s", status))
	}
	return &Record{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		Date:              shared.DateOf(d),
		Status:            status,
	}, nil
}

// CheckIn records the arrival time and derives present or late against lateAfter,
// expressed as an offset from midnight.
func (r *Record) CheckIn(at time.Time, lateAfter time.Duration) error {
	if !shared.SameDay(at, r.Date) {
		return shared.NewDomainError("INVALID_CHECK_IN", "Check-in must be on the attendance date")
	}
	if r.CheckInTime != nil {
		return shared.NewDomainError("ALREADY_CHECKED_IN", "Already checked in for this date")
	}
	r.CheckInTime = &at
	y, m, d := at.Date()
	if at.Sub(time.Date(y, m, d, 0, 0, 0, 0, at.Location())) > lateAfter {
		r.Status = StatusLate
	} else {
		r.Status = StatusPresent
	}
	r.IncrementVersion()
	return nil
}

// CheckOut records the departure time
func (r *Record) CheckOut(at time.Time) error {
	if r.CheckInTime == nil {
		return shared.NewDomainError("NOT_CHECKED_IN", "Cannot check out before checking in")
	}
	if r.CheckOutTime != nil {
		return shared.NewDomainError("ALREADY_CHECKED_OUT", "Already checked out for this date")
	}
	if at.Before(*r.CheckInTime) {
		return shared.NewDomainError("INVALID_CHECK_OUT", "Check-out cannot precede check-in")
	}
	r.CheckOutTime = &at
	r.IncrementVersion()
	return nil
}

// Update overwrites status, times and remarks (HR correction)
func (r *Record) Update(status Status, checkIn, checkOut *time.Time, remarks string) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_ATTENDANCE_STATUS", fmt.Sprintf("Unknown attendance status: %s", status))
	}
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		return shared.NewDomainError("INVALID_CHECK_OUT", "Check-out cannot precede check-in")
	}
	r.Status = status
	r.CheckInTime = checkIn
	r.CheckOutTime = checkOut
	r.Remarks = strings.TrimSpace(remarks)
	r.IncrementVersion()
	return nil
}

// WorkedHours returns the time between check-in and check-out, or zero
func (r *Record) WorkedHours() time.Duration {
	if r.CheckInTime == nil || r.CheckOutTime == nil {
		return 0
	}
	return r.CheckOutTime.Sub(*r.CheckInTime)
}
