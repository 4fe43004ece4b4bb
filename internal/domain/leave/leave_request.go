package leave

import (
	"fmt"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// Type is the kind of leave requested
type Type string

const (
	TypeAnnual       Type = "annual"
	TypeSick         Type = "sick"
	TypePersonal     Type = "personal"
	TypeHalfDay      Type = "halfday"
	TypeOther        Type = "other"
	TypeUnpaid       Type = "unpaid"
	TypeWorkFromHome Type = "workfromhome"
)

// AllTypes lists every leave type in display order
var AllTypes = []Type{TypeAnnual, TypeSick, TypePersonal, TypeHalfDay, TypeOther, TypeUnpaid, TypeWorkFromHome}

// IsValid reports whether t is a known leave type
func (t Type) IsValid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// CountsTowardPaidLimit reports whether the type consumes the monthly paid allowance
func (t Type) CountsTowardPaidLimit() bool {
	switch t {
	case TypeAnnual, TypeSick, TypePersonal, TypeHalfDay, TypeOther:
		return true
	}
	return false
}

// Status is the decision state of a leave request
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is a known status
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Request is the aggregate root for a leave application
type Request struct {
	shared.BaseAggregateRoot
	EmployeeID   uuid.UUID
	Type         Type
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	Paid         bool
	ApprovedByID *uuid.UUID
	DecidedAt    *time.Time
	Remarks      string
}

// NewRequest creates a pending leave request. Half-day requests always
// cover a single date.
func NewRequest(employeeID uuid.UUID, leaveType Type, start, end time.Time, reason string) (*Request, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Employee is required")
	}
	if !leaveType.IsValid() {
		return nil, shared.NewDomainError("INVALID_LEAVE_TYPE", fmt.Sprintf("Unknown leave type: %s", leaveType))
	}
	start, end = shared.DateOf(start), shared.DateOf(end)
	if leaveType == TypeHalfDay {
		end = start
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot be before start date")
	}
	if len(reason) > 1000 {
		return nil, shared.NewDomainError("INVALID_REASON", "Reason cannot exceed 1000 characters")
	}

	return &Request{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		EmployeeID:        employeeID,
		Type:              leaveType,
		StartDate:         start,
		EndDate:           end,
		Reason:            strings.TrimSpace(reason),
		Status:            StatusPending,
		Paid:              leaveType != TypeUnpaid,
	}, nil
}

// Days returns the leave duration in working days; a half day is 0.5
func (r *Request) Days() float64 {
	if r.Type == TypeHalfDay {
		if shared.IsWeekend(r.StartDate) {
			return 0
		}
		return 0.5
	}
	return float64(shared.BusinessDays(r.StartDate, r.EndDate))
}

// DaysInMonth returns the working days of this request that fall in month.
// A half day counts only in the month of its start date.
func (r *Request) DaysInMonth(month time.Time) float64 {
	ms, me := shared.MonthStart(month), shared.MonthEnd(month)
	if r.Type == TypeHalfDay {
		if !r.StartDate.Before(ms) && !r.StartDate.After(me) && !shared.IsWeekend(r.StartDate) {
			return 0.5
		}
		return 0
	}
	s, e := r.StartDate, r.EndDate
	if s.Before(ms) {
		s = ms
	}
	if e.After(me) {
		e = me
	}
	return float64(shared.BusinessDays(s, e))
}

// Covers reports whether the request includes date d
func (r *Request) Covers(d time.Time) bool {
	d = shared.DateOf(d)
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}

// Approve marks the request approved by approverID
func (r *Request) Approve(approverID uuid.UUID, remarks string) error {
	return r.decide(StatusApproved, approverID, remarks)
}

// Reject marks the request rejected by approverID
func (r *Request) Reject(approverID uuid.UUID, remarks string) error {
	return r.decide(StatusRejected, approverID, remarks)
}

func (r *Request) decide(status Status, approverID uuid.UUID, remarks string) error {
	if r.Status != StatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Leave request is already %s", r.Status))
	}
	if approverID == r.EmployeeID {
		return shared.NewDomainError("SELF_APPROVAL", "Employees cannot decide their own leave requests")
	}
	now := time.Now()
	r.Status = status
	r.ApprovedByID = &approverID
	r.DecidedAt = &now
	r.Remarks = strings.TrimSpace(remarks)
	r.IncrementVersion()
	return nil
}

// CanCancel reports whether the request may still be withdrawn
func (r *Request) CanCancel() bool {
	return r.Status == StatusPending
}

// IsApproved reports whether the request has been approved
func (r *Request) IsApproved() bool {
	return r.Status == StatusApproved
}
