package leave

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/google/uuid"
)

// SubmitLeaveInput contains input for applying for leave
type SubmitLeaveInput struct {
	EmployeeID uuid.UUID
	Type       leave.Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
}

// ListLeaveInput narrows the leave request listing
type ListLeaveInput struct {
	Page       int
	PageSize   int
	EmployeeID *uuid.UUID
	Status     leave.Status
	Type       leave.Type
	Search     string
}

// DecideLeaveInput approves or rejects a pending request
type DecideLeaveInput struct {
	Status  leave.Status
	Remarks string
}

// LeaveResponse is a leave request enriched with employee names
type LeaveResponse struct {
	ID           uuid.UUID  `json:"id"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	EmployeeCode string     `json:"employee_code"`
	EmployeeName string     `json:"employee_name"`
	Type         string     `json:"type"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Days         float64    `json:"days"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status"`
	Paid         bool       `json:"paid"`
	ApprovedByID *uuid.UUID `json:"approved_by_id,omitempty"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	Remarks      string     `json:"remarks,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToLeaveResponse converts a request; names are looked up in people
func ToLeaveResponse(r *leave.Request, people map[uuid.UUID]*employee.Employee) LeaveResponse {
	resp := LeaveResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		Type:         string(r.Type),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Days:         r.Days(),
		Reason:       r.Reason,
		Status:       string(r.Status),
		Paid:         r.Paid,
		ApprovedByID: r.ApprovedByID,
		DecidedAt:    r.DecidedAt,
		Remarks:      r.Remarks,
		CreatedAt:    r.CreatedAt,
	}
	if e, ok := people[r.EmployeeID]; ok {
		resp.EmployeeCode = e.EmployeeCode
		resp.EmployeeName = e.FullName()
	}
	if r.ApprovedByID != nil {
		if e, ok := people[*r.ApprovedByID]; ok {
			resp.ApprovedBy = e.FullName()
		}
	}
	return resp
}
