package models

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/google/uuid"
)

// LeaveRequestModel is the persistence model for the leave Request aggregate
type LeaveRequestModel struct {
	AggregateModel
	EmployeeID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	LeaveType    leave.Type   `gorm:"column:leave_type;type:varchar(20);not null"`
	StartDate    time.Time    `gorm:"type:date;not null"`
	EndDate      time.Time    `gorm:"type:date;not null"`
	Reason       string       `gorm:"type:text;not null;default:''"`
	Status       leave.Status `gorm:"type:varchar(20);not null;default:'pending';index"`
	Paid         bool         `gorm:"not null"`
	ApprovedByID *uuid.UUID   `gorm:"type:uuid"`
	DecidedAt    *time.Time
	Remarks      string `gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for GORM
func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// ToDomain converts the persistence model to a domain leave Request
func (m *LeaveRequestModel) ToDomain() *leave.Request {
	return &leave.Request{
		BaseAggregateRoot: m.ToAggregateRoot(),
		EmployeeID:        m.EmployeeID,
		Type:              m.LeaveType,
		StartDate:         civilDate(m.StartDate),
		EndDate:           civilDate(m.EndDate),
		Reason:            m.Reason,
		Status:            m.Status,
		Paid:              m.Paid,
		ApprovedByID:      m.ApprovedByID,
		DecidedAt:         m.DecidedAt,
		Remarks:           m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain leave Request
func (m *LeaveRequestModel) FromDomain(r *leave.Request) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.EmployeeID = r.EmployeeID
	m.LeaveType = r.Type
	m.StartDate = civilDate(r.StartDate)
	m.EndDate = civilDate(r.EndDate)
	m.Reason = r.Reason
	m.Status = r.Status
	m.Paid = r.Paid
	m.ApprovedByID = r.ApprovedByID
	m.DecidedAt = r.DecidedAt
	m.Remarks = r.Remarks
}

// LeaveRequestModelFromDomain creates a new persistence model from a domain leave Request
func LeaveRequestModelFromDomain(r *leave.Request) *LeaveRequestModel {
	m := &LeaveRequestModel{}
	m.FromDomain(r)
	return m
}
