package models

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/google/uuid"
)

// AttendanceModel is the persistence model for an attendance Record
type AttendanceModel struct {
	AggregateModel
	EmployeeID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date         time.Time         `gorm:"type:date;not null;uniqueIndex:uq_attendance_employee_date;index"`
	Status       attendance.Status `gorm:"type:varchar(20);not null"`
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Remarks      string `gorm:"type:text;not null;default:''"`
}

// TableName returns the table name for GORM
func (AttendanceModel) TableName() string {
	return "attendance"
}

// ToDomain converts the persistence model to a domain attendance Record
func (m *AttendanceModel) ToDomain() *attendance.Record {
	return &attendance.Record{
		BaseAggregateRoot: m.ToAggregateRoot(),
		EmployeeID:        m.EmployeeID,
		Date:              civilDate(m.Date),
		Status:            m.Status,
		CheckInTime:       m.CheckInTime,
		CheckOutTime:      m.CheckOutTime,
		Remarks:           m.Remarks,
	}
}

// FromDomain populates the persistence model from a domain attendance Record
func (m *AttendanceModel) FromDomain(r *attendance.Record) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.EmployeeID = r.EmployeeID
	m.Date = civilDate(r.Date)
	m.Status = r.Status
	m.CheckInTime = r.CheckInTime
	m.CheckOutTime = r.CheckOutTime
	m.Remarks = r.Remarks
}

// AttendanceModelFromDomain creates a new persistence model from a domain attendance Record
func AttendanceModelFromDomain(r *attendance.Record) *AttendanceModel {
	m := &AttendanceModel{}
	m.FromDomain(r)
	return m
}
