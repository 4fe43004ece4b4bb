package models

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeModel is the persistence model for the Employee aggregate
type EmployeeModel struct {
	AggregateModel
	EmployeeCode string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Username     string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(255);not null"`
	FirstName    string          `gorm:"type:varchar(100);not null"`
	LastName     string          `gorm:"type:varchar(100);not null;default:''"`
	Email        string          `gorm:"type:varchar(200);not null;default:''"`
	Phone        string          `gorm:"type:varchar(50);not null;default:''"`
	Position     string          `gorm:"type:varchar(200);not null;default:''"`
	DepartmentID *uuid.UUID      `gorm:"type:uuid;index"`
	Role         employee.Role   `gorm:"type:varchar(20);not null;default:'employee'"`
	Salary       decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0"`
	JoinDate     time.Time       `gorm:"type:date;not null"`
	IsActive     bool            `gorm:"not null;index"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts the persistence model to a domain Employee
func (m *EmployeeModel) ToDomain() *employee.Employee {
	return &employee.Employee{
		BaseAggregateRoot: m.ToAggregateRoot(),
		EmployeeCode:      m.EmployeeCode,
		Username:          m.Username,
		PasswordHash:      m.PasswordHash,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Email:             m.Email,
		Phone:             m.Phone,
		Position:          m.Position,
		DepartmentID:      m.DepartmentID,
		Role:              m.Role,
		Salary:            m.Salary,
		JoinDate:          civilDate(m.JoinDate),
		IsActive:          m.IsActive,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain Employee
func (m *EmployeeModel) FromDomain(e *employee.Employee) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.EmployeeCode = e.EmployeeCode
	m.Username = e.Username
	m.PasswordHash = e.PasswordHash
	m.FirstName = e.FirstName
	m.LastName = e.LastName
	m.Email = e.Email
	m.Phone = e.Phone
	m.Position = e.Position
	m.DepartmentID = e.DepartmentID
	m.Role = e.Role
	m.Salary = e.Salary
	m.JoinDate = civilDate(e.JoinDate)
	m.IsActive = e.IsActive
	m.LastLoginAt = e.LastLoginAt
}

// EmployeeModelFromDomain creates a new persistence model from a domain Employee
func EmployeeModelFromDomain(e *employee.Employee) *EmployeeModel {
	m := &EmployeeModel{}
	m.FromDomain(e)
	return m
}
