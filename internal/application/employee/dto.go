package employee

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateEmployeeInput contains input for onboarding an employee.
// An empty EmployeeCode is generated as EMP%03d.
type CreateEmployeeInput struct {
	EmployeeCode string
	Username     string
	Password     string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	DepartmentID *uuid.UUID
	Role         employee.Role
	Salary       decimal.Decimal
	JoinDate     time.Time
}

// UpdateEmployeeInput carries the fields to change; nil leaves a field as is
type UpdateEmployeeInput struct {
	FirstName       *string
	LastName        *string
	Email           *string
	Phone           *string
	Position        *string
	DepartmentID    *uuid.UUID
	ClearDepartment bool
	Role            *employee.Role
	Salary          *decimal.Decimal
	JoinDate        *time.Time
	IsActive        *bool
	Password        *string
}

// ListEmployeesInput filters the employee listing
type ListEmployeesInput struct {
	Page         int
	PageSize     int
	Search       string
	OrderBy      string
	OrderDir     string
	DepartmentID *uuid.UUID
	UnitID       *uuid.UUID
	Role         employee.Role
	ActiveOnly   bool
}

// EmployeeResponse is the employee as returned to clients
type EmployeeResponse struct {
	ID             uuid.UUID       `json:"id"`
	EmployeeCode   string          `json:"employee_code"`
	Username       string          `json:"username"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Position       string          `json:"position"`
	DepartmentID   *uuid.UUID      `json:"department_id,omitempty"`
	DepartmentName string          `json:"department_name,omitempty"`
	UnitName       string          `json:"unit_name,omitempty"`
	Role           string          `json:"role"`
	Salary         decimal.Decimal `json:"salary"`
	JoinDate       time.Time       `json:"join_date"`
	IsActive       bool            `json:"is_active"`
	LastLoginAt    *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToEmployeeResponse converts a domain Employee; dir may be nil
func ToEmployeeResponse(e *employee.Employee, dir *organization.Directory) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		Username:     e.Username,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		FullName:     e.FullName(),
		Email:        e.Email,
		Phone:        e.Phone,
		Position:     e.Position,
		DepartmentID: e.DepartmentID,
		Role:         string(e.Role),
		Salary:       e.Salary,
		JoinDate:     e.JoinDate,
		IsActive:     e.IsActive,
		LastLoginAt:  e.LastLoginAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.DepartmentID != nil && dir != nil {
		resp.DepartmentName = dir.DepartmentName(e.DepartmentID)
		resp.UnitName = dir.UnitName(e.DepartmentID)
	}
	return resp
}
