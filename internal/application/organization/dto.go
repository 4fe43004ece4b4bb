package organization

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/google/uuid"
)

// CreateUnitInput contains input for creating a unit
type CreateUnitInput struct {
	Code    string
	Name    string
	Address string
}

// UpdateUnitInput contains input for updating a unit
type UpdateUnitInput struct {
	Name     string
	Address  string
	IsActive *bool
}

// UnitResponse is the unit as returned to clients
type UnitResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	IsActive        bool      `json:"is_active"`
	DepartmentCount int       `json:"department_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToUnitResponse converts a domain Unit
func ToUnitResponse(u *organization.Unit, departments int) UnitResponse {
	return UnitResponse{
		ID:              u.ID,
		Code:            u.Code,
		Name:            u.Name,
		Address:         u.Address,
		IsActive:        u.IsActive,
		DepartmentCount: departments,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

// CreateDepartmentInput contains input for creating a department
type CreateDepartmentInput struct {
	Code        string
	Name        string
	Description string
	UnitID      *uuid.UUID
}

// UpdateDepartmentInput contains input for updating a department.
// ClearUnit detaches the department from its unit.
type UpdateDepartmentInput struct {
	Name        string
	Description string
	UnitID      *uuid.UUID
	ClearUnit   bool
	IsActive    *bool
}

// DepartmentResponse is the department as returned to clients
type DepartmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UnitID      *uuid.UUID `json:"unit_id,omitempty"`
	UnitName    string     `json:"unit_name,omitempty"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToDepartmentResponse converts a domain Department; unitName may be empty
func ToDepartmentResponse(d *organization.Department, unitName string) DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		UnitID:      d.UnitID,
		UnitName:    unitName,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
