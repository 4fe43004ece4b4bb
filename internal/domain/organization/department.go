package organization

import (
	"strings"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// UnassignedGroup is the label used for employees or departments with no unit/department
const UnassignedGroup = "Unassigned"

// Department represents a department, optionally attached to a unit
type Department struct {
	shared.BaseAggregateRoot
	Code        string
	Name        string
	Description string
	UnitID      *uuid.UUID
	IsActive    bool
}

// NewDepartment creates an active department
func NewDepartment(code, name string, unitID *uuid.UUID) (*Department, error) {
	code = normalizeCode(code)
	if err := validateCode("DEPARTMENT", code); err != nil {
		return nil, err
	}
	if err := validateName("DEPARTMENT", name); err != nil {
		return nil, err
	}
	return &Department{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              strings.TrimSpace(name),
		UnitID:            unitID,
		IsActive:          true,
	}, nil
}

// Update updates the department's basic information
func (d *Department) Update(name, description string) error {
	if err := validateName("DEPARTMENT", name); err != nil {
		return err
	}
	d.Name = strings.TrimSpace(name)
	d.Description = strings.TrimSpace(description)
	d.IncrementVersion()
	return nil
}

// AssignUnit moves the department under a unit, or detaches it when nil
func (d *Department) AssignUnit(unitID *uuid.UUID) {
	d.UnitID = unitID
	d.IncrementVersion()
}

// SetActive toggles the department status
func (d *Department) SetActive(active bool) {
	if d.IsActive == active {
		return
	}
	d.IsActive = active
	d.IncrementVersion()
}

// BelongsTo reports whether the department sits under the given unit
func (d *Department) BelongsTo(unitID uuid.UUID) bool {
	return d.UnitID != nil && *d.UnitID == unitID
}
