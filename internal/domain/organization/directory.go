package organization

import "github.com/google/uuid"

// Directory is an in-memory lookup of units and departments used by
// registers and reports to place employees under unit and department headings.
type Directory struct {
	units       map[uuid.UUID]*Unit
	departments map[uuid.UUID]*Department
}

// NewDirectory indexes the given units and departments
func NewDirectory(units []*Unit, departments []*Department) *Directory {
	d := &Directory{
		units:       make(map[uuid.UUID]*Unit, len(units)),
		departments: make(map[uuid.UUID]*Department, len(departments)),
	}
	for _, u := range units {
		d.units[u.ID] = u
	}
	for _, dept := range departments {
		d.departments[dept.ID] = dept
	}
	return d
}

// Department returns the department with the given id, if known
func (d *Directory) Department(id *uuid.UUID) (*Department, bool) {
	if d == nil || id == nil {
		return nil, false
	}
	dept, ok := d.departments[*id]
	return dept, ok
}

// UnitOf returns the unit a department belongs to, if any
func (d *Directory) UnitOf(departmentID *uuid.UUID) (*Unit, bool) {
	dept, ok := d.Department(departmentID)
	if !ok || dept.UnitID == nil {
		return nil, false
	}
	u, ok := d.units[*dept.UnitID]
	return u, ok
}

// UnitIDOf returns the unit id of a department, or nil
func (d *Directory) UnitIDOf(departmentID *uuid.UUID) *uuid.UUID {
	if u, ok := d.UnitOf(departmentID); ok {
		id := u.ID
		return &id
	}
	return nil
}

// DepartmentName returns the department name or UnassignedGroup
func (d *Directory) DepartmentName(departmentID *uuid.UUID) string {
	if dept, ok := d.Department(departmentID); ok {
		return dept.Name
	}
	return UnassignedGroup
}

// UnitName returns the name of the department's unit or UnassignedGroup
func (d *Directory) UnitName(departmentID *uuid.UUID) string {
	if u, ok := d.UnitOf(departmentID); ok {
		return u.Name
	}
	return UnassignedGroup
}

// Matches reports whether a department passes optional unit and department filters
func (d *Directory) Matches(departmentID, unitFilter, departmentFilter *uuid.UUID) bool {
	if departmentFilter != nil {
		if departmentID == nil || *departmentID != *departmentFilter {
			return false
		}
	}
	if unitFilter != nil {
		unitID := d.UnitIDOf(departmentID)
		if unitID == nil || *unitID != *unitFilter {
			return false
		}
	}
	return true
}

// UnitCount returns the number of known units
func (d *Directory) UnitCount() int {
	if d == nil {
		return 0
	}
	return len(d.units)
}
