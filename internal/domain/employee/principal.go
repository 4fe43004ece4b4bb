package employee

import "github.com/google/uuid"

// Principal is the authenticated caller of an operation
type Principal struct {
	ID   uuid.UUID
	Role Role
}

// CanSeeOthers reports whether the caller may read other employees' leave and attendance
func (p Principal) CanSeeOthers() bool {
	return p.Role.CanApproveLeave()
}

// CanView reports whether the caller may read records of employee id
func (p Principal) CanView(id uuid.UUID) bool {
	return p.ID == id || p.CanSeeOthers()
}
