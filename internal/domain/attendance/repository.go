package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows attendance listings
type Filter struct {
	EmployeeID  *uuid.UUID
	EmployeeIDs []uuid.UUID
	From        *time.Time
	To          *time.Time
	Status      Status
}

// Repository defines the interface for attendance persistence
type Repository interface {
	Create(ctx context.Context, r *Record) error
	Update(ctx context.Context, r *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)

	// FindByEmployeeAndDate finds the single record of an employee for a date
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Record, error)

	// Find returns records matching the filter ordered by date then employee
	Find(ctx context.Context, filter Filter) ([]*Record, error)
}
