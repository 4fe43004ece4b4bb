package leave

import (
	"context"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter narrows leave request listings
type Filter struct {
	shared.Filter
	EmployeeID *uuid.UUID
	Status     Status
	Type       Type
	From       *time.Time
	To         *time.Time
}

// Repository defines the interface for leave request persistence
type Repository interface {
	Create(ctx context.Context, r *Request) error
	Update(ctx context.Context, r *Request) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Request, error)

	// List returns a page of requests plus the total match count.
	// Search matches type, reason, status and the employee's name.
	List(ctx context.Context, filter Filter) ([]*Request, int64, error)

	// FindByEmployee returns every request of one employee
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*Request, error)

	// FindApprovedBetween returns approved requests overlapping [from, to]
	FindApprovedBetween(ctx context.Context, from, to time.Time) ([]*Request, error)
}
