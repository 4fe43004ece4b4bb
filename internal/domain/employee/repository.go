package employee

import (
	"context"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// Filter narrows employee listings
type Filter struct {
	shared.Filter
	DepartmentID  *uuid.UUID
	DepartmentIDs []uuid.UUID
	Role          Role
	ActiveOnly    bool
}

// Repository defines the interface for employee persistence
type Repository interface {
	// Create saves a new employee
	Create(ctx context.Context, e *Employee) error

	// Update updates an existing employee
	Update(ctx context.Context, e *Employee) error

	// Delete removes an employee by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds an employee by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)

	// FindByUsername finds an employee by login name
	FindByUsername(ctx context.Context, username string) (*Employee, error)

	// FindByCode finds an employee by employee code (e.g. EMP001)
	FindByCode(ctx context.Context, code string) (*Employee, error)

	// FindByIDs finds employees by multiple IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Employee, error)

	// List returns a page of employees plus the total match count
	List(ctx context.Context, filter Filter) ([]*Employee, int64, error)

	// FindActive returns every active employee
	FindActive(ctx context.Context) ([]*Employee, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// NextSequence returns the number to use for the next generated employee code
	NextSequence(ctx context.Context) (int64, error)

	// CountActive counts active employees
	CountActive(ctx context.Context) (int64, error)
}
