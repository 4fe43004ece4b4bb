package organization

import (
	"context"

	"github.com/google/uuid"
)

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	// Create saves a new unit
	Create(ctx context.Context, unit *Unit) error

	// Update updates an existing unit
	Update(ctx context.Context, unit *Unit) error

	// Delete removes a unit by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a unit by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)

	// FindAll returns every unit ordered by name
	FindAll(ctx context.Context) ([]*Unit, error)

	// ExistsByCode checks if a unit code is taken
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// DepartmentRepository defines the interface for department persistence
type DepartmentRepository interface {
	Create(ctx context.Context, dept *Department) error
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)

	// FindAll returns every department ordered by name
	FindAll(ctx context.Context) ([]*Department, error)

	// FindByUnitID finds the departments attached to a unit
	FindByUnitID(ctx context.Context, unitID uuid.UUID) ([]*Department, error)

	// CountByUnitID counts departments attached to a unit
	CountByUnitID(ctx context.Context, unitID uuid.UUID) (int64, error)

	ExistsByCode(ctx context.Context, code string) (bool, error)
}
