package persistence

import (
	"context"
	"errors"

	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitRepository implements organization.UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

var _ organization.UnitRepository = (*GormUnitRepository)(nil)

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// Create saves a new unit
func (r *GormUnitRepository) Create(ctx context.Context, unit *organization.Unit) error {
	return createRow(ctx, r.db, models.UnitModelFromDomain(unit))
}

// Update updates an existing unit
func (r *GormUnitRepository) Update(ctx context.Context, unit *organization.Unit) error {
	return updateRow(ctx, r.db, &models.UnitModel{}, unit.ID, models.UnitModelFromDomain(unit))
}

// Delete removes a unit by ID
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, r.db, &models.UnitModel{}, id)
}

// FindByID finds a unit by ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every unit ordered by name
func (r *GormUnitRepository) FindAll(ctx context.Context) ([]*organization.Unit, error) {
	var unitModels []models.UnitModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&unitModels).Error; err != nil {
		return nil, err
	}
	units := make([]*organization.Unit, len(unitModels))
	for i := range unitModels {
		units[i] = unitModels[i].ToDomain()
	}
	return units, nil
}

// ExistsByCode checks if a unit code is taken
func (r *GormUnitRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UnitModel{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
