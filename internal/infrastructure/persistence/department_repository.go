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

// GormDepartmentRepository implements organization.DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

var _ organization.DepartmentRepository = (*GormDepartmentRepository)(nil)

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Create saves a new department
func (r *GormDepartmentRepository) Create(ctx context.Context, dept *organization.Department) error {
	return createRow(ctx, r.db, models.DepartmentModelFromDomain(dept))
}

// Update updates an existing department
func (r *GormDepartmentRepository) Update(ctx context.Context, dept *organization.Department) error {
	return updateRow(ctx, r.db, &models.DepartmentModel{}, dept.ID, models.DepartmentModelFromDomain(dept))
}

// Delete removes a department by ID. Employees of the department become
// unassigned.
func (r *GormDepartmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.EmployeeModel{}).
			Where("department_id = ?", id).
			Update("department_id", nil).Error; err != nil {
			return err
		}
		return deleteRow(ctx, tx, &models.DepartmentModel{}, id)
	})
}

// FindByID finds a department by ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Department, error) {
	var model models.DepartmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every department ordered by name
func (r *GormDepartmentRepository) FindAll(ctx context.Context) ([]*organization.Department, error) {
	var deptModels []models.DepartmentModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&deptModels).Error; err != nil {
		return nil, err
	}
	return departmentsToDomain(deptModels), nil
}

// FindByUnitID finds the departments attached to a unit
func (r *GormDepartmentRepository) FindByUnitID(ctx context.Context, unitID uuid.UUID) ([]*organization.Department, error) {
	var deptModels []models.DepartmentModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("name ASC").
		Find(&deptModels).Error; err != nil {
		return nil, err
	}
	return departmentsToDomain(deptModels), nil
}

// CountByUnitID counts departments attached to a unit
func (r *GormDepartmentRepository) CountByUnitID(ctx context.Context, unitID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DepartmentModel{}).Where("unit_id = ?", unitID).Count(&count).Error
	return count, err
}

// ExistsByCode checks if a department code is taken
func (r *GormDepartmentRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DepartmentModel{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func departmentsToDomain(ms []models.DepartmentModel) []*organization.Department {
	depts := make([]*organization.Department, len(ms))
	for i := range ms {
		depts[i] = ms[i].ToDomain()
	}
	return depts
}
