package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const employeeSearchClause = `(LOWER(employees.first_name) LIKE ? ESCAPE '\' OR LOWER(employees.last_name) LIKE ? ESCAPE '\' ` +
	`OR LOWER(employees.employee_code) LIKE ? ESCAPE '\' OR LOWER(employees.username) LIKE ? ESCAPE '\' ` +
	`OR LOWER(employees.email) LIKE ? ESCAPE '\' OR LOWER(employees.position) LIKE ? ESCAPE '\')`

// GormEmployeeRepository implements employee.Repository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

var _ employee.Repository = (*GormEmployeeRepository)(nil)

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create saves a new employee
func (r *GormEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	return createRow(ctx, r.db, models.EmployeeModelFromDomain(e))
}

// Update updates an existing employee
func (r *GormEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	return updateRow(ctx, r.db, &models.EmployeeModel{}, e.ID, models.EmployeeModelFromDomain(e))
}

// Delete removes an employee by ID. Leave and attendance rows cascade.
func (r *GormEmployeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, r.db, &models.EmployeeModel{}, id)
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByUsername finds an employee by login name
func (r *GormEmployeeRepository) FindByUsername(ctx context.Context, username string) (*employee.Employee, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindByCode finds an employee by employee code
func (r *GormEmployeeRepository) FindByCode(ctx context.Context, code string) (*employee.Employee, error) {
	return r.findOne(ctx, "employee_code = ?", code)
}

func (r *GormEmployeeRepository) findOne(ctx context.Context, query string, arg any) (*employee.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds employees by multiple IDs
func (r *GormEmployeeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*employee.Employee, error) {
	if len(ids) == 0 {
		return []*employee.Employee{}, nil
	}
	var empModels []models.EmployeeModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&empModels).Error; err != nil {
		return nil, err
	}
	return employeesToDomain(empModels), nil
}

// List returns a page of employees plus the total match count
func (r *GormEmployeeRepository) List(ctx context.Context, filter employee.Filter) ([]*employee.Employee, int64, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.EmployeeModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order(orderClause("employees", filter.OrderBy, filter.OrderDir, EmployeeSortFields, "created_at"))
	if !filter.Unpaged() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var empModels []models.EmployeeModel
	if err := query.Find(&empModels).Error; err != nil {
		return nil, 0, err
	}
	return employeesToDomain(empModels), total, nil
}

func (r *GormEmployeeRepository) applyFilter(query *gorm.DB, filter employee.Filter) *gorm.DB {
	if filter.ActiveOnly {
		query = query.Where("employees.is_active = ?", true)
	}
	if filter.Role != "" {
		query = query.Where("employees.role = ?", filter.Role)
	}
	if filter.DepartmentID != nil {
		query = query.Where("employees.department_id = ?", *filter.DepartmentID)
	}
	if len(filter.DepartmentIDs) > 0 {
		query = query.Where("employees.department_id IN ?", filter.DepartmentIDs)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where(employeeSearchClause, p, p, p, p, p, p)
	}
	return query
}

// FindActive returns every active employee ordered by code
func (r *GormEmployeeRepository) FindActive(ctx context.Context) ([]*employee.Employee, error) {
	var empModels []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("employee_code ASC").
		Find(&empModels).Error; err != nil {
		return nil, err
	}
	return employeesToDomain(empModels), nil
}

// ExistsByUsername checks if a login name is taken
func (r *GormEmployeeRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

// ExistsByCode checks if an employee code is taken
func (r *GormEmployeeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "employee_code = ?", code)
}

func (r *GormEmployeeRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextSequence returns the next employee code number. PostgreSQL draws from
// employee_code_seq; other dialects fall back to the row count.
func (r *GormEmployeeRepository) NextSequence(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)
	if db.Dialector.Name() == "postgres" {
		var next int64
		if err := db.Raw("SELECT nextval('employee_code_seq')").Scan(&next).Error; err != nil {
			return 0, fmt.Errorf("next employee sequence: %w", err)
		}
		return next, nil
	}
	var count int64
	if err := db.Model(&models.EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count + 1, nil
}

// CountActive counts active employees
func (r *GormEmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func employeesToDomain(ms []models.EmployeeModel) []*employee.Employee {
	emps := make([]*employee.Employee, len(ms))
	for i := range ms {
		emps[i] = ms[i].ToDomain()
	}
	return emps
}
