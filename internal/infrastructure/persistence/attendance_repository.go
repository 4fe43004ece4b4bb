package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAttendanceRepository implements attendance.Repository using GORM
type GormAttendanceRepository struct {
	db *gorm.DB
}

var _ attendance.Repository = (*GormAttendanceRepository)(nil)

// NewGormAttendanceRepository creates a new GormAttendanceRepository
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// Create saves a new attendance record. A second record for the same
// employee and date violates uq_attendance_employee_date.
func (r *GormAttendanceRepository) Create(ctx context.Context, rec *attendance.Record) error {
	if err := r.db.WithContext(ctx).Create(models.AttendanceModelFromDomain(rec)).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError("ATTENDANCE_EXISTS", "Attendance already recorded for this date")
		}
		return err
	}
	return nil
}

// Update updates an existing attendance record
func (r *GormAttendanceRepository) Update(ctx context.Context, rec *attendance.Record) error {
	return updateRow(ctx, r.db, &models.AttendanceModel{}, rec.ID, models.AttendanceModelFromDomain(rec))
}

// Delete removes an attendance record by ID
func (r *GormAttendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, r.db, &models.AttendanceModel{}, id)
}

// FindByID finds an attendance record by ID
func (r *GormAttendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*attendance.Record, error) {
	var model models.AttendanceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmployeeAndDate finds the single record of an employee for a date
func (r *GormAttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*attendance.Record, error) {
	var model models.AttendanceModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, shared.DateOf(date)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Find returns records matching the filter ordered by date then employee
func (r *GormAttendanceRepository) Find(ctx context.Context, filter attendance.Filter) ([]*attendance.Record, error) {
	query := r.db.WithContext(ctx).Model(&models.AttendanceModel{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if len(filter.EmployeeIDs) > 0 {
		query = query.Where("employee_id IN ?", filter.EmployeeIDs)
	}
	if filter.From != nil {
		query = query.Where("date >= ?", shared.DateOf(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", shared.DateOf(*filter.To))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var recModels []models.AttendanceModel
	if err := query.Order("date ASC, employee_id ASC").Find(&recModels).Error; err != nil {
		return nil, err
	}
	records := make([]*attendance.Record, len(recModels))
	for i := range recModels {
		records[i] = recModels[i].ToDomain()
	}
	return records, nil
}
