package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/asnhr/hrms/internal/domain/holiday"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormHolidayRepository implements holiday.Repository using GORM
type GormHolidayRepository struct {
	db *gorm.DB
}

var _ holiday.Repository = (*GormHolidayRepository)(nil)

// NewGormHolidayRepository creates a new GormHolidayRepository
func NewGormHolidayRepository(db *gorm.DB) *GormHolidayRepository {
	return &GormHolidayRepository{db: db}
}

// Create saves a new holiday
func (r *GormHolidayRepository) Create(ctx context.Context, h *holiday.Holiday) error {
	return r.db.WithContext(ctx).Create(models.HolidayModelFromDomain(h)).Error
}

// Update updates an existing holiday
func (r *GormHolidayRepository) Update(ctx context.Context, h *holiday.Holiday) error {
	return updateRow(ctx, r.db, &models.HolidayModel{}, h.ID, models.HolidayModelFromDomain(h))
}

// Delete removes a holiday by ID
func (r *GormHolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, r.db, &models.HolidayModel{}, id)
}

// FindByID finds a holiday by ID
func (r *GormHolidayRepository) FindByID(ctx context.Context, id uuid.UUID) (*holiday.Holiday, error) {
	return r.findOne(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByDate finds the holiday on a date
func (r *GormHolidayRepository) FindByDate(ctx context.Context, date time.Time) (*holiday.Holiday, error) {
	return r.findOne(r.db.WithContext(ctx).Where("date = ?", shared.DateOf(date)))
}

func (r *GormHolidayRepository) findOne(query *gorm.DB) (*holiday.Holiday, error) {
	var model models.HolidayModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists holidays ordered by date; year 0 means every year
func (r *GormHolidayRepository) FindAll(ctx context.Context, year int) ([]*holiday.Holiday, error) {
	query := r.db.WithContext(ctx).Model(&models.HolidayModel{})
	if year > 0 {
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("date >= ? AND date < ?", start, start.AddDate(1, 0, 0))
	}
	return r.find(query.Order("date ASC"))
}

// FindFrom lists up to limit holidays on or after from
func (r *GormHolidayRepository) FindFrom(ctx context.Context, from time.Time, limit int) ([]*holiday.Holiday, error) {
	query := r.db.WithContext(ctx).
		Model(&models.HolidayModel{}).
		Where("date >= ?", shared.DateOf(from)).
		Order("date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.find(query)
}

func (r *GormHolidayRepository) find(query *gorm.DB) ([]*holiday.Holiday, error) {
	var holidayModels []models.HolidayModel
	if err := query.Find(&holidayModels).Error; err != nil {
		return nil, err
	}
	holidays := make([]*holiday.Holiday, len(holidayModels))
	for i := range holidayModels {
		holidays[i] = holidayModels[i].ToDomain()
	}
	return holidays, nil
}
