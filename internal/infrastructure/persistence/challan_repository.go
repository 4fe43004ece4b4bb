package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormChallanRepository implements payroll.ChallanRepository using GORM
type GormChallanRepository struct {
	db *gorm.DB
}

var _ payroll.ChallanRepository = (*GormChallanRepository)(nil)

// NewGormChallanRepository creates a new GormChallanRepository
func NewGormChallanRepository(db *gorm.DB) *GormChallanRepository {
	return &GormChallanRepository{db: db}
}

// Create saves challan metadata
func (r *GormChallanRepository) Create(ctx context.Context, c *payroll.Challan) error {
	return createRow(ctx, r.db, models.ChallanModelFromDomain(c))
}

// FindByID finds a challan by ID
func (r *GormChallanRepository) FindByID(ctx context.Context, id uuid.UUID) (*payroll.Challan, error) {
	var model models.ChallanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPeriod lists challans of a kind, newest upload first; zero year or
// month widens the match
func (r *GormChallanRepository) FindByPeriod(ctx context.Context, kind payroll.ChallanKind, year int, month time.Month) ([]*payroll.Challan, error) {
	query := r.db.WithContext(ctx).Where("kind = ?", kind)
	if year > 0 {
		query = query.Where("period_year = ?", year)
	}
	if month > 0 {
		query = query.Where("period_month = ?", int(month))
	}

	var challanModels []models.ChallanModel
	if err := query.Order("uploaded_at DESC").Find(&challanModels).Error; err != nil {
		return nil, err
	}
	challans := make([]*payroll.Challan, len(challanModels))
	for i := range challanModels {
		challans[i] = challanModels[i].ToDomain()
	}
	return challans, nil
}
