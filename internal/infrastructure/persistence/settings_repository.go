package persistence

import (
	"context"
	"errors"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository stores the singleton settings document
type GormSettingsRepository struct {
	db *gorm.DB
}

var _ payroll.SettingsRepository = (*GormSettingsRepository)(nil)

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns shared.ErrNotFound when nothing has been saved yet
func (r *GormSettingsRepository) Get(ctx context.Context) (*payroll.SystemSettings, error) {
	var model models.SystemSettingsModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", models.SettingsSingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// Save upserts the document and bumps s.Version
func (r *GormSettingsRepository) Save(ctx context.Context, s *payroll.SystemSettings) error {
	model, err := models.SystemSettingsModelFromDomain(s)
	if err != nil {
		return err
	}
	model.Version = s.Version + 1
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "version", "updated_at"}),
	}).Create(model).Error; err != nil {
		return err
	}
	s.Version = model.Version
	return nil
}
