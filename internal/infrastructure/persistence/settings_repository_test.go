package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormSettingsRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingsRepository(db)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	s := payroll.DefaultSystemSettings(payroll.CompanyProfile{Name: "Acme Forgings"})
	require.NoError(t, repo.Save(ctx, s))
	assert.Equal(t, 1, s.Version)

	loaded, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme Forgings", loaded.Company.Name)
	assert.True(t, loaded.SalaryComponents.ESICPercentage.Equal(decimal.RequireFromString("0.75")))
	assert.Equal(t, 1, loaded.Version)

	loaded.SalaryComponents.HRAPercentage = decimal.NewFromInt(25)
	require.NoError(t, repo.Save(ctx, loaded))
	assert.Equal(t, 2, loaded.Version)

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, again.SalaryComponents.HRAPercentage.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 2, again.Version)

	var rows int64
	require.NoError(t, db.Table("system_settings").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestGormChallanRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormChallanRepository(db)
	ctx := context.Background()
	uploader := uuid.New()

	march, err := payroll.NewChallan(payroll.ChallanMLWF, 2025, time.March, "march.pdf", "application/pdf", 2048, uploader)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, march))
	june, _ := payroll.NewChallan(payroll.ChallanMLWF, 2025, time.June, "june.pdf", "application/pdf", 1024, uploader)
	require.NoError(t, repo.Create(ctx, june))
	older, _ := payroll.NewChallan(payroll.ChallanMLWF, 2024, time.December, "dec.pdf", "application/pdf", 512, uploader)
	require.NoError(t, repo.Create(ctx, older))

	found, err := repo.FindByID(ctx, march.ID)
	require.NoError(t, err)
	assert.Equal(t, march.ObjectKey, found.ObjectKey)
	assert.Equal(t, time.March, found.PeriodMonth)
	assert.Equal(t, uploader, found.UploadedByID)
	assert.Equal(t, int64(2048), found.Size)

	byMonth, err := repo.FindByPeriod(ctx, payroll.ChallanMLWF, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, byMonth, 1)
	assert.Equal(t, june.ID, byMonth[0].ID)

	byYear, err := repo.FindByPeriod(ctx, payroll.ChallanMLWF, 2025, 0)
	require.NoError(t, err)
	assert.Len(t, byYear, 2)

	all, err := repo.FindByPeriod(ctx, payroll.ChallanMLWF, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
