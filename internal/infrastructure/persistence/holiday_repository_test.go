package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/holiday"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormHolidayRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormHolidayRepository(db)
	ctx := context.Background()

	mk := func(name string, d time.Time) *holiday.Holiday {
		h, err := holiday.NewHoliday(name, d, "", false)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, h))
		return h
	}
	christmas := mk("Christmas", date(2024, time.December, 25))
	republic := mk("Republic Day", date(2025, time.January, 26))
	mk("Independence Day", date(2025, time.August, 15))
	mk("Gandhi Jayanti", date(2025, time.October, 2))

	t.Run("lists one year in date order", func(t *testing.T) {
		found, err := repo.FindAll(ctx, 2025)
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, republic.ID, found[0].ID)
		assert.Equal(t, "Gandhi Jayanti", found[2].Name)

		all, err := repo.FindAll(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 4)
		assert.Equal(t, christmas.ID, all[0].ID)
	})

	t.Run("upcoming from a date with limit", func(t *testing.T) {
		found, err := repo.FindFrom(ctx, date(2025, time.January, 26), 2)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "Republic Day", found[0].Name)
		assert.Equal(t, "Independence Day", found[1].Name)
	})

	t.Run("finds by date", func(t *testing.T) {
		found, err := repo.FindByDate(ctx, date(2024, time.December, 25))
		require.NoError(t, err)
		assert.Equal(t, christmas.ID, found.ID)

		_, err = repo.FindByDate(ctx, date(2024, time.December, 26))
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("updates", func(t *testing.T) {
		require.NoError(t, christmas.Update("Christmas Day", date(2024, time.December, 25), "bank holiday", true))
		require.NoError(t, repo.Update(ctx, christmas))
		found, err := repo.FindByID(ctx, christmas.ID)
		require.NoError(t, err)
		assert.Equal(t, "Christmas Day", found.Name)
		assert.Equal(t, "bank holiday", found.Description)
		assert.True(t, found.IsOptional)
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, republic.ID))
		_, err := repo.FindByID(ctx, republic.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
