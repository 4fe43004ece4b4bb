package persistence

import (
	"context"
	"testing"

	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormLeaveRepository(t *testing.T) {
	db := setupTestDB(t)
	employees := NewGormEmployeeRepository(db)
	repo := NewGormLeaveRepository(db)
	ctx := context.Background()

	asha := testEmployee("EMP001", "asha", "Asha", "Patil")
	ravi := testEmployee("EMP002", "ravi", "Ravi", "Kulkarni")
	manager := testEmployee("EMP003", "meena", "Meena", "Shah")
	require.NoError(t, employees.Create(ctx, asha))
	require.NoError(t, employees.Create(ctx, ravi))
	require.NoError(t, employees.Create(ctx, manager))

	sick, err := leave.NewRequest(asha.ID, leave.TypeSick, date(2025, 3, 3), date(2025, 3, 4), "fever")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, sick))

	wfh, _ := leave.NewRequest(ravi.ID, leave.TypeWorkFromHome, date(2025, 3, 10), date(2025, 3, 10), "plumber visit")
	require.NoError(t, repo.Create(ctx, wfh))

	annual, _ := leave.NewRequest(asha.ID, leave.TypeAnnual, date(2025, 4, 21), date(2025, 4, 25), "family trip")
	require.NoError(t, repo.Create(ctx, annual))

	t.Run("round trips dates and status", func(t *testing.T) {
		found, err := repo.FindByID(ctx, sick.ID)
		require.NoError(t, err)
		assert.Equal(t, date(2025, 3, 3), found.StartDate)
		assert.Equal(t, date(2025, 3, 4), found.EndDate)
		assert.Equal(t, leave.StatusPending, found.Status)
		assert.True(t, found.Paid)
		assert.Equal(t, leave.TypeSick, found.Type)
	})

	t.Run("persists decisions", func(t *testing.T) {
		require.NoError(t, sick.Approve(manager.ID, "get well"))
		require.NoError(t, repo.Update(ctx, sick))

		found, err := repo.FindByID(ctx, sick.ID)
		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, found.Status)
		require.NotNil(t, found.ApprovedByID)
		assert.Equal(t, manager.ID, *found.ApprovedByID)
		assert.NotNil(t, found.DecidedAt)
		assert.Equal(t, "get well", found.Remarks)
	})

	t.Run("lists by employee and status", func(t *testing.T) {
		mine, total, err := repo.List(ctx, leave.Filter{EmployeeID: &asha.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, mine, 2)

		pending, _, err := repo.List(ctx, leave.Filter{Status: leave.StatusPending})
		require.NoError(t, err)
		assert.Len(t, pending, 2)

		wfhOnly, _, err := repo.List(ctx, leave.Filter{Type: leave.TypeWorkFromHome})
		require.NoError(t, err)
		require.Len(t, wfhOnly, 1)
		assert.Equal(t, wfh.ID, wfhOnly[0].ID)
	})

	t.Run("date range keeps overlapping requests", func(t *testing.T) {
		from, to := date(2025, 3, 4), date(2025, 3, 31)
		found, total, err := repo.List(ctx, leave.Filter{From: &from, To: &to})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, found, 2)
	})

	t.Run("search covers reason and employee name", func(t *testing.T) {
		found, _, err := repo.List(ctx, leave.Filter{Filter: shared.Filter{Search: "plumber"}})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, wfh.ID, found[0].ID)

		found, total, err := repo.List(ctx, leave.Filter{Filter: shared.Filter{Search: "patil", PageSize: 1, Page: 1}})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, found, 1)
	})

	t.Run("finds by employee newest first", func(t *testing.T) {
		found, err := repo.FindByEmployee(ctx, asha.ID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, annual.ID, found[0].ID)
	})

	t.Run("approved between", func(t *testing.T) {
		found, err := repo.FindApprovedBetween(ctx, date(2025, 3, 1), date(2025, 3, 31))
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, sick.ID, found[0].ID)

		found, err = repo.FindApprovedBetween(ctx, date(2025, 3, 5), date(2025, 3, 31))
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, wfh.ID))
		_, err := repo.FindByID(ctx, wfh.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

}
