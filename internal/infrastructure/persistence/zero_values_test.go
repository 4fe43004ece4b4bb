package persistence

import (
	"context"
	"testing"

	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_KeepsFalseFlags(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	employees := NewGormEmployeeRepository(db)
	leaver := testEmployee("EMP001", "leaver", "Sanjay", "Jadhav")
	leaver.SetActive(false)
	require.NoError(t, employees.Create(ctx, leaver))

	t.Run("inactive employee", func(t *testing.T) {
		found, err := employees.FindByID(ctx, leaver.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})

	t.Run("unpaid leave", func(t *testing.T) {
		repo := NewGormLeaveRepository(db)
		unpaid, err := leave.NewRequest(leaver.ID, leave.TypeUnpaid, date(2025, 3, 3), date(2025, 3, 4), "personal work")
		require.NoError(t, err)
		require.False(t, unpaid.Paid)

		over, err := leave.NewRequest(leaver.ID, leave.TypeAnnual, date(2025, 3, 10), date(2025, 3, 12), "wedding")
		require.NoError(t, err)
		over.Paid = false
		require.NoError(t, repo.Create(ctx, unpaid))
		require.NoError(t, repo.Create(ctx, over))

		found, err := repo.FindByID(ctx, unpaid.ID)
		require.NoError(t, err)
		assert.False(t, found.Paid)
		found, err = repo.FindByID(ctx, over.ID)
		require.NoError(t, err)
		assert.False(t, found.Paid)
	})

	t.Run("inactive unit and department", func(t *testing.T) {
		units := NewGormUnitRepository(db)
		u, err := organization.NewUnit("SAT", "Satara Depot")
		require.NoError(t, err)
		u.SetActive(false)
		require.NoError(t, units.Create(ctx, u))

		depts := NewGormDepartmentRepository(db)
		d, err := organization.NewDepartment("STO", "Stores", &u.ID)
		require.NoError(t, err)
		d.SetActive(false)
		require.NoError(t, depts.Create(ctx, d))

		foundUnit, err := units.FindByID(ctx, u.ID)
		require.NoError(t, err)
		assert.False(t, foundUnit.IsActive)
		foundDept, err := depts.FindByID(ctx, d.ID)
		require.NoError(t, err)
		assert.False(t, foundDept.IsActive)
	})
}
