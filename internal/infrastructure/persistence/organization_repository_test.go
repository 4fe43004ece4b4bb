package persistence

import (
	"context"
	"testing"

	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUnitRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUnitRepository(db)
	ctx := context.Background()

	pune, err := organization.NewUnit("PUNE", "Pune Plant")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, pune))
	mumbai, _ := organization.NewUnit("MUM", "Mumbai Office")
	require.NoError(t, repo.Create(ctx, mumbai))

	t.Run("finds by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, pune.ID)
		require.NoError(t, err)
		assert.Equal(t, "PUNE", found.Code)
		assert.Equal(t, "Pune Plant", found.Name)
		assert.True(t, found.IsActive)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("lists by name", func(t *testing.T) {
		units, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "Mumbai Office", units[0].Name)
		assert.Equal(t, "Pune Plant", units[1].Name)
	})

	t.Run("code existence", func(t *testing.T) {
		exists, err := repo.ExistsByCode(ctx, "PUNE")
		require.NoError(t, err)
		assert.True(t, exists)
		exists, err = repo.ExistsByCode(ctx, "DELHI")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("updates including zero values", func(t *testing.T) {
		require.NoError(t, pune.Update("Pune Works", "Chakan MIDC"))
		pune.SetActive(false)
		require.NoError(t, repo.Update(ctx, pune))

		found, err := repo.FindByID(ctx, pune.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pune Works", found.Name)
		assert.Equal(t, "Chakan MIDC", found.Address)
		assert.False(t, found.IsActive)
	})

	t.Run("update of unknown unit is not found", func(t *testing.T) {
		ghost, _ := organization.NewUnit("GHOST", "Ghost")
		assert.ErrorIs(t, repo.Update(ctx, ghost), shared.ErrNotFound)
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, mumbai.ID))
		assert.ErrorIs(t, repo.Delete(ctx, mumbai.ID), shared.ErrNotFound)
	})
}

func TestGormDepartmentRepository(t *testing.T) {
	db := setupTestDB(t)
	units := NewGormUnitRepository(db)
	repo := NewGormDepartmentRepository(db)
	employees := NewGormEmployeeRepository(db)
	ctx := context.Background()

	unit, _ := organization.NewUnit("PUNE", "Pune Plant")
	require.NoError(t, units.Create(ctx, unit))

	prod, _ := organization.NewDepartment("PROD", "Production", &unit.ID)
	require.NoError(t, repo.Create(ctx, prod))
	acc, _ := organization.NewDepartment("ACC", "Accounts", nil)
	require.NoError(t, repo.Create(ctx, acc))

	t.Run("finds by unit and counts", func(t *testing.T) {
		depts, err := repo.FindByUnitID(ctx, unit.ID)
		require.NoError(t, err)
		require.Len(t, depts, 1)
		assert.Equal(t, "PROD", depts[0].Code)

		n, err := repo.CountByUnitID(ctx, unit.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("lists all by name", func(t *testing.T) {
		depts, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, depts, 2)
		assert.Equal(t, "Accounts", depts[0].Name)
		assert.Nil(t, depts[0].UnitID)
		require.NotNil(t, depts[1].UnitID)
		assert.Equal(t, unit.ID, *depts[1].UnitID)
	})

	t.Run("detaches from unit", func(t *testing.T) {
		prod.AssignUnit(nil)
		require.NoError(t, repo.Update(ctx, prod))
		n, err := repo.CountByUnitID(ctx, unit.ID)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("delete unassigns employees", func(t *testing.T) {
		e := testEmployee("EMP001", "asha", "Asha", "Patil")
		e.SetDepartment(&acc.ID)
		require.NoError(t, employees.Create(ctx, e))

		require.NoError(t, repo.Delete(ctx, acc.ID))

		found, err := employees.FindByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Nil(t, found.DepartmentID)

		_, err = repo.FindByID(ctx, acc.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
