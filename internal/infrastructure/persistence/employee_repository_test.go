package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormEmployeeRepository(db)
	depts := NewGormDepartmentRepository(db)
	ctx := context.Background()

	prod, _ := organization.NewDepartment("PROD", "Production", nil)
	require.NoError(t, depts.Create(ctx, prod))

	asha := testEmployee("EMP001", "asha", "Asha", "Patil")
	asha.SetDepartment(&prod.ID)
	ravi := testEmployee("EMP002", "ravi", "Ravi", "Kulkarni")
	ravi.Position = "Machine Operator"
	meena := testEmployee("EMP003", "meena", "Meena", "Shah")
	require.NoError(t, meena.SetRole(employee.RoleHR))
	meena.SetActive(false)
	for _, e := range []*employee.Employee{asha, ravi, meena} {
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("round trips every field", func(t *testing.T) {
		found, err := repo.FindByID(ctx, asha.ID)
		require.NoError(t, err)
		assert.Equal(t, "EMP001", found.EmployeeCode)
		assert.Equal(t, "Asha Patil", found.FullName())
		assert.True(t, found.Salary.Equal(decimal.NewFromInt(30000)))
		assert.Equal(t, date(2024, time.June, 10), found.JoinDate)
		require.NotNil(t, found.DepartmentID)
		assert.Equal(t, prod.ID, *found.DepartmentID)
	})

	t.Run("finds by username and code", func(t *testing.T) {
		found, err := repo.FindByUsername(ctx, "ravi")
		require.NoError(t, err)
		assert.Equal(t, ravi.ID, found.ID)

		found, err = repo.FindByCode(ctx, "EMP003")
		require.NoError(t, err)
		assert.Equal(t, meena.ID, found.ID)

		_, err = repo.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("finds by ids", func(t *testing.T) {
		found, err := repo.FindByIDs(ctx, []uuid.UUID{asha.ID, meena.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		none, err := repo.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("lists with filters and paging", func(t *testing.T) {
		f := employee.Filter{Filter: shared.Filter{Page: 1, PageSize: 2, OrderBy: "employee_code", OrderDir: "asc"}}
		page, total, err := repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, page, 2)
		assert.Equal(t, "EMP001", page[0].EmployeeCode)

		f.Page = 2
		page, _, err = repo.List(ctx, f)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, "EMP003", page[0].EmployeeCode)

		active, total, err := repo.List(ctx, employee.Filter{ActiveOnly: true})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, active, 2)

		hr, _, err := repo.List(ctx, employee.Filter{Role: employee.RoleHR})
		require.NoError(t, err)
		require.Len(t, hr, 1)
		assert.Equal(t, meena.ID, hr[0].ID)

		inProd, _, err := repo.List(ctx, employee.Filter{DepartmentID: &prod.ID})
		require.NoError(t, err)
		require.Len(t, inProd, 1)
		assert.Equal(t, asha.ID, inProd[0].ID)
	})

	t.Run("search matches name, code and position case-insensitively", func(t *testing.T) {
		for q, want := range map[string]uuid.UUID{"KULK": ravi.ID, "emp003": meena.ID, "operator": ravi.ID} {
			found, total, err := repo.List(ctx, employee.Filter{Filter: shared.Filter{Search: q}})
			require.NoError(t, err, q)
			require.Equal(t, int64(1), total, q)
			assert.Equal(t, want, found[0].ID, q)
		}

		_, total, err := repo.List(ctx, employee.Filter{Filter: shared.Filter{Search: "100%"}})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("active employees and counts", func(t *testing.T) {
		active, err := repo.FindActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, "EMP001", active[0].EmployeeCode)

		n, err := repo.CountActive(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("existence checks", func(t *testing.T) {
		ok, err := repo.ExistsByUsername(ctx, "asha")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = repo.ExistsByCode(ctx, "EMP999")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("next sequence falls back to row count", func(t *testing.T) {
		next, err := repo.NextSequence(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(4), next)
	})

	t.Run("update persists cleared department and login time", func(t *testing.T) {
		asha.SetDepartment(nil)
		at := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
		asha.RecordLogin(at)
		require.NoError(t, repo.Update(ctx, asha))

		found, err := repo.FindByID(ctx, asha.ID)
		require.NoError(t, err)
		assert.Nil(t, found.DepartmentID)
		require.NotNil(t, found.LastLoginAt)
		assert.True(t, found.LastLoginAt.Equal(at))
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		dup := testEmployee("EMP010", "asha", "Other", "Asha")
		assert.Error(t, repo.Create(ctx, dup))
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, ravi.ID))
		assert.ErrorIs(t, repo.Delete(ctx, ravi.ID), shared.ErrNotFound)
	})
}
