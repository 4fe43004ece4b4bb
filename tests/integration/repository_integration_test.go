package integration

import (
	"context"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/migration"
	"github.com/asnhr/hrms/internal/infrastructure/persistence"
	"github.com/asnhr/hrms/migrations"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmployeeRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	ctx := context.Background()
	repo := persistence.NewGormEmployeeRepository(tdb.DB)

	t.Run("sequence advances", func(t *testing.T) {
		first, err := repo.NextSequence(ctx)
		require.NoError(t, err)
		second, err := repo.NextSequence(ctx)
		require.NoError(t, err)
		assert.Equal(t, first+1, second)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		testutil.Hire(t, repo, "sunita", employee.RoleEmployee)
		dup, err := employee.NewEmployee(employee.NewEmployeeInput{
			EmployeeCode: "EMP9002",
			Username:     "sunita",
			Password:     "secret123",
			FirstName:    "Sunita",
			Salary:       decimal.NewFromInt(10000),
		})
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)
	})

	t.Run("department delete unassigns employees", func(t *testing.T) {
		depts := persistence.NewGormDepartmentRepository(tdb.DB)
		d, err := organization.NewDepartment("QA", "Quality", nil)
		require.NoError(t, err)
		require.NoError(t, depts.Create(ctx, d))

		e := testutil.Hire(t, repo, "kiran", employee.RoleEmployee)
		e.SetDepartment(&d.ID)
		require.NoError(t, repo.Update(ctx, e))

		require.NoError(t, depts.Delete(ctx, d.ID))
		reloaded, err := repo.FindByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Nil(t, reloaded.DepartmentID)
	})

	t.Run("salary keeps two decimals", func(t *testing.T) {
		e := testutil.Hire(t, repo, "meera", employee.RoleHR)
		require.NoError(t, e.SetSalary(decimal.RequireFromString("41234.56")))
		require.NoError(t, repo.Update(ctx, e))

		reloaded, err := repo.FindByUsername(ctx, "meera")
		require.NoError(t, err)
		assert.True(t, reloaded.Salary.Equal(decimal.RequireFromString("41234.56")), reloaded.Salary.String())
		assert.Equal(t, employee.RoleHR, reloaded.Role)
	})
}

func TestAttendanceRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	ctx := context.Background()
	emps := persistence.NewGormEmployeeRepository(tdb.DB)
	repo := persistence.NewGormAttendanceRepository(tdb.DB)
	e := testutil.Hire(t, emps, "rahul", employee.RoleEmployee)

	rec, err := attendance.NewRecord(e.ID, testutil.Date(2025, time.March, 3), attendance.StatusPresent)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, rec))

	dup, err := attendance.NewRecord(e.ID, testutil.Date(2025, time.March, 3), attendance.StatusLate)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), shared.ErrAlreadyExists)

	found, err := repo.FindByEmployeeAndDate(ctx, e.ID, testutil.Date(2025, time.March, 3))
	require.NoError(t, err)
	assert.Equal(t, rec.ID, found.ID)
	assert.Equal(t, attendance.StatusPresent, found.Status)
	assert.True(t, found.Date.Equal(testutil.Date(2025, time.March, 3)))

	_, err = repo.FindByEmployeeAndDate(ctx, e.ID, testutil.Date(2025, time.March, 4))
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestLeaveRepository_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	ctx := context.Background()
	emps := persistence.NewGormEmployeeRepository(tdb.DB)
	repo := persistence.NewGormLeaveRepository(tdb.DB)
	e := testutil.Hire(t, emps, "pooja", employee.RoleEmployee)
	approver := testutil.Hire(t, emps, "hrlead", employee.RoleHR)

	submit := func(start, end time.Time, approve bool) *leave.Request {
		r, err := leave.NewRequest(e.ID, leave.TypeAnnual, start, end, "family")
		require.NoError(t, err)
		if approve {
			require.NoError(t, r.Approve(approver.ID, "ok"))
		}
		require.NoError(t, repo.Create(ctx, r))
		return r
	}
	spanning := submit(testutil.Date(2025, time.February, 27), testutil.Date(2025, time.March, 2), true)
	inside := submit(testutil.Date(2025, time.March, 10), testutil.Date(2025, time.March, 11), true)
	submit(testutil.Date(2025, time.March, 12), testutil.Date(2025, time.March, 12), false)
	submit(testutil.Date(2025, time.April, 1), testutil.Date(2025, time.April, 2), true)

	approved, err := repo.FindApprovedBetween(ctx, testutil.Date(2025, time.March, 1), testutil.Date(2025, time.March, 31))
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(approved))
	for _, r := range approved {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{spanning.ID, inside.ID}, ids)

	reloaded, err := repo.FindByID(ctx, inside.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, reloaded.Status)
	require.NotNil(t, reloaded.ApprovedByID)
	assert.Equal(t, approver.ID, *reloaded.ApprovedByID)
}

func TestSettingsAndChallanRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	tdb := NewSharedTestDB(t)
	tdb.CleanTables()
	ctx := context.Background()

	settings := persistence.NewGormSettingsRepository(tdb.DB)
	s := payroll.DefaultSystemSettings(payroll.CompanyProfile{Name: "Deccan Castings"})
	require.NoError(t, settings.Save(ctx, s))
	s.SalaryComponents.BasicSalaryPercentage = decimal.NewFromInt(45)
	require.NoError(t, settings.Save(ctx, s))

	loaded, err := settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Version)
	assert.Equal(t, "Deccan Castings", loaded.Company.Name)
	assert.True(t, loaded.SalaryComponents.BasicSalaryPercentage.Equal(decimal.NewFromInt(45)))

	emps := persistence.NewGormEmployeeRepository(tdb.DB)
	uploader := testutil.Hire(t, emps, "accounts", employee.RoleHR)
	challans := persistence.NewGormChallanRepository(tdb.DB)
	c, err := payroll.NewChallan(payroll.ChallanMLWF, 2025, time.June, "june.pdf", "application/pdf", 4096, uploader.ID)
	require.NoError(t, err)
	require.NoError(t, challans.Create(ctx, c))

	found, err := challans.FindByPeriod(ctx, payroll.ChallanMLWF, 2025, time.June)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, c.ObjectKey, found[0].ObjectKey)

	again := *c
	again.ID = uuid.New()
	assert.ErrorIs(t, challans.Create(ctx, &again), shared.ErrAlreadyExists)
}

func TestMigrations_DownAndUp(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	tdb := NewTestDB(t)

	m, err := migration.New(tdb.SqlDB, migrations.FS, zap.NewNop())
	require.NoError(t, err)

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, m.Down())
	var tables int64
	require.NoError(t, tdb.DB.Raw(`SELECT COUNT(*) FROM pg_tables WHERE schemaname = 'public' AND tablename = 'employees'`).Scan(&tables).Error)
	assert.Equal(t, int64(0), tables)

	require.NoError(t, m.Up())
	require.NoError(t, tdb.DB.Raw(`SELECT COUNT(*) FROM pg_tables WHERE schemaname = 'public' AND tablename = 'employees'`).Scan(&tables).Error)
	assert.Equal(t, int64(1), tables)
}
