package dashboard

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	appholiday "github.com/asnhr/hrms/internal/application/holiday"
	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/holiday"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/cache"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc    *DashboardService
	emps   *testutil.EmployeeRepository
	leaves *testutil.LeaveRepository
	att    *testutil.AttendanceRepository
	hols   *testutil.HolidayRepository
	depts  *testutil.DepartmentRepository
	staff  []*employee.Employee
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func newFixture(t *testing.T, c shared.Cache) *fixture {
	t.Helper()
	f := &fixture{
		emps:   testutil.NewEmployeeRepository(),
		leaves: testutil.NewLeaveRepository(),
		att:    testutil.NewAttendanceRepository(),
		hols:   testutil.NewHolidayRepository(),
		depts:  testutil.NewDepartmentRepository(),
	}
	units := testutil.NewUnitRepository()
	attSvc := appatt.NewAttendanceService(f.att, f.emps, f.leaves, units, f.depts, appatt.DefaultPolicy(), zap.NewNop())
	holSvc := appholiday.NewHolidayService(f.hols, zap.NewNop())
	f.svc = NewDashboardService(f.emps, f.leaves, f.att, f.depts, holSvc, attSvc, c, time.UTC, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC) }

	ctx := context.Background()
	d, err := organization.NewDepartment("ACC", "Accounts", nil)
	require.NoError(t, err)
	require.NoError(t, f.depts.Create(ctx, d))

	for i := 1; i <= 4; i++ {
		e, err := employee.NewEmployee(employee.NewEmployeeInput{
			EmployeeCode: employee.FormatEmployeeCode(int64(i)),
			Username:     fmt.Sprintf("user%d", i),
			Password:     "secret123",
			FirstName:    "User",
			LastName:     fmt.Sprintf("%d", i),
			Salary:       decimal.NewFromInt(20000),
		})
		require.NoError(t, err)
		require.NoError(t, f.emps.Create(ctx, e))
		f.staff = append(f.staff, e)
	}

	f.mark(t, f.staff[0], attendance.StatusPresent)
	f.mark(t, f.staff[1], attendance.StatusLate)

	onLeave, err := leave.NewRequest(f.staff[2].ID, leave.TypeAnnual, day(9), day(11), "family")
	require.NoError(t, err)
	require.NoError(t, onLeave.Approve(uuid.New(), ""))
	require.NoError(t, f.leaves.Create(ctx, onLeave))

	pending, err := leave.NewRequest(f.staff[3].ID, leave.TypeAnnual, day(20), day(20), "trip")
	require.NoError(t, err)
	require.NoError(t, f.leaves.Create(ctx, pending))

	for i := 1; i <= 4; i++ {
		h, err := holiday.NewHoliday(fmt.Sprintf("Festival %d", i), time.Date(2099, time.Month(i), 1, 0, 0, 0, 0, time.UTC), "", false)
		require.NoError(t, err)
		require.NoError(t, f.hols.Create(ctx, h))
	}
	return f
}

func (f *fixture) mark(t *testing.T, e *employee.Employee, status attendance.Status) {
	t.Helper()
	rec, err := attendance.NewRecord(e.ID, day(10), status)
	require.NoError(t, err)
	require.NoError(t, f.att.Create(context.Background(), rec))
}

func TestDashboardService_Get(t *testing.T) {
	f := newFixture(t, nil)
	me := f.staff[0]

	dash, err := f.svc.Get(context.Background(), employee.Principal{ID: me.ID, Role: me.Role})
	require.NoError(t, err)

	assert.Equal(t, Stats{
		TotalEmployees: 4,
		PresentToday:   1,
		OnLeaveToday:   1,
		AbsentToday:    2,
		Departments:    1,
		PendingLeaves:  1,
	}, dash.Stats)
	require.Len(t, dash.UpcomingHolidays, 3)
	assert.Equal(t, "Festival 1", dash.UpcomingHolidays[0].Name)
	assert.Equal(t, 1, dash.MyMonth.Present)
	assert.Equal(t, 0, dash.MyMonth.Late)
}

func TestDashboardService_StatsAreCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cache.NewInMemoryCache())

	first, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, first.PresentToday)

	f.mark(t, f.staff[3], attendance.StatusPresent)
	second, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, second.PresentToday)

	f.svc.now = func() time.Time { return time.Date(2025, 3, 11, 10, 0, 0, 0, time.UTC) }
	next, err := f.svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, next.PresentToday)
	assert.Equal(t, 1, next.OnLeaveToday)
	assert.Equal(t, int64(3), next.AbsentToday)
}

func TestDashboardService_PresentTodayCountsOnlyPresent(t *testing.T) {
	f := newFixture(t, nil)
	f.mark(t, f.staff[3], attendance.StatusHalfDay)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 1, stats.OnLeaveToday)
	assert.Equal(t, int64(2), stats.AbsentToday)
}

func TestDashboardService_AbsentNeverNegative(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.emps.Delete(context.Background(), f.staff[3].ID))
	require.NoError(t, f.emps.Delete(context.Background(), f.staff[2].ID))
	require.NoError(t, f.emps.Delete(context.Background(), f.staff[1].ID))

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalEmployees)
	assert.Equal(t, int64(0), stats.AbsentToday)
}

func TestDashboardService_HeadcountProvider(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	active, err := f.svc.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), active)

	pending, err := f.svc.CountPendingLeaves(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestDashboardService_RepositoryFailure(t *testing.T) {
	f := newFixture(t, nil)
	f.att.SetError(errors.New("timeout"))

	_, err := f.svc.Stats(context.Background())
	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "INTERNAL_ERROR", de.Code)
}
