package leave

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc    *LeaveService
	leaves *testutil.LeaveRepository
	emps   *testutil.EmployeeRepository
	seq    int
}

func newFixture() *fixture {
	f := &fixture{
		leaves: testutil.NewLeaveRepository(),
		emps:   testutil.NewEmployeeRepository(),
	}
	f.svc = NewLeaveService(f.leaves, f.emps, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) seed(t *testing.T, role employee.Role) employee.Principal {
	t.Helper()
	f.seq++
	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: employee.FormatEmployeeCode(int64(f.seq)),
		Username:     fmt.Sprintf("user%d", f.seq),
		Password:     "secret123",
		FirstName:    "User",
		LastName:     fmt.Sprintf("%d", f.seq),
		Role:         role,
		Salary:       decimal.NewFromInt(20000),
	})
	require.NoError(t, err)
	require.NoError(t, f.emps.Create(context.Background(), e))
	return employee.Principal{ID: e.ID, Role: role}
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

func (f *fixture) submit(t *testing.T, who employee.Principal, typ leave.Type, start, end time.Time) *LeaveResponse {
	t.Helper()
	resp, err := f.svc.Submit(context.Background(), SubmitLeaveInput{
		EmployeeID: who.ID,
		Type:       typ,
		StartDate:  start,
		EndDate:    end,
		Reason:     "family function",
	})
	require.NoError(t, err)
	return resp
}

func TestLeaveService_SubmitClassifiesAgainstMonthlyLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)
	manager := f.seed(t, employee.RoleManager)

	first := f.submit(t, staff, leave.TypeAnnual, day(3), day(3))
	assert.True(t, first.Paid)
	assert.Equal(t, 1.0, first.Days)
	assert.Equal(t, "EMP001", first.EmployeeCode)
	_, err := f.svc.Decide(ctx, manager, first.ID, DecideLeaveInput{Status: leave.StatusApproved})
	require.NoError(t, err)

	half := f.submit(t, staff, leave.TypeHalfDay, day(4), day(7))
	assert.True(t, half.Paid)
	assert.Equal(t, day(4), half.EndDate)

	sick := f.submit(t, staff, leave.TypeSick, day(5), day(6))
	assert.False(t, sick.Paid)

	wfh := f.submit(t, staff, leave.TypeWorkFromHome, day(10), day(14))
	assert.True(t, wfh.Paid)
}

func TestLeaveService_SubmitValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)

	_, err := f.svc.Submit(ctx, SubmitLeaveInput{EmployeeID: uuid.New(), Type: leave.TypeAnnual, StartDate: day(3), EndDate: day(3)})
	requireCode(t, err, "EMPLOYEE_NOT_FOUND")

	_, err = f.svc.Submit(ctx, SubmitLeaveInput{EmployeeID: staff.ID, Type: leave.TypeAnnual, StartDate: day(5), EndDate: day(3)})
	requireCode(t, err, "INVALID_DATE_RANGE")

	_, err = f.svc.Submit(ctx, SubmitLeaveInput{EmployeeID: staff.ID, Type: "vacation", StartDate: day(3), EndDate: day(3)})
	requireCode(t, err, "INVALID_LEAVE_TYPE")

	f.submit(t, staff, leave.TypeAnnual, day(3), day(5))
	_, err = f.svc.Submit(ctx, SubmitLeaveInput{EmployeeID: staff.ID, Type: leave.TypeSick, StartDate: day(5), EndDate: day(6)})
	requireCode(t, err, "LEAVE_OVERLAP")
}

func TestLeaveService_DecideReclassifiesOnApproval(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)
	hr := f.seed(t, employee.RoleHR)

	a := f.submit(t, staff, leave.TypeAnnual, day(3), day(3))
	b := f.submit(t, staff, leave.TypePersonal, day(4), day(4))
	assert.True(t, a.Paid)
	assert.True(t, b.Paid)

	approved, err := f.svc.Decide(ctx, hr, a.ID, DecideLeaveInput{Status: leave.StatusApproved, Remarks: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	assert.True(t, approved.Paid)
	assert.Equal(t, "User 2", approved.ApprovedBy)

	second, err := f.svc.Decide(ctx, hr, b.ID, DecideLeaveInput{Status: leave.StatusApproved})
	require.NoError(t, err)
	assert.False(t, second.Paid)

	_, err = f.svc.Decide(ctx, hr, a.ID, DecideLeaveInput{Status: leave.StatusRejected})
	requireCode(t, err, "INVALID_STATE")
}

func TestLeaveService_DecidePermissions(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)
	other := f.seed(t, employee.RoleDeveloper)
	manager := f.seed(t, employee.RoleManager)

	req := f.submit(t, staff, leave.TypeSick, day(3), day(3))

	_, err := f.svc.Decide(ctx, other, req.ID, DecideLeaveInput{Status: leave.StatusApproved})
	requireCode(t, err, "FORBIDDEN")

	_, err = f.svc.Decide(ctx, manager, req.ID, DecideLeaveInput{Status: "maybe"})
	requireCode(t, err, "INVALID_STATUS")

	_, err = f.svc.Decide(ctx, manager, uuid.New(), DecideLeaveInput{Status: leave.StatusApproved})
	requireCode(t, err, "LEAVE_NOT_FOUND")

	own := f.submit(t, manager, leave.TypeSick, day(12), day(12))
	_, err = f.svc.Decide(ctx, manager, own.ID, DecideLeaveInput{Status: leave.StatusApproved})
	requireCode(t, err, "SELF_APPROVAL")

	rejected, err := f.svc.Decide(ctx, manager, req.ID, DecideLeaveInput{Status: leave.StatusRejected, Remarks: "busy week"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Equal(t, "busy week", rejected.Remarks)
}

func TestLeaveService_Cancel(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)
	colleague := f.seed(t, employee.RoleEmployee)
	manager := f.seed(t, employee.RoleManager)
	hr := f.seed(t, employee.RoleHR)

	req := f.submit(t, staff, leave.TypeAnnual, day(17), day(18))
	requireCode(t, f.svc.Cancel(ctx, colleague, req.ID), "FORBIDDEN")
	requireCode(t, f.svc.Cancel(ctx, manager, req.ID), "FORBIDDEN")
	require.NoError(t, f.svc.Cancel(ctx, staff, req.ID))
	requireCode(t, f.svc.Cancel(ctx, staff, req.ID), "LEAVE_NOT_FOUND")

	other := f.submit(t, staff, leave.TypeAnnual, day(20), day(20))
	_, err := f.svc.Decide(ctx, manager, other.ID, DecideLeaveInput{Status: leave.StatusApproved})
	require.NoError(t, err)
	requireCode(t, f.svc.Cancel(ctx, hr, other.ID), "INVALID_STATE")

	pending := f.submit(t, staff, leave.TypeSick, day(24), day(24))
	require.NoError(t, f.svc.Cancel(ctx, hr, pending.ID))
}

func TestLeaveService_ListIsScopedForStaff(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	alice := f.seed(t, employee.RoleEmployee)
	bob := f.seed(t, employee.RoleEmployee)
	manager := f.seed(t, employee.RoleManager)

	f.submit(t, alice, leave.TypeAnnual, day(3), day(3))
	f.submit(t, bob, leave.TypeSick, day(4), day(4))
	f.submit(t, bob, leave.TypeWorkFromHome, day(5), day(5))

	own, err := f.svc.List(ctx, alice, ListLeaveInput{EmployeeID: &bob.ID})
	require.NoError(t, err)
	require.Len(t, own.Items, 1)
	assert.Equal(t, alice.ID, own.Items[0].EmployeeID)

	all, err := f.svc.List(ctx, manager, ListLeaveInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Total)

	bobs, err := f.svc.List(ctx, manager, ListLeaveInput{EmployeeID: &bob.ID, Type: leave.TypeSick})
	require.NoError(t, err)
	require.Len(t, bobs.Items, 1)
	assert.Equal(t, "sick", bobs.Items[0].Type)

	_, err = f.svc.Get(ctx, alice, bobs.Items[0].ID)
	requireCode(t, err, "LEAVE_NOT_FOUND")
}

func TestLeaveService_Analytics(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)
	hr := f.seed(t, employee.RoleHR)

	a := f.submit(t, staff, leave.TypeAnnual, day(3), day(3))
	f.submit(t, staff, leave.TypeWorkFromHome, day(12), day(12))
	f.submit(t, hr, leave.TypeSick, time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC))
	_, err := f.svc.Decide(ctx, hr, a.ID, DecideLeaveInput{Status: leave.StatusApproved})
	require.NoError(t, err)

	all, err := f.svc.Analytics(ctx, hr)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, 1, all.Approved)
	assert.Equal(t, 2, all.Pending)
	assert.Equal(t, 2, all.ThisMonth)
	assert.Equal(t, 1, all.WorkFromHome)

	mine, err := f.svc.Analytics(ctx, staff)
	require.NoError(t, err)
	assert.Equal(t, 2, mine.Total)
}

func TestLeaveService_UsageAndBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	staff := f.seed(t, employee.RoleEmployee)
	colleague := f.seed(t, employee.RoleEmployee)
	manager := f.seed(t, employee.RoleManager)

	req := f.submit(t, staff, leave.TypeAnnual, day(3), day(3))
	_, err := f.svc.Decide(ctx, manager, req.ID, DecideLeaveInput{Status: leave.StatusApproved})
	require.NoError(t, err)

	usage, err := f.svc.MonthlyUsage(ctx, staff, uuid.Nil, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, usage.Used)
	assert.Equal(t, 0.5, usage.Remaining)

	_, err = f.svc.MonthlyUsage(ctx, colleague, staff.ID, day(1))
	requireCode(t, err, "FORBIDDEN")

	balance, err := f.svc.Balance(ctx, manager, staff.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, balance.Year)
	require.NotEmpty(t, balance.Balances)
	assert.Equal(t, leave.TypeAnnual, balance.Balances[0].Type)
	assert.Equal(t, 1.0, balance.Balances[0].Used)
	assert.Equal(t, 19.0, balance.Balances[0].Remaining)

	_, err = f.svc.Balance(ctx, manager, uuid.New(), 2025)
	requireCode(t, err, "EMPLOYEE_NOT_FOUND")
}
