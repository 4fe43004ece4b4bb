package handler

import (
	"net/http"
	"testing"

	appleave "github.com/asnhr/hrms/internal/application/leave"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type leaveFixture struct {
	handler *LeaveHandler
	hr      *employee.Employee
	asha    *employee.Employee
	ravi    *employee.Employee
}

func newLeaveFixture(t *testing.T) *leaveFixture {
	t.Helper()
	emps := testutil.NewEmployeeRepository()
	f := &leaveFixture{
		hr:   hire(t, emps, "meera", employee.RoleHR),
		asha: hire(t, emps, "asha", employee.RoleEmployee),
		ravi: hire(t, emps, "ravi", employee.RoleEmployee),
	}
	f.handler = NewLeaveHandler(appleave.NewLeaveService(testutil.NewLeaveRepository(), emps, zap.NewNop()))
	return f
}

func (f *leaveFixture) engine(as *employee.Employee) *gin.Engine {
	r := newEngine(asCaller(principalOf(as)))
	r.GET("/leave-requests", f.handler.List)
	r.POST("/leave-requests", f.handler.Submit)
	r.GET("/leave-requests/analytics", f.handler.Analytics)
	r.GET("/leave-requests/monthly-usage", f.handler.MonthlyUsage)
	r.GET("/leave-requests/:id", f.handler.Get)
	r.PUT("/leave-requests/:id", f.handler.Decide)
	r.DELETE("/leave-requests/:id", f.handler.Cancel)
	r.GET("/employees/:id/leave-balance", f.handler.Balance)
	return r
}

func (f *leaveFixture) submit(t *testing.T, as *employee.Employee, body SubmitLeaveRequest) appleave.LeaveResponse {
	t.Helper()
	w := perform(t, f.engine(as), http.MethodPost, "/leave-requests", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[appleave.LeaveResponse](t, w)
}

func annual(start, end string) SubmitLeaveRequest {
	return SubmitLeaveRequest{Type: "annual", StartDate: start, EndDate: end, Reason: "family function"}
}

func TestLeaveHandler_Submit(t *testing.T) {
	f := newLeaveFixture(t)

	own := f.submit(t, f.asha, annual("2025-03-10", "2025-03-11"))
	assert.Equal(t, f.asha.ID, own.EmployeeID)
	assert.Equal(t, "pending", own.Status)
	assert.Equal(t, 2.0, own.Days)

	body := annual("2025-03-12", "2025-03-12")
	body.EmployeeID = &f.ravi.ID
	w := perform(t, f.engine(f.asha), http.MethodPost, "/leave-requests", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w))

	filed := f.submit(t, f.hr, body)
	assert.Equal(t, f.ravi.ID, filed.EmployeeID)

	w = perform(t, f.engine(f.asha), http.MethodPost, "/leave-requests", annual("2025-03-11", "2025-03-13"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "LEAVE_OVERLAP", errorCode(t, w))
}

func TestLeaveHandler_SubmitValidation(t *testing.T) {
	f := newLeaveFixture(t)
	r := f.engine(f.asha)

	tests := []struct {
		name string
		body SubmitLeaveRequest
		code string
	}{
		{"unknown type", SubmitLeaveRequest{Type: "casual", StartDate: "2025-03-10", EndDate: "2025-03-10", Reason: "x"}, "VALIDATION_ERROR"},
		{"bad date", SubmitLeaveRequest{Type: "sick", StartDate: "10/03/2025", EndDate: "2025-03-10", Reason: "x"}, "VALIDATION_ERROR"},
		{"missing reason", SubmitLeaveRequest{Type: "sick", StartDate: "2025-03-10", EndDate: "2025-03-10"}, "VALIDATION_ERROR"},
		{"end before start", annual("2025-03-12", "2025-03-10"), "INVALID_DATE_RANGE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(t, r, http.MethodPost, "/leave-requests", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestLeaveHandler_ListIsScopedToCaller(t *testing.T) {
	f := newLeaveFixture(t)
	f.submit(t, f.asha, annual("2025-03-10", "2025-03-10"))
	f.submit(t, f.ravi, annual("2025-03-10", "2025-03-10"))

	w := perform(t, f.engine(f.asha), http.MethodGet, "/leave-requests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)

	w = perform(t, f.engine(f.hr), http.MethodGet, "/leave-requests", nil)
	assert.Equal(t, int64(2), decode(t, w).Meta.Total)

	w = perform(t, f.engine(f.hr), http.MethodGet, "/leave-requests?userId="+f.ravi.ID.String(), nil)
	items := decodeData[[]appleave.LeaveResponse](t, w)
	require.Len(t, items, 1)
	assert.Equal(t, f.ravi.ID, items[0].EmployeeID)

	w = perform(t, f.engine(f.hr), http.MethodGet, "/leave-requests?status=cancelled", nil)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestLeaveHandler_DecideAndCancel(t *testing.T) {
	f := newLeaveFixture(t)
	req := f.submit(t, f.asha, annual("2025-03-10", "2025-03-10"))
	path := "/leave-requests/" + req.ID.String()

	w := perform(t, f.engine(f.ravi), http.MethodPut, path, DecideLeaveRequest{Status: "approved"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(t, f.engine(f.hr), http.MethodPut, path, DecideLeaveRequest{Status: "approved", Remarks: "enjoy"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decided := decodeData[appleave.LeaveResponse](t, w)
	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	assert.Equal(t, "enjoy", decided.Remarks)

	w = perform(t, f.engine(f.asha), http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "INVALID_STATE", errorCode(t, w))

	pending := f.submit(t, f.asha, annual("2025-03-20", "2025-03-20"))
	w = perform(t, f.engine(f.ravi), http.MethodDelete, "/leave-requests/"+pending.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(t, f.engine(f.asha), http.MethodDelete, "/leave-requests/"+pending.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, f.engine(f.asha), http.MethodGet, "/leave-requests/"+pending.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLeaveHandler_Get(t *testing.T) {
	f := newLeaveFixture(t)
	req := f.submit(t, f.asha, annual("2025-03-10", "2025-03-10"))
	path := "/leave-requests/" + req.ID.String()

	w := perform(t, f.engine(f.asha), http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, f.engine(f.ravi), http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LEAVE_NOT_FOUND", errorCode(t, w))

	w = perform(t, f.engine(f.asha), http.MethodGet, "/leave-requests/nope", nil)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))
}

func TestLeaveHandler_UsageBalanceAnalytics(t *testing.T) {
	f := newLeaveFixture(t)
	req := f.submit(t, f.asha, annual("2025-03-10", "2025-03-11"))
	w := perform(t, f.engine(f.hr), http.MethodPut, "/leave-requests/"+req.ID.String(), DecideLeaveRequest{Status: "approved"})
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, f.engine(f.asha), http.MethodGet, "/leave-requests/monthly-usage?month=2025-03", nil)
	usage := decodeData[leave.MonthlyUsage](t, w)
	assert.Equal(t, 2.0, usage.Used)

	w = perform(t, f.engine(f.asha), http.MethodGet, "/leave-requests/monthly-usage?month=March", nil)
	assert.Equal(t, "INVALID_MONTH", errorCode(t, w))

	w = perform(t, f.engine(f.asha), http.MethodGet, "/employees/"+f.asha.ID.String()+"/leave-balance?year=2025", nil)
	balance := decodeData[leave.Balance](t, w)
	assert.Equal(t, 2025, balance.Year)
	assert.NotEmpty(t, balance.Balances)

	w = perform(t, f.engine(f.asha), http.MethodGet, "/employees/"+f.ravi.ID.String()+"/leave-balance", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(t, f.engine(f.asha), http.MethodGet, "/employees/"+f.asha.ID.String()+"/leave-balance?year=25", nil)
	assert.Equal(t, "INVALID_YEAR", errorCode(t, w))

	w = perform(t, f.engine(f.hr), http.MethodGet, "/leave-requests/analytics", nil)
	a := decodeData[leave.Analytics](t, w)
	assert.Equal(t, 1, a.Total)
	assert.Equal(t, 1, a.Approved)
}
