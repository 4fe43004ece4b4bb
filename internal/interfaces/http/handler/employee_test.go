package handler

import (
	"net/http"
	"strings"
	"testing"

	appemp "github.com/asnhr/hrms/internal/application/employee"
	apporg "github.com/asnhr/hrms/internal/application/organization"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type peopleFixture struct {
	engine *gin.Engine
	admin  *employee.Employee
}

func newPeopleFixture(t *testing.T) *peopleFixture {
	t.Helper()
	emps := testutil.NewEmployeeRepository()
	units := testutil.NewUnitRepository()
	depts := testutil.NewDepartmentRepository()
	admin := hire(t, emps, "admin", employee.RoleAdmin)

	eh := NewEmployeeHandler(appemp.NewEmployeeService(emps, units, depts, zap.NewNop()))
	uh := NewUnitHandler(apporg.NewUnitService(units, depts, zap.NewNop()))
	dh := NewDepartmentHandler(apporg.NewDepartmentService(depts, units, zap.NewNop()))

	r := newEngine(asCaller(principalOf(admin)))
	r.GET("/employees", eh.List)
	r.POST("/employees", eh.Create)
	r.GET("/employees/:id", eh.Get)
	r.PUT("/employees/:id", eh.Update)
	r.DELETE("/employees/:id", eh.Delete)
	r.GET("/masters/units", uh.List)
	r.POST("/masters/units", uh.Create)
	r.GET("/masters/units/:id", uh.Get)
	r.PUT("/masters/units/:id", uh.Update)
	r.DELETE("/masters/units/:id", uh.Delete)
	r.GET("/departments", dh.List)
	r.POST("/departments", dh.Create)
	r.GET("/departments/:id", dh.Get)
	r.PUT("/departments/:id", dh.Update)
	r.DELETE("/departments/:id", dh.Delete)

	return &peopleFixture{engine: r, admin: admin}
}

func newHire(username string) CreateEmployeeRequest {
	return CreateEmployeeRequest{
		Username:  username,
		Password:  "secret123",
		FirstName: "Sunil",
		LastName:  "Kale",
		Email:     username + "@example.com",
		Salary:    decimal.NewFromInt(18000),
		JoinDate:  "2024-06-15",
	}
}

func TestEmployeeHandler_CreateAndGet(t *testing.T) {
	f := newPeopleFixture(t)

	w := perform(t, f.engine, http.MethodPost, "/employees", newHire("sunil"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeData[appemp.EmployeeResponse](t, w)
	assert.True(t, strings.HasPrefix(created.EmployeeCode, "EMP"))
	assert.Equal(t, "Sunil Kale", created.FullName)
	assert.Equal(t, "employee", created.Role)
	assert.True(t, created.Salary.Equal(decimal.NewFromInt(18000)))
	assert.Equal(t, 2024, created.JoinDate.Year())

	w = perform(t, f.engine, http.MethodGet, "/employees/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, f.engine, http.MethodPost, "/employees", newHire("sunil"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "USERNAME_EXISTS", errorCode(t, w))

	bad := newHire("kiran")
	bad.Role = "intern"
	w = perform(t, f.engine, http.MethodPost, "/employees", bad)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))

	w = perform(t, f.engine, http.MethodGet, "/employees/"+testutil.NewRandomUUID().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeHandler_ListAndUpdate(t *testing.T) {
	f := newPeopleFixture(t)
	w := perform(t, f.engine, http.MethodPost, "/employees", newHire("sunil"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData[appemp.EmployeeResponse](t, w)

	w = perform(t, f.engine, http.MethodGet, "/employees?search=sunil&page=1&page_size=10", nil)
	env := decode(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(1), env.Meta.Total)

	w = perform(t, f.engine, http.MethodGet, "/employees?departmentId=bad", nil)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))

	position := "Supervisor"
	active := false
	w = perform(t, f.engine, http.MethodPut, "/employees/"+created.ID.String(), UpdateEmployeeRequest{Position: &position, IsActive: &active})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decodeData[appemp.EmployeeResponse](t, w)
	assert.Equal(t, "Supervisor", updated.Position)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Sunil", updated.FirstName)
}

func TestEmployeeHandler_Delete(t *testing.T) {
	f := newPeopleFixture(t)
	w := perform(t, f.engine, http.MethodPost, "/employees", newHire("sunil"))
	created := decodeData[appemp.EmployeeResponse](t, w)

	w = perform(t, f.engine, http.MethodDelete, "/employees/"+f.admin.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "CANNOT_DELETE_SELF", errorCode(t, w))

	w = perform(t, f.engine, http.MethodDelete, "/employees/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, f.engine, http.MethodDelete, "/employees/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganizationHandlers(t *testing.T) {
	f := newPeopleFixture(t)

	w := perform(t, f.engine, http.MethodPost, "/masters/units", CreateUnitRequest{Code: "PUN", Name: "Pune Plant"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	unit := decodeData[apporg.UnitResponse](t, w)

	w = perform(t, f.engine, http.MethodPost, "/masters/units", CreateUnitRequest{Code: "PUN", Name: "Again"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "UNIT_CODE_EXISTS", errorCode(t, w))

	w = perform(t, f.engine, http.MethodPost, "/departments", CreateDepartmentRequest{Code: "ACC", Name: "Accounts", UnitID: &unit.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dept := decodeData[apporg.DepartmentResponse](t, w)
	assert.Equal(t, "Pune Plant", dept.UnitName)

	missing := testutil.NewRandomUUID()
	w = perform(t, f.engine, http.MethodPost, "/departments", CreateDepartmentRequest{Code: "OPS", Name: "Operations", UnitID: &missing})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UNIT_NOT_FOUND", errorCode(t, w))

	w = perform(t, f.engine, http.MethodGet, "/departments?unitId="+unit.ID.String(), nil)
	depts := decodeData[[]apporg.DepartmentResponse](t, w)
	require.Len(t, depts, 1)
	assert.Equal(t, "ACC", depts[0].Code)

	w = perform(t, f.engine, http.MethodDelete, "/masters/units/"+unit.ID.String(), nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "HAS_DEPARTMENTS", errorCode(t, w))

	w = perform(t, f.engine, http.MethodPut, "/departments/"+dept.ID.String(), UpdateDepartmentRequest{Name: "Finance", ClearUnit: true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, decodeData[apporg.DepartmentResponse](t, w).UnitID)

	w = perform(t, f.engine, http.MethodDelete, "/masters/units/"+unit.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, f.engine, http.MethodDelete, "/departments/"+dept.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
