// Package testutil provides in-memory repositories and fixtures shared by the
// HRMS tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the password given to employees created by Hire
const DefaultPassword = "secret123"

func init() {
	gin.SetMode(gin.TestMode)
}

// Date returns midnight UTC of the civil date, the form every repository stores
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewRandomUUID generates a new random UUID.
func NewRandomUUID() uuid.UUID {
	return uuid.New()
}

// NewTestUUID generates a deterministic UUID from seed
func NewTestUUID(seed string) uuid.UUID {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(seed))
}

// HireOption adjusts the employee built by Hire before it is saved
type HireOption func(*employee.Employee)

// WithDepartment places the employee in a department
func WithDepartment(id uuid.UUID) HireOption {
	return func(e *employee.Employee) { e.SetDepartment(&id) }
}

// WithSalary sets the monthly CTC
func WithSalary(amount string) HireOption {
	return func(e *employee.Employee) { e.Salary = decimal.RequireFromString(amount) }
}

// WithJoinDate sets the joining date
func WithJoinDate(d time.Time) HireOption {
	return func(e *employee.Employee) { e.SetJoinDate(d) }
}

// Hire creates an active employee with DefaultPassword and saves it in repo.
// The employee code comes from the repository sequence.
func Hire(t *testing.T, repo employee.Repository, username string, role employee.Role, opts ...HireOption) *employee.Employee {
	t.Helper()
	ctx := context.Background()
	seq, err := repo.NextSequence(ctx)
	require.NoError(t, err)

	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: employee.FormatEmployeeCode(seq),
		Username:     username,
		Password:     DefaultPassword,
		FirstName:    username,
		LastName:     "Test",
		Role:         role,
		Salary:       decimal.NewFromInt(25000),
		JoinDate:     Date(2024, time.April, 1),
	})
	require.NoError(t, err)
	for _, opt := range opts {
		opt(e)
	}
	require.NoError(t, repo.Create(ctx, e))
	return e
}

// PrincipalOf returns the caller identity of e
func PrincipalOf(e *employee.Employee) employee.Principal {
	return employee.Principal{ID: e.ID, Role: e.Role}
}
