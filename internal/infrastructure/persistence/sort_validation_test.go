package persistence

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	for in, want := range map[string]string{
		"":                           "DESC",
		"asc":                        "ASC",
		"  Asc ":                     "ASC",
		"desc":                       "DESC",
		"ascending":                  "DESC",
		"ASC; DELETE FROM employees": "DESC",
	} {
		assert.Equal(t, want, ValidateSortOrder(in), "order %q", in)
	}
}

func TestSortFields_ValidateSortField(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"", "created_at"},
		{"salary", "salary"},
		{" join_date ", "join_date"},
		{"SALARY", "created_at"},
		{"password_hash", "created_at"},
		{"salary desc", "created_at"},
		{"salary; DROP TABLE employees", "created_at"},
		{"(SELECT password_hash FROM employees LIMIT 1)", "created_at"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.field), func(t *testing.T) {
			assert.Equal(t, tt.want, EmployeeSortFields.ValidateSortField(tt.field, "created_at"))
		})
	}
}

func TestSortFields_AuditColumns(t *testing.T) {
	for name, fields := range map[string]SortFields{"employees": EmployeeSortFields, "leave_requests": LeaveSortFields} {
		assert.True(t, fields["created_at"], name)
		assert.True(t, fields["updated_at"], name)
	}
	assert.False(t, EmployeeSortFields["password_hash"])
	assert.True(t, LeaveSortFields["leave_type"])
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "employees.salary ASC", orderClause("employees", "salary", "asc", EmployeeSortFields, "created_at"))
	assert.Equal(t, "employees.created_at DESC", orderClause("employees", "password_hash", "asc; --", EmployeeSortFields, "created_at"))
	assert.Equal(t, "leave_requests.start_date DESC", orderClause("leave_requests", "start_date", "", LeaveSortFields, "created_at"))
}
