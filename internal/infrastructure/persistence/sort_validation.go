package persistence

import (
	"strings"
)

// SortFields whitelists the columns a list endpoint may order by
type SortFields map[string]bool

// EmployeeSortFields are the orderable employee columns
var EmployeeSortFields = SortFields{
	"created_at":    true,
	"updated_at":    true,
	"employee_code": true,
	"first_name":    true,
	"last_name":     true,
	"username":      true,
	"position":      true,
	"role":          true,
	"salary":        true,
	"join_date":     true,
	"last_login_at": true,
}

// LeaveSortFields are the orderable leave request columns
var LeaveSortFields = SortFields{
	"created_at": true,
	"updated_at": true,
	"start_date": true,
	"end_date":   true,
	"leave_type": true,
	"status":     true,
	"decided_at": true,
}

// ValidateSortOrder returns ASC only for a case-insensitive "asc", DESC otherwise
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns the trimmed field when whitelisted, fallback otherwise.
// Matching is case sensitive.
func (f SortFields) ValidateSortField(field, fallback string) string {
	field = strings.TrimSpace(field)
	if f[field] {
		return field
	}
	return fallback
}

// orderClause builds a whitelisted "table.field DIR" clause
func orderClause(table, field, dir string, allowed SortFields, fallback string) string {
	return table + "." + allowed.ValidateSortField(field, fallback) + " " + ValidateSortOrder(dir)
}
