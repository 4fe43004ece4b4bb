package spreadsheet

import (
	"fmt"
	"strings"
)

// Row error codes
const (
	ErrCodeRequiredField     = "ERR_IMPORT_REQUIRED_FIELD"
	ErrCodeInvalidType       = "ERR_IMPORT_INVALID_TYPE"
	ErrCodeInvalidRange      = "ERR_IMPORT_INVALID_RANGE"
	ErrCodeDuplicateInFile   = "ERR_IMPORT_DUPLICATE_IN_FILE"
	ErrCodeReferenceNotFound = "ERR_IMPORT_REFERENCE_NOT_FOUND"
)

// RowError represents an error in a specific row
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ErrorCollection gathers row errors up to a limit while counting all of them
type ErrorCollection struct {
	errors     []RowError
	maxErrors  int
	totalCount int
	rows       map[int]bool
}

// NewErrorCollection creates a new ErrorCollection with a maximum error limit
func NewErrorCollection(maxErrors int) *ErrorCollection {
	if maxErrors <= 0 {
		maxErrors = 100
	}
	return &ErrorCollection{
		errors:    make([]RowError, 0),
		maxErrors: maxErrors,
		rows:      make(map[int]bool),
	}
}

// Add adds an error to the collection
func (ec *ErrorCollection) Add(err RowError) {
	ec.totalCount++
	ec.rows[err.Row] = true
	if len(ec.errors) < ec.maxErrors {
		ec.errors = append(ec.errors, err)
	}
}

// AddRequired records a missing required value
func (ec *ErrorCollection) AddRequired(row int, column string) {
	ec.Add(RowError{Row: row, Column: column, Code: ErrCodeRequiredField,
		Message: fmt.Sprintf("field '%s' is required", column)})
}

// AddType records a value that failed to parse
func (ec *ErrorCollection) AddType(row int, column, expected, value string) {
	ec.Add(RowError{Row: row, Column: column, Code: ErrCodeInvalidType,
		Message: "expected " + expected, Value: value})
}

// AddRange records a value outside its allowed range
func (ec *ErrorCollection) AddRange(row int, column, message, value string) {
	ec.Add(RowError{Row: row, Column: column, Code: ErrCodeInvalidRange, Message: message, Value: value})
}

// AddDuplicate records a value repeated within the file
func (ec *ErrorCollection) AddDuplicate(row int, column, value string) {
	ec.Add(RowError{Row: row, Column: column, Code: ErrCodeDuplicateInFile,
		Message: fmt.Sprintf("duplicate value '%s' found in file", value), Value: value})
}

// AddReference records a value that points at nothing
func (ec *ErrorCollection) AddReference(row int, column, refType, value string) {
	ec.Add(RowError{Row: row, Column: column, Code: ErrCodeReferenceNotFound,
		Message: fmt.Sprintf("%s '%s' not found", refType, value), Value: value})
}

// Errors returns the collected errors
func (ec *ErrorCollection) Errors() []RowError {
	return ec.errors
}

// TotalCount returns the total number of errors including those not collected
func (ec *ErrorCollection) TotalCount() int {
	return ec.totalCount
}

// HasErrors returns true if there are any errors
func (ec *ErrorCollection) HasErrors() bool {
	return ec.totalCount > 0
}

// RowHasErrors reports whether any error was recorded for row
func (ec *ErrorCollection) RowHasErrors(row int) bool {
	return ec.rows[row]
}

// IsTruncated returns true if some errors were not collected due to the limit
func (ec *ErrorCollection) IsTruncated() bool {
	return ec.totalCount > ec.maxErrors
}

// String returns a string representation of all errors
func (ec *ErrorCollection) String() string {
	if !ec.HasErrors() {
		return "no errors"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s) found", ec.totalCount)
	if ec.IsTruncated() {
		fmt.Fprintf(&sb, " (showing first %d)", ec.maxErrors)
	}
	sb.WriteString(":\n")
	for _, err := range ec.errors {
		fmt.Fprintf(&sb, "  - %s\n", err.Error())
	}
	return sb.String()
}
