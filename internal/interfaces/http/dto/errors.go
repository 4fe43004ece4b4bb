package dto

import (
	"net/http"
	"strings"
)

// Error codes raised by the HTTP layer itself. Domain codes such as
// LEAVE_OVERLAP are passed through unchanged.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid    = "TOKEN_INVALID"
	ErrCodeTokenRevoked    = "TOKEN_REVOKED"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeRateLimited     = "RATE_LIMITED"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes whose status cannot be derived from their name
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeUnauthorized:    http.StatusUnauthorized,
	ErrCodeForbidden:       http.StatusForbidden,
	ErrCodeNotFound:        http.StatusNotFound,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Authentication
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DEACTIVATED": http.StatusForbidden,
	"CANNOT_DELETE_SELF":  http.StatusForbidden,

	// Conflicts
	"ALREADY_EXISTS":       http.StatusConflict,
	"USERNAME_EXISTS":      http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"HAS_DEPARTMENTS":      http.StatusConflict,

	// Business rules
	"INVALID_STATE":           http.StatusUnprocessableEntity,
	"LEAVE_OVERLAP":           http.StatusUnprocessableEntity,
	"SELF_APPROVAL":           http.StatusUnprocessableEntity,
	"ALREADY_CHECKED_IN":      http.StatusUnprocessableEntity,
	"ALREADY_CHECKED_OUT":     http.StatusUnprocessableEntity,
	"NOT_CHECKED_IN":          http.StatusUnprocessableEntity,
	"EMPLOYEE_CODE_EXHAUSTED": http.StatusUnprocessableEntity,
	"MISSING_HEADERS":         http.StatusUnprocessableEntity,

	// Files and rendering
	"FILE_TOO_LARGE":    http.StatusRequestEntityTooLarge,
	"PDF_UNAVAILABLE":   http.StatusServiceUnavailable,
	"PDF_BUSY":          http.StatusServiceUnavailable,
	"PDF_TIMEOUT":       http.StatusGatewayTimeout,
	"PDF_RENDER_FAILED": http.StatusInternalServerError,
	"STORAGE_ERROR":     http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes missing
// from ErrorCodeHTTPStatus are classified by suffix or prefix; anything
// else is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_EXISTS"):
		return http.StatusConflict
	case strings.HasPrefix(code, "TOKEN_"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
