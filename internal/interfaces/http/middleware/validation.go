package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// Indian mobile number, optionally prefixed with +91 or 0
	mobileINRegex = regexp.MustCompile(`^(\+91[\s-]?|0)?[6-9][0-9]{9}$`)
	// unit, department and employee codes; the domain upper-cases them
	masterCodeRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// SetupValidator reports errors by JSON field name and registers the
// mobile_in and master_code tags
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mobile_in", matchString(mobileINRegex))
		_ = v.RegisterValidation("master_code", matchString(masterCodeRegex))

		// Use JSON tag names for field names in errors
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(strings.TrimSpace(fl.Field().String()))
	}
}

// FormatValidationErrors formats validation errors into a standard response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	message := "Request validation failed"
	if len(details) == 0 {
		// malformed JSON, bad time layout or wrong type
		message = "Malformed request: " + err.Error()
	}
	return dto.NewValidationErrorResponse(
		message,
		requestID,
		details,
	)
}

// HandleValidationError returns a validation error response
func HandleValidationError(c *gin.Context, err error) {
	requestID := getRequestIDFromContext(c)
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, requestID))
}

// getRequestIDFromContext extracts request ID from gin context
func getRequestIDFromContext(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDHeader); id != "" {
		return id
	}
	return ""
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "len":
		return "Must be exactly " + e.Param() + " characters"
	case "datetime":
		return "Must be a date in the form " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "mobile_in":
		return "Must be a 10 digit Indian mobile number"
	case "master_code":
		return "May contain only letters, digits, '-' and '_'"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "lt":
		return "Must be less than " + e.Param()
	default:
		return "Invalid value"
	}
}
