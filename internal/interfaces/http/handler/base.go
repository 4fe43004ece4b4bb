package handler

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/interfaces/http/dto"
	"github.com/asnhr/hrms/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DateLayout is the civil date format accepted in query strings and bodies
const DateLayout = "2006-01-02"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader(middleware.RequestIDHeader)
}

// principal returns the authenticated caller
func (h *BaseHandler) principal(c *gin.Context) (employee.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
	}
	return p, ok
}

// pathID parses a UUID path parameter
func (h *BaseHandler) pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, fmt.Sprintf("Invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional UUID query parameter
func (h *BaseHandler) queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidID, fmt.Sprintf("Invalid %s", name))
		return nil, false
	}
	return &id, true
}

// queryDate parses an optional YYYY-MM-DD query parameter
func (h *BaseHandler) queryDate(c *gin.Context, name string) (*time.Time, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		h.Error(c, http.StatusBadRequest, "INVALID_DATE", fmt.Sprintf("%s must be a date in the form YYYY-MM-DD", name))
		return nil, false
	}
	return &d, true
}

// bindJSON binds and validates a JSON body, answering 400 on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindQuery binds and validates query parameters, answering 400 on failure
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// File streams a generated document as an attachment
func (h *BaseHandler) File(c *gin.Context, fileName, contentType string, data []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func (h *BaseHandler) Unauthorized(c *gin.Context, message string) {
	h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleError converts domain errors to HTTP responses; anything else is a 500
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}
	h.InternalError(c, "An unexpected error occurred")
}
