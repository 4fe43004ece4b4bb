package handler

import "github.com/asnhr/hrms/internal/interfaces/http/dto"

// Swagger-only envelope shapes. Handlers write dto.Response.

// APIResponse is the success envelope with a typed data field
type APIResponse[T any] struct {
	Success bool           `json:"success" example:"true"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// PagedResponse is the envelope of the paginated employee and leave listings
type PagedResponse[T any] struct {
	Success bool     `json:"success" example:"true"`
	Data    []T      `json:"data"`
	Meta    dto.Meta `json:"meta"`
}

// ErrorResponse is the failure envelope
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}
