package holiday

import (
	"time"

	"github.com/asnhr/hrms/internal/domain/holiday"
	"github.com/google/uuid"
)

// HolidayInput carries the editable fields of a holiday
type HolidayInput struct {
	Name        string
	Date        time.Time
	Description string
	IsOptional  bool
}

// HolidayResponse represents a holiday in API responses
type HolidayResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Weekday     string    `json:"weekday"`
	Description string    `json:"description,omitempty"`
	IsOptional  bool      `json:"is_optional"`
}

// ToHolidayResponse converts a domain Holiday
func ToHolidayResponse(h *holiday.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date,
		Weekday:     h.Date.Weekday().String(),
		Description: h.Description,
		IsOptional:  h.IsOptional,
	}
}

// ToHolidayResponses converts a list of holidays
func ToHolidayResponses(hs []*holiday.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, ToHolidayResponse(h))
	}
	return out
}

// ImportError describes one calendar entry that could not be imported
type ImportError struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ImportResult reports the outcome of a calendar import
type ImportResult struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors,omitempty"`
}
