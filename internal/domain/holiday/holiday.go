package holiday

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
)

// Holiday is a company holiday on a single date
type Holiday struct {
	shared.BaseAggregateRoot
	Name        string
	Date        time.Time
	Description string
	IsOptional  bool
}

// NewHoliday creates a holiday on the date of d
func NewHoliday(name string, d time.Time, description string, optional bool) (*Holiday, error) {
	h := &Holiday{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := h.set(name, d, description, optional); err != nil {
		return nil, err
	}
	return h, nil
}

// Update changes every editable field
func (h *Holiday) Update(name string, d time.Time, description string, optional bool) error {
	if err := h.set(name, d, description, optional); err != nil {
		return err
	}
	h.IncrementVersion()
	return nil
}

func (h *Holiday) set(name string, d time.Time, description string, optional bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Holiday name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Holiday name cannot exceed 200 characters")
	}
	if d.IsZero() {
		return shared.NewDomainError("INVALID_DATE", "Holiday date is required")
	}
	h.Name = name
	h.Date = shared.DateOf(d)
	h.Description = strings.TrimSpace(description)
	h.IsOptional = optional
	return nil
}

// Upcoming returns at most n holidays dated today or later, nearest first
func Upcoming(holidays []*Holiday, today time.Time, n int) []*Holiday {
	today = shared.DateOf(today)
	out := make([]*Holiday, 0, n)
	for _, h := range holidays {
		if !h.Date.Before(today) {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Repository defines the interface for holiday persistence
type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	Update(ctx context.Context, h *Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Holiday, error)
	FindByDate(ctx context.Context, date time.Time) (*Holiday, error)
	// FindAll lists holidays ordered by date; year 0 means every year
	FindAll(ctx context.Context, year int) ([]*Holiday, error)
	FindFrom(ctx context.Context, from time.Time, limit int) ([]*Holiday, error)
}
