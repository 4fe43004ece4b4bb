package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asnhr/hrms/internal/domain/holiday"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HolidayService manages the company holiday calendar
type HolidayService struct {
	repo   holiday.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewHolidayService creates a new holiday service
func NewHolidayService(repo holiday.Repository, logger *zap.Logger) *HolidayService {
	return &HolidayService{repo: repo, logger: logger, now: time.Now}
}

// List returns the holidays of year ordered by date; year 0 lists every year
func (s *HolidayService) List(ctx context.Context, year int) ([]HolidayResponse, error) {
	hs, err := s.repo.FindAll(ctx, year)
	if err != nil {
		s.logger.Error("Failed to list holidays", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list holidays")
	}
	return ToHolidayResponses(hs), nil
}

// Get returns one holiday
func (s *HolidayService) Get(ctx context.Context, id uuid.UUID) (*HolidayResponse, error) {
	h, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToHolidayResponse(h)
	return &resp, nil
}

// Create adds a holiday; only one holiday may fall on a date
func (s *HolidayService) Create(ctx context.Context, input HolidayInput) (*HolidayResponse, error) {
	h, err := holiday.NewHoliday(input.Name, input.Date, input.Description, input.IsOptional)
	if err != nil {
		return nil, err
	}
	if err := s.checkDateFree(ctx, h.Date, uuid.Nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, h); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, dateTaken(h.Date)
		}
		s.logger.Error("Failed to create holiday", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create holiday")
	}
	s.logger.Info("Holiday created", zap.String("name", h.Name), zap.Time("date", h.Date))
	resp := ToHolidayResponse(h)
	return &resp, nil
}

// Update replaces a holiday's fields
func (s *HolidayService) Update(ctx context.Context, id uuid.UUID, input HolidayInput) (*HolidayResponse, error) {
	h, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !input.Date.IsZero() {
		if err := s.checkDateFree(ctx, shared.DateOf(input.Date), h.ID); err != nil {
			return nil, err
		}
	}
	if err := h.Update(input.Name, input.Date, input.Description, input.IsOptional); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, h); err != nil {
		s.logger.Error("Failed to update holiday", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update holiday")
	}
	resp := ToHolidayResponse(h)
	return &resp, nil
}

// Delete removes a holiday
func (s *HolidayService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete holiday", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete holiday")
	}
	s.logger.Info("Holiday deleted", zap.String("holiday_id", id.String()))
	return nil
}

// Upcoming returns the n nearest holidays dated today or later
func (s *HolidayService) Upcoming(ctx context.Context, n int) ([]HolidayResponse, error) {
	today := shared.DateOf(s.now())
	hs, err := s.repo.FindFrom(ctx, today, n)
	if err != nil {
		s.logger.Error("Failed to load upcoming holidays", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load holidays")
	}
	return ToHolidayResponses(holiday.Upcoming(hs, today, n)), nil
}

// Import loads a calendar. Entries whose date already has a holiday are
// skipped; invalid entries are reported and the rest still load.
func (s *HolidayService) Import(ctx context.Context, entries []HolidayInput) (*ImportResult, error) {
	result := &ImportResult{}
	for i, in := range entries {
		h, err := holiday.NewHoliday(in.Name, in.Date, in.Description, in.IsOptional)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{Index: i + 1, Name: in.Name, Message: errorMessage(err)})
			continue
		}
		_, err = s.repo.FindByDate(ctx, h.Date)
		switch {
		case err == nil:
			result.Skipped++
			continue
		case !errors.Is(err, shared.ErrNotFound):
			s.logger.Error("Failed to check holiday date", zap.Error(err))
			return result, shared.NewDomainError("INTERNAL_ERROR", "Failed to import holidays")
		}
		if err := s.repo.Create(ctx, h); err != nil {
			if errors.Is(err, shared.ErrAlreadyExists) {
				result.Skipped++
				continue
			}
			s.logger.Error("Failed to import holiday", zap.Error(err))
			return result, shared.NewDomainError("INTERNAL_ERROR", "Failed to import holidays")
		}
		result.Created++
	}
	s.logger.Info("Holiday calendar imported",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", len(result.Errors)))
	return result, nil
}

func (s *HolidayService) checkDateFree(ctx context.Context, d time.Time, self uuid.UUID) error {
	existing, err := s.repo.FindByDate(ctx, d)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return nil
	case err != nil:
		s.logger.Error("Failed to check holiday date", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to save holiday")
	case existing.ID != self:
		return dateTaken(d)
	}
	return nil
}

func (s *HolidayService) find(ctx context.Context, id uuid.UUID) (*holiday.Holiday, error) {
	h, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("HOLIDAY_NOT_FOUND", "Holiday not found")
		}
		s.logger.Error("Failed to load holiday", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load holiday")
	}
	return h, nil
}

func dateTaken(d time.Time) error {
	return shared.NewDomainError("HOLIDAY_DATE_EXISTS", fmt.Sprintf("A holiday already exists on %s", d.Format("02 Jan 2006")))
}

func errorMessage(err error) string {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}
