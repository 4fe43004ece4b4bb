package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	appatt "github.com/asnhr/hrms/internal/application/attendance"
	appholiday "github.com/asnhr/hrms/internal/application/holiday"
	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statsCacheTTL    = time.Minute
	upcomingHolidays = 3
)

// DashboardService assembles the landing page figures
type DashboardService struct {
	empRepo    employee.Repository
	leaveRepo  leave.Repository
	attRepo    attendance.Repository
	deptRepo   organization.DepartmentRepository
	holidays   *appholiday.HolidayService
	attendance *appatt.AttendanceService
	cache      shared.Cache
	location   *time.Location
	logger     *zap.Logger
	now        func() time.Time
}

var _ telemetry.HeadcountProvider = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service; cache may be nil
func NewDashboardService(
	empRepo employee.Repository,
	leaveRepo leave.Repository,
	attRepo attendance.Repository,
	deptRepo organization.DepartmentRepository,
	holidays *appholiday.HolidayService,
	attendanceSvc *appatt.AttendanceService,
	cache shared.Cache,
	location *time.Location,
	logger *zap.Logger,
) *DashboardService {
	if location == nil {
		location = time.UTC
	}
	return &DashboardService{
		empRepo:    empRepo,
		leaveRepo:  leaveRepo,
		attRepo:    attRepo,
		deptRepo:   deptRepo,
		holidays:   holidays,
		attendance: attendanceSvc,
		cache:      cache,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// Get returns today's organisation figures, the next holidays and the caller's month
func (s *DashboardService) Get(ctx context.Context, caller employee.Principal) (*Dashboard, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard", "Get")
	defer span.End()

	stats, err := s.Stats(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	hols, err := s.holidays.Upcoming(ctx, upcomingHolidays)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	sum, err := s.attendance.MonthlyStats(ctx, caller.ID, s.localNow())
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return &Dashboard{
		Stats:            *stats,
		UpcomingHolidays: hols,
		MyMonth: MonthlyStats{
			Present: sum.Present,
			Absent:  sum.Absent,
			Late:    sum.Late,
			HalfDay: sum.HalfDay,
			Leaves:  sum.Leaves,
		},
	}, nil
}

// Stats computes today's organisation figures. Results are cached briefly per date.
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	today := shared.DateOf(s.localNow())
	key := "dashboard:stats:" + today.Format("2006-01-02")
	if cached, ok := s.cached(ctx, key); ok {
		return cached, nil
	}

	total, err := s.CountActive(ctx)
	if err != nil {
		return nil, s.internal("Failed to count employees", err)
	}
	records, err := s.attRepo.Find(ctx, attendance.Filter{From: &today, To: &today})
	if err != nil {
		return nil, s.internal("Failed to load attendance", err)
	}
	onLeave, err := s.leaveRepo.FindApprovedBetween(ctx, today, today)
	if err != nil {
		return nil, s.internal("Failed to load leave", err)
	}
	depts, err := s.deptRepo.FindAll(ctx)
	if err != nil {
		return nil, s.internal("Failed to load departments", err)
	}
	pending, err := s.CountPendingLeaves(ctx)
	if err != nil {
		return nil, s.internal("Failed to count pending leave", err)
	}

	stats := &Stats{TotalEmployees: total, Departments: len(depts), PendingLeaves: pending}
	// late and halfday marks are not present and fall into AbsentToday
	for _, r := range records {
		if r.Status == attendance.StatusPresent {
			stats.PresentToday++
		}
	}
	seen := make(map[uuid.UUID]bool)
	for _, l := range onLeave {
		if l.Covers(today) && !seen[l.EmployeeID] {
			seen[l.EmployeeID] = true
			stats.OnLeaveToday++
		}
	}
	stats.AbsentToday = max(total-int64(stats.PresentToday+stats.OnLeaveToday), 0)

	s.store(ctx, key, stats)
	return stats, nil
}

// CountActive counts active employees
func (s *DashboardService) CountActive(ctx context.Context) (int64, error) {
	return s.empRepo.CountActive(ctx)
}

// CountPendingLeaves counts leave requests awaiting a decision
func (s *DashboardService) CountPendingLeaves(ctx context.Context) (int64, error) {
	_, total, err := s.leaveRepo.List(ctx, leave.Filter{
		Filter: shared.Filter{Page: 1, PageSize: 1},
		Status: leave.StatusPending,
	})
	return total, err
}

func (s *DashboardService) localNow() time.Time {
	return s.now().In(s.location)
}

func (s *DashboardService) internal(msg string, err error) error {
	s.logger.Error(msg, zap.Error(err))
	return shared.NewDomainError("INTERNAL_ERROR", "Failed to load dashboard")
}

func (s *DashboardService) cached(ctx context.Context, key string) (*Stats, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, shared.ErrCacheMiss) {
			s.logger.Warn("Dashboard cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var stats Stats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (s *DashboardService) store(ctx context.Context, key string, stats *Stats) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, statsCacheTTL); err != nil {
		s.logger.Warn("Dashboard cache write failed", zap.Error(err))
	}
}
