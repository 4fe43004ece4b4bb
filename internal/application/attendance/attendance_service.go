package attendance

import (
	"context"
	"errors"
	"time"

	apporg "github.com/asnhr/hrms/internal/application/organization"
	"github.com/asnhr/hrms/internal/domain/attendance"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Policy holds the attendance rules taken from configuration
type Policy struct {
	// LateAfter is the check-in offset from local midnight after which an arrival is late
	LateAfter time.Duration
	// Location is the office time zone used to decide the attendance date
	Location *time.Location
}

// DefaultPolicy is 09:30 India Standard Time
func DefaultPolicy() Policy {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return Policy{LateAfter: 9*time.Hour + 30*time.Minute, Location: loc}
}

// AttendanceService records attendance and builds attendance reports
type AttendanceService struct {
	attRepo   attendance.Repository
	empRepo   employee.Repository
	leaveRepo leave.Repository
	unitRepo  organization.UnitRepository
	deptRepo  organization.DepartmentRepository
	policy    Policy
	metrics   *telemetry.HRMetrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attRepo attendance.Repository,
	empRepo employee.Repository,
	leaveRepo leave.Repository,
	unitRepo organization.UnitRepository,
	deptRepo organization.DepartmentRepository,
	policy Policy,
	logger *zap.Logger,
) *AttendanceService {
	if policy.Location == nil {
		policy.Location = DefaultPolicy().Location
	}
	return &AttendanceService{
		attRepo:   attRepo,
		empRepo:   empRepo,
		leaveRepo: leaveRepo,
		unitRepo:  unitRepo,
		deptRepo:  deptRepo,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
	}
}

// SetMetrics attaches business metrics
func (s *AttendanceService) SetMetrics(m *telemetry.HRMetrics) {
	s.metrics = m
}

// Record creates the employee's record for the date or overwrites the existing one
func (s *AttendanceService) Record(ctx context.Context, caller employee.Principal, input RecordAttendanceInput) (*AttendanceResponse, error) {
	if input.EmployeeID == uuid.Nil {
		input.EmployeeID = caller.ID
	}
	if !caller.CanView(input.EmployeeID) {
		return nil, shared.NewDomainError("FORBIDDEN", "You can only record your own attendance")
	}
	e, err := s.findEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = s.localNow()
	}

	rec, err := s.attRepo.FindByEmployeeAndDate(ctx, input.EmployeeID, shared.DateOf(input.Date))
	switch {
	case err == nil:
		if err := rec.Update(input.Status, input.CheckInTime, input.CheckOutTime, input.Remarks); err != nil {
			return nil, err
		}
		if err := s.attRepo.Update(ctx, rec); err != nil {
			s.logger.Error("Failed to update attendance", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record attendance")
		}
	case errors.Is(err, shared.ErrNotFound):
		rec, err = attendance.NewRecord(input.EmployeeID, input.Date, input.Status)
		if err != nil {
			return nil, err
		}
		if err := rec.Update(input.Status, input.CheckInTime, input.CheckOutTime, input.Remarks); err != nil {
			return nil, err
		}
		if err := s.attRepo.Create(ctx, rec); err != nil {
			return nil, s.createError(err)
		}
	default:
		s.logger.Error("Failed to load attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to record attendance")
	}

	s.logger.Info("Attendance recorded",
		zap.String("employee_id", rec.EmployeeID.String()),
		zap.Time("date", rec.Date),
		zap.String("status", string(rec.Status)))

	resp := ToAttendanceResponse(rec, e)
	return &resp, nil
}

// CheckIn stamps the caller's arrival for today, marking it late after the threshold
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID uuid.UUID) (*AttendanceResponse, error) {
	e, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	at := s.localNow()

	rec, err := s.attRepo.FindByEmployeeAndDate(ctx, employeeID, shared.DateOf(at))
	isNew := false
	switch {
	case err == nil:
	case errors.Is(err, shared.ErrNotFound):
		isNew = true
		rec, err = attendance.NewRecord(employeeID, at, attendance.StatusPresent)
		if err != nil {
			return nil, err
		}
	default:
		s.logger.Error("Failed to load attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check in")
	}

	if err := rec.CheckIn(at, s.policy.LateAfter); err != nil {
		return nil, err
	}
	if isNew {
		err = s.attRepo.Create(ctx, rec)
		if err != nil {
			return nil, s.createError(err)
		}
	} else if err := s.attRepo.Update(ctx, rec); err != nil {
		s.logger.Error("Failed to update attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check in")
	}
	s.metrics.RecordCheckIn(ctx, string(rec.Status))

	s.logger.Info("Employee checked in",
		zap.String("employee_id", employeeID.String()),
		zap.String("status", string(rec.Status)))

	resp := ToAttendanceResponse(rec, e)
	return &resp, nil
}

// CheckOut stamps the caller's departure for today
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID uuid.UUID) (*AttendanceResponse, error) {
	e, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	at := s.localNow()

	rec, err := s.attRepo.FindByEmployeeAndDate(ctx, employeeID, shared.DateOf(at))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_CHECKED_IN", "Cannot check out before checking in")
		}
		s.logger.Error("Failed to load attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check out")
	}
	if err := rec.CheckOut(at); err != nil {
		return nil, err
	}
	if err := s.attRepo.Update(ctx, rec); err != nil {
		s.logger.Error("Failed to update attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check out")
	}

	s.logger.Info("Employee checked out", zap.String("employee_id", employeeID.String()))
	resp := ToAttendanceResponse(rec, e)
	return &resp, nil
}

// List returns attendance records visible to the caller
func (s *AttendanceService) List(ctx context.Context, caller employee.Principal, input ListAttendanceInput) ([]AttendanceResponse, error) {
	filter := attendance.Filter{
		EmployeeID: input.EmployeeID,
		From:       input.From,
		To:         input.To,
		Status:     input.Status,
	}
	if input.Date != nil {
		d := shared.DateOf(*input.Date)
		filter.From, filter.To = &d, &d
	}
	if !caller.CanSeeOthers() {
		filter.EmployeeID = &caller.ID
	}

	recs, err := s.attRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list attendance")
	}
	people, err := s.people(ctx, recs)
	if err != nil {
		return nil, err
	}
	items := make([]AttendanceResponse, 0, len(recs))
	for _, r := range recs {
		items = append(items, ToAttendanceResponse(r, people[r.EmployeeID]))
	}
	return items, nil
}

// UnitWiseReport summarises the period's attendance of active employees,
// grouped by unit then department.
func (s *AttendanceService) UnitWiseReport(ctx context.Context, input ReportInput) (*UnitWiseReport, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "attendance", "UnitWiseReport")
	defer span.End()

	period := s.period(input)
	dir, err := apporg.LoadDirectory(ctx, s.unitRepo, s.deptRepo)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to load organization", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build attendance report")
	}
	emps, err := s.empRepo.FindActive(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to load employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build attendance report")
	}
	records, leaves, err := s.periodData(ctx, period, nil)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var rows []SummaryRow
	for _, e := range emps {
		if !dir.Matches(e.DepartmentID, input.UnitID, input.DepartmentID) || !e.MatchesSearch(input.Search) {
			continue
		}
		sum := attendance.Summarize(e.ID, records, leaves, period.Start, period.End)
		rows = append(rows, newSummaryRow(e, dir, sum))
	}

	report := &UnitWiseReport{Period: period, EmployeeCount: len(rows), UnitCount: dir.UnitCount()}
	for _, ub := range organization.GroupByUnit(rows, func(r SummaryRow) (string, string) { return r.UnitName, r.DepartmentName }) {
		ug := UnitGroup{Name: ub.Name}
		for _, db := range ub.Departments {
			ug.Departments = append(ug.Departments, DepartmentGroup{Name: db.Name, Rows: db.Rows})
			report.DepartmentCount++
		}
		report.Units = append(report.Units, ug)
	}

	today := shared.DateOf(s.localNow())
	for _, r := range records {
		if r.Status == attendance.StatusPresent && r.Date.Equal(today) {
			report.PresentToday++
		}
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrRows, len(rows))
	return report, nil
}

// IndividualReport returns one employee's records and summary for the period
func (s *AttendanceService) IndividualReport(ctx context.Context, caller employee.Principal, employeeID uuid.UUID, input ReportInput) (*IndividualReport, error) {
	if !caller.CanView(employeeID) {
		return nil, shared.NewDomainError("FORBIDDEN", "You can only view your own attendance")
	}
	e, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	dir, err := apporg.LoadDirectory(ctx, s.unitRepo, s.deptRepo)
	if err != nil {
		s.logger.Error("Failed to load organization", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to build attendance report")
	}

	period := s.period(input)
	records, leaves, err := s.periodData(ctx, period, &employeeID)
	if err != nil {
		return nil, err
	}

	report := &IndividualReport{
		Period:  period,
		Summary: newSummaryRow(e, dir, attendance.Summarize(e.ID, records, leaves, period.Start, period.End)),
		Records: make([]AttendanceResponse, 0, len(records)),
	}
	for _, r := range records {
		report.Records = append(report.Records, ToAttendanceResponse(r, e))
	}
	return report, nil
}

// MonthlyStats summarises one employee's attendance in the month containing ref
func (s *AttendanceService) MonthlyStats(ctx context.Context, employeeID uuid.UUID, ref time.Time) (*attendance.Summary, error) {
	period := payroll.NewReportPeriod(payroll.PeriodMonth, ref)
	records, leaves, err := s.periodData(ctx, period, &employeeID)
	if err != nil {
		return nil, err
	}
	sum := attendance.Summarize(employeeID, records, leaves, period.Start, period.End)
	return &sum, nil
}

func (s *AttendanceService) periodData(ctx context.Context, p payroll.ReportPeriod, employeeID *uuid.UUID) ([]*attendance.Record, []attendance.LeaveStart, error) {
	records, err := s.attRepo.Find(ctx, attendance.Filter{EmployeeID: employeeID, From: &p.Start, To: &p.End})
	if err != nil {
		s.logger.Error("Failed to load attendance", zap.Error(err))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load attendance")
	}
	approved, err := s.leaveRepo.FindApprovedBetween(ctx, p.Start, p.End)
	if err != nil {
		s.logger.Error("Failed to load approved leave", zap.Error(err))
		return nil, nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave")
	}
	leaves := make([]attendance.LeaveStart, 0, len(approved))
	for _, l := range approved {
		if employeeID == nil || l.EmployeeID == *employeeID {
			leaves = append(leaves, attendance.LeaveStart{EmployeeID: l.EmployeeID, StartDate: l.StartDate})
		}
	}
	return records, leaves, nil
}

func (s *AttendanceService) period(input ReportInput) payroll.ReportPeriod {
	ref := input.Date
	if ref.IsZero() {
		ref = s.localNow()
	}
	return payroll.NewReportPeriod(input.Period, ref)
}

func (s *AttendanceService) localNow() time.Time {
	return s.now().In(s.policy.Location)
}

func (s *AttendanceService) people(ctx context.Context, recs []*attendance.Record) (map[uuid.UUID]*employee.Employee, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, r := range recs {
		if !seen[r.EmployeeID] {
			seen[r.EmployeeID] = true
			ids = append(ids, r.EmployeeID)
		}
	}
	people := make(map[uuid.UUID]*employee.Employee, len(ids))
	if len(ids) == 0 {
		return people, nil
	}
	emps, err := s.empRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load employees for attendance", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list attendance")
	}
	for _, e := range emps {
		people[e.ID] = e
	}
	return people, nil
}

func (s *AttendanceService) createError(err error) error {
	if errors.Is(err, shared.ErrAlreadyExists) {
		return shared.NewDomainError("ATTENDANCE_EXISTS", "Attendance already recorded for this date")
	}
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	s.logger.Error("Failed to create attendance", zap.Error(err))
	return shared.NewDomainError("INTERNAL_ERROR", "Failed to record attendance")
}

func (s *AttendanceService) findEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
	e, err := s.empRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("EMPLOYEE_NOT_FOUND", "Employee not found")
		}
		s.logger.Error("Failed to load employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load employee")
	}
	return e, nil
}
