package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LeaveService handles leave applications and decisions
type LeaveService struct {
	leaveRepo leave.Repository
	empRepo   employee.Repository
	metrics   *telemetry.HRMetrics
	logger    *zap.Logger
	now       func() time.Time
}

// NewLeaveService creates a new leave service
func NewLeaveService(leaveRepo leave.Repository, empRepo employee.Repository, logger *zap.Logger) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
		empRepo:   empRepo,
		logger:    logger,
		now:       time.Now,
	}
}

// SetMetrics attaches business metrics
func (s *LeaveService) SetMetrics(m *telemetry.HRMetrics) {
	s.metrics = m
}

// Submit files a pending leave request. Requests over the monthly paid limit
// are accepted and classified unpaid.
func (s *LeaveService) Submit(ctx context.Context, input SubmitLeaveInput) (*LeaveResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "leave", "Submit", telemetry.SpanAttrEmployeeID, input.EmployeeID.String())
	defer span.End()

	e, err := s.findEmployee(ctx, input.EmployeeID)
	if err != nil {
		return nil, err
	}
	if !e.IsActive {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Inactive employees cannot apply for leave")
	}

	req, err := leave.NewRequest(input.EmployeeID, input.Type, input.StartDate, input.EndDate, input.Reason)
	if err != nil {
		return nil, err
	}

	existing, err := s.leaveRepo.FindByEmployee(ctx, input.EmployeeID)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to load leave history", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit leave request")
	}
	for _, other := range existing {
		if other.Status != leave.StatusRejected && shared.Overlaps(other.StartDate, other.EndDate, req.StartDate, req.EndDate) {
			return nil, shared.NewDomainError("LEAVE_OVERLAP", fmt.Sprintf(
				"Leave already requested from %s to %s",
				other.StartDate.Format("02 Jan 2006"), other.EndDate.Format("02 Jan 2006")))
		}
	}
	leave.Classify(existing, req)

	if err := s.leaveRepo.Create(ctx, req); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to create leave request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to submit leave request")
	}
	s.metrics.RecordLeaveRequest(ctx, string(req.Type), req.Paid)
	telemetry.SetAttributes(span, "leave.type", string(req.Type), "leave.paid", req.Paid)

	s.logger.Info("Leave request submitted",
		zap.String("leave_id", req.ID.String()),
		zap.String("employee_id", req.EmployeeID.String()),
		zap.String("type", string(req.Type)),
		zap.Bool("paid", req.Paid))

	resp := ToLeaveResponse(req, map[uuid.UUID]*employee.Employee{e.ID: e})
	return &resp, nil
}

// List returns a page of leave requests. Callers who cannot approve leave
// only ever see their own requests.
func (s *LeaveService) List(ctx context.Context, caller employee.Principal, input ListLeaveInput) (*shared.Paginated[LeaveResponse], error) {
	filter := leave.Filter{
		Filter: shared.Filter{
			Page:     input.Page,
			PageSize: input.PageSize,
			Search:   strings.TrimSpace(input.Search),
		},
		EmployeeID: input.EmployeeID,
		Status:     input.Status,
		Type:       input.Type,
	}
	if !caller.CanSeeOthers() {
		filter.EmployeeID = &caller.ID
	}

	reqs, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list leave requests", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list leave requests")
	}
	items, err := s.respond(ctx, reqs)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(items, total, input.Page, input.PageSize)
	return &page, nil
}

// Get returns one leave request visible to the caller
func (s *LeaveService) Get(ctx context.Context, caller employee.Principal, id uuid.UUID) (*LeaveResponse, error) {
	req, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.CanView(req.EmployeeID) {
		return nil, shared.NewDomainError("LEAVE_NOT_FOUND", "Leave request not found")
	}
	items, err := s.respond(ctx, []*leave.Request{req})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Decide approves or rejects a pending request. Approval re-runs the paid
// classification against the leave approved since submission.
func (s *LeaveService) Decide(ctx context.Context, caller employee.Principal, id uuid.UUID, input DecideLeaveInput) (*LeaveResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "leave", "Decide", "leave.id", id.String())
	defer span.End()

	if !caller.Role.CanApproveLeave() {
		return nil, shared.NewDomainError("FORBIDDEN", "Only admin, hr or manager can decide leave requests")
	}
	req, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	switch input.Status {
	case leave.StatusApproved:
		existing, err := s.leaveRepo.FindByEmployee(ctx, req.EmployeeID)
		if err != nil {
			telemetry.RecordError(span, err)
			s.logger.Error("Failed to load leave history", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update leave request")
		}
		leave.Classify(existing, req)
		err = req.Approve(caller.ID, input.Remarks)
		if err != nil {
			return nil, err
		}
	case leave.StatusRejected:
		if err := req.Reject(caller.ID, input.Remarks); err != nil {
			return nil, err
		}
	default:
		return nil, shared.NewDomainError("INVALID_STATUS", "Status must be approved or rejected")
	}

	if err := s.leaveRepo.Update(ctx, req); err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to update leave request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update leave request")
	}
	s.metrics.RecordLeaveDecision(ctx, string(req.Status))

	s.logger.Info("Leave request decided",
		zap.String("leave_id", req.ID.String()),
		zap.String("status", string(req.Status)),
		zap.String("approver_id", caller.ID.String()))

	items, err := s.respond(ctx, []*leave.Request{req})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

// Cancel withdraws a pending request. The owner, admin and hr may cancel.
func (s *LeaveService) Cancel(ctx context.Context, caller employee.Principal, id uuid.UUID) error {
	req, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if req.EmployeeID != caller.ID && !caller.Role.CanManagePeople() {
		return shared.NewDomainError("FORBIDDEN", "You can only cancel your own leave requests")
	}
	if !req.CanCancel() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Leave request is already %s", req.Status))
	}
	if err := s.leaveRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete leave request", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to cancel leave request")
	}
	s.logger.Info("Leave request cancelled", zap.String("leave_id", id.String()))
	return nil
}

// Analytics summarises the requests visible to the caller
func (s *LeaveService) Analytics(ctx context.Context, caller employee.Principal) (*leave.Analytics, error) {
	filter := leave.Filter{}
	if !caller.CanSeeOthers() {
		filter.EmployeeID = &caller.ID
	}
	reqs, _, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to load leave requests", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to compute leave analytics")
	}
	a := leave.Analyze(reqs, s.now())
	return &a, nil
}

// MonthlyUsage returns the paid leave employeeID has used in month
func (s *LeaveService) MonthlyUsage(ctx context.Context, caller employee.Principal, employeeID uuid.UUID, month time.Time) (*leave.MonthlyUsage, error) {
	reqs, err := s.history(ctx, caller, employeeID)
	if err != nil {
		return nil, err
	}
	if month.IsZero() {
		month = s.now()
	}
	usage := leave.PaidUsageInMonth(reqs, shared.DateOf(month))
	return &usage, nil
}

// Balance returns the yearly entitlement balance of employeeID
func (s *LeaveService) Balance(ctx context.Context, caller employee.Principal, employeeID uuid.UUID, year int) (*leave.Balance, error) {
	reqs, err := s.history(ctx, caller, employeeID)
	if err != nil {
		return nil, err
	}
	if year == 0 {
		year = s.now().Year()
	}
	b := leave.CalculateBalance(reqs, year)
	return &b, nil
}

func (s *LeaveService) history(ctx context.Context, caller employee.Principal, employeeID uuid.UUID) ([]*leave.Request, error) {
	if employeeID == uuid.Nil {
		employeeID = caller.ID
	}
	if !caller.CanView(employeeID) {
		return nil, shared.NewDomainError("FORBIDDEN", "You can only view your own leave")
	}
	if _, err := s.findEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	reqs, err := s.leaveRepo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("Failed to load leave history", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave history")
	}
	return reqs, nil
}

func (s *LeaveService) respond(ctx context.Context, reqs []*leave.Request) ([]LeaveResponse, error) {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	add := func(id uuid.UUID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, r := range reqs {
		add(r.EmployeeID)
		if r.ApprovedByID != nil {
			add(*r.ApprovedByID)
		}
	}

	people := make(map[uuid.UUID]*employee.Employee, len(ids))
	if len(ids) > 0 {
		emps, err := s.empRepo.FindByIDs(ctx, ids)
		if err != nil {
			s.logger.Error("Failed to load employees for leave requests", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave requests")
		}
		for _, e := range emps {
			people[e.ID] = e
		}
	}

	items := make([]LeaveResponse, 0, len(reqs))
	for _, r := range reqs {
		items = append(items, ToLeaveResponse(r, people))
	}
	return items, nil
}

func (s *LeaveService) find(ctx context.Context, id uuid.UUID) (*leave.Request, error) {
	req, err := s.leaveRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("LEAVE_NOT_FOUND", "Leave request not found")
		}
		s.logger.Error("Failed to load leave request", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load leave request")
	}
	return req, nil
}

func (s *LeaveService) findEmployee(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
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
