package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/asnhr/hrms/internal/domain/leave"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/asnhr/hrms/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const leaveSearchClause = `(LOWER(leave_requests.leave_type) LIKE ? ESCAPE '\' OR LOWER(leave_requests.reason) LIKE ? ESCAPE '\' ` +
	`OR LOWER(leave_requests.status) LIKE ? ESCAPE '\' OR LOWER(employees.first_name) LIKE ? ESCAPE '\' ` +
	`OR LOWER(employees.last_name) LIKE ? ESCAPE '\')`

// GormLeaveRepository implements leave.Repository using GORM
type GormLeaveRepository struct {
	db *gorm.DB
}

var _ leave.Repository = (*GormLeaveRepository)(nil)

// NewGormLeaveRepository creates a new GormLeaveRepository
func NewGormLeaveRepository(db *gorm.DB) *GormLeaveRepository {
	return &GormLeaveRepository{db: db}
}

// Create saves a new leave request
func (r *GormLeaveRepository) Create(ctx context.Context, req *leave.Request) error {
	return r.db.WithContext(ctx).Create(models.LeaveRequestModelFromDomain(req)).Error
}

// Update updates an existing leave request
func (r *GormLeaveRepository) Update(ctx context.Context, req *leave.Request) error {
	return updateRow(ctx, r.db, &models.LeaveRequestModel{}, req.ID, models.LeaveRequestModelFromDomain(req))
}

// Delete removes a leave request by ID
func (r *GormLeaveRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteRow(ctx, r.db, &models.LeaveRequestModel{}, id)
}

// FindByID finds a leave request by ID
func (r *GormLeaveRepository) FindByID(ctx context.Context, id uuid.UUID) (*leave.Request, error) {
	var model models.LeaveRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of requests plus the total match count
func (r *GormLeaveRepository) List(ctx context.Context, filter leave.Filter) ([]*leave.Request, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.LeaveRequestModel{}).
		Joins("LEFT JOIN employees ON employees.id = leave_requests.employee_id")

	if filter.EmployeeID != nil {
		query = query.Where("leave_requests.employee_id = ?", *filter.EmployeeID)
	}
	if filter.Status != "" {
		query = query.Where("leave_requests.status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("leave_requests.leave_type = ?", filter.Type)
	}
	if filter.From != nil {
		query = query.Where("leave_requests.end_date >= ?", shared.DateOf(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("leave_requests.start_date <= ?", shared.DateOf(*filter.To))
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where(leaveSearchClause, p, p, p, p, p)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Select("leave_requests.*").
		Order(orderClause("leave_requests", filter.OrderBy, filter.OrderDir, LeaveSortFields, "created_at"))
	if !filter.Unpaged() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var leaveModels []models.LeaveRequestModel
	if err := query.Find(&leaveModels).Error; err != nil {
		return nil, 0, err
	}
	return leavesToDomain(leaveModels), total, nil
}

// FindByEmployee returns every request of one employee, newest first
func (r *GormLeaveRepository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]*leave.Request, error) {
	var leaveModels []models.LeaveRequestModel
	if err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&leaveModels).Error; err != nil {
		return nil, err
	}
	return leavesToDomain(leaveModels), nil
}

// FindApprovedBetween returns approved requests overlapping [from, to]
func (r *GormLeaveRepository) FindApprovedBetween(ctx context.Context, from, to time.Time) ([]*leave.Request, error) {
	var leaveModels []models.LeaveRequestModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", leave.StatusApproved, shared.DateOf(to), shared.DateOf(from)).
		Order("start_date ASC").
		Find(&leaveModels).Error; err != nil {
		return nil, err
	}
	return leavesToDomain(leaveModels), nil
}

func leavesToDomain(ms []models.LeaveRequestModel) []*leave.Request {
	reqs := make([]*leave.Request, len(ms))
	for i := range ms {
		reqs[i] = ms[i].ToDomain()
	}
	return reqs
}
