package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/asnhr/hrms/internal/application/organization"
	"github.com/asnhr/hrms/internal/domain/employee"
	domainorg "github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCodeAttempts = 5

// EmployeeService manages employee records and accounts
type EmployeeService struct {
	empRepo  employee.Repository
	unitRepo domainorg.UnitRepository
	deptRepo domainorg.DepartmentRepository
	logger   *zap.Logger
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(
	empRepo employee.Repository,
	unitRepo domainorg.UnitRepository,
	deptRepo domainorg.DepartmentRepository,
	logger *zap.Logger,
) *EmployeeService {
	return &EmployeeService{
		empRepo:  empRepo,
		unitRepo: unitRepo,
		deptRepo: deptRepo,
		logger:   logger,
	}
}

// List returns a page of employees. A unit filter expands to the unit's departments.
func (s *EmployeeService) List(ctx context.Context, input ListEmployeesInput) (*shared.Paginated[EmployeeResponse], error) {
	dir, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	filter := employee.Filter{
		Filter: shared.Filter{
			Page:     input.Page,
			PageSize: input.PageSize,
			OrderBy:  input.OrderBy,
			OrderDir: input.OrderDir,
			Search:   strings.TrimSpace(input.Search),
		},
		DepartmentID: input.DepartmentID,
		Role:         input.Role,
		ActiveOnly:   input.ActiveOnly,
	}
	if input.UnitID != nil {
		depts, err := s.deptRepo.FindByUnitID(ctx, *input.UnitID)
		if err != nil {
			s.logger.Error("Failed to load unit departments", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list employees")
		}
		if len(depts) == 0 {
			page := shared.NewPaginated([]EmployeeResponse{}, 0, input.Page, input.PageSize)
			return &page, nil
		}
		for _, d := range depts {
			filter.DepartmentIDs = append(filter.DepartmentIDs, d.ID)
		}
	}

	emps, total, err := s.empRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list employees", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list employees")
	}
	items := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		items = append(items, ToEmployeeResponse(e, dir))
	}
	page := shared.NewPaginated(items, total, input.Page, input.PageSize)
	return &page, nil
}

// Get returns one employee
func (s *EmployeeService) Get(ctx context.Context, id uuid.UUID) (*EmployeeResponse, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, e)
}

// Create onboards an employee, generating the employee code when none is given
func (s *EmployeeService) Create(ctx context.Context, input CreateEmployeeInput) (*EmployeeResponse, error) {
	if err := s.checkDepartment(ctx, input.DepartmentID); err != nil {
		return nil, err
	}

	taken, err := s.empRepo.ExistsByUsername(ctx, strings.ToLower(strings.TrimSpace(input.Username)))
	if err != nil {
		s.logger.Error("Failed to check username", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create employee")
	}
	if taken {
		return nil, shared.NewDomainError("USERNAME_EXISTS", "Username is already taken")
	}

	code, err := s.resolveCode(ctx, input.EmployeeCode)
	if err != nil {
		return nil, err
	}

	e, err := employee.NewEmployee(employee.NewEmployeeInput{
		EmployeeCode: code,
		Username:     input.Username,
		Password:     input.Password,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		Salary:       input.Salary,
		JoinDate:     input.JoinDate,
	})
	if err != nil {
		return nil, err
	}
	if err := e.UpdateProfile(input.FirstName, input.LastName, input.Email, input.Phone, input.Position); err != nil {
		return nil, err
	}
	if input.DepartmentID != nil {
		e.SetDepartment(input.DepartmentID)
	}

	if err := s.empRepo.Create(ctx, e); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("EMPLOYEE_EXISTS", "Employee code or username already exists")
		}
		s.logger.Error("Failed to create employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create employee")
	}

	s.logger.Info("Employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("employee_code", e.EmployeeCode))
	return s.respond(ctx, e)
}

// Update applies the non-nil fields of input
func (s *EmployeeService) Update(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*EmployeeResponse, error) {
	e, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil || input.LastName != nil || input.Email != nil || input.Phone != nil || input.Position != nil {
		err := e.UpdateProfile(
			valueOr(input.FirstName, e.FirstName),
			valueOr(input.LastName, e.LastName),
			valueOr(input.Email, e.Email),
			valueOr(input.Phone, e.Phone),
			valueOr(input.Position, e.Position),
		)
		if err != nil {
			return nil, err
		}
	}
	switch {
	case input.ClearDepartment:
		e.SetDepartment(nil)
	case input.DepartmentID != nil:
		if err := s.checkDepartment(ctx, input.DepartmentID); err != nil {
			return nil, err
		}
		e.SetDepartment(input.DepartmentID)
	}
	if input.Role != nil {
		if err := e.SetRole(*input.Role); err != nil {
			return nil, err
		}
	}
	if input.Salary != nil {
		if err := e.SetSalary(*input.Salary); err != nil {
			return nil, err
		}
	}
	if input.JoinDate != nil {
		e.SetJoinDate(*input.JoinDate)
	}
	if input.IsActive != nil {
		e.SetActive(*input.IsActive)
	}
	if input.Password != nil && *input.Password != "" {
		if err := e.SetPassword(*input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.empRepo.Update(ctx, e); err != nil {
		s.logger.Error("Failed to update employee", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update employee")
	}
	s.logger.Info("Employee updated", zap.String("employee_id", e.ID.String()))
	return s.respond(ctx, e)
}

// Delete removes an employee record. Callers cannot delete themselves.
func (s *EmployeeService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	if id == callerID {
		return shared.NewDomainError("CANNOT_DELETE_SELF", "You cannot delete your own account")
	}
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.empRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete employee", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete employee")
	}
	s.logger.Info("Employee deleted", zap.String("employee_id", id.String()))
	return nil
}

func (s *EmployeeService) resolveCode(ctx context.Context, requested string) (string, error) {
	if code := strings.ToUpper(strings.TrimSpace(requested)); code != "" {
		exists, err := s.empRepo.ExistsByCode(ctx, code)
		if err != nil {
			s.logger.Error("Failed to check employee code", zap.Error(err))
			return "", shared.NewDomainError("INTERNAL_ERROR", "Failed to create employee")
		}
		if exists {
			return "", shared.NewDomainError("EMPLOYEE_CODE_EXISTS", "Employee code is already in use")
		}
		return code, nil
	}

	for range maxCodeAttempts {
		seq, err := s.empRepo.NextSequence(ctx)
		if err != nil {
			s.logger.Error("Failed to allocate employee code", zap.Error(err))
			return "", shared.NewDomainError("INTERNAL_ERROR", "Failed to generate employee code")
		}
		code := employee.FormatEmployeeCode(seq)
		exists, err := s.empRepo.ExistsByCode(ctx, code)
		if err != nil {
			s.logger.Error("Failed to check employee code", zap.Error(err))
			return "", shared.NewDomainError("INTERNAL_ERROR", "Failed to generate employee code")
		}
		if !exists {
			return code, nil
		}
	}
	return "", shared.NewDomainError("EMPLOYEE_CODE_EXHAUSTED", "Could not generate a free employee code")
}

func (s *EmployeeService) checkDepartment(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	if _, err := s.deptRepo.FindByID(ctx, *id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("DEPARTMENT_NOT_FOUND", "Department not found")
		}
		s.logger.Error("Failed to load department", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load department")
	}
	return nil
}

func (s *EmployeeService) respond(ctx context.Context, e *employee.Employee) (*EmployeeResponse, error) {
	dir, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}
	resp := ToEmployeeResponse(e, dir)
	return &resp, nil
}

func (s *EmployeeService) directory(ctx context.Context) (*domainorg.Directory, error) {
	dir, err := organization.LoadDirectory(ctx, s.unitRepo, s.deptRepo)
	if err != nil {
		s.logger.Error("Failed to load organization directory", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load departments")
	}
	return dir, nil
}

func (s *EmployeeService) find(ctx context.Context, id uuid.UUID) (*employee.Employee, error) {
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

func valueOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
