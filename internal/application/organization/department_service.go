package organization

import (
	"context"
	"errors"

	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DepartmentService manages departments and their unit assignment
type DepartmentService struct {
	deptRepo organization.DepartmentRepository
	unitRepo organization.UnitRepository
	logger   *zap.Logger
}

// NewDepartmentService creates a new department service
func NewDepartmentService(deptRepo organization.DepartmentRepository, unitRepo organization.UnitRepository, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{deptRepo: deptRepo, unitRepo: unitRepo, logger: logger}
}

// List returns departments, optionally only those of one unit
func (s *DepartmentService) List(ctx context.Context, unitID *uuid.UUID) ([]DepartmentResponse, error) {
	var (
		depts []*organization.Department
		err   error
	)
	if unitID != nil {
		depts, err = s.deptRepo.FindByUnitID(ctx, *unitID)
	} else {
		depts, err = s.deptRepo.FindAll(ctx)
	}
	if err != nil {
		s.logger.Error("Failed to list departments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list departments")
	}
	names, err := s.unitNames(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		out = append(out, ToDepartmentResponse(d, unitName(names, d.UnitID)))
	}
	return out, nil
}

// Get returns one department
func (s *DepartmentService) Get(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	dept, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, dept)
}

// Create adds a department, optionally under a unit
func (s *DepartmentService) Create(ctx context.Context, input CreateDepartmentInput) (*DepartmentResponse, error) {
	if err := s.checkUnit(ctx, input.UnitID); err != nil {
		return nil, err
	}
	dept, err := organization.NewDepartment(input.Code, input.Name, input.UnitID)
	if err != nil {
		return nil, err
	}
	if input.Description != "" {
		if err := dept.Update(dept.Name, input.Description); err != nil {
			return nil, err
		}
	}
	exists, err := s.deptRepo.ExistsByCode(ctx, dept.Code)
	if err != nil {
		s.logger.Error("Failed to check department code", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create department")
	}
	if exists {
		return nil, shared.NewDomainError("DEPARTMENT_CODE_EXISTS", "A department with this code already exists")
	}
	if err := s.deptRepo.Create(ctx, dept); err != nil {
		s.logger.Error("Failed to create department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create department")
	}
	s.logger.Info("Department created", zap.String("department_id", dept.ID.String()), zap.String("code", dept.Code))
	return s.respond(ctx, dept)
}

// Update changes the department's details and unit
func (s *DepartmentService) Update(ctx context.Context, id uuid.UUID, input UpdateDepartmentInput) (*DepartmentResponse, error) {
	dept, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dept.Update(input.Name, input.Description); err != nil {
		return nil, err
	}
	switch {
	case input.ClearUnit:
		dept.AssignUnit(nil)
	case input.UnitID != nil:
		if err := s.checkUnit(ctx, input.UnitID); err != nil {
			return nil, err
		}
		dept.AssignUnit(input.UnitID)
	}
	if input.IsActive != nil {
		dept.SetActive(*input.IsActive)
	}
	if err := s.deptRepo.Update(ctx, dept); err != nil {
		s.logger.Error("Failed to update department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update department")
	}
	return s.respond(ctx, dept)
}

// Delete removes a department; its employees become unassigned
func (s *DepartmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.deptRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete department", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete department")
	}
	s.logger.Info("Department deleted", zap.String("department_id", id.String()))
	return nil
}

// Directory loads every unit and department for grouping and name lookups
func (s *DepartmentService) Directory(ctx context.Context) (*organization.Directory, error) {
	return LoadDirectory(ctx, s.unitRepo, s.deptRepo)
}

// LoadDirectory builds an organization.Directory from both repositories
func LoadDirectory(ctx context.Context, units organization.UnitRepository, depts organization.DepartmentRepository) (*organization.Directory, error) {
	us, err := units.FindAll(ctx)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to load units", err)
	}
	ds, err := depts.FindAll(ctx)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to load departments", err)
	}
	return organization.NewDirectory(us, ds), nil
}

func (s *DepartmentService) respond(ctx context.Context, d *organization.Department) (*DepartmentResponse, error) {
	name := ""
	if d.UnitID != nil {
		unit, err := s.unitRepo.FindByID(ctx, *d.UnitID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to load unit", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load department")
		}
		if unit != nil {
			name = unit.Name
		}
	}
	resp := ToDepartmentResponse(d, name)
	return &resp, nil
}

func (s *DepartmentService) checkUnit(ctx context.Context, unitID *uuid.UUID) error {
	if unitID == nil {
		return nil
	}
	if _, err := s.unitRepo.FindByID(ctx, *unitID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("UNIT_NOT_FOUND", "Unit not found")
		}
		s.logger.Error("Failed to load unit", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to load unit")
	}
	return nil
}

func (s *DepartmentService) unitNames(ctx context.Context) (map[uuid.UUID]string, error) {
	units, err := s.unitRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list units", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list departments")
	}
	names := make(map[uuid.UUID]string, len(units))
	for _, u := range units {
		names[u.ID] = u.Name
	}
	return names, nil
}

func unitName(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return names[*id]
}

func (s *DepartmentService) find(ctx context.Context, id uuid.UUID) (*organization.Department, error) {
	dept, err := s.deptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("DEPARTMENT_NOT_FOUND", "Department not found")
		}
		s.logger.Error("Failed to load department", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load department")
	}
	return dept, nil
}
