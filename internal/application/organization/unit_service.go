package organization

import (
	"context"
	"errors"

	"github.com/asnhr/hrms/internal/domain/organization"
	"github.com/asnhr/hrms/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UnitService manages establishment units
type UnitService struct {
	unitRepo organization.UnitRepository
	deptRepo organization.DepartmentRepository
	logger   *zap.Logger
}

// NewUnitService creates a new unit service
func NewUnitService(unitRepo organization.UnitRepository, deptRepo organization.DepartmentRepository, logger *zap.Logger) *UnitService {
	return &UnitService{unitRepo: unitRepo, deptRepo: deptRepo, logger: logger}
}

// List returns every unit with its department count
func (s *UnitService) List(ctx context.Context) ([]UnitResponse, error) {
	units, err := s.unitRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list units", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list units")
	}
	depts, err := s.deptRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list departments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list units")
	}
	counts := make(map[uuid.UUID]int)
	for _, d := range depts {
		if d.UnitID != nil {
			counts[*d.UnitID]++
		}
	}
	out := make([]UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, ToUnitResponse(u, counts[u.ID]))
	}
	return out, nil
}

// Get returns one unit
func (s *UnitService) Get(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	n, err := s.deptRepo.CountByUnitID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count unit departments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load unit")
	}
	resp := ToUnitResponse(unit, int(n))
	return &resp, nil
}

// Create adds a unit with a unique code
func (s *UnitService) Create(ctx context.Context, input CreateUnitInput) (*UnitResponse, error) {
	unit, err := organization.NewUnit(input.Code, input.Name)
	if err != nil {
		return nil, err
	}
	if input.Address != "" {
		if err := unit.Update(unit.Name, input.Address); err != nil {
			return nil, err
		}
	}
	exists, err := s.unitRepo.ExistsByCode(ctx, unit.Code)
	if err != nil {
		s.logger.Error("Failed to check unit code", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create unit")
	}
	if exists {
		return nil, shared.NewDomainError("UNIT_CODE_EXISTS", "A unit with this code already exists")
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		s.logger.Error("Failed to create unit", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create unit")
	}
	s.logger.Info("Unit created", zap.String("unit_id", unit.ID.String()), zap.String("code", unit.Code))
	resp := ToUnitResponse(unit, 0)
	return &resp, nil
}

// Update changes name, address and status
func (s *UnitService) Update(ctx context.Context, id uuid.UUID, input UpdateUnitInput) (*UnitResponse, error) {
	unit, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := unit.Update(input.Name, input.Address); err != nil {
		return nil, err
	}
	if input.IsActive != nil {
		unit.SetActive(*input.IsActive)
	}
	if err := s.unitRepo.Update(ctx, unit); err != nil {
		s.logger.Error("Failed to update unit", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update unit")
	}
	return s.Get(ctx, id)
}

// Delete removes a unit that has no departments
func (s *UnitService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	n, err := s.deptRepo.CountByUnitID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to count unit departments", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete unit")
	}
	if n > 0 {
		return shared.NewDomainError("HAS_DEPARTMENTS", "Unit still has departments; move or delete them first")
	}
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete unit", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete unit")
	}
	s.logger.Info("Unit deleted", zap.String("unit_id", id.String()))
	return nil
}

func (s *UnitService) find(ctx context.Context, id uuid.UUID) (*organization.Unit, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("UNIT_NOT_FOUND", "Unit not found")
		}
		s.logger.Error("Failed to load unit", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load unit")
	}
	return unit, nil
}
