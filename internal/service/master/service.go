package master

import (
	"context"
	"fmt"

	"github.com/marinerh/personnel-backend/internal/domain/bank"
	"github.com/marinerh/personnel-backend/internal/domain/unit"
)

// MasterService serves the reference data screens: organizational units
// and bank identity records.
type MasterService struct {
	unit.UnitRepository
	bank.IdentityRepository
}

func NewMasterService(unitRepo unit.UnitRepository, bankRepo bank.IdentityRepository) *MasterService {
	return &MasterService{
		UnitRepository:     unitRepo,
		IdentityRepository: bankRepo,
	}
}

func (s *MasterService) CreateUnit(ctx context.Context, req unit.CreateUnitRequest) (unit.Unit, error) {
	if err := req.Validate(); err != nil {
		return unit.Unit{}, err
	}
	if req.ParentID != nil {
		if _, err := s.UnitRepository.GetByID(ctx, *req.ParentID); err != nil {
			return unit.Unit{}, fmt.Errorf("failed to get parent unit: %w", err)
		}
	}
	return s.UnitRepository.Create(ctx, unit.Unit{
		ParentID: req.ParentID,
		Code:     req.Code,
		NameFr:   req.NameFr,
		NameAr:   req.NameAr,
	})
}

func (s *MasterService) ListUnits(ctx context.Context) ([]unit.Unit, error) {
	return s.UnitRepository.List(ctx)
}

func (s *MasterService) UpdateUnit(ctx context.Context, req unit.UpdateUnitRequest) (unit.Unit, error) {
	if err := req.Validate(); err != nil {
		return unit.Unit{}, err
	}
	if err := s.UnitRepository.Update(ctx, req); err != nil {
		return unit.Unit{}, err
	}
	return s.UnitRepository.GetByID(ctx, req.ID)
}

func (s *MasterService) DeleteUnit(ctx context.Context, id string) error {
	if _, err := s.UnitRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.UnitRepository.Delete(ctx, id)
}

func (s *MasterService) CreateBankIdentity(ctx context.Context, req bank.CreateIdentityRequest) (bank.Identity, error) {
	if err := req.Validate(); err != nil {
		return bank.Identity{}, err
	}
	return s.IdentityRepository.Create(ctx, bank.Identity{
		EmployeeID: req.EmployeeID,
		BankName:   req.BankName,
		AgencyName: req.AgencyName,
		RIB:        req.RIB,
	})
}

func (s *MasterService) ListBankIdentities(ctx context.Context, employeeID string) ([]bank.Identity, error) {
	return s.IdentityRepository.ListByEmployee(ctx, employeeID)
}

func (s *MasterService) UpdateBankIdentity(ctx context.Context, req bank.UpdateIdentityRequest) (bank.Identity, error) {
	if err := req.Validate(); err != nil {
		return bank.Identity{}, err
	}
	if err := s.IdentityRepository.Update(ctx, req); err != nil {
		return bank.Identity{}, err
	}
	return s.IdentityRepository.GetByID(ctx, req.ID)
}

func (s *MasterService) DeleteBankIdentity(ctx context.Context, id string) error {
	if _, err := s.IdentityRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.IdentityRepository.Delete(ctx, id)
}
