package employee

import (
	"context"
	"fmt"

	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	"github.com/marinerh/personnel-backend/internal/service/status"
	"github.com/shopspring/decimal"
)

type Service struct {
	db *database.DB
	employee.EmployeeRepository
	resolver *status.Resolver
}

func NewService(db *database.DB, employeeRepo employee.EmployeeRepository, resolver *status.Resolver) *Service {
	return &Service{
		db:                 db,
		EmployeeRepository: employeeRepo,
		resolver:           resolver,
	}
}

func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.EmployeeRepository.GetByMatricule(ctx, req.Matricule); err == nil {
		return employee.Employee{}, employee.ErrMatriculeExists
	}

	hireDate, err := dates.Parse(req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	emp := employee.Employee{
		Matricule:  req.Matricule,
		FullNameFr: req.FullNameFr,
		FullNameAr: req.FullNameAr,
		Gender:     employee.Gender(req.Gender),
		Status:     employee.StatusActive,
		UnitID:     req.UnitID,
		HireDate:   hireDate,
		Locale:     employee.LocaleFrench,
	}
	if req.Locale != "" {
		emp.Locale = employee.Locale(req.Locale)
	}
	if req.BasePay != nil {
		basePay, err := decimal.NewFromString(*req.BasePay)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse base pay: %w", err)
		}
		emp.BasePay = &basePay
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	return s.EmployeeRepository.List(ctx, filter)
}

func (s *Service) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if req.BasePay != nil {
		if _, err := decimal.NewFromString(*req.BasePay); err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse base pay: %w", err)
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, req.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.EmployeeRepository.SoftDelete(ctx, id)
}

// Status resolves the current aggregate status from the record sets
// without writing it back; reads have no side effects.
func (s *Service) Status(ctx context.Context, id string) (employee.Status, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return "", err
	}
	return s.resolver.Current(ctx, id)
}
