package absence

import (
	"context"
	"fmt"

	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	"github.com/marinerh/personnel-backend/internal/service/status"
)

// Service owns the absence record lifecycle. Duration is always derived
// (inclusive day count, 0 while the absence is open-ended) and every
// mutation ends with the employee status write-back.
type Service struct {
	db *database.DB
	absence.RecordRepository
	employeeRepo employee.EmployeeRepository
	resolver     *status.Resolver
}

func NewService(db *database.DB, recordRepo absence.RecordRepository, employeeRepo employee.EmployeeRepository, resolver *status.Resolver) *Service {
	return &Service{
		db:               db,
		RecordRepository: recordRepo,
		employeeRepo:     employeeRepo,
		resolver:         resolver,
	}
}

func (s *Service) List(ctx context.Context, employeeID string) ([]absence.Record, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.RecordRepository.ListByEmployee(ctx, employeeID)
}

func (s *Service) Create(ctx context.Context, req absence.CreateRecordRequest) (absence.Record, error) {
	if err := req.Validate(); err != nil {
		return absence.Record{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return absence.Record{}, fmt.Errorf("failed to get employee: %w", err)
	}

	startDate, err := dates.Parse(req.StartDate)
	if err != nil {
		return absence.Record{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	rec := absence.Record{
		EmployeeID:     req.EmployeeID,
		StartDate:      startDate,
		ReferenceStart: req.ReferenceStart,
		ReferenceEnd:   req.ReferenceEnd,
	}
	if req.EndDate != "" {
		endDate, err := dates.Parse(req.EndDate)
		if err != nil {
			return absence.Record{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		rec.EndDate = &endDate
	}
	deriveDuration(&rec)

	var created absence.Record
	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.RecordRepository.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("failed to create absence record: %w", err)
		}
		if _, err := s.resolver.Refresh(txCtx, req.EmployeeID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return absence.Record{}, err
	}

	return created, nil
}

func (s *Service) Update(ctx context.Context, req absence.UpdateRecordRequest) (absence.Record, error) {
	if err := req.Validate(); err != nil {
		return absence.Record{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return absence.Record{}, err
	}

	if req.StartDate != nil {
		startDate, err := dates.Parse(*req.StartDate)
		if err != nil {
			return absence.Record{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		rec.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := dates.Parse(*req.EndDate)
		if err != nil {
			return absence.Record{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		if dates.IsUnknown(endDate) {
			rec.EndDate = nil
		} else {
			rec.EndDate = &endDate
		}
	}
	if req.ReferenceStart != nil {
		rec.ReferenceStart = *req.ReferenceStart
	}
	if req.ReferenceEnd != nil {
		rec.ReferenceEnd = *req.ReferenceEnd
	}
	deriveDuration(&rec)

	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.RecordRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to update absence record: %w", err)
		}
		if _, err := s.resolver.Refresh(txCtx, rec.EmployeeID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return absence.Record{}, err
	}

	return rec, nil
}

// SetEndDate is the eager end-date edit: it persists only the end date and
// closing reference, then refreshes the employee status immediately. An
// absence closed in the past flips the employee back to active without the
// rest of the form being saved.
func (s *Service) SetEndDate(ctx context.Context, req absence.SetEndDateRequest) (absence.Record, employee.Status, error) {
	if err := req.Validate(); err != nil {
		return absence.Record{}, "", err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return absence.Record{}, "", err
	}

	endDate, err := dates.Parse(req.EndDate)
	if err != nil {
		return absence.Record{}, "", fmt.Errorf("failed to parse end date: %w", err)
	}
	rec.EndDate = &endDate
	if req.ReferenceEnd != "" {
		rec.ReferenceEnd = req.ReferenceEnd
	}
	deriveDuration(&rec)

	var resolved employee.Status
	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.RecordRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to update absence record: %w", err)
		}
		resolved, err = s.resolver.Refresh(txCtx, rec.EmployeeID)
		return err
	})
	if err != nil {
		return absence.Record{}, "", err
	}

	return rec, resolved, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.RecordRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete absence record: %w", err)
		}
		if _, err := s.resolver.Refresh(txCtx, rec.EmployeeID); err != nil {
			return err
		}
		return nil
	})
}

// deriveDuration keeps the derived day count in line with the date range:
// inclusive count when the absence is closed, 0 while it stays open.
func deriveDuration(rec *absence.Record) {
	if rec.EndDate == nil || dates.IsUnknown(*rec.EndDate) {
		rec.DurationDays = 0
		return
	}
	rec.DurationDays = dates.DaysBetweenInclusive(rec.StartDate, *rec.EndDate)
}
