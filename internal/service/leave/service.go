package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/database"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	"github.com/marinerh/personnel-backend/internal/service/status"
)

// Service owns the leave record lifecycle: derivation of the paired
// date/duration fields, balance enforcement, persistence and the employee
// status write-back that follows every mutation.
type Service struct {
	db *database.DB
	leave.RecordRepository
	leave.TypeRepository
	employeeRepo employee.EmployeeRepository
	balance      *BalanceCalculator
	resolver     *status.Resolver
}

func NewService(db *database.DB, recordRepo leave.RecordRepository, typeRepo leave.TypeRepository, employeeRepo employee.EmployeeRepository, balance *BalanceCalculator, resolver *status.Resolver) *Service {
	return &Service{
		db:               db,
		RecordRepository: recordRepo,
		TypeRepository:   typeRepo,
		employeeRepo:     employeeRepo,
		balance:          balance,
		resolver:         resolver,
	}
}

// ListTypes returns the catalog entries available to the employee.
// Gender-restricted types are filtered out at the repository.
func (s *Service) ListTypes(ctx context.Context, employeeID string) ([]leave.TypeInfo, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.TypeRepository.ForGender(ctx, emp.Gender)
}

// List returns the employee's leave records, most recent first.
func (s *Service) List(ctx context.Context, employeeID string) ([]leave.Record, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.RecordRepository.ListByEmployee(ctx, employeeID)
}

// Create validates, derives and persists a new leave record, then
// recomputes the owning employee's aggregate status in the same
// transaction.
func (s *Service) Create(ctx context.Context, req leave.CreateRecordRequest) (leave.Record, error) {
	if err := req.Validate(); err != nil {
		return leave.Record{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to get employee: %w", err)
	}

	info, err := s.TypeRepository.GetByCode(ctx, leave.Type(req.Type))
	if err != nil {
		return leave.Record{}, err
	}
	if info.FemaleOnly && emp.Gender != employee.Female {
		return leave.Record{}, leave.ErrTypeNotAllowed
	}

	startDate, err := dates.Parse(req.StartDate)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	rec := leave.Record{
		EmployeeID:   req.EmployeeID,
		Type:         info.Code,
		StartDate:    startDate,
		DurationDays: req.DurationDays,
	}

	today := time.Now()
	if req.DurationDays > 0 {
		DeriveFromDuration(&rec, today)
	} else {
		endDate, err := dates.Parse(req.EndDate)
		if err != nil {
			return leave.Record{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		rec.EndDate = &endDate
		DeriveFromEndDate(&rec, today)
	}

	records, err := s.RecordRepository.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to list leave records: %w", err)
	}
	if err := s.balance.CheckSave(dates.YearOf(rec.StartDate), info, records, "", rec.DurationDays); err != nil {
		return leave.Record{}, err
	}

	var created leave.Record
	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err = s.RecordRepository.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("failed to create leave record: %w", err)
		}
		if _, err := s.resolver.Refresh(txCtx, req.EmployeeID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return leave.Record{}, err
	}

	return created, nil
}

// Update applies a partial edit to an existing record. Whichever of the
// paired fields drove the edit, the other two are re-derived so the
// end-date invariant holds, and the derived status overwrites whatever was
// stored before.
func (s *Service) Update(ctx context.Context, req leave.UpdateRecordRequest) (leave.Record, error) {
	if err := req.Validate(); err != nil {
		return leave.Record{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.Record{}, err
	}

	if req.Type != nil {
		rec.Type = leave.Type(*req.Type)
	}
	if req.StartDate != nil {
		startDate, err := dates.Parse(*req.StartDate)
		if err != nil {
			return leave.Record{}, fmt.Errorf("failed to parse start date: %w", err)
		}
		rec.StartDate = startDate
	}
	if req.DurationDays != nil {
		rec.DurationDays = *req.DurationDays
	}
	if req.EndDate != nil {
		endDate, err := dates.Parse(*req.EndDate)
		if err != nil {
			return leave.Record{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		if dates.IsUnknown(endDate) {
			rec.EndDate = nil
		} else {
			rec.EndDate = &endDate
		}
	}

	// The end date is re-derived whenever the duration or start date was
	// edited; an explicit end-date edit re-derives the duration instead.
	today := time.Now()
	switch {
	case req.DurationDays != nil || (req.StartDate != nil && req.EndDate == nil):
		DeriveFromDuration(&rec, today)
	case req.EndDate != nil:
		DeriveFromEndDate(&rec, today)
	default:
		rec.Status = ComputeStatus(rec.StartDate, rec.EndDate, today)
	}

	info, err := s.TypeRepository.GetByCode(ctx, rec.Type)
	if err != nil {
		return leave.Record{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, rec.EmployeeID)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if info.FemaleOnly && emp.Gender != employee.Female {
		return leave.Record{}, leave.ErrTypeNotAllowed
	}

	records, err := s.RecordRepository.ListByEmployee(ctx, rec.EmployeeID)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to list leave records: %w", err)
	}
	if err := s.balance.CheckSave(dates.YearOf(rec.StartDate), info, records, rec.ID, rec.DurationDays); err != nil {
		return leave.Record{}, err
	}

	err = database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.RecordRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to update leave record: %w", err)
		}
		if _, err := s.resolver.Refresh(txCtx, rec.EmployeeID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return leave.Record{}, err
	}

	return rec, nil
}

// Delete removes a record and refreshes the employee's status.
func (s *Service) Delete(ctx context.Context, id string) error {
	rec, err := s.RecordRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return database.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.RecordRepository.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete leave record: %w", err)
		}
		if _, err := s.resolver.Refresh(txCtx, rec.EmployeeID); err != nil {
			return err
		}
		return nil
	})
}

// Balance reports the remaining quota for one type and year.
func (s *Service) Balance(ctx context.Context, employeeID string, year int, typeCode string) (leave.BalanceResponse, error) {
	info, err := s.TypeRepository.GetByCode(ctx, leave.Type(typeCode))
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	records, err := s.RecordRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	quota := info.QuotaDays
	if leave.SharesAnnualPool(info.Code) {
		quota = leave.AnnualPoolDays
	}

	return leave.BalanceResponse{
		Year:      year,
		Type:      string(info.Code),
		QuotaDays: quota,
		Remaining: s.balance.Remaining(year, info, records, ""),
	}, nil
}

// RefreshStatuses re-derives the status of every record that is not yet
// completed. Called by the scheduler: an ongoing leave becomes completed
// the day after its end date with no user action involved.
func (s *Service) RefreshStatuses(ctx context.Context) error {
	now := time.Now()
	records, err := s.RecordRepository.ListUnfinished(ctx, now)
	if err != nil {
		return fmt.Errorf("failed to list unfinished leave records: %w", err)
	}

	var failed int
	for _, rec := range records {
		derived := ComputeStatus(rec.StartDate, rec.EndDate, now)
		if derived == rec.Status {
			continue
		}
		if err := s.RecordRepository.UpdateStatus(ctx, rec.ID, derived); err != nil {
			slog.Error("leave status refresh failed", "record_id", rec.ID, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("leave status refresh failed for %d record(s)", failed)
	}
	return nil
}
