package career

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
)

// Service manages one career track (grades or functions). Two instances
// run side by side, sharing the code and differing only in repository and
// hierarchy.
type Service struct {
	kind      career.Kind
	hierarchy career.Hierarchy
	career.RecordRepository
	employeeRepo employee.EmployeeRepository
}

func NewGradeService(repo career.RecordRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{
		kind:             career.KindGrade,
		hierarchy:        career.GradeHierarchy,
		RecordRepository: repo,
		employeeRepo:     employeeRepo,
	}
}

func NewFunctionService(repo career.RecordRepository, employeeRepo employee.EmployeeRepository) *Service {
	return &Service{
		kind:             career.KindFunction,
		hierarchy:        career.FunctionHierarchy,
		RecordRepository: repo,
		employeeRepo:     employeeRepo,
	}
}

// Hierarchy exposes the ordered rank list for this track.
func (s *Service) Hierarchy() career.Hierarchy {
	return s.hierarchy
}

func (s *Service) List(ctx context.Context, employeeID string) ([]career.Record, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return s.RecordRepository.ListByEmployee(ctx, employeeID)
}

// Create persists a new record and then closes the previous rank's open
// window. The close is best-effort: a failure is logged and the new
// record's save stands.
func (s *Service) Create(ctx context.Context, req career.CreateRecordRequest) (career.Record, error) {
	if err := req.Validate(s.hierarchy); err != nil {
		return career.Record{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return career.Record{}, fmt.Errorf("failed to get employee: %w", err)
	}

	obtainedDate, err := dates.Parse(req.ObtainedDate)
	if err != nil {
		return career.Record{}, fmt.Errorf("failed to parse obtained date: %w", err)
	}

	existing, err := s.RecordRepository.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return career.Record{}, fmt.Errorf("failed to list career records: %w", err)
	}

	rec := career.Record{
		EmployeeID:   req.EmployeeID,
		Rank:         req.Rank,
		ObtainedDate: obtainedDate,
		Reference:    req.Reference,
	}
	created, err := s.RecordRepository.Create(ctx, rec)
	if err != nil {
		return career.Record{}, fmt.Errorf("failed to create %s record: %w", s.kind, err)
	}

	s.applySuccession(ctx, created.Rank, created.ObtainedDate, existing, "")

	return created, nil
}

// Update edits an existing record. The succession side effect re-runs only
// when the obtained date actually changed, with the edited record excluded
// from the search set.
func (s *Service) Update(ctx context.Context, req career.UpdateRecordRequest) (career.Record, error) {
	if err := req.Validate(s.hierarchy); err != nil {
		return career.Record{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return career.Record{}, err
	}
	original := rec

	if req.Rank != nil {
		rec.Rank = *req.Rank
	}
	if req.ObtainedDate != nil {
		obtainedDate, err := dates.Parse(*req.ObtainedDate)
		if err != nil {
			return career.Record{}, fmt.Errorf("failed to parse obtained date: %w", err)
		}
		rec.ObtainedDate = obtainedDate
	}
	if req.EndDate != nil {
		endDate, err := dates.Parse(*req.EndDate)
		if err != nil {
			return career.Record{}, fmt.Errorf("failed to parse end date: %w", err)
		}
		if dates.IsUnknown(endDate) {
			rec.EndDate = nil
		} else {
			rec.EndDate = &endDate
		}
	}
	if req.Reference != nil {
		rec.Reference = *req.Reference
	}

	if err := s.RecordRepository.Update(ctx, rec); err != nil {
		return career.Record{}, fmt.Errorf("failed to update %s record: %w", s.kind, err)
	}

	if !rec.ObtainedDate.Equal(original.ObtainedDate) {
		existing, err := s.RecordRepository.ListByEmployee(ctx, rec.EmployeeID)
		if err != nil {
			slog.Error("career succession skipped", "kind", s.kind, "record_id", rec.ID, "error", err)
			return rec, nil
		}
		s.applySuccession(ctx, rec.Rank, rec.ObtainedDate, existing, rec.ID)
	}

	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.RecordRepository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.RecordRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s record: %w", s.kind, err)
	}
	return nil
}

// applySuccession closes the previous rank's open window, logging instead
// of failing: the triggering save is already committed and must stand.
func (s *Service) applySuccession(ctx context.Context, rank string, obtainedDate time.Time, existing []career.Record, excludeID string) {
	succession, ok := FindSuccession(s.hierarchy, rank, obtainedDate, existing, excludeID)
	if !ok {
		return
	}
	if err := s.RecordRepository.UpdateEndDate(ctx, succession.RecordID, succession.EndDate); err != nil {
		slog.Error("failed to close previous rank",
			"kind", s.kind,
			"record_id", succession.RecordID,
			"end_date", dates.Format(succession.EndDate),
			"error", err,
		)
	}
}
