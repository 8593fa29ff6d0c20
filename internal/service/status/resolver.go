package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
)

// Resolve derives the aggregate employment status from the employee's
// record sets. Pure: no I/O, so it is testable without a store. Absences
// take precedence over leaves; a record only counts while today falls
// inside its date range, so an absence whose end date was moved into the
// past stops counting immediately.
func Resolve(leaves []leave.Record, absences []absence.Record, today time.Time) employee.Status {
	for _, rec := range absences {
		if covers(rec.StartDate, rec.EndDate, today) {
			return employee.StatusAbsent
		}
	}
	for _, rec := range leaves {
		if covers(rec.StartDate, rec.EndDate, today) {
			return employee.StatusOnLeave
		}
	}
	return employee.StatusActive
}

// covers reports whether today lies within [start, end], where a nil or
// unknown end leaves the range open.
func covers(start time.Time, end *time.Time, today time.Time) bool {
	if dates.IsUnknown(start) || !dates.SameOrBefore(start, today) {
		return false
	}
	if end == nil || dates.IsUnknown(*end) {
		return true
	}
	return dates.SameOrBefore(today, *end)
}

// Resolver loads an employee's records, resolves the aggregate status and
// writes it back. The write-back is separate from the pure resolution so
// callers decide when persistence happens.
type Resolver struct {
	leaveRepo    leave.RecordRepository
	absenceRepo  absence.RecordRepository
	employeeRepo employee.EmployeeRepository
}

func NewResolver(leaveRepo leave.RecordRepository, absenceRepo absence.RecordRepository, employeeRepo employee.EmployeeRepository) *Resolver {
	return &Resolver{
		leaveRepo:    leaveRepo,
		absenceRepo:  absenceRepo,
		employeeRepo: employeeRepo,
	}
}

// Current resolves the status without persisting it.
func (r *Resolver) Current(ctx context.Context, employeeID string) (employee.Status, error) {
	leaves, err := r.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return "", fmt.Errorf("failed to list leave records: %w", err)
	}
	absences, err := r.absenceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return "", fmt.Errorf("failed to list absence records: %w", err)
	}
	return Resolve(leaves, absences, time.Now()), nil
}

// Refresh resolves the status and writes it back to the employee record.
// Invoked after every leave or absence create, update or delete, and
// eagerly when an absence's end date is edited into the past.
func (r *Resolver) Refresh(ctx context.Context, employeeID string) (employee.Status, error) {
	resolved, err := r.Current(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if err := r.employeeRepo.UpdateStatus(ctx, employeeID, resolved); err != nil {
		return "", fmt.Errorf("failed to write back employee status: %w", err)
	}
	return resolved, nil
}

// RefreshAll re-resolves every employee. Run by the scheduler because
// statuses drift with the calendar even without user activity. Failures on
// one employee are logged and do not stop the sweep.
func (r *Resolver) RefreshAll(ctx context.Context) error {
	ids, err := r.employeeRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	var failed int
	for _, id := range ids {
		if _, err := r.Refresh(ctx, id); err != nil {
			slog.Error("status refresh failed", "employee_id", id, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("status refresh failed for %d of %d employees", failed, len(ids))
	}
	return nil
}
