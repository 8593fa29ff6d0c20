package leave

import (
	"context"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/employee"
)

// RecordRepository - interface for leave_records table
type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, record Record) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	ListUnfinished(ctx context.Context, asOf time.Time) ([]Record, error)
}

// TypeRepository - interface for leave_types catalog table
type TypeRepository interface {
	GetByCode(ctx context.Context, code Type) (TypeInfo, error)
	ForGender(ctx context.Context, gender employee.Gender) ([]TypeInfo, error)
}
