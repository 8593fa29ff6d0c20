package absence

import "context"

// RecordRepository - interface for absence_records table
type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, record Record) error
	Delete(ctx context.Context, id string) error
}
