package career

import (
	"context"
	"time"
)

// RecordRepository - one implementation per career track (grade_records and
// function_records tables share the shape).
type RecordRepository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
	Update(ctx context.Context, record Record) error
	UpdateEndDate(ctx context.Context, id string, endDate time.Time) error
	Delete(ctx context.Context, id string) error
}
