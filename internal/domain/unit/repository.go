package unit

import "context"

// UnitRepository - interface for units table
type UnitRepository interface {
	Create(ctx context.Context, u Unit) (Unit, error)
	GetByID(ctx context.Context, id string) (Unit, error)
	List(ctx context.Context) ([]Unit, error)
	Update(ctx context.Context, req UpdateUnitRequest) error
	Delete(ctx context.Context, id string) error
}
