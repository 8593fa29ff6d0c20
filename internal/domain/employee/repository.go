package employee

import "context"

// EmployeeRepository - interface for employees table
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByMatricule(ctx context.Context, matricule string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)
	ListIDs(ctx context.Context) ([]string, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	SoftDelete(ctx context.Context, id string) error
}
