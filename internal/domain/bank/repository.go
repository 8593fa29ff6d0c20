package bank

import "context"

// IdentityRepository - interface for bank_identities table
type IdentityRepository interface {
	Create(ctx context.Context, identity Identity) (Identity, error)
	GetByID(ctx context.Context, id string) (Identity, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Identity, error)
	Update(ctx context.Context, req UpdateIdentityRequest) error
	Delete(ctx context.Context, id string) error
}
