package bank

import "time"

// Identity is an employee's bank identity record (relevé d'identité
// bancaire). One employee can hold several over time; the active one is the
// most recently created.
type Identity struct {
	ID         string
	EmployeeID string
	BankName   string
	AgencyName string
	RIB        string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
