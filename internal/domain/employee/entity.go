package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	Matricule  string
	FullNameFr string
	FullNameAr string
	Gender     Gender
	Status     Status
	UnitID     *string
	HireDate   time.Time
	BasePay    *decimal.Decimal
	Locale     Locale
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Status is the aggregate employment state derived from the employee's
// current leave and absence records. It is written back to the employees
// table for display but the record sets remain the source of truth.
type Status string

const (
	StatusActive  Status = "active"
	StatusOnLeave Status = "on_leave"
	StatusAbsent  Status = "absent"
)

// Locale is the user-facing display language. Calculators never look at it;
// it only travels with the record so the API can localize labels.
type Locale string

const (
	LocaleFrench Locale = "fr"
	LocaleArabic Locale = "ar"
)
