package leave

import "time"

// Type enumerates the leave categories of the catalog.
type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeEmergency Type = "emergency"
	TypeMarriage  Type = "marriage"
	TypeMaternity Type = "maternity"
	TypeUnpaid    Type = "unpaid"
)

// AnnualPoolDays is the yearly cap shared by the pooled leave types. The
// sum of durations of an employee's annual and marriage leaves within one
// calendar year (keyed by the start date's year) never exceeds it.
const AnnualPoolDays = 45

// SharesAnnualPool reports whether t draws from the shared yearly pool.
// Other types carry their own fixed quota and are not consumption-tracked.
func SharesAnnualPool(t Type) bool {
	return t == TypeAnnual || t == TypeMarriage
}

// Status is the lifecycle state of a leave record. It is derived from the
// date range and overwritten on every save; StatusUpcoming only survives in
// rows stored before derivation existed and is kept for display reads.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Record is one typed leave of an employee. EndDate may be nil while a form
// row is mid-edit; once saved the invariant
// endDate == startDate + durationDays - 1 holds (inclusive day counting).
type Record struct {
	ID           string
	EmployeeID   string
	Type         Type
	StartDate    time.Time
	EndDate      *time.Time
	DurationDays int
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Persisted reports whether the record has been stored. Unsaved rows carry
// an empty ID instead of the client-side "temp-" sentinel convention.
func (r Record) Persisted() bool {
	return r.ID != ""
}

// TypeInfo is the catalog entry for a leave type: per-type quota and the
// display metadata the forms render. Gender-restricted types (maternity)
// are filtered out by ForGender queries.
type TypeInfo struct {
	Code       Type
	LabelFr    string
	LabelAr    string
	QuotaDays  int
	Color      string
	FemaleOnly bool
}
