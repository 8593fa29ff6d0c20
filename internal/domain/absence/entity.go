package absence

import "time"

// Record is an unscheduled, reference-coded absence. EndDate stays nil for
// an open-ended absence; the reference fields carry the free-text
// justification codes of the opening and closing paperwork.
type Record struct {
	ID             string
	EmployeeID     string
	StartDate      time.Time
	EndDate        *time.Time
	ReferenceStart string
	ReferenceEnd   string
	DurationDays   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (r Record) Persisted() bool {
	return r.ID != ""
}

// Open reports whether the absence has no end date yet.
func (r Record) Open() bool {
	return r.EndDate == nil
}
