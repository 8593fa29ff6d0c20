package career

import "time"

// Kind distinguishes the two parallel career tracks. Grade and function
// records share one shape and one succession rule; only the table and the
// hierarchy list differ.
type Kind string

const (
	KindGrade    Kind = "grade"
	KindFunction Kind = "function"
)

// Record is one step of an employee's grade or function history. EndDate is
// nil while the step is still the current one; it gets closed automatically
// when a higher-ranked step is recorded.
type Record struct {
	ID           string
	EmployeeID   string
	Rank         string
	ObtainedDate time.Time
	EndDate      *time.Time
	Reference    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r Record) Persisted() bool {
	return r.ID != ""
}

func (r Record) Open() bool {
	return r.EndDate == nil
}
