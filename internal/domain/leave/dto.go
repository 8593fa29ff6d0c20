package leave

import (
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

// CreateRecordRequest carries a new leave row. The form lets the user enter
// either the end date or the duration; the service derives the missing one
// and the status before persisting.
type CreateRecordRequest struct {
	EmployeeID   string `json:"-"`
	Type         string `json:"type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date,omitempty"`
	DurationDays int    `json:"duration_days,omitempty"`
}

func (r CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate == "" && r.DurationDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "duration_days", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest edits an existing leave row. Nil fields are left
// untouched; any change to start date, end date or duration triggers
// re-derivation of the other two and of the status.
type UpdateRecordRequest struct {
	ID           string  `json:"-"`
	Type         *string `json:"type,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	DurationDays *int    `json:"duration_days,omitempty"`
}

func (r UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.DurationDays != nil && *r.DurationDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "duration_days", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BalanceResponse reports the remaining pooled days for one year.
type BalanceResponse struct {
	Year      int    `json:"year"`
	Type      string `json:"type"`
	QuotaDays int    `json:"quota_days"`
	Remaining int    `json:"remaining_days"`
}
