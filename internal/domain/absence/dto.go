package absence

import (
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

type CreateRecordRequest struct {
	EmployeeID     string `json:"-"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date,omitempty"`
	ReferenceStart string `json:"reference_start,omitempty"`
	ReferenceEnd   string `json:"reference_end,omitempty"`
}

func (r CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRecordRequest struct {
	ID             string  `json:"-"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
	ReferenceStart *string `json:"reference_start,omitempty"`
	ReferenceEnd   *string `json:"reference_end,omitempty"`
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetEndDateRequest is the eager end-date edit. It exists as its own
// operation because closing an absence in the past must flip the employee
// back to active immediately, without waiting for the rest of the form.
type SetEndDateRequest struct {
	ID           string `json:"-"`
	EndDate      string `json:"end_date"`
	ReferenceEnd string `json:"reference_end,omitempty"`
}

func (r SetEndDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
