package career

import (
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

type CreateRecordRequest struct {
	EmployeeID   string `json:"-"`
	Rank         string `json:"rank"`
	ObtainedDate string `json:"obtained_date"`
	Reference    string `json:"reference,omitempty"`
}

func (r CreateRecordRequest) Validate(h Hierarchy) error {
	var errs validator.ValidationErrors

	if !h.Contains(r.Rank) {
		errs = append(errs, validator.ValidationError{Field: "rank", Message: "is not a valid rank"})
	}
	if _, ok := validator.IsValidDate(r.ObtainedDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "obtained_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRecordRequest struct {
	ID           string  `json:"-"`
	Rank         *string `json:"rank,omitempty"`
	ObtainedDate *string `json:"obtained_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	Reference    *string `json:"reference,omitempty"`
}

func (r UpdateRecordRequest) Validate(h Hierarchy) error {
	var errs validator.ValidationErrors

	if r.Rank != nil && !h.Contains(*r.Rank) {
		errs = append(errs, validator.ValidationError{Field: "rank", Message: "is not a valid rank"})
	}
	if r.ObtainedDate != nil {
		if _, ok := validator.IsValidDate(*r.ObtainedDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "obtained_date", Message: "must be a valid date (YYYY-MM-DD)"})
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
