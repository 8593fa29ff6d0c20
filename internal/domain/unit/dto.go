package unit

import (
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

type CreateUnitRequest struct {
	ParentID *string `json:"parent_id,omitempty"`
	Code     string  `json:"code"`
	NameFr   string  `json:"name_fr"`
	NameAr   string  `json:"name_ar"`
}

func (r CreateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.NameFr) && validator.IsEmpty(r.NameAr) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "at least one of name_fr, name_ar is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUnitRequest struct {
	ID       string  `json:"-"`
	ParentID *string `json:"parent_id,omitempty"`
	Code     *string `json:"code,omitempty"`
	NameFr   *string `json:"name_fr,omitempty"`
	NameAr   *string `json:"name_ar,omitempty"`
}

func (r UpdateUnitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Code != nil && validator.IsEmpty(*r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
