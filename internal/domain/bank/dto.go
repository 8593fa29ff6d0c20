package bank

import (
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

type CreateIdentityRequest struct {
	EmployeeID string `json:"-"`
	BankName   string `json:"bank_name"`
	AgencyName string `json:"agency_name,omitempty"`
	RIB        string `json:"rib"`
}

func (r CreateIdentityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BankName) {
		errs = append(errs, validator.ValidationError{Field: "bank_name", Message: "is required"})
	}
	if !validator.IsValidRIB(r.RIB) {
		errs = append(errs, validator.ValidationError{Field: "rib", Message: "must be a 20-digit bank identity number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateIdentityRequest struct {
	ID         string  `json:"-"`
	BankName   *string `json:"bank_name,omitempty"`
	AgencyName *string `json:"agency_name,omitempty"`
	RIB        *string `json:"rib,omitempty"`
}

func (r UpdateIdentityRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BankName != nil && validator.IsEmpty(*r.BankName) {
		errs = append(errs, validator.ValidationError{Field: "bank_name", Message: "cannot be empty"})
	}
	if r.RIB != nil && !validator.IsValidRIB(*r.RIB) {
		errs = append(errs, validator.ValidationError{Field: "rib", Message: "must be a 20-digit bank identity number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
