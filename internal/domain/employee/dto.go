package employee

import (
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Matricule  string  `json:"matricule"`
	FullNameFr string  `json:"full_name_fr"`
	FullNameAr string  `json:"full_name_ar"`
	Gender     string  `json:"gender"`
	UnitID     *string `json:"unit_id,omitempty"`
	HireDate   string  `json:"hire_date"`
	BasePay    *string `json:"base_pay,omitempty"`
	Locale     string  `json:"locale,omitempty"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMatricule(r.Matricule) {
		errs = append(errs, validator.ValidationError{Field: "matricule", Message: "must be in the form 12345/2020"})
	}
	if validator.IsEmpty(r.FullNameFr) && validator.IsEmpty(r.FullNameAr) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "at least one of full_name_fr, full_name_ar is required"})
	}
	if r.Gender != string(Male) && r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be male or female"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Locale != "" && r.Locale != string(LocaleFrench) && r.Locale != string(LocaleArabic) {
		errs = append(errs, validator.ValidationError{Field: "locale", Message: "must be fr or ar"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	FullNameFr *string `json:"full_name_fr,omitempty"`
	FullNameAr *string `json:"full_name_ar,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	UnitID     *string `json:"unit_id,omitempty"`
	HireDate   *string `json:"hire_date,omitempty"`
	BasePay    *string `json:"base_pay,omitempty"`
	Locale     *string `json:"locale,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Gender != nil && *r.Gender != string(Male) && *r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be male or female"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Locale != nil && *r.Locale != string(LocaleFrench) && *r.Locale != string(LocaleArabic) {
		errs = append(errs, validator.ValidationError{Field: "locale", Message: "must be fr or ar"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	UnitID *string
	Status *string
	Search *string
	Page   int
	Limit  int
}
