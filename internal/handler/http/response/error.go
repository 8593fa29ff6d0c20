package response

import (
	"errors"
	"net/http"

	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/domain/auth"
	"github.com/marinerh/personnel-backend/internal/domain/bank"
	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/domain/unit"
	"github.com/marinerh/personnel-backend/internal/domain/user"
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// The balance rejection carries the remaining day count; surface it so
	// the form can display it next to the duration field.
	var balanceErr *leave.BalanceExceededError
	if errors.As(err, &balanceErr) {
		writeJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "BALANCE_EXCEEDED",
				Message: balanceErr.Error(),
				Details: map[string]string{
					"remaining_days": validator.Itoa(balanceErr.Remaining),
					"requested_days": validator.Itoa(balanceErr.Requested),
				},
			},
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrMatriculeExists):
		Conflict(w, "Matricule already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrTypeNotAllowed):
		Forbidden(w, "Leave type not allowed for this employee")

	// Absence domain errors
	case errors.Is(err, absence.ErrRecordNotFound):
		NotFound(w, "Absence record not found")

	// Career domain errors
	case errors.Is(err, career.ErrRecordNotFound):
		NotFound(w, "Career record not found")
	case errors.Is(err, career.ErrUnknownRank):
		BadRequest(w, "Rank not present in hierarchy", nil)

	// Master data errors
	case errors.Is(err, unit.ErrUnitNotFound):
		NotFound(w, "Unit not found")
	case errors.Is(err, unit.ErrUnitCodeExists):
		Conflict(w, "Unit code already exists")
	case errors.Is(err, unit.ErrUnitNotEmpty):
		Conflict(w, "Unit still has assigned employees")
	case errors.Is(err, bank.ErrIdentityNotFound):
		NotFound(w, "Bank identity not found")
	case errors.Is(err, bank.ErrRIBExists):
		Conflict(w, "RIB already registered")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
