package leave

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("leave record not found")
	ErrTypeNotFound   = errors.New("leave type not found")
	ErrTypeNotAllowed = errors.New("leave type not allowed for this employee")
)

// BalanceExceededError rejects a save whose prospective duration exceeds
// the remaining pooled balance. Remaining carries the exact day count so
// the caller can surface it to the user.
type BalanceExceededError struct {
	Year      int
	Type      Type
	Requested int
	Remaining int
}

func (e *BalanceExceededError) Error() string {
	return fmt.Sprintf("annual leave balance exceeded for %d: requested %d day(s), %d remaining", e.Year, e.Requested, e.Remaining)
}
