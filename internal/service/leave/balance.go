package leave

import (
	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
)

// BalanceCalculator computes remaining leave quota against the shared
// annual pool. Annual and marriage leaves draw from one 45-day pool per
// calendar year, keyed by the start date's year; every other type keeps
// its own fixed quota and is not consumption-tracked.
type BalanceCalculator struct {
}

func NewBalanceCalculator() *BalanceCalculator {
	return &BalanceCalculator{}
}

// Remaining returns the balance left for the given type and year across
// the employee's records, excluding the record identified by excludeID
// (pass "" when no record is under edit). Never negative.
func (c *BalanceCalculator) Remaining(year int, info leave.TypeInfo, records []leave.Record, excludeID string) int {
	if !leave.SharesAnnualPool(info.Code) {
		return info.QuotaDays
	}

	consumed := 0
	for _, rec := range records {
		if excludeID != "" && rec.ID == excludeID {
			continue
		}
		if !leave.SharesAnnualPool(rec.Type) {
			continue
		}
		if dates.YearOf(rec.StartDate) != year {
			continue
		}
		consumed += rec.DurationDays
	}

	remaining := leave.AnnualPoolDays - consumed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CheckSave validates a prospective save. A non-positive duration is a
// validation error regardless of type; a pooled type whose duration
// exceeds the remaining balance (computed without the record under edit)
// is rejected with the exact remaining day count.
func (c *BalanceCalculator) CheckSave(year int, info leave.TypeInfo, records []leave.Record, excludeID string, durationDays int) error {
	if durationDays <= 0 {
		return validator.ValidationErrors{
			{Field: "duration_days", Message: "must be greater than 0"},
		}
	}

	if !leave.SharesAnnualPool(info.Code) {
		return nil
	}

	remaining := c.Remaining(year, info, records, excludeID)
	if durationDays > remaining {
		return &leave.BalanceExceededError{
			Year:      year,
			Type:      info.Code,
			Requested: durationDays,
			Remaining: remaining,
		}
	}
	return nil
}
