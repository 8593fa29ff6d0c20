package leave

import (
	"testing"

	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	annualInfo = leave.TypeInfo{Code: leave.TypeAnnual, QuotaDays: 45}
	sickInfo   = leave.TypeInfo{Code: leave.TypeSick, QuotaDays: 90}
)

func TestBalanceCalculator_Remaining_EmptyYear(t *testing.T) {
	calc := NewBalanceCalculator()

	remaining := calc.Remaining(2025, annualInfo, nil, "")
	assert.Equal(t, leave.AnnualPoolDays, remaining)
}

func TestBalanceCalculator_Remaining_PooledTypesShareBalance(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 2, 1), DurationDays: 20},
		{ID: "b", Type: leave.TypeMarriage, StartDate: day(2025, 7, 1), DurationDays: 10},
	}

	// Annual and marriage draw from one pool.
	assert.Equal(t, 15, calc.Remaining(2025, annualInfo, records, ""))
}

func TestBalanceCalculator_Remaining_OtherTypesDoNotConsume(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeSick, StartDate: day(2025, 2, 1), DurationDays: 30},
		{ID: "b", Type: leave.TypeUnpaid, StartDate: day(2025, 3, 1), DurationDays: 60},
	}

	assert.Equal(t, leave.AnnualPoolDays, calc.Remaining(2025, annualInfo, records, ""))
}

func TestBalanceCalculator_Remaining_KeyedByStartYear(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2024, 12, 20), DurationDays: 30},
		{ID: "b", Type: leave.TypeAnnual, StartDate: day(2025, 1, 5), DurationDays: 10},
	}

	// The 2024 record belongs to the 2024 pool even if it spills into 2025.
	assert.Equal(t, 35, calc.Remaining(2025, annualInfo, records, ""))
	assert.Equal(t, 15, calc.Remaining(2024, annualInfo, records, ""))
}

func TestBalanceCalculator_Remaining_NeverNegative(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 1, 1), DurationDays: 60},
	}

	assert.Equal(t, 0, calc.Remaining(2025, annualInfo, records, ""))
}

func TestBalanceCalculator_Remaining_ExcludesRecordUnderEdit(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 1, 1), DurationDays: 20},
		{ID: "b", Type: leave.TypeAnnual, StartDate: day(2025, 5, 1), DurationDays: 20},
	}

	// Editing record "b": its own 20 days do not count against itself.
	assert.Equal(t, 25, calc.Remaining(2025, annualInfo, records, "b"))
	assert.Equal(t, 5, calc.Remaining(2025, annualInfo, records, ""))
}

func TestBalanceCalculator_Remaining_NonPooledType(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeSick, StartDate: day(2025, 1, 1), DurationDays: 30},
	}

	// Non-pooled types report their fixed quota, untracked.
	assert.Equal(t, 90, calc.Remaining(2025, sickInfo, records, ""))
}

func TestBalanceCalculator_CheckSave_RejectsNonPositiveDuration(t *testing.T) {
	calc := NewBalanceCalculator()

	err := calc.CheckSave(2025, sickInfo, nil, "", 0)
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "duration_days")
}

func TestBalanceCalculator_CheckSave_RejectsOverPool(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 1, 1), DurationDays: 40},
	}

	err := calc.CheckSave(2025, annualInfo, records, "", 6)
	require.Error(t, err)

	var balanceErr *leave.BalanceExceededError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 5, balanceErr.Remaining)
	assert.Equal(t, 6, balanceErr.Requested)
	assert.Equal(t, 2025, balanceErr.Year)
}

func TestBalanceCalculator_CheckSave_AllowsExactRemaining(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeMarriage, StartDate: day(2025, 1, 1), DurationDays: 40},
	}

	assert.NoError(t, calc.CheckSave(2025, annualInfo, records, "", 5))
}

func TestBalanceCalculator_CheckSave_RejectsAnythingAtZeroRemaining(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 1, 1), DurationDays: 45},
	}

	err := calc.CheckSave(2025, annualInfo, records, "", 1)
	var balanceErr *leave.BalanceExceededError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 0, balanceErr.Remaining)
}

func TestBalanceCalculator_CheckSave_NonPooledSkipsPoolCheck(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 1, 1), DurationDays: 45},
	}

	// A sick leave saves fine even with the pool exhausted.
	assert.NoError(t, calc.CheckSave(2025, sickInfo, records, "", 10))
}

func TestBalanceCalculator_CheckSave_EditWithinOwnBudget(t *testing.T) {
	calc := NewBalanceCalculator()

	records := []leave.Record{
		{ID: "a", Type: leave.TypeAnnual, StartDate: day(2025, 1, 1), DurationDays: 45},
	}

	// Shrinking or keeping the only record's duration passes because the
	// record under edit is excluded from consumption.
	assert.NoError(t, calc.CheckSave(2025, annualInfo, records, "a", 45))
	assert.NoError(t, calc.CheckSave(2025, annualInfo, records, "a", 10))
}
