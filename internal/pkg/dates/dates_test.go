package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestDaysBetweenInclusive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, DaysBetweenInclusive(d(2025, 1, 10), d(2025, 1, 10)))
	assert.Equal(t, 3, DaysBetweenInclusive(d(2025, 1, 10), d(2025, 1, 12)))
	assert.Equal(t, 5, DaysBetweenInclusive(d(2025, 1, 10), d(2025, 1, 14)))
}

func TestDaysBetweenInclusive_InvertedRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, DaysBetweenInclusive(d(2025, 2, 10), d(2025, 2, 9)))
}

func TestDaysBetweenInclusive_UnknownDates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, DaysBetweenInclusive(time.Time{}, d(2025, 1, 10)))
	assert.Equal(t, 0, DaysBetweenInclusive(d(2025, 1, 10), time.Time{}))
	assert.Equal(t, 0, DaysBetweenInclusive(time.Time{}, time.Time{}))
}

func TestEndDateFromDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, d(2025, 1, 14), EndDateFromDuration(d(2025, 1, 10), 5))
	assert.Equal(t, d(2025, 1, 10), EndDateFromDuration(d(2025, 1, 10), 1))

	// Crosses a month boundary.
	assert.Equal(t, d(2025, 2, 2), EndDateFromDuration(d(2025, 1, 29), 5))
}

func TestEndDateFromDuration_Invalid(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUnknown(EndDateFromDuration(time.Time{}, 5)))
	assert.True(t, IsUnknown(EndDateFromDuration(d(2025, 1, 10), 0)))
	assert.True(t, IsUnknown(EndDateFromDuration(d(2025, 1, 10), -3)))
}

// Round trips between the two derivations must agree for every valid range.
func TestDurationRoundTrip(t *testing.T) {
	t.Parallel()

	start := d(2025, 3, 1)
	for days := 1; days <= 60; days++ {
		end := EndDateFromDuration(start, days)
		assert.Equal(t, days, DaysBetweenInclusive(start, end))
	}

	for offset := 0; offset < 60; offset++ {
		end := start.AddDate(0, 0, offset)
		n := DaysBetweenInclusive(start, end)
		assert.Equal(t, end, EndDateFromDuration(start, n))
	}
}

func TestYearOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2025, YearOf(d(2025, 12, 31)))
	assert.Equal(t, 0, YearOf(time.Time{}))
}

func TestParseAndFormat(t *testing.T) {
	t.Parallel()

	parsed, err := Parse("2025-01-10")
	require.NoError(t, err)
	assert.Equal(t, d(2025, 1, 10), parsed)
	assert.Equal(t, "2025-01-10", Format(parsed))

	empty, err := Parse("")
	require.NoError(t, err)
	assert.True(t, IsUnknown(empty))
	assert.Equal(t, "", Format(empty))

	_, err = Parse("10/01/2025")
	assert.Error(t, err)
}

func TestDayOfNormalizesClockTime(t *testing.T) {
	t.Parallel()

	noon := time.Date(2025, 5, 4, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, d(2025, 5, 4), DayOf(noon))
	assert.Equal(t, 1, DaysBetweenInclusive(DayOf(noon), d(2025, 5, 4)))
}
