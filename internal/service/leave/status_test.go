package leave

import (
	"testing"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestComputeStatus_NoEndDate(t *testing.T) {
	today := day(2025, 6, 15)

	status := ComputeStatus(day(2025, 6, 1), nil, today)
	assert.Equal(t, leave.StatusOngoing, status)
}

func TestComputeStatus_UnknownEndDate(t *testing.T) {
	today := day(2025, 6, 15)
	var zero time.Time

	status := ComputeStatus(day(2025, 6, 1), &zero, today)
	assert.Equal(t, leave.StatusOngoing, status)
}

func TestComputeStatus_EndInPast(t *testing.T) {
	today := day(2025, 6, 15)

	status := ComputeStatus(day(2025, 6, 1), dayPtr(2025, 6, 14), today)
	assert.Equal(t, leave.StatusCompleted, status)
}

func TestComputeStatus_EndToday(t *testing.T) {
	today := day(2025, 6, 15)

	// A leave ending today is still ongoing; it completes tomorrow.
	status := ComputeStatus(day(2025, 6, 1), dayPtr(2025, 6, 15), today)
	assert.Equal(t, leave.StatusOngoing, status)
}

func TestComputeStatus_FutureRangeIsOngoing(t *testing.T) {
	today := day(2025, 6, 15)

	// Start date plays no part in the rule: a record entirely in the
	// future still derives as ongoing, never upcoming.
	status := ComputeStatus(day(2025, 7, 1), dayPtr(2025, 7, 10), today)
	assert.Equal(t, leave.StatusOngoing, status)
}

func TestDeriveFromDuration_FillsEndDate(t *testing.T) {
	rec := leave.Record{
		StartDate:    day(2025, 1, 10),
		DurationDays: 5,
	}

	DeriveFromDuration(&rec, day(2025, 1, 1))

	// Inclusive counting: 5 days starting Jan 10 end on Jan 14.
	assert.NotNil(t, rec.EndDate)
	assert.Equal(t, day(2025, 1, 14), *rec.EndDate)
	assert.Equal(t, leave.StatusOngoing, rec.Status)
}

func TestDeriveFromDuration_SingleDay(t *testing.T) {
	rec := leave.Record{
		StartDate:    day(2025, 3, 3),
		DurationDays: 1,
	}

	DeriveFromDuration(&rec, day(2025, 3, 10))

	assert.NotNil(t, rec.EndDate)
	assert.Equal(t, day(2025, 3, 3), *rec.EndDate)
	assert.Equal(t, leave.StatusCompleted, rec.Status)
}

func TestDeriveFromDuration_NonPositiveDurationClearsEndDate(t *testing.T) {
	rec := leave.Record{
		StartDate:    day(2025, 3, 3),
		DurationDays: 0,
		EndDate:      dayPtr(2025, 3, 5),
	}

	DeriveFromDuration(&rec, day(2025, 3, 10))

	assert.Nil(t, rec.EndDate)
	assert.Equal(t, leave.StatusOngoing, rec.Status)
}

func TestDeriveFromEndDate_FillsDuration(t *testing.T) {
	rec := leave.Record{
		StartDate: day(2025, 1, 10),
		EndDate:   dayPtr(2025, 1, 14),
	}

	DeriveFromEndDate(&rec, day(2025, 2, 1))

	assert.Equal(t, 5, rec.DurationDays)
	assert.Equal(t, leave.StatusCompleted, rec.Status)
}

func TestDeriveFromEndDate_OpenEnded(t *testing.T) {
	rec := leave.Record{
		StartDate:    day(2025, 1, 10),
		DurationDays: 7,
	}

	DeriveFromEndDate(&rec, day(2025, 2, 1))

	assert.Equal(t, 0, rec.DurationDays)
	assert.Equal(t, leave.StatusOngoing, rec.Status)
}

func TestDerive_RoundTrip(t *testing.T) {
	// end = start + n - 1 and the inclusive count agree for any duration.
	for days := 1; days <= 60; days++ {
		rec := leave.Record{
			StartDate:    day(2025, 1, 10),
			DurationDays: days,
		}
		DeriveFromDuration(&rec, day(2025, 1, 1))

		back := leave.Record{
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
		}
		DeriveFromEndDate(&back, day(2025, 1, 1))
		assert.Equal(t, days, back.DurationDays, "duration %d", days)
	}
}
