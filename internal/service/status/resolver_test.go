package status

import (
	"testing"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/absence"
	"github.com/marinerh/personnel-backend/internal/domain/employee"
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

func TestResolve_NoRecords(t *testing.T) {
	status := Resolve(nil, nil, day(2025, 6, 15))
	assert.Equal(t, employee.StatusActive, status)
}

func TestResolve_CurrentLeave(t *testing.T) {
	leaves := []leave.Record{
		{StartDate: day(2025, 6, 10), EndDate: dayPtr(2025, 6, 20)},
	}

	status := Resolve(leaves, nil, day(2025, 6, 15))
	assert.Equal(t, employee.StatusOnLeave, status)
}

func TestResolve_LeaveBoundaryDays(t *testing.T) {
	leaves := []leave.Record{
		{StartDate: day(2025, 6, 10), EndDate: dayPtr(2025, 6, 20)},
	}

	// Both endpoints count, the days just outside do not.
	assert.Equal(t, employee.StatusOnLeave, Resolve(leaves, nil, day(2025, 6, 10)))
	assert.Equal(t, employee.StatusOnLeave, Resolve(leaves, nil, day(2025, 6, 20)))
	assert.Equal(t, employee.StatusActive, Resolve(leaves, nil, day(2025, 6, 9)))
	assert.Equal(t, employee.StatusActive, Resolve(leaves, nil, day(2025, 6, 21)))
}

func TestResolve_OpenEndedAbsence(t *testing.T) {
	absences := []absence.Record{
		{StartDate: day(2025, 6, 1)},
	}

	status := Resolve(nil, absences, day(2025, 12, 31))
	assert.Equal(t, employee.StatusAbsent, status)
}

func TestResolve_AbsencePrecedesLeave(t *testing.T) {
	leaves := []leave.Record{
		{StartDate: day(2025, 6, 10), EndDate: dayPtr(2025, 6, 20)},
	}
	absences := []absence.Record{
		{StartDate: day(2025, 6, 12), EndDate: dayPtr(2025, 6, 18)},
	}

	status := Resolve(leaves, absences, day(2025, 6, 15))
	assert.Equal(t, employee.StatusAbsent, status)
}

func TestResolve_AbsenceClosedInPastStopsCounting(t *testing.T) {
	absences := []absence.Record{
		{StartDate: day(2025, 6, 1), EndDate: dayPtr(2025, 6, 10)},
	}

	// The end date was edited into the past: the absence no longer covers
	// today and the employee flips back to active.
	status := Resolve(nil, absences, day(2025, 6, 15))
	assert.Equal(t, employee.StatusActive, status)
}

func TestResolve_FutureRecordsIgnored(t *testing.T) {
	leaves := []leave.Record{
		{StartDate: day(2025, 7, 1), EndDate: dayPtr(2025, 7, 10)},
	}
	absences := []absence.Record{
		{StartDate: day(2025, 8, 1)},
	}

	status := Resolve(leaves, absences, day(2025, 6, 15))
	assert.Equal(t, employee.StatusActive, status)
}

func TestResolve_UnknownStartIgnored(t *testing.T) {
	var zero time.Time
	leaves := []leave.Record{
		{StartDate: zero, EndDate: dayPtr(2025, 12, 31)},
	}

	status := Resolve(leaves, nil, day(2025, 6, 15))
	assert.Equal(t, employee.StatusActive, status)
}

func TestResolve_UnknownEndKeepsRangeOpen(t *testing.T) {
	var zero time.Time
	leaves := []leave.Record{
		{StartDate: day(2025, 6, 1), EndDate: &zero},
	}

	status := Resolve(leaves, nil, day(2025, 6, 15))
	assert.Equal(t, employee.StatusOnLeave, status)
}
