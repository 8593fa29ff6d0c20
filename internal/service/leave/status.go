package leave

import (
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/leave"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
)

// ComputeStatus derives a leave record's lifecycle status from its date
// range. Only two states are ever derived: a missing end date means the
// leave is ongoing, an end date before today means it is completed.
// StatusUpcoming is never produced here; rows stored with it keep it for
// display until their next save, at which point the derived value wins.
// The start date takes no part in the rule but travels with the signature
// since every caller has it alongside the end date.
func ComputeStatus(start time.Time, end *time.Time, today time.Time) leave.Status {
	_ = start

	if end == nil || dates.IsUnknown(*end) {
		return leave.StatusOngoing
	}
	if dates.DayOf(*end).Before(dates.DayOf(today)) {
		return leave.StatusCompleted
	}
	return leave.StatusOngoing
}

// DeriveFromDuration fills the end date from start + duration and
// recomputes the status. Used when the edit came through the duration or
// start-date field.
func DeriveFromDuration(rec *leave.Record, today time.Time) {
	end := dates.EndDateFromDuration(rec.StartDate, rec.DurationDays)
	if dates.IsUnknown(end) {
		rec.EndDate = nil
	} else {
		rec.EndDate = &end
	}
	rec.Status = ComputeStatus(rec.StartDate, rec.EndDate, today)
}

// DeriveFromEndDate fills the duration from the inclusive day count and
// recomputes the status. Used when the edit came through the end-date
// field.
func DeriveFromEndDate(rec *leave.Record, today time.Time) {
	if rec.EndDate == nil || dates.IsUnknown(*rec.EndDate) {
		rec.DurationDays = 0
	} else {
		rec.DurationDays = dates.DaysBetweenInclusive(rec.StartDate, *rec.EndDate)
	}
	rec.Status = ComputeStatus(rec.StartDate, rec.EndDate, today)
}
