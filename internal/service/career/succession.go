package career

import (
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/marinerh/personnel-backend/internal/pkg/dates"
)

// Succession is the computed side effect of saving a career record: the
// still-open record at the rank immediately below the new one gets its
// validity window closed the day before the new rank was obtained.
type Succession struct {
	RecordID string
	EndDate  time.Time
}

// FindSuccession returns the close to perform, if any. Pure: the caller
// persists it. No succession happens when the new rank is the lowest of
// the hierarchy, when the rank is unknown, or when the employee has no
// open record at the previous rank. excludeID skips the record currently
// being edited; unsaved records never participate.
func FindSuccession(h career.Hierarchy, newRank string, obtainedDate time.Time, existing []career.Record, excludeID string) (Succession, bool) {
	previousRank, ok := h.Previous(newRank)
	if !ok {
		return Succession{}, false
	}
	if dates.IsUnknown(obtainedDate) {
		return Succession{}, false
	}

	for _, rec := range existing {
		if !rec.Persisted() {
			continue
		}
		if excludeID != "" && rec.ID == excludeID {
			continue
		}
		if rec.Rank != previousRank || !rec.Open() {
			continue
		}
		return Succession{
			RecordID: rec.ID,
			EndDate:  dates.DayOf(obtainedDate).AddDate(0, 0, -1),
		}, true
	}

	return Succession{}, false
}
