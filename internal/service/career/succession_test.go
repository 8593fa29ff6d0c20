package career

import (
	"testing"
	"time"

	"github.com/marinerh/personnel-backend/internal/domain/career"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestFindSuccession_ClosesPreviousRank(t *testing.T) {
	existing := []career.Record{
		{ID: "r1", Rank: "matelot", ObtainedDate: day(2018, 1, 1)},
	}

	succession, ok := FindSuccession(career.GradeHierarchy, "matelot_breveté", day(2023, 5, 10), existing, "")
	require.True(t, ok)
	assert.Equal(t, "r1", succession.RecordID)
	// Closed the day before the new rank was obtained.
	assert.Equal(t, day(2023, 5, 9), succession.EndDate)
}

func TestFindSuccession_LowestRankHasNoPrevious(t *testing.T) {
	existing := []career.Record{
		{ID: "r1", Rank: "matelot", ObtainedDate: day(2018, 1, 1)},
	}

	_, ok := FindSuccession(career.GradeHierarchy, career.GradeHierarchy[0], day(2023, 5, 10), existing, "")
	assert.False(t, ok)
}

func TestFindSuccession_UnknownRank(t *testing.T) {
	_, ok := FindSuccession(career.GradeHierarchy, "amiral", day(2023, 5, 10), nil, "")
	assert.False(t, ok)
}

func TestFindSuccession_ClosedRecordsSkipped(t *testing.T) {
	existing := []career.Record{
		{ID: "r1", Rank: "matelot", ObtainedDate: day(2018, 1, 1), EndDate: dayPtr(2020, 12, 31)},
	}

	_, ok := FindSuccession(career.GradeHierarchy, "matelot_breveté", day(2023, 5, 10), existing, "")
	assert.False(t, ok)
}

func TestFindSuccession_WrongRankSkipped(t *testing.T) {
	existing := []career.Record{
		{ID: "r1", Rank: "matelot", ObtainedDate: day(2020, 1, 1)},
	}

	// The open record is not at the rank immediately below the new one.
	_, ok := FindSuccession(career.GradeHierarchy, "quartier_maitre_2", day(2023, 5, 10), existing, "")
	assert.False(t, ok)
}

func TestFindSuccession_UnsavedRecordsNeverParticipate(t *testing.T) {
	existing := []career.Record{
		{ID: "", Rank: "matelot", ObtainedDate: day(2018, 1, 1)},
	}

	_, ok := FindSuccession(career.GradeHierarchy, "matelot_breveté", day(2023, 5, 10), existing, "")
	assert.False(t, ok)
}

func TestFindSuccession_ExcludesRecordUnderEdit(t *testing.T) {
	existing := []career.Record{
		{ID: "r1", Rank: "matelot", ObtainedDate: day(2018, 1, 1)},
		{ID: "r2", Rank: "matelot", ObtainedDate: day(2019, 1, 1)},
	}

	succession, ok := FindSuccession(career.GradeHierarchy, "matelot_breveté", day(2023, 5, 10), existing, "r1")
	require.True(t, ok)
	assert.Equal(t, "r2", succession.RecordID)
}

func TestFindSuccession_UnknownObtainedDate(t *testing.T) {
	existing := []career.Record{
		{ID: "r1", Rank: "matelot", ObtainedDate: day(2018, 1, 1)},
	}

	var zero time.Time
	_, ok := FindSuccession(career.GradeHierarchy, "matelot_breveté", zero, existing, "")
	assert.False(t, ok)
}

func TestFindSuccession_FunctionTrack(t *testing.T) {
	existing := []career.Record{
		{ID: "f1", Rank: career.FunctionHierarchy[0], ObtainedDate: day(2021, 3, 1)},
	}

	succession, ok := FindSuccession(career.FunctionHierarchy, career.FunctionHierarchy[1], day(2024, 1, 1), existing, "")
	require.True(t, ok)
	assert.Equal(t, "f1", succession.RecordID)
	assert.Equal(t, day(2023, 12, 31), succession.EndDate)
}

func TestHierarchy_Previous(t *testing.T) {
	previous, ok := career.GradeHierarchy.Previous("quartier_maitre_2")
	require.True(t, ok)
	assert.Equal(t, "matelot_breveté", previous)

	_, ok = career.GradeHierarchy.Previous(career.GradeHierarchy[0])
	assert.False(t, ok)

	_, ok = career.GradeHierarchy.Previous("unknown")
	assert.False(t, ok)
}
