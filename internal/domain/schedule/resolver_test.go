package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_RosterWinsOverWeekly(t *testing.T) {
	roster := &ShiftRoster{
		EmployeeCode: "0001-2024",
		Month:        "2025-07",
		Days:         map[int]string{15: "T1 08:00-16:00"},
	}
	weekly := &WeeklySchedule{
		Days: map[time.Weekday]DaySchedule{
			time.Tuesday: {Pairs: []TimePair{{In: strPtr("09:00"), Out: strPtr("17:00")}}},
		},
	}

	// 2025-07-15 is a Tuesday; the roster cell must win.
	pattern := Resolve(date(2025, time.July, 15), roster, weekly)
	require.Equal(t, PatternShift, pattern.Kind)
	require.Len(t, pattern.Intervals, 1)
	assert.Equal(t, 480, pattern.Intervals[0].Start)
	assert.Equal(t, 960, pattern.Intervals[0].End)
	assert.Equal(t, "08:00", pattern.Intervals[0].StartLabel)
}

func TestResolve_MissingRosterDayFallsBackToWeekly(t *testing.T) {
	roster := &ShiftRoster{Month: "2025-07", Days: map[int]string{1: "08:00-16:00"}}
	weekly := &WeeklySchedule{
		Days: map[time.Weekday]DaySchedule{
			time.Wednesday: {Pairs: []TimePair{{In: strPtr("09:00"), Out: strPtr("17:00")}}},
		},
	}

	pattern := Resolve(date(2025, time.July, 16), roster, weekly) // Wednesday
	require.Equal(t, PatternShift, pattern.Kind)
	assert.Equal(t, "09:00", pattern.Intervals[0].StartLabel)
}

func TestResolve_DayOffBlocks(t *testing.T) {
	roster := &ShiftRoster{Month: "2025-07", Days: map[int]string{15: "LIBRE"}}

	pattern := Resolve(date(2025, time.July, 15), roster, nil)
	assert.Equal(t, PatternBlocked, pattern.Kind)

	// Blank cell is also an explicit day off, not unconstrained.
	roster.Days[15] = "  "
	pattern = Resolve(date(2025, time.July, 15), roster, nil)
	assert.Equal(t, PatternBlocked, pattern.Kind)
}

func TestResolve_MissingKeyIsUnconstrained(t *testing.T) {
	roster := &ShiftRoster{Month: "2025-07", Days: map[int]string{}}

	pattern := Resolve(date(2025, time.July, 15), roster, nil)
	assert.Equal(t, PatternUnconstrained, pattern.Kind)
}

func TestResolve_NoSourcesIsUnconstrained(t *testing.T) {
	pattern := Resolve(date(2025, time.July, 15), nil, nil)
	assert.Equal(t, PatternUnconstrained, pattern.Kind)
}

func TestResolve_WeeklyDayWithoutPairsIsUnconstrained(t *testing.T) {
	weekly := &WeeklySchedule{
		Days: map[time.Weekday]DaySchedule{
			time.Tuesday: {Pairs: []TimePair{{In: strPtr("09:00")}, {}}},
		},
	}

	// Half-filled pairs are skipped; nothing remains, so the day is free of
	// restriction.
	pattern := Resolve(date(2025, time.July, 15), nil, weekly)
	assert.Equal(t, PatternUnconstrained, pattern.Kind)
}

func TestParseShiftValue_SplitShift(t *testing.T) {
	pattern := ParseShiftValue("09:00-13:00,15:00-19:00")
	require.Equal(t, PatternShift, pattern.Kind)
	require.Len(t, pattern.Intervals, 2)
	assert.Equal(t, 540, pattern.Intervals[0].Start)
	assert.Equal(t, 780, pattern.Intervals[0].End)
	assert.Equal(t, 900, pattern.Intervals[1].Start)
	assert.Equal(t, 1140, pattern.Intervals[1].End)
}

func TestParseShiftValue_OvernightShift(t *testing.T) {
	pattern := ParseShiftValue("N 22:00-06:00")
	require.Equal(t, PatternShift, pattern.Kind)
	require.Len(t, pattern.Intervals, 1)
	assert.True(t, pattern.Intervals[0].Overnight())
}

func TestParseShiftValue_UnparseableCellBlocks(t *testing.T) {
	pattern := ParseShiftValue("DESCANSO")
	assert.Equal(t, PatternBlocked, pattern.Kind)
}
