package schedule

import (
	"regexp"
	"strings"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/timemath"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/validator"
)

var intervalRegex = regexp.MustCompile(`(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)

// Resolve picks the effective day pattern for date. The roster wins whenever
// it has a cell for the day; otherwise the weekly schedule's weekday row is
// used; with neither source the day is unconstrained.
func Resolve(date time.Time, roster *ShiftRoster, weekly *WeeklySchedule) EffectivePattern {
	if roster != nil {
		if raw, ok := roster.Days[date.Day()]; ok {
			return ParseShiftValue(raw)
		}
	}

	if weekly != nil {
		if day, ok := weekly.Days[date.Weekday()]; ok {
			return weeklyPattern(day)
		}
	}

	return EffectivePattern{Kind: PatternUnconstrained}
}

// ParseShiftValue interprets one roster cell. Blank or DayOff blocks the day;
// anything else is scanned for "start-end" time pairs (comma-separated for
// split shifts, shift codes like "T1" ignored). A cell that yields no interval
// is an explicit non-working marker and blocks the day.
func ParseShiftValue(raw string) EffectivePattern {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, DayOff) {
		return EffectivePattern{Kind: PatternBlocked}
	}

	matches := intervalRegex.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return EffectivePattern{Kind: PatternBlocked}
	}

	intervals := make([]Interval, 0, len(matches))
	for _, m := range matches {
		start := timemath.ToMinutes(m[1])
		end := timemath.ToMinutes(m[2])
		intervals = append(intervals, Interval{
			Start:      start,
			End:        end,
			StartLabel: timemath.FormatMinutes(start),
			EndLabel:   timemath.FormatMinutes(end),
		})
	}

	return EffectivePattern{Kind: PatternShift, Intervals: intervals}
}

func weeklyPattern(day DaySchedule) EffectivePattern {
	intervals := make([]Interval, 0, len(day.Pairs))
	for _, pair := range day.Pairs {
		if !pair.complete() {
			continue
		}
		// A malformed cell is skipped like a half-filled pair.
		if !validator.IsValidClockTime(*pair.In) || !validator.IsValidClockTime(*pair.Out) {
			continue
		}
		start := timemath.ToMinutes(*pair.In)
		end := timemath.ToMinutes(*pair.Out)
		intervals = append(intervals, Interval{
			Start:      start,
			End:        end,
			StartLabel: timemath.FormatMinutes(start),
			EndLabel:   timemath.FormatMinutes(end),
		})
	}

	if len(intervals) == 0 {
		return EffectivePattern{Kind: PatternUnconstrained}
	}
	return EffectivePattern{Kind: PatternShift, Intervals: intervals}
}
