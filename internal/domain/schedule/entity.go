package schedule

import (
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/timemath"
)

// WeeklySchedule is the recurring "horario" assigned to a work center and
// group: for each weekday up to three in/out pairs.
type WeeklySchedule struct {
	ID        string
	CenterID  string
	GroupCode string
	Days      map[time.Weekday]DaySchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimePair is one in/out column pair of a weekly day row. Either end may be
// unset independently; a pair only contributes to the pattern when both are.
type TimePair struct {
	In  *string
	Out *string
}

func (p TimePair) complete() bool {
	return p.In != nil && *p.In != "" && p.Out != nil && *p.Out != ""
}

type DaySchedule struct {
	Pairs []TimePair // at most 3
}

// ShiftRoster is the month-specific "cuadrante" for one employee. Days maps
// day-of-month to the raw roster cell: DayOff, blank, or a shift string such
// as "T1 08:00-16:00" or "09:00-13:00,15:00-19:00".
type ShiftRoster struct {
	ID           string
	EmployeeCode string
	Month        string // YYYY-MM
	Days         map[int]string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DayOff is the explicit roster marker for a non-working day. A missing
// roster key means unconstrained; DayOff means blocked. Never conflate them.
const DayOff = "LIBRE"

type PatternKind string

const (
	PatternUnconstrained PatternKind = "unconstrained"
	PatternBlocked       PatternKind = "blocked"
	PatternShift         PatternKind = "shift"
)

// Interval is one working interval of a day pattern, in minutes of day.
type Interval struct {
	Start      int
	End        int
	StartLabel string // "08:00"
	EndLabel   string // "16:00"
}

// Overnight reports whether the interval crosses midnight.
func (i Interval) Overnight() bool {
	return timemath.IsOvernight(i.Start, i.End)
}

// EffectivePattern is the single pattern governing one day, after roster
// priority and weekly fallback have been applied.
type EffectivePattern struct {
	Kind      PatternKind
	Intervals []Interval
}

func (p EffectivePattern) Unconstrained() bool { return p.Kind == PatternUnconstrained }
func (p EffectivePattern) Blocked() bool       { return p.Kind == PatternBlocked }

// MonthKey renders the roster month key for a date.
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}
