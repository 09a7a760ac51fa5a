package attendance

import (
	"sort"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
)

type SessionState string

const (
	StateNoEventToday SessionState = "no_event_today"
	StateOpen         SessionState = "open"
	StateClosed       SessionState = "closed"
)

// LatestEvent returns the most recent event by combined date and time, or nil.
func LatestEvent(events []Event) *Event {
	if len(events) == 0 {
		return nil
	}
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].Time > sorted[j].Time
	})
	return &sorted[0]
}

// DeriveState computes today's session state from the event history: an Entry
// without a closing Exit leaves the session open, an Exit closes it, and an
// event from another day leaves today untouched.
func DeriveState(events []Event, today time.Time) SessionState {
	last := LatestEvent(events)
	if last == nil || !last.SameDay(today) {
		return StateNoEventToday
	}
	if last.Type == EventEntry {
		return StateOpen
	}
	return StateClosed
}

// CompletedPairs counts entry+exit pairs already closed today, used to point
// split-shift employees at their next interval.
func CompletedPairs(events []Event, today time.Time) int {
	count := 0
	for _, e := range events {
		if e.Type == EventExit && e.SameDay(today) {
			count++
		}
	}
	return count
}

// Gate evaluates attendance transitions against one immutable snapshot of the
// day: the effective patterns, the absence status, and the event history. All
// methods are pure; rejections carry a typed reason.
type Gate struct {
	Today     time.Time
	Now       int // minute of day
	Pattern   schedule.EffectivePattern
	Yesterday schedule.EffectivePattern
	Status    absence.CurrentStatus
	Events    []Event
}

// CanRegister validates a planned Entry or Exit. Checks run in fixed order:
// active absence, duplicate type, then the time window.
func (g Gate) CanRegister(typ EventType) error {
	if g.Status.Active() {
		return &AbsenceActiveError{TypeName: g.Status.TypeName()}
	}

	if last := LatestEvent(g.Events); last != nil && last.Type == typ {
		return &DuplicateError{LastType: last.Type, LastTime: last.Time}
	}

	decision := EvaluateWindow(g.Pattern, typ, g.Now, g.Yesterday, CompletedPairs(g.Events, g.Today))
	if !decision.Allowed {
		if g.Pattern.Blocked() {
			return ErrDayBlocked
		}
		return &WindowError{Type: typ, NextAt: decision.NextAt}
	}

	return nil
}

// CanUnplannedExit validates the incident bypass: it skips the window check
// but still requires an absence-free day and an open session.
func (g Gate) CanUnplannedExit() error {
	if g.Status.Active() {
		return &AbsenceActiveError{TypeName: g.Status.TypeName()}
	}

	if DeriveState(g.Events, g.Today) != StateOpen {
		return ErrNotClockedIn
	}
	return nil
}

// CanRegisterIncident validates an "incidencia" registration, which explains
// an anomaly after a completed entry+exit cycle. It produces an absence
// record, never an attendance event.
func (g Gate) CanRegisterIncident() error {
	last := LatestEvent(g.Events)
	if last == nil || last.Type != EventExit {
		return ErrCycleNotComplete
	}
	return nil
}

// NextWindow reports the upcoming split-shift interval, if any, given the
// pairs completed so far today.
func (g Gate) NextWindow() *schedule.Interval {
	decision := EvaluateWindow(g.Pattern, EventEntry, g.Now, g.Yesterday, CompletedPairs(g.Events, g.Today))
	return decision.NextInterval
}
