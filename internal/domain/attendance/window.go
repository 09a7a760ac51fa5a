package attendance

import (
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
)

// GraceMinutes is the fixed margin before a scheduled boundary during which a
// clock action counts as on time. Lateness past the boundary is unrestricted.
const GraceMinutes = 10

// WindowDecision is the outcome of validating one clock action against the
// effective pattern for "now".
type WindowDecision struct {
	Allowed bool
	// NextAt is the boundary ("HH:MM") a rejection message should reference.
	NextAt string
	// NextInterval points at the upcoming interval of a split shift once at
	// least one interval is completed, so callers can announce the next
	// expected entry time. Nil otherwise.
	NextInterval *schedule.Interval
}

// EvaluateWindow decides whether an event of the given type is allowed at
// minute now.
//
// A blocked day rejects everything, an unconstrained day allows everything.
// Entry is allowed from ten minutes before an interval start, with no cap on
// lateness. Exit is allowed from ten minutes before an interval end; for an
// overnight interval the closing leg belongs to the following morning, so the
// check only applies before the interval's start and the caller passes
// yesterday's pattern to cover a shift opened the previous evening.
// completedPairs is the number of entry+exit pairs already closed today.
func EvaluateWindow(pattern schedule.EffectivePattern, typ EventType, now int, yesterday schedule.EffectivePattern, completedPairs int) WindowDecision {
	if pattern.Blocked() {
		return WindowDecision{Allowed: false}
	}
	if pattern.Unconstrained() {
		return WindowDecision{Allowed: true}
	}

	decision := WindowDecision{NextInterval: nextInterval(pattern, completedPairs)}

	for _, iv := range pattern.Intervals {
		if intervalAllows(iv, typ, now) {
			decision.Allowed = true
			return decision
		}
	}

	// Overnight look-back: a shift opened yesterday evening closes this
	// morning, so an Exit must also be checked against yesterday's
	// overnight intervals when today's pattern lacks the closing leg.
	if typ == EventExit {
		for _, iv := range yesterday.Intervals {
			if iv.Overnight() && now < iv.Start && now >= closingBoundary(iv) {
				decision.Allowed = true
				return decision
			}
		}
	}

	decision.NextAt = nextBoundary(pattern, typ, now)
	return decision
}

func intervalAllows(iv schedule.Interval, typ EventType, now int) bool {
	switch typ {
	case EventEntry:
		return now >= iv.Start-GraceMinutes
	case EventExit:
		if iv.Overnight() {
			// The closing leg falls on the next civil day; only the
			// morning side of the interval validates an exit today.
			return now < iv.Start && now >= closingBoundary(iv)
		}
		return now >= iv.End-GraceMinutes
	}
	return false
}

func closingBoundary(iv schedule.Interval) int {
	return iv.End - GraceMinutes
}

// nextBoundary picks the boundary time a rejection message should name: the
// earliest interval start (for Entry) or end (for Exit) still ahead of now.
func nextBoundary(pattern schedule.EffectivePattern, typ EventType, now int) string {
	best := -1
	label := ""
	for _, iv := range pattern.Intervals {
		var boundary int
		var l string
		if typ == EventEntry {
			boundary, l = iv.Start, iv.StartLabel
		} else {
			boundary, l = iv.End, iv.EndLabel
		}
		if boundary >= now && (best == -1 || boundary < best) {
			best = boundary
			label = l
		}
	}
	return label
}

func nextInterval(pattern schedule.EffectivePattern, completedPairs int) *schedule.Interval {
	if len(pattern.Intervals) < 2 || completedPairs < 1 || completedPairs >= len(pattern.Intervals) {
		return nil
	}
	iv := pattern.Intervals[completedPairs]
	return &iv
}
