package attendance

import (
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/timemath"
)

// WorkedTotal sums elapsed working time over a period. Pending counts Exit
// events still awaiting the store's duration computation; those are excluded
// from the total, not treated as zero.
type WorkedTotal struct {
	Total   time.Duration
	Pending int
}

// Formatted renders the total as "HH:MM:SS".
func (w WorkedTotal) Formatted() string {
	return timemath.FormatHMS(w.Total)
}

// SumElapsed aggregates the elapsed durations carried by Exit events. Entry
// events never carry a duration and are skipped.
func SumElapsed(events []Event) WorkedTotal {
	var total WorkedTotal
	for _, e := range events {
		if e.Type != EventExit {
			continue
		}
		if !e.HasElapsed() {
			total.Pending++
			continue
		}
		d, err := timemath.ParseHMS(*e.Elapsed)
		if err != nil {
			total.Pending++
			continue
		}
		total.Total += d
	}
	return total
}
