package attendance

import (
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/timemath"
)

type EventType string

const (
	EventEntry EventType = "entrada"
	EventExit  EventType = "salida"
)

// Event is one clock action. Elapsed is filled asynchronously by the store on
// the Exit that closes a same-day Entry; until then it stays nil, which the
// caller must render as "pending", never as a zero duration.
type Event struct {
	ID           string
	EmployeeCode string
	Type         EventType
	Date         time.Time // civil day
	Time         string    // "HH:MM:SS" local
	Location     *string
	Latitude     *float64
	Longitude    *float64
	Elapsed      *string // "HH:MM:SS"
	Unplanned    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Minute is the event's minute-of-day.
func (e Event) Minute() int {
	return timemath.ToMinutes(e.Time)
}

// SameDay reports whether the event belongs to the given civil day.
func (e Event) SameDay(day time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HasElapsed reports whether the store has finished computing the elapsed
// duration for this event.
func (e Event) HasElapsed() bool {
	return e.Elapsed != nil && *e.Elapsed != ""
}
