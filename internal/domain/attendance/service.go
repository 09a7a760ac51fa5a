package attendance

import (
	"context"
)

// AttendanceService defines business logic for clock actions. The employee is
// identified through the JWT claims carried by ctx.
type AttendanceService interface {
	// TodayStatus reports today's session state plus the gate decision for
	// Entry and Exit, so any front end can render without re-deriving logic.
	TodayStatus(ctx context.Context) (TodayStatusResponse, error)

	// ClockIn registers an Entry after full gate validation.
	ClockIn(ctx context.Context, req ClockRequest) (EventResponse, error)

	// ClockOut registers an Exit after full gate validation and starts the
	// bounded poll for the store-computed elapsed duration.
	ClockOut(ctx context.Context, req ClockRequest) (EventResponse, error)

	// UnplannedExit registers an incident Exit, bypassing the time window
	// check. Only reachable from an open session on an absence-free day.
	UnplannedExit(ctx context.Context, req ClockRequest) (EventResponse, error)

	// RegisterIncident records an "incidencia" absence after a completed
	// entry+exit cycle.
	RegisterIncident(ctx context.Context, req IncidentRequest) error

	// ListMyEvents retrieves the employee's events for a month together
	// with the worked-time total.
	ListMyEvents(ctx context.Context, month string) (ListEventsResponse, error)
}
