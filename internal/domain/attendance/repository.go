package attendance

import "context"

// EventRepository defines data access for attendance events. Events are
// immutable after creation except for the store's asynchronous elapsed
// duration computation.
type EventRepository interface {
	// Create inserts a new event.
	Create(ctx context.Context, event Event) (Event, error)

	// ListByMonth retrieves the employee's events for a month (YYYY-MM),
	// ordered by date and time descending.
	ListByMonth(ctx context.Context, employeeCode, month string) ([]Event, error)

	// GetByID retrieves one event.
	GetByID(ctx context.Context, id string) (Event, error)

	// ListExitsWithoutElapsed retrieves Exit events whose elapsed duration
	// has not been computed yet.
	ListExitsWithoutElapsed(ctx context.Context, limit int) ([]Event, error)

	// SetElapsed stores the computed elapsed duration on an Exit event.
	SetElapsed(ctx context.Context, id string, elapsed string) error

	// GetEntryForExit finds the same-day Entry that the given Exit closes,
	// or nil when the day has no matching open Entry.
	GetEntryForExit(ctx context.Context, exit Event) (*Event, error)
}
