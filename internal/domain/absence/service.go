package absence

import "context"

// AbsenceService exposes the employee's own absence history. The employee is
// identified through the JWT claims carried by ctx.
type AbsenceService interface {
	// ListMine retrieves the employee's absences overlapping a year.
	ListMine(ctx context.Context, year int) (ListResponse, error)

	// Summary aggregates the employee's absences per type for a year.
	Summary(ctx context.Context, year int) (SummaryResponse, error)
}
