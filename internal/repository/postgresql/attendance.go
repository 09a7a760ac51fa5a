package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/attendance"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
)

type attendanceEventRepository struct {
	db *database.DB
}

func NewAttendanceEventRepository(db *database.DB) attendance.EventRepository {
	return &attendanceEventRepository{db: db}
}

const eventColumns = `id, employee_code, type, date, time, location, latitude, longitude, elapsed, unplanned, created_at, updated_at`

// Create implements attendance.EventRepository.
func (r *attendanceEventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			id, employee_code, type, date, time, location, latitude, longitude, unplanned
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.EmployeeCode,
		event.Type,
		event.Date,
		event.Time,
		event.Location,
		event.Latitude,
		event.Longitude,
		event.Unplanned,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// ListByMonth implements attendance.EventRepository.
func (r *attendanceEventRepository) ListByMonth(ctx context.Context, employeeCode, month string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE employee_code = $1
		  AND to_char(date, 'YYYY-MM') = $2
		ORDER BY date DESC, time DESC
	`

	rows, err := q.Query(ctx, query, employeeCode, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetByID implements attendance.EventRepository.
func (r *attendanceEventRepository) GetByID(ctx context.Context, id string) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE id = $1
	`

	event, err := scanEvent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Event{}, attendance.ErrEventNotFound
		}
		return attendance.Event{}, fmt.Errorf("failed to get attendance event: %w", err)
	}

	return event, nil
}

// ListExitsWithoutElapsed implements attendance.EventRepository.
func (r *attendanceEventRepository) ListExitsWithoutElapsed(ctx context.Context, limit int) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE type = $1
		  AND (elapsed IS NULL OR elapsed = '')
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, attendance.EventExit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list exits without elapsed: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// SetElapsed implements attendance.EventRepository.
func (r *attendanceEventRepository) SetElapsed(ctx context.Context, id string, elapsed string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_events
		SET elapsed = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, elapsed, id)
	if err != nil {
		return fmt.Errorf("failed to set elapsed duration: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrEventNotFound
	}

	return nil
}

// GetEntryForExit implements attendance.EventRepository. The matching entry
// is the latest same-day entry registered before the exit.
func (r *attendanceEventRepository) GetEntryForExit(ctx context.Context, exit attendance.Event) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events
		WHERE employee_code = $1
		  AND type = $2
		  AND date = $3
		  AND time <= $4
		ORDER BY time DESC
		LIMIT 1
	`

	entry, err := scanEvent(q.QueryRow(ctx, query, exit.EmployeeCode, attendance.EventEntry, exit.Date, exit.Time))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entry for exit: %w", err)
	}

	return &entry, nil
}

func scanEvent(row pgx.Row) (attendance.Event, error) {
	var event attendance.Event
	err := row.Scan(
		&event.ID, &event.EmployeeCode, &event.Type, &event.Date, &event.Time,
		&event.Location, &event.Latitude, &event.Longitude, &event.Elapsed,
		&event.Unplanned, &event.CreatedAt, &event.UpdatedAt,
	)
	return event, err
}

func scanEvents(rows pgx.Rows) ([]attendance.Event, error) {
	var events []attendance.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}
	return events, nil
}
