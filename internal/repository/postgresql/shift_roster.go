package postgresql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
)

type shiftRosterRepository struct {
	db *database.DB
}

func NewShiftRosterRepository(db *database.DB) schedule.ShiftRosterRepository {
	return &shiftRosterRepository{db: db}
}

// GetByEmployeeAndMonth implements schedule.ShiftRosterRepository. The month
// sits inside the legacy payload under inconsistent field names, so rows are
// decoded and matched in Go; an employee carries at most a handful of rosters.
func (r *shiftRosterRepository) GetByEmployeeAndMonth(ctx context.Context, employeeCode, month string) (*schedule.ShiftRoster, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, payload, created_at, updated_at
		FROM shift_rosters
		WHERE employee_code = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift rosters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, code             string
			payload              []byte
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &code, &payload, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shift roster: %w", err)
		}

		decoded, err := decodeRosterPayload(payload)
		if err != nil {
			slog.Warn("skipping undecodable roster row", "roster_id", id, "error", err)
			continue
		}
		if decoded.Month != month {
			continue
		}

		return &schedule.ShiftRoster{
			ID:           id,
			EmployeeCode: code,
			Month:        decoded.Month,
			Days:         decoded.Days,
			CreatedAt:    createdAt,
			UpdatedAt:    updatedAt,
		}, nil
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift rosters: %w", err)
	}

	return nil, nil
}
