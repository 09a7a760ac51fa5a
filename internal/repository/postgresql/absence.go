package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
)

type absenceRepository struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.AbsenceRepository {
	return &absenceRepository{db: db}
}

// ListByYear implements absence.AbsenceRepository. The dates live inside the
// legacy payload under inconsistent field names, so the year filter runs in
// Go after decoding; an employee's absence history stays small.
func (r *absenceRepository) ListByYear(ctx context.Context, employeeCode string, year int) ([]absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, payload, created_at, updated_at
		FROM absences
		WHERE employee_code = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	defer rows.Close()

	var records []absence.Absence
	for rows.Next() {
		var (
			id, code             string
			payload              []byte
			createdAt, updatedAt time.Time
		)
		if err := rows.Scan(&id, &code, &payload, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan absence: %w", err)
		}

		record, err := decodeAbsencePayload(id, code, payload, createdAt, updatedAt)
		if err != nil {
			// A malformed sync row must not hide the rest of the history.
			slog.Warn("skipping undecodable absence row", "absence_id", id, "error", err)
			continue
		}

		if overlapsYear(record, year) {
			records = append(records, record)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate absences: %w", err)
	}

	return records, nil
}

// Create implements absence.AbsenceRepository. Rows written by this service
// use the canonical field names; the alias probing still reads them back.
func (r *absenceRepository) Create(ctx context.Context, record absence.Absence) (absence.Absence, error) {
	q := GetQuerier(ctx, r.db)

	payload, err := json.Marshal(canonicalAbsencePayload(record))
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to encode absence payload: %w", err)
	}

	query := `
		INSERT INTO absences (id, employee_code, payload)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err = q.QueryRow(ctx, query, record.ID, record.EmployeeCode, payload).
		Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return absence.Absence{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return record, nil
}

func canonicalAbsencePayload(record absence.Absence) map[string]interface{} {
	payload := map[string]interface{}{
		"type":   string(record.Type),
		"motive": record.Motive,
	}
	if record.Date != nil {
		payload["date"] = record.Date.Format("2006-01-02")
	}
	if record.StartDate != nil {
		payload["start_date"] = record.StartDate.Format("2006-01-02")
	}
	if record.EndDate != nil {
		payload["end_date"] = record.EndDate.Format("2006-01-02")
	}
	if record.ApprovedDays != nil {
		payload["approved_days"] = *record.ApprovedDays
	}
	if record.ApprovedHours != nil {
		payload["approved_hours"] = *record.ApprovedHours
	}
	if record.Location != nil {
		payload["location"] = *record.Location
	}
	return payload
}

func overlapsYear(record absence.Absence, year int) bool {
	if record.Date != nil && record.Date.Year() == year {
		return true
	}
	if record.StartDate != nil && record.EndDate != nil {
		return record.StartDate.Year() <= year && record.EndDate.Year() >= year
	}
	if record.StartDate != nil {
		return record.StartDate.Year() == year
	}
	return false
}
