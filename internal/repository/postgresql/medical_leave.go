package postgresql

import (
	"context"
	"fmt"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
)

type medicalLeaveRepository struct {
	db *database.DB
}

func NewMedicalLeaveRepository(db *database.DB) absence.MedicalLeaveRepository {
	return &medicalLeaveRepository{db: db}
}

// ListByEmployee implements absence.MedicalLeaveRepository.
func (r *medicalLeaveRepository) ListByEmployee(ctx context.Context, employeeCode string) ([]absence.MedicalLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_code, start_date, end_date, status, created_at, updated_at
		FROM medical_leaves
		WHERE employee_code = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical leaves: %w", err)
	}
	defer rows.Close()

	var leaves []absence.MedicalLeave
	for rows.Next() {
		var leave absence.MedicalLeave
		err := rows.Scan(
			&leave.ID, &leave.EmployeeCode, &leave.StartDate, &leave.EndDate,
			&leave.Status, &leave.CreatedAt, &leave.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan medical leave: %w", err)
		}
		leaves = append(leaves, leave)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate medical leaves: %w", err)
	}

	return leaves, nil
}
