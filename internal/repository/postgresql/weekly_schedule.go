package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
)

type weeklyScheduleRepository struct {
	db *database.DB
}

func NewWeeklyScheduleRepository(db *database.DB) schedule.WeeklyScheduleRepository {
	return &weeklyScheduleRepository{db: db}
}

// GetByCenterAndGroup implements schedule.WeeklyScheduleRepository. The
// schedule is stored as one row per weekday with three in/out column pairs;
// day_of_week follows ISO numbering (1=Monday .. 7=Sunday).
func (r *weeklyScheduleRepository) GetByCenterAndGroup(ctx context.Context, centerID, groupCode string) (*schedule.WeeklySchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, center_id, group_code, day_of_week,
			   in_1, out_1, in_2, out_2, in_3, out_3,
			   created_at, updated_at
		FROM weekly_schedules
		WHERE center_id = $1
		  AND group_code = $2
		ORDER BY day_of_week ASC
	`

	rows, err := q.Query(ctx, query, centerID, groupCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly schedule: %w", err)
	}
	defer rows.Close()

	var result *schedule.WeeklySchedule
	for rows.Next() {
		var (
			id, rowCenterID, rowGroupCode string
			dayOfWeek                     int
			pairs                         [3]schedule.TimePair
			createdAt, updatedAt          time.Time
		)
		err := rows.Scan(
			&id, &rowCenterID, &rowGroupCode, &dayOfWeek,
			&pairs[0].In, &pairs[0].Out,
			&pairs[1].In, &pairs[1].Out,
			&pairs[2].In, &pairs[2].Out,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule row: %w", err)
		}

		if result == nil {
			result = &schedule.WeeklySchedule{
				ID:        id,
				CenterID:  rowCenterID,
				GroupCode: rowGroupCode,
				Days:      make(map[time.Weekday]schedule.DaySchedule),
				CreatedAt: createdAt,
				UpdatedAt: updatedAt,
			}
		}

		if dayOfWeek < 1 || dayOfWeek > 7 {
			continue
		}
		weekday := time.Weekday(dayOfWeek % 7)
		result.Days[weekday] = schedule.DaySchedule{Pairs: pairs[:]}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weekly schedule rows: %w", err)
	}

	return result, nil
}
