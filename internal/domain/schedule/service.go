package schedule

import (
	"context"
	"time"
)

// EmployeeScope identifies whose schedule sources apply: the roster is keyed
// by employee code, the weekly schedule by the employee's center and group.
type EmployeeScope struct {
	EmployeeCode string
	CenterID     string
	GroupCode    string
}

// ScheduleService resolves effective day patterns from the configured sources.
type ScheduleService interface {
	// EffectivePattern resolves the pattern governing date for the employee.
	EffectivePattern(ctx context.Context, scope EmployeeScope, date time.Time) (EffectivePattern, error)

	// TodayPattern resolves today's pattern plus yesterday's, which the
	// attendance gate needs for overnight exit look-back.
	TodayPattern(ctx context.Context, scope EmployeeScope, today time.Time) (pattern, yesterday EffectivePattern, err error)
}
