package schedule

import "context"

// WeeklyScheduleRepository loads the recurring schedule configuration for a
// work center and group. A nil result with nil error means no assignment.
type WeeklyScheduleRepository interface {
	GetByCenterAndGroup(ctx context.Context, centerID, groupCode string) (*WeeklySchedule, error)
}

// ShiftRosterRepository loads the month roster for an employee. A nil result
// with nil error means the employee has no roster for that month.
type ShiftRosterRepository interface {
	GetByEmployeeAndMonth(ctx context.Context, employeeCode, month string) (*ShiftRoster, error)
}
