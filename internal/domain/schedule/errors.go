package schedule

import "errors"

// Schedule domain errors
var (
	ErrWeeklyScheduleNotFound = errors.New("weekly schedule not found")
	ErrRosterNotFound         = errors.New("shift roster not found")
	ErrInvalidMonthKey        = errors.New("invalid roster month key, expected YYYY-MM")
)
