package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
)

type ScheduleServiceImpl struct {
	db *database.DB
	schedule.WeeklyScheduleRepository
	schedule.ShiftRosterRepository
}

func NewScheduleService(db *database.DB, weeklyRepo schedule.WeeklyScheduleRepository, rosterRepo schedule.ShiftRosterRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:                       db,
		WeeklyScheduleRepository: weeklyRepo,
		ShiftRosterRepository:    rosterRepo,
	}
}

// EffectivePattern implements schedule.ScheduleService. A missing roster or
// weekly schedule is not an error: resolution falls through to the next
// source and ends at unconstrained.
func (s *ScheduleServiceImpl) EffectivePattern(ctx context.Context, scope schedule.EmployeeScope, date time.Time) (schedule.EffectivePattern, error) {
	roster, err := s.ShiftRosterRepository.GetByEmployeeAndMonth(ctx, scope.EmployeeCode, schedule.MonthKey(date))
	if err != nil {
		return schedule.EffectivePattern{}, fmt.Errorf("failed to load shift roster: %w", err)
	}

	weekly, err := s.WeeklyScheduleRepository.GetByCenterAndGroup(ctx, scope.CenterID, scope.GroupCode)
	if err != nil {
		return schedule.EffectivePattern{}, fmt.Errorf("failed to load weekly schedule: %w", err)
	}

	return schedule.Resolve(date, roster, weekly), nil
}

// TodayPattern implements schedule.ScheduleService. Yesterday may fall in the
// previous roster month, so both days resolve independently.
func (s *ScheduleServiceImpl) TodayPattern(ctx context.Context, scope schedule.EmployeeScope, today time.Time) (pattern, yesterday schedule.EffectivePattern, err error) {
	pattern, err = s.EffectivePattern(ctx, scope, today)
	if err != nil {
		return schedule.EffectivePattern{}, schedule.EffectivePattern{}, err
	}

	yesterday, err = s.EffectivePattern(ctx, scope, today.AddDate(0, 0, -1))
	if err != nil {
		return schedule.EffectivePattern{}, schedule.EffectivePattern{}, err
	}

	return pattern, yesterday, nil
}
