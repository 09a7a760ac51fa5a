package attendance

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/attendance"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/clock"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/database"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/geocoder"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/jwt"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/validator"
)

const (
	// Bounded poll for the store-computed elapsed duration on an Exit.
	elapsedPollInterval = 1200 * time.Millisecond
	elapsedPollTimeout  = 30 * time.Second
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.EventRepository
	absence.AbsenceRepository
	absence.MedicalLeaveRepository
	scheduleService schedule.ScheduleService
	clock           clock.Source
	geocoder        geocoder.Geocoder

	// One outstanding elapsed poll per employee; a new clock action
	// cancels the previous one.
	pollMu sync.Mutex
	polls  map[string]*pollHandle
}

type pollHandle struct {
	cancel context.CancelFunc
}

func NewAttendanceService(
	db *database.DB,
	eventRepo attendance.EventRepository,
	absenceRepo absence.AbsenceRepository,
	leaveRepo absence.MedicalLeaveRepository,
	scheduleService schedule.ScheduleService,
	clockSource clock.Source,
	geo geocoder.Geocoder,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                     db,
		EventRepository:        eventRepo,
		AbsenceRepository:      absenceRepo,
		MedicalLeaveRepository: leaveRepo,
		scheduleService:        scheduleService,
		clock:                  clockSource,
		geocoder:               geo,
		polls:                  make(map[string]*pollHandle),
	}
}

// snapshot is the immutable view of the employee's day that every gate
// decision is computed from. Validation never re-reads the store mid-check.
type snapshot struct {
	identity  jwt.Identity
	today     time.Time
	now       int // minute of day
	timestamp time.Time
	gate      attendance.Gate
}

func (s *AttendanceServiceImpl) buildSnapshot(ctx context.Context) (snapshot, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return snapshot{}, err
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	minute := now.Hour()*60 + now.Minute()

	scope := schedule.EmployeeScope{
		EmployeeCode: identity.EmployeeCode,
		CenterID:     identity.CenterID,
		GroupCode:    identity.GroupCode,
	}
	pattern, yesterday, err := s.scheduleService.TodayPattern(ctx, scope, today)
	if err != nil {
		return snapshot{}, err
	}

	leaves, err := s.MedicalLeaveRepository.ListByEmployee(ctx, identity.EmployeeCode)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to load medical leaves: %w", err)
	}

	absences, err := s.AbsenceRepository.ListByYear(ctx, identity.EmployeeCode, today.Year())
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to load absences: %w", err)
	}

	events, err := s.recentEvents(ctx, identity.EmployeeCode, today)
	if err != nil {
		return snapshot{}, err
	}

	return snapshot{
		identity:  identity,
		today:     today,
		now:       minute,
		timestamp: now,
		gate: attendance.Gate{
			Today:     today,
			Now:       minute,
			Pattern:   pattern,
			Yesterday: yesterday,
			Status:    absence.Detect(today, leaves, absences),
			Events:    events,
		},
	}, nil
}

// recentEvents loads this month's events, reaching into the previous month
// when yesterday belongs to it, so the overnight look-back and the duplicate
// check see the full picture.
func (s *AttendanceServiceImpl) recentEvents(ctx context.Context, employeeCode string, today time.Time) ([]attendance.Event, error) {
	events, err := s.EventRepository.ListByMonth(ctx, employeeCode, schedule.MonthKey(today))
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance events: %w", err)
	}

	yesterday := today.AddDate(0, 0, -1)
	if schedule.MonthKey(yesterday) != schedule.MonthKey(today) {
		previous, err := s.EventRepository.ListByMonth(ctx, employeeCode, schedule.MonthKey(yesterday))
		if err != nil {
			return nil, fmt.Errorf("failed to load attendance events: %w", err)
		}
		events = append(events, previous...)
	}

	return events, nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context) (attendance.TodayStatusResponse, error) {
	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return attendance.TodayStatusResponse{}, err
	}

	response := attendance.TodayStatusResponse{
		Date:    snap.today.Format("2006-01-02"),
		State:   string(attendance.DeriveState(snap.gate.Events, snap.today)),
		Pattern: string(snap.gate.Pattern.Kind),
	}

	for _, iv := range snap.gate.Pattern.Intervals {
		response.Intervals = append(response.Intervals, attendance.IntervalDTO{
			Start: iv.StartLabel,
			End:   iv.EndLabel,
		})
	}

	if entryErr := snap.gate.CanRegister(attendance.EventEntry); entryErr != nil {
		reason := entryErr.Error()
		response.EntryBlocked = &reason

		var windowErr *attendance.WindowError
		if errors.As(entryErr, &windowErr) && windowErr.NextAt != "" {
			response.NextEntryAt = &windowErr.NextAt
		}
	} else {
		response.EntryAllowed = true
	}

	if exitErr := snap.gate.CanRegister(attendance.EventExit); exitErr != nil {
		reason := exitErr.Error()
		response.ExitBlocked = &reason
	} else {
		response.ExitAllowed = true
	}

	if snap.gate.Status.Active() {
		name := snap.gate.Status.TypeName()
		response.AbsenceActive = &name
	}

	if response.NextEntryAt == nil {
		if next := snap.gate.NextWindow(); next != nil {
			response.NextEntryAt = &next.StartLabel
		}
	}

	if last := attendance.LatestEvent(snap.gate.Events); last != nil && last.SameDay(snap.today) {
		lastResponse := toEventResponse(*last)
		response.LastEvent = &lastResponse
	}

	return response, nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	s.cancelPoll(snap.identity.EmployeeCode)

	if err := snap.gate.CanRegister(attendance.EventEntry); err != nil {
		return attendance.EventResponse{}, err
	}

	event, err := s.createEvent(ctx, snap, attendance.EventEntry, req, false)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return toEventResponse(event), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	s.cancelPoll(snap.identity.EmployeeCode)

	if err := snap.gate.CanRegister(attendance.EventExit); err != nil {
		return attendance.EventResponse{}, err
	}

	event, err := s.createEvent(ctx, snap, attendance.EventExit, req, false)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	event = s.awaitElapsed(ctx, snap.identity.EmployeeCode, event)
	return toEventResponse(event), nil
}

// UnplannedExit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UnplannedExit(ctx context.Context, req attendance.ClockRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	s.cancelPoll(snap.identity.EmployeeCode)

	if err := snap.gate.CanUnplannedExit(); err != nil {
		return attendance.EventResponse{}, err
	}

	event, err := s.createEvent(ctx, snap, attendance.EventExit, req, true)
	if err != nil {
		return attendance.EventResponse{}, err
	}

	event = s.awaitElapsed(ctx, snap.identity.EmployeeCode, event)
	return toEventResponse(event), nil
}

// RegisterIncident implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RegisterIncident(ctx context.Context, req attendance.IncidentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	snap, err := s.buildSnapshot(ctx)
	if err != nil {
		return err
	}

	if err := snap.gate.CanRegisterIncident(); err != nil {
		return err
	}

	date, _ := validator.IsValidDate(req.Date)
	record := absence.Absence{
		ID:           uuid.New().String(),
		EmployeeCode: snap.identity.EmployeeCode,
		Type:         absence.Type(req.Type),
		Date:         &date,
		Motive:       req.Motive,
	}

	if _, err := s.AbsenceRepository.Create(ctx, record); err != nil {
		return fmt.Errorf("failed to register incident: %w", err)
	}

	return nil
}

// ListMyEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMyEvents(ctx context.Context, month string) (attendance.ListEventsResponse, error) {
	if !validator.IsValidMonthKey(month) {
		return attendance.ListEventsResponse{}, schedule.ErrInvalidMonthKey
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.ListEventsResponse{}, err
	}

	events, err := s.EventRepository.ListByMonth(ctx, identity.EmployeeCode, month)
	if err != nil {
		return attendance.ListEventsResponse{}, fmt.Errorf("failed to list attendance events: %w", err)
	}

	total := attendance.SumElapsed(events)

	response := attendance.ListEventsResponse{
		Month:        month,
		Events:       make([]attendance.EventResponse, 0, len(events)),
		WorkedTotal:  total.Formatted(),
		PendingExits: total.Pending,
	}
	for _, event := range events {
		response.Events = append(response.Events, toEventResponse(event))
	}

	return response, nil
}

func (s *AttendanceServiceImpl) createEvent(ctx context.Context, snap snapshot, typ attendance.EventType, req attendance.ClockRequest, unplanned bool) (attendance.Event, error) {
	event := attendance.Event{
		ID:           uuid.New().String(),
		EmployeeCode: snap.identity.EmployeeCode,
		Type:         typ,
		Date:         snap.today,
		Time:         snap.timestamp.Format("15:04:05"),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Unplanned:    unplanned,
	}

	// Best effort: a failed reverse geocode never blocks the clock action.
	if req.Latitude != nil && req.Longitude != nil && s.geocoder != nil {
		if name, err := s.geocoder.ReverseGeocode(ctx, *req.Latitude, *req.Longitude); err == nil && name != "" {
			event.Location = &name
		}
	}

	created, err := s.EventRepository.Create(ctx, event)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return created, nil
}

// awaitElapsed polls the store until the exit row carries its computed
// elapsed duration, the timeout expires, or a newer clock action cancels the
// wait. On timeout the event is returned as is and renders as pending.
func (s *AttendanceServiceImpl) awaitElapsed(ctx context.Context, employeeCode string, event attendance.Event) attendance.Event {
	pollCtx, cancel := context.WithTimeout(ctx, elapsedPollTimeout)
	defer cancel()
	handle := s.registerPoll(employeeCode, cancel)
	defer s.clearPoll(employeeCode, handle)

	ticker := time.NewTicker(elapsedPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-pollCtx.Done():
			return event
		case <-ticker.C:
			refreshed, err := s.EventRepository.GetByID(pollCtx, event.ID)
			if err != nil {
				continue
			}
			if refreshed.HasElapsed() {
				return refreshed
			}
		}
	}
}

func (s *AttendanceServiceImpl) registerPoll(employeeCode string, cancel context.CancelFunc) *pollHandle {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if previous, ok := s.polls[employeeCode]; ok {
		previous.cancel()
	}
	handle := &pollHandle{cancel: cancel}
	s.polls[employeeCode] = handle
	return handle
}

func (s *AttendanceServiceImpl) cancelPoll(employeeCode string) {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	if handle, ok := s.polls[employeeCode]; ok {
		handle.cancel()
		delete(s.polls, employeeCode)
	}
}

func (s *AttendanceServiceImpl) clearPoll(employeeCode string, handle *pollHandle) {
	s.pollMu.Lock()
	defer s.pollMu.Unlock()
	// Only clear our own registration; a newer action may have replaced it.
	if current, ok := s.polls[employeeCode]; ok && current == handle {
		delete(s.polls, employeeCode)
	}
}

func toEventResponse(event attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:             event.ID,
		EmployeeCode:   event.EmployeeCode,
		Type:           string(event.Type),
		Date:           event.Date.Format("2006-01-02"),
		Time:           event.Time,
		Location:       event.Location,
		Latitude:       event.Latitude,
		Longitude:      event.Longitude,
		Elapsed:        event.Elapsed,
		ElapsedPending: event.Type == attendance.EventExit && !event.HasElapsed(),
		Unplanned:      event.Unplanned,
	}
}
