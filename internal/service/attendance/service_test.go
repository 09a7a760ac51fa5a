package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/attendance"
	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/schedule"
	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/cron"
	scheduleService "github.com/nivelia-hr/fichaje-backend-go/internal/service/schedule"
)

const testEmployee = "1234-5678"

// ---- fakes ----

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type fakeEventRepo struct {
	mu     sync.Mutex
	events []attendance.Event
}

func (r *fakeEventRepo) Create(_ context.Context, event attendance.Event) (attendance.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.CreatedAt = time.Now()
	event.UpdatedAt = event.CreatedAt
	r.events = append(r.events, event)
	return event, nil
}

func (r *fakeEventRepo) ListByMonth(_ context.Context, employeeCode, month string) ([]attendance.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []attendance.Event
	for _, e := range r.events {
		if e.EmployeeCode == employeeCode && e.Date.Format("2006-01") == month {
			result = append(result, e)
		}
	}
	return result, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id string) (attendance.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ID == id {
			return e, nil
		}
	}
	return attendance.Event{}, attendance.ErrEventNotFound
}

func (r *fakeEventRepo) ListExitsWithoutElapsed(_ context.Context, limit int) ([]attendance.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []attendance.Event
	for _, e := range r.events {
		if e.Type == attendance.EventExit && !e.HasElapsed() {
			result = append(result, e)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *fakeEventRepo) SetElapsed(_ context.Context, id string, elapsed string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.events {
		if r.events[i].ID == id {
			r.events[i].Elapsed = &elapsed
			return nil
		}
	}
	return attendance.ErrEventNotFound
}

func (r *fakeEventRepo) GetEntryForExit(_ context.Context, exit attendance.Event) (*attendance.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var best *attendance.Event
	for i := range r.events {
		e := r.events[i]
		if e.Type != attendance.EventEntry || e.EmployeeCode != exit.EmployeeCode || !e.SameDay(exit.Date) {
			continue
		}
		if e.Time <= exit.Time && (best == nil || e.Time > best.Time) {
			best = &r.events[i]
		}
	}
	if best == nil {
		return nil, nil
	}
	found := *best
	return &found, nil
}

type fakeAbsenceRepo struct {
	records []absence.Absence
}

func (r *fakeAbsenceRepo) ListByYear(_ context.Context, employeeCode string, year int) ([]absence.Absence, error) {
	var result []absence.Absence
	for _, rec := range r.records {
		if rec.EmployeeCode == employeeCode {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (r *fakeAbsenceRepo) Create(_ context.Context, record absence.Absence) (absence.Absence, error) {
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records = append(r.records, record)
	return record, nil
}

type fakeLeaveRepo struct {
	leaves []absence.MedicalLeave
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeCode string) ([]absence.MedicalLeave, error) {
	return r.leaves, nil
}

type fakeWeeklyRepo struct {
	weekly *schedule.WeeklySchedule
}

func (r *fakeWeeklyRepo) GetByCenterAndGroup(_ context.Context, centerID, groupCode string) (*schedule.WeeklySchedule, error) {
	return r.weekly, nil
}

type fakeRosterRepo struct {
	rosters map[string]*schedule.ShiftRoster
}

func (r *fakeRosterRepo) GetByEmployeeAndMonth(_ context.Context, employeeCode, month string) (*schedule.ShiftRoster, error) {
	return r.rosters[month], nil
}

// ---- helpers ----

func authedContext(t *testing.T) context.Context {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":       "u1",
		"employee_code": testEmployee,
		"center_id":     "centro-01",
		"group_code":    "grupo-a",
		"role":          "employee",
		"type":          "access",
	})
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

type testEnv struct {
	service   attendance.AttendanceService
	eventRepo *fakeEventRepo
	absences  *fakeAbsenceRepo
	leaves    *fakeLeaveRepo
}

// newTestEnv wires the service against a July 2025 roster: day 15 is a
// T1 08:00-16:00 shift, day 16 is LIBRE.
func newTestEnv(t *testing.T, now time.Time) testEnv {
	t.Helper()

	roster := &schedule.ShiftRoster{
		ID:           "r1",
		EmployeeCode: testEmployee,
		Month:        "2025-07",
		Days: map[int]string{
			15: "T1 08:00-16:00",
			16: schedule.DayOff,
		},
	}

	eventRepo := &fakeEventRepo{}
	absenceRepo := &fakeAbsenceRepo{}
	leaveRepo := &fakeLeaveRepo{}

	schedSvc := scheduleService.NewScheduleService(nil,
		&fakeWeeklyRepo{},
		&fakeRosterRepo{rosters: map[string]*schedule.ShiftRoster{"2025-07": roster}},
	)

	svc := NewAttendanceService(nil, eventRepo, absenceRepo, leaveRepo, schedSvc, fixedClock{t: now}, nil)

	return testEnv{service: svc, eventRepo: eventRepo, absences: absenceRepo, leaves: leaveRepo}
}

func day(d, hour, minute int) time.Time {
	return time.Date(2025, time.July, d, hour, minute, 0, 0, time.UTC)
}

// runDurationJob keeps running the registered cron jobs in the background
// so a ClockOut poll finds its elapsed value regardless of timing.
func runDurationJob(repo *fakeEventRepo) {
	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(repo).RegisterJobs(scheduler)
	go func() {
		for i := 0; i < 50; i++ {
			scheduler.RunOnce(context.Background())
			time.Sleep(100 * time.Millisecond)
		}
	}()
}

// ---- tests ----

func TestClockIn_WithinGraceMargin(t *testing.T) {
	env := newTestEnv(t, day(15, 7, 55))

	event, err := env.service.ClockIn(authedContext(t), attendance.ClockRequest{})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.EventEntry), event.Type)
	assert.Equal(t, "2025-07-15", event.Date)
	assert.Equal(t, "07:55:00", event.Time)
	assert.Len(t, env.eventRepo.events, 1)
}

func TestClockIn_TooEarly(t *testing.T) {
	env := newTestEnv(t, day(15, 7, 30))

	_, err := env.service.ClockIn(authedContext(t), attendance.ClockRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, attendance.ErrWindowViolation)

	var windowErr *attendance.WindowError
	require.ErrorAs(t, err, &windowErr)
	assert.Equal(t, "08:00", windowErr.NextAt)
}

func TestClockIn_DuplicateEntry(t *testing.T) {
	env := newTestEnv(t, day(15, 8, 30))
	ctx := authedContext(t)

	_, err := env.service.ClockIn(ctx, attendance.ClockRequest{})
	require.NoError(t, err)

	_, err = env.service.ClockIn(ctx, attendance.ClockRequest{})
	assert.ErrorIs(t, err, attendance.ErrDuplicateEvent)
}

func TestClockIn_BlockedByMedicalLeave(t *testing.T) {
	env := newTestEnv(t, day(15, 8, 0))
	start := day(10, 0, 0)
	env.leaves.leaves = []absence.MedicalLeave{{
		ID:           "l1",
		EmployeeCode: testEmployee,
		StartDate:    start,
		Status:       "activa",
	}}

	_, err := env.service.ClockIn(authedContext(t), attendance.ClockRequest{})
	assert.ErrorIs(t, err, attendance.ErrAbsenceActive)
}

func TestClockIn_DayOff(t *testing.T) {
	env := newTestEnv(t, day(16, 8, 0))

	_, err := env.service.ClockIn(authedContext(t), attendance.ClockRequest{})
	assert.ErrorIs(t, err, attendance.ErrDayBlocked)
}

func TestClockOut_PollsForStoreComputedDuration(t *testing.T) {
	env := newTestEnv(t, day(15, 16, 0))
	ctx := authedContext(t)

	_, err := env.eventRepo.Create(ctx, attendance.Event{
		ID:           "e1",
		EmployeeCode: testEmployee,
		Type:         attendance.EventEntry,
		Date:         day(15, 0, 0),
		Time:         "08:00:00",
	})
	require.NoError(t, err)

	// The duration job fills the elapsed column while the service polls.
	runDurationJob(env.eventRepo)

	event, err := env.service.ClockOut(ctx, attendance.ClockRequest{})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.EventExit), event.Type)
	assert.False(t, event.ElapsedPending)
	require.NotNil(t, event.Elapsed)
	assert.Equal(t, "08:00:00", *event.Elapsed)
}

func TestUnplannedExit_RequiresOpenSession(t *testing.T) {
	env := newTestEnv(t, day(15, 12, 0))

	_, err := env.service.UnplannedExit(authedContext(t), attendance.ClockRequest{})
	assert.True(t,
		errors.Is(err, attendance.ErrNotClockedIn),
		"expected ErrNotClockedIn, got %v", err)
}

func TestUnplannedExit_BypassesWindow(t *testing.T) {
	// 12:00 is inside the shift but far from the 16:00 exit boundary.
	env := newTestEnv(t, day(15, 12, 0))
	ctx := authedContext(t)

	_, err := env.eventRepo.Create(ctx, attendance.Event{
		ID:           "e1",
		EmployeeCode: testEmployee,
		Type:         attendance.EventEntry,
		Date:         day(15, 0, 0),
		Time:         "08:00:00",
	})
	require.NoError(t, err)

	// A regular exit is still rejected at this time.
	_, err = env.service.ClockOut(ctx, attendance.ClockRequest{})
	require.ErrorIs(t, err, attendance.ErrWindowViolation)

	// The incident bypass goes through, marked as unplanned.
	runDurationJob(env.eventRepo)
	event, err := env.service.UnplannedExit(ctx, attendance.ClockRequest{})
	require.NoError(t, err)
	assert.True(t, event.Unplanned)
}

func TestRegisterIncident_RequiresCompletedCycle(t *testing.T) {
	env := newTestEnv(t, day(15, 16, 5))
	ctx := authedContext(t)

	req := attendance.IncidentRequest{
		Type:   string(absence.TypeConsultaMedica),
		Date:   "2025-07-15",
		Motive: "visita al médico",
	}
	err := env.service.RegisterIncident(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrCycleNotComplete)

	elapsed := "07:00:00"
	_, err = env.eventRepo.Create(ctx, attendance.Event{
		ID: "e1", EmployeeCode: testEmployee, Type: attendance.EventEntry,
		Date: day(15, 0, 0), Time: "08:00:00",
	})
	require.NoError(t, err)
	_, err = env.eventRepo.Create(ctx, attendance.Event{
		ID: "e2", EmployeeCode: testEmployee, Type: attendance.EventExit,
		Date: day(15, 0, 0), Time: "15:00:00", Elapsed: &elapsed, Unplanned: true,
	})
	require.NoError(t, err)

	require.NoError(t, env.service.RegisterIncident(ctx, req))
	require.Len(t, env.absences.records, 1)
	assert.Equal(t, absence.TypeConsultaMedica, env.absences.records[0].Type)
}

func TestTodayStatus_OpenSession(t *testing.T) {
	env := newTestEnv(t, day(15, 8, 30))
	ctx := authedContext(t)

	_, err := env.service.ClockIn(ctx, attendance.ClockRequest{})
	require.NoError(t, err)

	status, err := env.service.TodayStatus(ctx)
	require.NoError(t, err)

	assert.Equal(t, string(attendance.StateOpen), status.State)
	assert.False(t, status.EntryAllowed)
	assert.False(t, status.ExitAllowed)
	require.NotNil(t, status.LastEvent)
	assert.Equal(t, string(attendance.EventEntry), status.LastEvent.Type)
	require.Len(t, status.Intervals, 1)
	assert.Equal(t, "08:00", status.Intervals[0].Start)
}

func TestListMyEvents_SumsElapsed(t *testing.T) {
	env := newTestEnv(t, day(15, 16, 0))
	ctx := authedContext(t)

	elapsed := "08:00:00"
	seed := []attendance.Event{
		{ID: "e1", EmployeeCode: testEmployee, Type: attendance.EventEntry, Date: day(14, 0, 0), Time: "08:00:00"},
		{ID: "e2", EmployeeCode: testEmployee, Type: attendance.EventExit, Date: day(14, 0, 0), Time: "16:00:00", Elapsed: &elapsed},
		{ID: "e3", EmployeeCode: testEmployee, Type: attendance.EventEntry, Date: day(15, 0, 0), Time: "08:00:00"},
		{ID: "e4", EmployeeCode: testEmployee, Type: attendance.EventExit, Date: day(15, 0, 0), Time: "16:00:00"},
	}
	for _, e := range seed {
		_, err := env.eventRepo.Create(ctx, e)
		require.NoError(t, err)
	}

	list, err := env.service.ListMyEvents(ctx, "2025-07")
	require.NoError(t, err)

	assert.Equal(t, "08:00:00", list.WorkedTotal)
	assert.Equal(t, 1, list.PendingExits)
	assert.Len(t, list.Events, 4)

	_, err = env.service.ListMyEvents(ctx, "2025/07")
	assert.ErrorIs(t, err, schedule.ErrInvalidMonthKey)
}
