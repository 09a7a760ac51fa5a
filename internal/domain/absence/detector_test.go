package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(t time.Time) *time.Time { return &t }

func TestMedicalLeave_ActiveOn(t *testing.T) {
	today := day(2025, time.July, 15)

	open := MedicalLeave{StartDate: day(2025, time.July, 1), Status: "baja"}
	assert.True(t, open.ActiveOn(today), "open-ended leave should be active after start")
	assert.False(t, open.ActiveOn(day(2025, time.June, 30)), "not active before start")

	closed := MedicalLeave{
		StartDate: day(2025, time.July, 1),
		EndDate:   dayPtr(day(2025, time.July, 10)),
		Status:    "baja",
	}
	assert.False(t, closed.ActiveOn(today), "not active after end date")
	assert.True(t, closed.ActiveOn(day(2025, time.July, 10)), "end date is inclusive")
}

func TestMedicalLeave_DischargedIsNeverActive(t *testing.T) {
	leave := MedicalLeave{
		StartDate: day(2025, time.July, 1),
		EndDate:   dayPtr(day(2025, time.July, 31)),
		Status:    LeaveStatusDischarged,
	}
	// Today is inside the span, but the discharge closes the record.
	assert.False(t, leave.ActiveOn(day(2025, time.July, 15)))
}

func TestDetect_MedicalLeaveWinsOverAbsence(t *testing.T) {
	today := day(2025, time.July, 15)
	leaves := []MedicalLeave{{StartDate: day(2025, time.July, 10), Status: "baja"}}
	absences := []Absence{{
		Type:      TypeVacaciones,
		StartDate: dayPtr(day(2025, time.July, 14)),
		EndDate:   dayPtr(day(2025, time.July, 16)),
	}}

	status := Detect(today, leaves, absences)
	require.Equal(t, StatusMedicalLeave, status.Kind)
	assert.Equal(t, "Baja médica", status.TypeName())
	assert.True(t, status.Active())
}

func TestDetect_AbsenceByRangeAndSingleDate(t *testing.T) {
	today := day(2025, time.July, 15)

	ranged := []Absence{{
		Type:      TypeVacaciones,
		StartDate: dayPtr(day(2025, time.July, 14)),
		EndDate:   dayPtr(day(2025, time.July, 16)),
	}}
	status := Detect(today, nil, ranged)
	require.Equal(t, StatusAbsence, status.Kind)
	assert.Equal(t, string(TypeVacaciones), status.TypeName())

	single := []Absence{{Type: TypeConsultaMedica, Date: dayPtr(today)}}
	status = Detect(today, nil, single)
	require.Equal(t, StatusAbsence, status.Kind)

	// Time-of-day on the stored dates must not matter.
	noon := time.Date(2025, time.July, 15, 12, 30, 0, 0, time.UTC)
	status = Detect(noon, nil, ranged)
	assert.Equal(t, StatusAbsence, status.Kind)
}

func TestDetect_None(t *testing.T) {
	today := day(2025, time.July, 15)
	absences := []Absence{{Type: TypeVacaciones, Date: dayPtr(day(2025, time.July, 20))}}

	status := Detect(today, nil, absences)
	assert.Equal(t, StatusNone, status.Kind)
	assert.False(t, status.Active())
	assert.Empty(t, status.TypeName())
}
