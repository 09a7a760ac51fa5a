package absence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestAggregate_DayBasedRange(t *testing.T) {
	records := []Absence{{
		Type:      TypeVacaciones,
		StartDate: dayPtr(day(2025, time.July, 1)),
		EndDate:   dayPtr(day(2025, time.July, 3)),
	}}

	totals := Aggregate(records)
	require.Contains(t, totals, TypeVacaciones)
	assert.Equal(t, 3, totals[TypeVacaciones].Days)
	assert.Equal(t, time.Duration(0), totals[TypeVacaciones].Hours)
}

func TestAggregate_ApprovedDaysWinOverRange(t *testing.T) {
	records := []Absence{{
		Type:         TypeAsuntosPropios,
		StartDate:    dayPtr(day(2025, time.March, 1)),
		EndDate:      dayPtr(day(2025, time.March, 10)),
		ApprovedDays: intPtr(5),
	}}

	totals := Aggregate(records)
	assert.Equal(t, 5, totals[TypeAsuntosPropios].Days)
}

func TestAggregate_SingleDateCountsOneDay(t *testing.T) {
	records := []Absence{{Type: TypeMudanza, Date: dayPtr(day(2025, time.May, 2))}}
	assert.Equal(t, 1, Aggregate(records)[TypeMudanza].Days)
}

func TestAggregate_HourBasedDecimal(t *testing.T) {
	records := []Absence{{Type: TypeConsultaMedica, ApprovedHours: strPtr("4.5")}}

	totals := Aggregate(records)
	assert.Equal(t, "04:30:00", totals[TypeConsultaMedica].HoursFormatted())
	assert.Equal(t, 0, totals[TypeConsultaMedica].Days)
}

func TestAggregate_HourBasedColonFormatPreferred(t *testing.T) {
	records := []Absence{{Type: TypeHorasSindicales, ApprovedHours: strPtr("02:15:00")}}

	totals := Aggregate(records)
	assert.Equal(t, 2*time.Hour+15*time.Minute, totals[TypeHorasSindicales].Hours)
}

func TestAggregate_TypesKeptSeparate(t *testing.T) {
	records := []Absence{
		{Type: TypeVacaciones, StartDate: dayPtr(day(2025, time.July, 1)), EndDate: dayPtr(day(2025, time.July, 3))},
		{Type: TypeVacaciones, Date: dayPtr(day(2025, time.August, 1))},
		{Type: TypeConsultaMedica, ApprovedHours: strPtr("1.5")},
		{Type: TypeConsultaMedica, ApprovedHours: strPtr("01:00:00")},
	}

	totals := Aggregate(records)
	assert.Equal(t, 4, totals[TypeVacaciones].Days)
	assert.Equal(t, "02:30:00", totals[TypeConsultaMedica].HoursFormatted())
}

func TestAggregate_CommaDecimalSeparator(t *testing.T) {
	records := []Absence{{Type: TypeLactancia, ApprovedHours: strPtr("1,5")}}
	assert.Equal(t, "01:30:00", Aggregate(records)[TypeLactancia].HoursFormatted())
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 3, InclusiveDays(day(2025, time.July, 1), day(2025, time.July, 3)))
	assert.Equal(t, 1, InclusiveDays(day(2025, time.July, 1), day(2025, time.July, 1)))
	assert.Equal(t, 0, InclusiveDays(day(2025, time.July, 3), day(2025, time.July, 1)))
	// Month boundary
	assert.Equal(t, 2, InclusiveDays(day(2025, time.July, 31), day(2025, time.August, 1)))
}
