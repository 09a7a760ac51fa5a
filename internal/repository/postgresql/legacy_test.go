package postgresql

import (
	"testing"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRosterPayload_MonthAliases(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"mes", `{"mes":"2025-07","days":{"15":"T1 08:00-16:00"}}`},
		{"luna", `{"luna":"2025-07","zile":{"ZI_15":"T1 08:00-16:00"}}`},
		{"month", `{"month":"2025-07","days":{"DIA_15":"T1 08:00-16:00"}}`},
		{"periodo", `{"periodo":"07/2025","days":{"15":"T1 08:00-16:00"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := decodeRosterPayload([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, "2025-07", decoded.Month)
			assert.Equal(t, "T1 08:00-16:00", decoded.Days[15])
		})
	}
}

func TestDecodeRosterPayload_InlineDayCells(t *testing.T) {
	payload := `{"mes":"2025-07","ZI_01":"LIBRE","ZI_02":"08:00-16:00"}`

	decoded, err := decodeRosterPayload([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "LIBRE", decoded.Days[1])
	assert.Equal(t, "08:00-16:00", decoded.Days[2])
	// The month value itself must never be read as a day cell.
	assert.NotContains(t, decoded.Days, 7)
}

func TestDecodeRosterPayload_MissingMonth(t *testing.T) {
	_, err := decodeRosterPayload([]byte(`{"days":{"15":"08:00-16:00"}}`))
	assert.Error(t, err)
}

func TestDecodeAbsencePayload_DateAliases(t *testing.T) {
	now := time.Now()

	record, err := decodeAbsencePayload("a1", "1234-5678",
		[]byte(`{"tipo":"Consulta médica","fecha":"2025-07-10","horas_aprobadas":"04:30:00","motivo":"revisión"}`),
		now, now)
	require.NoError(t, err)

	assert.Equal(t, absence.TypeConsultaMedica, record.Type)
	require.NotNil(t, record.Date)
	assert.Equal(t, "2025-07-10", record.Date.Format("2006-01-02"))
	require.NotNil(t, record.ApprovedHours)
	assert.Equal(t, "04:30:00", *record.ApprovedHours)
	assert.Equal(t, "revisión", record.Motive)
}

func TestDecodeAbsencePayload_RangeAndNumericHours(t *testing.T) {
	now := time.Now()

	record, err := decodeAbsencePayload("a2", "1234-5678",
		[]byte(`{"type":"Vacaciones","fecha_inicio":"2025-07-01","fecha_fin":"2025-07-03","dias_aprobados":3}`),
		now, now)
	require.NoError(t, err)
	require.NotNil(t, record.StartDate)
	require.NotNil(t, record.EndDate)
	require.NotNil(t, record.ApprovedDays)
	assert.Equal(t, 3, *record.ApprovedDays)

	// Decimal hours arrive as a bare JSON number on some rows.
	record, err = decodeAbsencePayload("a3", "1234-5678",
		[]byte(`{"tip":"Lactancia","data":"2025-07-04","ore_aprobate":4.5}`),
		now, now)
	require.NoError(t, err)
	assert.Equal(t, absence.TypeLactancia, record.Type)
	require.NotNil(t, record.ApprovedHours)
	assert.Equal(t, "4.5", *record.ApprovedHours)
}

func TestDecodeAbsencePayload_CombinedRangeString(t *testing.T) {
	now := time.Now()

	record, err := decodeAbsencePayload("a4", "1234-5678",
		[]byte(`{"tipo":"Matrimonio","rango":"2025-09-01 - 2025-09-15"}`),
		now, now)
	require.NoError(t, err)
	require.NotNil(t, record.StartDate)
	require.NotNil(t, record.EndDate)
	assert.Equal(t, "2025-09-01", record.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-09-15", record.EndDate.Format("2006-01-02"))
}

func TestDecodeAbsencePayload_SlashDates(t *testing.T) {
	now := time.Now()

	record, err := decodeAbsencePayload("a5", "1234-5678",
		[]byte(`{"tipo":"Mudanza","fecha":"04/07/2025"}`),
		now, now)
	require.NoError(t, err)
	require.NotNil(t, record.Date)
	assert.Equal(t, "2025-07-04", record.Date.Format("2006-01-02"))
}
