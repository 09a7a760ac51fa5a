package postgresql

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/domain/absence"
)

// Roster and absence rows are synced verbatim from the legacy system, whose
// JSONB payloads never settled on one field name per concept. All alias
// probing lives in this file; everything above the repository layer works on
// canonical entities only.
//
// The alias lists are frozen: new upstream shapes get a sync-time migration,
// not another alias here.

var (
	monthAliases        = []string{"month", "mes", "luna", "periodo"}
	daysAliases         = []string{"days", "dias", "zile"}
	typeAliases         = []string{"type", "tipo", "tip"}
	dateAliases         = []string{"date", "fecha", "data"}
	startDateAliases    = []string{"start_date", "fecha_inicio", "data_inceput", "inicio"}
	endDateAliases      = []string{"end_date", "fecha_fin", "data_sfarsit", "fin"}
	rangeAliases        = []string{"range", "rango", "fechas"}
	approvedDayAliases  = []string{"approved_days", "dias_aprobados", "zile_aprobate"}
	approvedHourAliases = []string{"approved_hours", "horas_aprobadas", "ore_aprobate"}
	motiveAliases       = []string{"motive", "motivo", "motiv", "reason"}
	locationAliases     = []string{"location", "ubicacion", "locatie"}
)

// Day keys arrive as "ZI_15", "DIA_15", "D15" or plain "15".
var dayKeyPattern = regexp.MustCompile(`(\d{1,2})$`)

var legacyDateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2006-01-02T15:04:05Z07:00",
}

// rosterPayload is the decoded legacy roster row: the month it covers and the
// raw cell per day-of-month.
type rosterPayload struct {
	Month string
	Days  map[int]string
}

func decodeRosterPayload(raw []byte) (rosterPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rosterPayload{}, fmt.Errorf("failed to decode roster payload: %w", err)
	}

	payload := rosterPayload{Days: make(map[int]string)}

	month, ok := probeString(fields, monthAliases)
	if !ok {
		return rosterPayload{}, fmt.Errorf("roster payload has no month field")
	}
	payload.Month = normalizeMonth(month)

	cells := make(map[string]string)
	if rawDays, ok := probeRaw(fields, daysAliases); ok {
		if err := json.Unmarshal(rawDays, &cells); err != nil {
			return rosterPayload{}, fmt.Errorf("failed to decode roster days: %w", err)
		}
	} else {
		// Some rows inline the day cells at the top level next to the
		// month field.
		for key, value := range fields {
			if isAlias(key, monthAliases) {
				continue
			}
			var cell string
			if err := json.Unmarshal(value, &cell); err == nil {
				cells[key] = cell
			}
		}
	}

	for key, value := range cells {
		match := dayKeyPattern.FindStringSubmatch(key)
		if match == nil {
			continue
		}
		day, err := strconv.Atoi(match[1])
		if err != nil || day < 1 || day > 31 {
			continue
		}
		payload.Days[day] = value
	}

	return payload, nil
}

// decodeAbsencePayload maps a legacy absence row onto the canonical entity.
// Row identity and timestamps come from columns; everything else from the
// payload.
func decodeAbsencePayload(id, employeeCode string, raw []byte, createdAt, updatedAt time.Time) (absence.Absence, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return absence.Absence{}, fmt.Errorf("failed to decode absence payload: %w", err)
	}

	record := absence.Absence{
		ID:           id,
		EmployeeCode: employeeCode,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}

	if typeName, ok := probeString(fields, typeAliases); ok {
		record.Type = absence.Type(strings.TrimSpace(typeName))
	}
	if motive, ok := probeString(fields, motiveAliases); ok {
		record.Motive = motive
	}
	if location, ok := probeString(fields, locationAliases); ok && location != "" {
		record.Location = &location
	}

	if date, ok := probeDate(fields, dateAliases); ok {
		record.Date = &date
	}
	if start, ok := probeDate(fields, startDateAliases); ok {
		record.StartDate = &start
	}
	if end, ok := probeDate(fields, endDateAliases); ok {
		record.EndDate = &end
	}

	// Older rows collapse the range into one "start - end" string.
	if record.StartDate == nil && record.EndDate == nil {
		if combined, ok := probeString(fields, rangeAliases); ok {
			if start, end, ok := splitDateRange(combined); ok {
				record.StartDate = &start
				record.EndDate = &end
			}
		}
	}

	if days, ok := probeInt(fields, approvedDayAliases); ok {
		record.ApprovedDays = &days
	}
	if hours, ok := probeString(fields, approvedHourAliases); ok && hours != "" {
		record.ApprovedHours = &hours
	}

	return record, nil
}

func isAlias(key string, aliases []string) bool {
	for _, alias := range aliases {
		if key == alias {
			return true
		}
	}
	return false
}

func probeRaw(fields map[string]json.RawMessage, aliases []string) (json.RawMessage, bool) {
	for _, alias := range aliases {
		if raw, ok := fields[alias]; ok {
			return raw, true
		}
	}
	return nil, false
}

func probeString(fields map[string]json.RawMessage, aliases []string) (string, bool) {
	raw, ok := probeRaw(fields, aliases)
	if !ok {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	// Numeric values show up where strings are expected (hours as 4.5).
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func probeInt(fields map[string]json.RawMessage, aliases []string) (int, bool) {
	s, ok := probeString(fields, aliases)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

func probeDate(fields map[string]json.RawMessage, aliases []string) (time.Time, bool) {
	s, ok := probeString(fields, aliases)
	if !ok {
		return time.Time{}, false
	}
	return parseLegacyDate(s)
}

func parseLegacyDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func splitDateRange(s string) (start, end time.Time, ok bool) {
	parts := strings.SplitN(s, " - ", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}
	start, okStart := parseLegacyDate(parts[0])
	end, okEnd := parseLegacyDate(parts[1])
	if !okStart || !okEnd {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// normalizeMonth renders assorted month spellings as YYYY-MM.
func normalizeMonth(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.Format("2006-01")
	}
	if t, err := time.Parse("01/2006", s); err == nil {
		return t.Format("2006-01")
	}
	if t, ok := parseLegacyDate(s); ok {
		return t.Format("2006-01")
	}
	return s
}
