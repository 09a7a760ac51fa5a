package absence

import (
	"strconv"
	"strings"
	"time"

	"github.com/nivelia-hr/fichaje-backend-go/internal/pkg/timemath"
)

// TypeTotal accumulates one absence type over a period. Day-based types fill
// Days, hour-based types fill Hours; the two are reported separately and
// never folded into one figure.
type TypeTotal struct {
	Days  int
	Hours time.Duration
}

// HoursFormatted renders the hour total as "HH:MM:SS".
func (t TypeTotal) HoursFormatted() string {
	return timemath.FormatHMS(t.Hours)
}

// Aggregate sums approved absences per type.
//
// Day-based records contribute their approved day count when present, else
// the inclusive length of their date range (a single-date record counts one
// day). Hour-based records contribute their approved hours: colon-formatted
// values are taken verbatim, decimal hour counts are converted.
func Aggregate(records []Absence) map[Type]TypeTotal {
	totals := make(map[Type]TypeTotal)

	for _, rec := range records {
		total := totals[rec.Type]
		if rec.Type.HourBased() {
			total.Hours += approvedHours(rec)
		} else {
			total.Days += approvedDays(rec)
		}
		totals[rec.Type] = total
	}

	return totals
}

func approvedDays(rec Absence) int {
	if rec.ApprovedDays != nil && *rec.ApprovedDays > 0 {
		return *rec.ApprovedDays
	}
	if rec.StartDate != nil && rec.EndDate != nil {
		return InclusiveDays(*rec.StartDate, *rec.EndDate)
	}
	if rec.Date != nil {
		return 1
	}
	return 0
}

func approvedHours(rec Absence) time.Duration {
	if rec.ApprovedHours == nil {
		return 0
	}

	raw := strings.TrimSpace(*rec.ApprovedHours)
	if raw == "" {
		return 0
	}

	// An explicit colon-formatted duration wins over reinterpreting the
	// value as a decimal hour count.
	if strings.Contains(raw, ":") {
		d, err := timemath.ParseHMS(raw)
		if err != nil {
			return 0
		}
		return d
	}

	hours, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0
	}
	return timemath.FromDecimalHours(hours)
}

// InclusiveDays counts civil days in [start, end], both ends included.
func InclusiveDays(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
