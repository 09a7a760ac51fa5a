package timemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a civil day.
const MinutesPerDay = 24 * 60

// ToMinutes parses a clock value in "HH:MM" or "HH:MM:SS" form into a
// minute-of-day in [0, 1439]. Empty or unparseable input yields 0.
func ToMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hours < 0 || hours > 23 {
		return 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minutes < 0 || minutes > 59 {
		return 0
	}

	return hours*60 + minutes
}

// IsOvernight reports whether an interval crosses midnight, which is encoded
// upstream as an end time numerically before its start time.
func IsOvernight(start, end int) bool {
	return end < start
}

// IntervalLength returns the length in minutes of the interval [start, end],
// wrapping past midnight when the interval is overnight.
func IntervalLength(start, end int) int {
	if IsOvernight(start, end) {
		return MinutesPerDay - start + end
	}
	return end - start
}

// FormatMinutes renders a minute-of-day as "HH:MM".
func FormatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	m %= MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseHMS parses a duration in "HH:MM:SS" (or "HH:MM") form.
func ParseHMS(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}

	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total += time.Duration(v) * units[i]
	}
	return total, nil
}

// FormatHMS renders a duration as "HH:MM:SS". Hours are not wrapped, so
// aggregated totals above 24h keep their full hour count.
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// FromDecimalHours converts an hour count such as 4.5 into a duration,
// rounded to the nearest second.
func FromDecimalHours(hours float64) time.Duration {
	if hours < 0 {
		return 0
	}
	return time.Duration(hours*float64(time.Hour) + 0.5)
}
