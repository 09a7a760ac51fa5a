package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59", "08:30:59"}
	invalid := []string{"24:00", "8:30", "08:60", "08:30:60", "", "garbage"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonthKey(t *testing.T) {
	valid := []string{"2025-01", "2025-12"}
	invalid := []string{"2025-13", "2025-1", "202501", "", "2025-00"}
	for _, s := range valid {
		if !IsValidMonthKey(s) {
			t.Errorf("IsValidMonthKey(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidMonthKey(s) {
			t.Errorf("IsValidMonthKey(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	if !IsValidEmployeeCode("0001-2024") {
		t.Error("IsValidEmployeeCode(0001-2024) = false, want true")
	}
	for _, s := range []string{"1-2024", "00012024", "abcd-2024", ""} {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-07-15"); !ok {
		t.Error("IsValidDate(2025-07-15) = false, want true")
	}
	for _, s := range []string{"15/07/2025", "2025-13-01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
