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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2025-12-31", "2024-02-29"}
	invalid := []string{"2025-13-01", "2025-02-30", "01/02/2025", "2025-1-1", "", "oggi"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59", "14:05"}
	invalid := []string{"24:00", "8:30", "12:60", "12.30", "12:5", "", "mezzanotte"}
	for _, tm := range valid {
		if !IsValidTime(tm) {
			t.Errorf("IsValidTime(%q) = false, want true", tm)
		}
	}
	for _, tm := range invalid {
		if IsValidTime(tm) {
			t.Errorf("IsValidTime(%q) = true, want false", tm)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2025-03"); !ok {
		t.Errorf("IsValidMonth(%q) = false, want true", "2025-03")
	}
	for _, m := range []string{"2025-13", "2025", "03-2025", ""} {
		if _, ok := IsValidMonth(m); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", m)
		}
	}
}
