package dateutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-10-30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, time.October, 30, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	if got.Weekday() != time.Thursday {
		t.Fatalf("2025-10-30 should be a Thursday, got %v", got.Weekday())
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "  ", "30/10/2025", "2025-13-01"} {
		if _, err := ParseDate(value); err == nil {
			t.Fatalf("expected error for %q", value)
		}
	}
}

func TestWorkingDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return d
	}

	cases := []struct {
		name string
		a, b string
		want int
	}{
		{"same day", "2025-10-30", "2025-10-30", 0},
		{"monday to friday", "2025-10-27", "2025-10-31", 4},
		{"full week half open", "2025-10-27", "2025-11-03", 5},
		{"over a weekend", "2025-10-31", "2025-11-03", 1},
		{"saturday to sunday", "2025-11-01", "2025-11-02", 0},
		{"reversed is negative", "2025-10-31", "2025-10-27", -4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WorkingDaysBetween(day(tc.a), day(tc.b)); got != tc.want {
				t.Fatalf("WorkingDaysBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestWorkingDaysBetweenAntisymmetric(t *testing.T) {
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 90; i++ {
		a := start.AddDate(0, 0, i)
		b := start.AddDate(0, 0, 90-i)
		if got, want := WorkingDaysBetween(a, b), -WorkingDaysBetween(b, a); got != want {
			t.Fatalf("antisymmetry broken at offset %d: %d vs %d", i, got, want)
		}
	}
}

func TestAddMonths(t *testing.T) {
	day := time.Date(2025, time.October, 30, 0, 0, 0, 0, time.UTC)
	if got := AddMonths(day, 1); !got.Equal(time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}
	// Day-of-month overflow normalises forward rather than clamping.
	jan31 := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	if got := AddMonths(jan31, 1); !got.Equal(time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2025-03-03 got %v", FormatDate(got))
	}
}

func TestFormatSGD(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "S$ 0.00"},
		{4750, "S$ 4,750.00"},
		{1234.56, "S$ 1,234.56"},
		{1234567.891, "S$ 1,234,567.89"},
		{0.1, "S$ 0.10"},
		{999.999, "S$ 1,000.00"},
	}
	for _, tc := range cases {
		if got := FormatSGD(tc.amount); got != tc.want {
			t.Fatalf("FormatSGD(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
