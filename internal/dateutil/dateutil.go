package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the wire format for calendar dates exchanged with clients.
const Layout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a date at midnight UTC.
// Quotation dates carry no time component, so every date in the system is
// normalised to midnight before comparison.
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("parse date: empty value")
	}
	t, err := time.Parse(Layout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", trimmed, err)
	}
	return Midnight(t), nil
}

// Midnight strips the time-of-day component from t.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date in the wire format.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// IsWorkingDay reports whether t falls on Monday through Friday.
// Public holidays are not considered.
func IsWorkingDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WorkingDaysBetween returns the signed count of working days in the
// half-open interval [min(a,b), max(a,b)). The result is positive when a is
// before b and negative otherwise; identical dates yield zero.
func WorkingDaysBetween(a, b time.Time) int {
	a = Midnight(a)
	b = Midnight(b)
	sign := 1
	start, end := a, b
	if a.After(b) {
		sign = -1
		start, end = b, a
	}
	days := 0
	for cur := start; cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		if IsWorkingDay(cur) {
			days++
		}
	}
	return days * sign
}

// AddMonths adds n calendar months to t. Day-of-month overflow resolves via
// standard normalisation, so Jan 31 plus one month lands in early March.
func AddMonths(t time.Time, n int) time.Time {
	return Midnight(t.AddDate(0, n, 0))
}

// FormatSGD renders an amount as Singapore dollars with two decimal places
// and comma thousands separators, e.g. "S$ 1,234.56". The format is fixed
// regardless of host locale so reports render identically everywhere.
func FormatSGD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	fixed := strconv.FormatFloat(amount, 'f', 2, 64)
	whole, frac, _ := strings.Cut(fixed, ".")
	var sb strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("S$ %s%s.%s", sign, sb.String(), frac)
}
