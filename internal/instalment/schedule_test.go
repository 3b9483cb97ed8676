package instalment

import (
	"math"
	"testing"
	"time"

	"github.com/noah-isme/backend-quote/internal/dateutil"
)

func TestBuildScheduleTwoInstalments(t *testing.T) {
	start, err := dateutil.ParseDate("2025-10-30")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	entries := BuildSchedule(9500, start, 2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Number != 1 || entries[1].Number != 2 {
		t.Fatalf("entries must be 1-indexed: %+v", entries)
	}
	if got := dateutil.FormatDate(entries[0].DueDate); got != "2025-10-30" {
		t.Fatalf("first due date %s", got)
	}
	if got := dateutil.FormatDate(entries[1].DueDate); got != "2025-11-30" {
		t.Fatalf("second due date %s", got)
	}
	for _, e := range entries {
		if e.Amount != 4750 {
			t.Fatalf("expected 4750 per instalment, got %v", e.Amount)
		}
	}
}

func TestBuildScheduleClampsCount(t *testing.T) {
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	if got := len(BuildSchedule(1000, start, 0)); got != 1 {
		t.Fatalf("count below 1 must clamp to 1, got %d entries", got)
	}
	if got := len(BuildSchedule(1000, start, -3)); got != 1 {
		t.Fatalf("negative count must clamp to 1, got %d entries", got)
	}
	if got := len(BuildSchedule(1000, start, 99)); got != MaxCount {
		t.Fatalf("count above %d must clamp, got %d entries", MaxCount, got)
	}
}

func TestBuildScheduleMonthOverflow(t *testing.T) {
	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	entries := BuildSchedule(300, start, 3)
	want := []string{"2025-01-31", "2025-03-03", "2025-03-31"}
	for i, e := range entries {
		if got := dateutil.FormatDate(e.DueDate); got != want[i] {
			t.Fatalf("entry %d due %s, want %s", e.Number, got, want[i])
		}
	}
}

func TestScheduleSumStaysNearPrincipal(t *testing.T) {
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	principals := []float64{9500, 6460, 1488, 13600, 0.10}
	for _, principal := range principals {
		for count := 1; count <= MaxCount; count++ {
			entries := BuildSchedule(principal, start, count)
			var sum float64
			for _, e := range entries {
				// Round to cents the way presentation does.
				sum += math.Round(e.Amount*100) / 100
			}
			if diff := math.Abs(sum - principal); diff >= 0.01*float64(count) {
				t.Fatalf("principal %v count %d: sum %v drifts by %v", principal, count, sum, diff)
			}
		}
	}
}
