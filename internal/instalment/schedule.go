// Package instalment generates monthly payment schedules for a course fee.
package instalment

import (
	"time"

	"github.com/noah-isme/backend-quote/internal/dateutil"
)

// MaxCount is the largest supported number of instalments.
const MaxCount = 12

// Entry is one scheduled payment.
type Entry struct {
	Number  int       `json:"number"`
	DueDate time.Time `json:"dueDate"`
	Amount  float64   `json:"amount"`
}

// ClampCount forces an instalment count into the supported [1, MaxCount]
// band. Out-of-range input is clamped rather than rejected.
func ClampCount(count int) int {
	if count < 1 {
		return 1
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// BuildSchedule divides the principal evenly across count monthly payments
// starting at start. The per-instalment amount is the exact quotient with no
// rounding, so the sum of amounts rendered to two decimals may drift from
// the principal by a cent-level artifact; presentation accepts this rather
// than redistributing the remainder.
//
// Due dates are one calendar month apart; day-of-month overflow resolves via
// standard normalisation (see dateutil.AddMonths).
func BuildSchedule(principal float64, start time.Time, count int) []Entry {
	count = ClampCount(count)
	perInstalment := principal / float64(count)
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, Entry{
			Number:  i + 1,
			DueDate: dateutil.AddMonths(start, i),
			Amount:  perInstalment,
		})
	}
	return entries
}
