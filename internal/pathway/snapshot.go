// Package pathway aggregates per-course fee computations across the whole
// pathway and produces the quotation grand totals.
package pathway

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/fees"
)

// ScholarshipKind discriminates the two scholarship shapes.
type ScholarshipKind string

// Scholarship kinds. Exactly one is active at a time.
const (
	ScholarshipAmount     ScholarshipKind = "amount"
	ScholarshipPercentage ScholarshipKind = "percentage"
)

// Scholarship is either an absolute currency value or a percentage of the
// pre-scholarship subtotal.
type Scholarship struct {
	Kind  ScholarshipKind `json:"kind"`
	Value float64         `json:"value"`
}

// Normalize coerces unknown kinds to an absolute amount and floors negative
// values at zero.
func (s Scholarship) Normalize() Scholarship {
	switch ScholarshipKind(strings.ToLower(strings.TrimSpace(string(s.Kind)))) {
	case ScholarshipPercentage:
		s.Kind = ScholarshipPercentage
	default:
		s.Kind = ScholarshipAmount
	}
	if s.Value < 0 {
		s.Value = 0
	}
	return s
}

// AmountFor resolves the scholarship deduction for the given subtotal.
func (s Scholarship) AmountFor(subtotal float64) float64 {
	if s.Kind == ScholarshipPercentage {
		return subtotal * s.Value / 100
	}
	return s.Value
}

// LivingCosts is the estimated monthly cost of living.
type LivingCosts struct {
	Rent      float64 `json:"rent"`
	Food      float64 `json:"food"`
	Transport float64 `json:"transport"`
	Medical   float64 `json:"medical"`
}

// Monthly returns the combined monthly living cost.
func (lc LivingCosts) Monthly() float64 {
	return lc.Rent + lc.Food + lc.Transport + lc.Medical
}

// Entry is one course instance within the participant's pathway.
type Entry struct {
	ID          string         `json:"id"`
	CourseID    string         `json:"courseId"`
	MiscFees    fees.Selection `json:"miscFees"`
	Instalments int            `json:"instalments"`
	StartDate   time.Time      `json:"startDate"`
}

// NewEntry constructs a pathway entry with explicit defaults: the given
// course, a single instalment, and the given start date. Defaults are
// constructor parameters rather than ambient state so callers stay in
// control of "today".
func NewEntry(courseID string, startDate time.Time) Entry {
	return Entry{
		ID:          uuid.NewString(),
		CourseID:    courseID,
		MiscFees:    fees.Selection{},
		Instalments: 1,
		StartDate:   startDate,
	}
}

// Snapshot is the immutable input to a quotation computation. Updates
// replace the snapshot wholesale; derived values are never mutated, only
// recomputed.
type Snapshot struct {
	Entries     []Entry             `json:"entries"`
	StudentType catalog.StudentType `json:"studentType"`
	Scholarship Scholarship         `json:"scholarship"`
	LivingCosts LivingCosts         `json:"livingCosts"`
}
