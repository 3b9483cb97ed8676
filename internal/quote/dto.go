// Package quote orchestrates request validation, snapshot normalization, and
// the calculation engines behind the public quotation endpoints.
package quote

import (
	"github.com/noah-isme/backend-quote/internal/pathway"
)

// ParticipantRequest is the optional contact block passed through onto the
// generated report.
type ParticipantRequest struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// EntryRequest is one course pick in the requested pathway. A missing start
// date defaults to today; the instalment count is clamped into range.
type EntryRequest struct {
	CourseID    string         `json:"courseId" validate:"required"`
	MiscFees    map[string]int `json:"miscFees"`
	Instalments int            `json:"instalments"`
	StartDate   string         `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

// ScholarshipRequest mirrors the scholarship input. Unknown kinds and
// negative values are clamped during normalization, not rejected.
type ScholarshipRequest struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// Request is the quotation input payload.
type Request struct {
	Participant ParticipantRequest  `json:"participant"`
	StudentType string              `json:"studentType"`
	Pathway     []EntryRequest      `json:"pathway" validate:"required,min=1,dive"`
	Scholarship ScholarshipRequest  `json:"scholarship"`
	LivingCosts pathway.LivingCosts `json:"livingCosts"`
}

// RefundRequest is the refund estimation payload. Both dates are optional:
// a missing withdrawal date means today, and a missing course start date
// yields a "cannot estimate" result rather than an error.
type RefundRequest struct {
	CourseStartDate string  `json:"courseStartDate" validate:"omitempty,datetime=2006-01-02"`
	WithdrawalDate  string  `json:"withdrawalDate" validate:"omitempty,datetime=2006-01-02"`
	TotalPayable    float64 `json:"totalPayable" validate:"gte=0"`
}
