package catalog

import "strings"

// StudentType selects which application fee applies to a participant.
type StudentType string

// Supported student types.
const (
	StudentLocal         StudentType = "local"
	StudentInternational StudentType = "international"
)

// NormalizeStudentType maps free-form input onto a supported student type,
// defaulting to international.
func NormalizeStudentType(value string) StudentType {
	if strings.EqualFold(strings.TrimSpace(value), string(StudentLocal)) {
		return StudentLocal
	}
	return StudentInternational
}

// ApplicationFee holds the application charge per student type.
type ApplicationFee struct {
	Local         float64 `json:"local"`
	International float64 `json:"international"`
}

// For resolves the application fee for the given student type.
func (a ApplicationFee) For(st StudentType) float64 {
	if st == StudentLocal {
		return a.Local
	}
	return a.International
}

// FeeSchedule groups the fixed fee components of a course.
type FeeSchedule struct {
	Application    ApplicationFee `json:"application"`
	Course         float64        `json:"course"`
	Material       float64        `json:"material"`
	Examination    float64        `json:"examination"`
	Administrative float64        `json:"administrative"`
}

// Pricing distinguishes flat charges from quantity-scaled ones.
type Pricing string

// Pricing variants. Flat fees ignore quantities beyond one; per-unit fees
// multiply the unit amount by the selected quantity.
const (
	PricingFlat    Pricing = "flat"
	PricingPerUnit Pricing = "per-unit"
)

// MiscFee is an optional itemised charge offered alongside a course.
type MiscFee struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Pricing  Pricing `json:"pricing"`
	Notes    string  `json:"notes,omitempty"`
	Category string  `json:"category"`
}

// Course is immutable reference data describing one offered course.
type Course struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Abbreviation   string      `json:"abbreviation"`
	DurationMonths int         `json:"durationMonths"`
	Modules        int         `json:"modules"`
	Fees           FeeSchedule `json:"fees"`
	MiscFees       []MiscFee   `json:"miscFees"`
}

// MiscFeeByID resolves a misc fee offered by this course.
func (c Course) MiscFeeByID(id string) (MiscFee, bool) {
	for _, mf := range c.MiscFees {
		if mf.ID == id {
			return mf, true
		}
	}
	return MiscFee{}, false
}
