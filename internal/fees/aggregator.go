// Package fees computes per-course fee totals from a misc fee selection.
package fees

import "github.com/noah-isme/backend-quote/internal/catalog"

// Selection maps misc fee identifiers to positive quantities. A key that is
// present implies a quantity greater than zero; deselecting a fee means
// deleting the key, never storing zero.
type Selection map[string]int

// Normalize returns a copy of the selection with non-positive quantities
// removed, preserving the presence-implies-positive invariant.
func (s Selection) Normalize() Selection {
	out := make(Selection, len(s))
	for id, qty := range s {
		if qty > 0 {
			out[id] = qty
		}
	}
	return out
}

// SelectedMiscFee is one resolved misc fee line.
type SelectedMiscFee struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	UnitAmount float64 `json:"unitAmount"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"lineTotal"`
}

// CourseTotals aggregates the computed fee components for one course.
type CourseTotals struct {
	BaseTotal        float64           `json:"baseTotal"`
	MiscTotal        float64           `json:"miscTotal"`
	Subtotal         float64           `json:"subtotal"`
	SelectedMiscFees []SelectedMiscFee `json:"selectedMiscFees"`
}

// ComputeCourseTotals resolves the base fee schedule for the student type and
// the selected misc fees. Selection entries that do not resolve against the
// course's fee list are skipped without error; flat fees contribute their
// unit amount once regardless of the selected quantity.
func ComputeCourseTotals(course catalog.Course, studentType catalog.StudentType, selection Selection) CourseTotals {
	base := course.Fees.Application.For(studentType) +
		course.Fees.Course +
		course.Fees.Material +
		course.Fees.Examination +
		course.Fees.Administrative

	totals := CourseTotals{
		BaseTotal:        base,
		SelectedMiscFees: []SelectedMiscFee{},
	}
	// Iterate the course's fee list rather than the selection map so the
	// resolved lines come out in catalog order.
	for _, mf := range course.MiscFees {
		qty, ok := selection[mf.ID]
		if !ok || qty <= 0 {
			continue
		}
		if mf.Pricing == catalog.PricingFlat && qty > 1 {
			qty = 1
		}
		line := mf.Amount * float64(qty)
		totals.MiscTotal += line
		totals.SelectedMiscFees = append(totals.SelectedMiscFees, SelectedMiscFee{
			ID:         mf.ID,
			Name:       mf.Name,
			UnitAmount: mf.Amount,
			Quantity:   qty,
			LineTotal:  line,
		})
	}
	totals.Subtotal = totals.BaseTotal + totals.MiscTotal
	return totals
}
