package fees

import (
	"reflect"
	"testing"

	"github.com/noah-isme/backend-quote/internal/catalog"
)

func testCourse() catalog.Course {
	return catalog.Course{
		ID:             "aeis-p2",
		Name:           "Preparatory Course for AEIS - Primary 2",
		DurationMonths: 6,
		Fees: catalog.FeeSchedule{
			Application:    catalog.ApplicationFee{Local: 150, International: 400},
			Course:         9500,
			Material:       300,
			Examination:    300,
			Administrative: 150,
		},
		MiscFees: []catalog.MiscFee{
			{ID: "re-exam", Name: "Re-Examination Fee (Per module)", Amount: 200, Pricing: catalog.PricingFlat},
			{ID: "printing-a4-bw", Name: "Printing A4 B&W (per page)", Amount: 1, Pricing: catalog.PricingPerUnit},
			{ID: "photocopy-a4-bw", Name: "Photocopying A4 B&W (per page)", Amount: 0.10, Pricing: catalog.PricingPerUnit},
		},
	}
}

func TestBaseTotalInternational(t *testing.T) {
	got := ComputeCourseTotals(testCourse(), catalog.StudentInternational, nil)
	if got.BaseTotal != 10650 {
		t.Fatalf("expected base total 10650, got %v", got.BaseTotal)
	}
	if got.MiscTotal != 0 || got.Subtotal != 10650 {
		t.Fatalf("unexpected totals %+v", got)
	}
	if len(got.SelectedMiscFees) != 0 {
		t.Fatalf("expected no misc lines, got %d", len(got.SelectedMiscFees))
	}
}

func TestBaseTotalLocal(t *testing.T) {
	got := ComputeCourseTotals(testCourse(), catalog.StudentLocal, nil)
	if got.BaseTotal != 10400 {
		t.Fatalf("expected base total 10400, got %v", got.BaseTotal)
	}
}

func TestMiscFeeResolution(t *testing.T) {
	selection := Selection{
		"re-exam":        1,
		"printing-a4-bw": 25,
		"unknown-fee":    4, // silently skipped
	}
	got := ComputeCourseTotals(testCourse(), catalog.StudentInternational, selection)
	if got.MiscTotal != 225 {
		t.Fatalf("expected misc total 225, got %v", got.MiscTotal)
	}
	if got.Subtotal != 10875 {
		t.Fatalf("expected subtotal 10875, got %v", got.Subtotal)
	}
	if len(got.SelectedMiscFees) != 2 {
		t.Fatalf("expected 2 resolved lines, got %d", len(got.SelectedMiscFees))
	}
}

func TestFlatFeeQuantityCappedAtOne(t *testing.T) {
	got := ComputeCourseTotals(testCourse(), catalog.StudentInternational, Selection{"re-exam": 5})
	if got.MiscTotal != 200 {
		t.Fatalf("flat fee should contribute once, got %v", got.MiscTotal)
	}
	if got.SelectedMiscFees[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", got.SelectedMiscFees[0].Quantity)
	}
}

func TestPerUnitFeeScalesWithQuantity(t *testing.T) {
	got := ComputeCourseTotals(testCourse(), catalog.StudentInternational, Selection{"photocopy-a4-bw": 30})
	if got.MiscTotal != 3 {
		t.Fatalf("expected 30 pages at 0.10, got %v", got.MiscTotal)
	}
}

func TestZeroQuantityIgnored(t *testing.T) {
	got := ComputeCourseTotals(testCourse(), catalog.StudentInternational, Selection{"re-exam": 0, "printing-a4-bw": -2})
	if got.MiscTotal != 0 || len(got.SelectedMiscFees) != 0 {
		t.Fatalf("non-positive quantities must not contribute: %+v", got)
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	selection := Selection{"re-exam": 1, "printing-a4-bw": 12}
	first := ComputeCourseTotals(testCourse(), catalog.StudentInternational, selection)
	second := ComputeCourseTotals(testCourse(), catalog.StudentInternational, selection)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical output:\n%+v\n%+v", first, second)
	}
}

func TestSelectionNormalize(t *testing.T) {
	sel := Selection{"a": 2, "b": 0, "c": -1}
	got := sel.Normalize()
	if len(got) != 1 || got["a"] != 2 {
		t.Fatalf("unexpected normalized selection %v", got)
	}
}
