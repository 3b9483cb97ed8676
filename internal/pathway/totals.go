package pathway

import (
	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/fees"
	"github.com/noah-isme/backend-quote/internal/instalment"
)

// GSTRate is the Goods and Services Tax applied to the post-scholarship
// subtotal. Fixed at 9%, not configurable.
const GSTRate = 0.09

// CourseBreakdown is the computed result for one resolved pathway entry.
type CourseBreakdown struct {
	EntryID        string             `json:"entryId"`
	CourseID       string             `json:"courseId"`
	CourseName     string             `json:"courseName"`
	Abbreviation   string             `json:"abbreviation"`
	DurationMonths int                `json:"durationMonths"`
	Totals         fees.CourseTotals  `json:"totals"`
	Instalments    []instalment.Entry `json:"instalments"`
}

// GrandTotals aggregates the whole pathway.
type GrandTotals struct {
	TotalCourseFees          float64 `json:"totalCourseFees"`
	TotalMiscFees            float64 `json:"totalMiscFees"`
	Subtotal                 float64 `json:"subtotal"`
	ScholarshipAmount        float64 `json:"scholarshipAmount"`
	SubtotalAfterScholarship float64 `json:"subtotalAfterScholarship"`
	GSTAmount                float64 `json:"gstAmount"`
	GrandTotal               float64 `json:"grandTotal"`
	TotalLivingCost          float64 `json:"totalLivingCost"`
	TotalDurationMonths      int     `json:"totalDurationMonths"`
}

// Compute derives per-course breakdowns and grand totals from a snapshot.
// Entries whose course id does not resolve in the catalog are excluded from
// every total; a quotation is best-effort, not transactional. The whole
// result is recomputed on every call, no caching.
func Compute(cat *catalog.Service, snap Snapshot) ([]CourseBreakdown, GrandTotals) {
	scholarship := snap.Scholarship.Normalize()

	breakdowns := make([]CourseBreakdown, 0, len(snap.Entries))
	var totals GrandTotals
	for _, entry := range snap.Entries {
		course, ok := cat.ByID(entry.CourseID)
		if !ok {
			continue
		}
		courseTotals := fees.ComputeCourseTotals(course, snap.StudentType, entry.MiscFees)
		// Instalments apply to the course fee component only, not the
		// application, material, examination, or administrative fees.
		schedule := instalment.BuildSchedule(course.Fees.Course, entry.StartDate, entry.Instalments)

		breakdowns = append(breakdowns, CourseBreakdown{
			EntryID:        entry.ID,
			CourseID:       course.ID,
			CourseName:     course.Name,
			Abbreviation:   course.Abbreviation,
			DurationMonths: course.DurationMonths,
			Totals:         courseTotals,
			Instalments:    schedule,
		})

		totals.TotalCourseFees += courseTotals.BaseTotal
		totals.TotalMiscFees += courseTotals.MiscTotal
		totals.TotalDurationMonths += course.DurationMonths
	}

	totals.Subtotal = totals.TotalCourseFees + totals.TotalMiscFees
	totals.ScholarshipAmount = scholarship.AmountFor(totals.Subtotal)
	totals.SubtotalAfterScholarship = totals.Subtotal - totals.ScholarshipAmount
	if totals.SubtotalAfterScholarship < 0 {
		totals.SubtotalAfterScholarship = 0
	}
	totals.GSTAmount = totals.SubtotalAfterScholarship * GSTRate
	totals.GrandTotal = totals.SubtotalAfterScholarship + totals.GSTAmount
	// Courses are taken consecutively, so living cost scales with the
	// summed duration.
	totals.TotalLivingCost = snap.LivingCosts.Monthly() * float64(totals.TotalDurationMonths)
	return breakdowns, totals
}
