// Package report turns a computed quotation into a shareable document and
// persists it in Redis behind opaque tokens with a bounded lifetime.
package report

import (
	"fmt"
	"time"

	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/dateutil"
	"github.com/noah-isme/backend-quote/internal/pathway"
)

// Participant identifies who the quotation was prepared for. All fields are
// free text supplied by the caller and passed through untouched.
type Participant struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
}

// FeeLine is a labelled amount with its display string attached.
type FeeLine struct {
	Label      string  `json:"label"`
	Amount     float64 `json:"amount"`
	AmountText string  `json:"amountText"`
}

// InstalmentLine is one schedule row, pre-formatted for rendering.
type InstalmentLine struct {
	Number      int     `json:"number"`
	DueDate     string  `json:"dueDate"`
	DueDateText string  `json:"dueDateText"`
	Amount      float64 `json:"amount"`
	AmountText  string  `json:"amountText"`
}

// CourseSection is the per-course block of a report.
type CourseSection struct {
	CourseID       string           `json:"courseId"`
	CourseName     string           `json:"courseName"`
	Abbreviation   string           `json:"abbreviation"`
	DurationMonths int              `json:"durationMonths"`
	StartDate      string           `json:"startDate"`
	BaseFees       []FeeLine        `json:"baseFees"`
	MiscFees       []FeeLine        `json:"miscFees"`
	Subtotal       float64          `json:"subtotal"`
	SubtotalText   string           `json:"subtotalText"`
	Instalments    []InstalmentLine `json:"instalments"`
}

// TotalsSection carries the pathway-wide totals.
type TotalsSection struct {
	TotalCourseFees          float64 `json:"totalCourseFees"`
	TotalMiscFees            float64 `json:"totalMiscFees"`
	Subtotal                 float64 `json:"subtotal"`
	SubtotalText             string  `json:"subtotalText"`
	ScholarshipAmount        float64 `json:"scholarshipAmount"`
	ScholarshipText          string  `json:"scholarshipText"`
	SubtotalAfterScholarship float64 `json:"subtotalAfterScholarship"`
	GSTAmount                float64 `json:"gstAmount"`
	GSTText                  string  `json:"gstText"`
	GrandTotal               float64 `json:"grandTotal"`
	GrandTotalText           string  `json:"grandTotalText"`
}

// LivingCostSection estimates living costs over the summed course duration.
type LivingCostSection struct {
	Monthly     float64 `json:"monthly"`
	MonthlyText string  `json:"monthlyText"`
	Months      int     `json:"months"`
	Total       float64 `json:"total"`
	TotalText   string  `json:"totalText"`
}

// Report is the shareable quotation document. It is fully self-contained:
// every amount carries its display string so a renderer never needs the
// catalog or the calculation engine.
type Report struct {
	Participant Participant         `json:"participant"`
	StudentType catalog.StudentType `json:"studentType"`
	Courses     []CourseSection     `json:"courses"`
	Totals      TotalsSection       `json:"totals"`
	LivingCost  LivingCostSection   `json:"livingCost"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

const dueDateLayout = "02 Jan 2006"

// Assemble builds a report from a computed quotation. The breakdowns and
// totals must come from the same snapshot so start dates resolve per entry.
func Assemble(cat *catalog.Service, participant Participant, snap pathway.Snapshot, breakdowns []pathway.CourseBreakdown, totals pathway.GrandTotals, now time.Time) Report {
	starts := make(map[string]time.Time, len(snap.Entries))
	for _, entry := range snap.Entries {
		starts[entry.ID] = entry.StartDate
	}

	sections := make([]CourseSection, 0, len(breakdowns))
	for _, bd := range breakdowns {
		section := CourseSection{
			CourseID:       bd.CourseID,
			CourseName:     bd.CourseName,
			Abbreviation:   bd.Abbreviation,
			DurationMonths: bd.DurationMonths,
			Subtotal:       bd.Totals.Subtotal,
			SubtotalText:   dateutil.FormatSGD(bd.Totals.Subtotal),
		}
		if start, ok := starts[bd.EntryID]; ok && !start.IsZero() {
			section.StartDate = dateutil.FormatDate(start)
		}
		if course, ok := cat.ByID(bd.CourseID); ok {
			section.BaseFees = baseFeeLines(course, snap.StudentType)
		}
		section.MiscFees = make([]FeeLine, 0, len(bd.Totals.SelectedMiscFees))
		for _, mf := range bd.Totals.SelectedMiscFees {
			label := mf.Name
			if mf.Quantity > 1 {
				label = fmt.Sprintf("%s (x%d)", mf.Name, mf.Quantity)
			}
			section.MiscFees = append(section.MiscFees, feeLine(label, mf.LineTotal))
		}
		section.Instalments = make([]InstalmentLine, 0, len(bd.Instalments))
		for _, ins := range bd.Instalments {
			section.Instalments = append(section.Instalments, InstalmentLine{
				Number:      ins.Number,
				DueDate:     dateutil.FormatDate(ins.DueDate),
				DueDateText: ins.DueDate.Format(dueDateLayout),
				Amount:      ins.Amount,
				AmountText:  dateutil.FormatSGD(ins.Amount),
			})
		}
		sections = append(sections, section)
	}

	return Report{
		Participant: participant,
		StudentType: snap.StudentType,
		Courses:     sections,
		Totals: TotalsSection{
			TotalCourseFees:          totals.TotalCourseFees,
			TotalMiscFees:            totals.TotalMiscFees,
			Subtotal:                 totals.Subtotal,
			SubtotalText:             dateutil.FormatSGD(totals.Subtotal),
			ScholarshipAmount:        totals.ScholarshipAmount,
			ScholarshipText:          dateutil.FormatSGD(totals.ScholarshipAmount),
			SubtotalAfterScholarship: totals.SubtotalAfterScholarship,
			GSTAmount:                totals.GSTAmount,
			GSTText:                  dateutil.FormatSGD(totals.GSTAmount),
			GrandTotal:               totals.GrandTotal,
			GrandTotalText:           dateutil.FormatSGD(totals.GrandTotal),
		},
		LivingCost: LivingCostSection{
			Monthly:     snap.LivingCosts.Monthly(),
			MonthlyText: dateutil.FormatSGD(snap.LivingCosts.Monthly()),
			Months:      totals.TotalDurationMonths,
			Total:       totals.TotalLivingCost,
			TotalText:   dateutil.FormatSGD(totals.TotalLivingCost),
		},
		GeneratedAt: now,
	}
}

func baseFeeLines(course catalog.Course, st catalog.StudentType) []FeeLine {
	return []FeeLine{
		feeLine("Application Fee", course.Fees.Application.For(st)),
		feeLine("Course Fee", course.Fees.Course),
		feeLine("Material Fee", course.Fees.Material),
		feeLine("Examination Fee", course.Fees.Examination),
		feeLine("Administrative Fee", course.Fees.Administrative),
	}
}

func feeLine(label string, amount float64) FeeLine {
	return FeeLine{Label: label, Amount: amount, AmountText: dateutil.FormatSGD(amount)}
}
