package quote

import (
	"errors"
	"net/http"
	"strings"
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/noah-isme/backend-quote/internal/catalog"
	"github.com/noah-isme/backend-quote/internal/common"
	"github.com/noah-isme/backend-quote/internal/dateutil"
	"github.com/noah-isme/backend-quote/internal/fees"
	"github.com/noah-isme/backend-quote/internal/instalment"
	"github.com/noah-isme/backend-quote/internal/pathway"
	"github.com/noah-isme/backend-quote/internal/refund"
	"github.com/noah-isme/backend-quote/internal/report"
)

// Service turns validated requests into quotation reports and refund
// estimates.
type Service struct {
	catalog  *catalog.Service
	validate *validator.Validate
	now      func() time.Time
}

// ServiceConfig configures the Service dependencies. Now is injectable so
// tests can pin "today".
type ServiceConfig struct {
	Catalog  *catalog.Service
	Validate *validator.Validate
	Now      func() time.Time
}

// NewService constructs a Service.
func NewService(cfg ServiceConfig) *Service {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{catalog: cfg.Catalog, validate: v, now: now}
}

func (s *Service) today() time.Time {
	return dateutil.Midnight(s.now().UTC())
}

// Snapshot validates the request and normalizes it into a calculation
// snapshot. Unknown student types, unknown scholarship kinds, negative
// values, and out-of-range instalment counts are clamped here, never
// rejected; only structurally invalid input fails.
func (s *Service) Snapshot(req Request) (pathway.Snapshot, report.Participant, error) {
	if err := s.validate.Struct(req); err != nil {
		return pathway.Snapshot{}, report.Participant{}, validationError(err)
	}

	defaultStart := s.today()
	entries := make([]pathway.Entry, 0, len(req.Pathway))
	for _, er := range req.Pathway {
		start := defaultStart
		if er.StartDate != "" {
			parsed, err := dateutil.ParseDate(er.StartDate)
			if err != nil {
				return pathway.Snapshot{}, report.Participant{}, common.BadRequest("startDate", "invalid start date", err)
			}
			start = parsed
		}
		entry := pathway.NewEntry(er.CourseID, start)
		entry.MiscFees = fees.Selection(er.MiscFees).Normalize()
		entry.Instalments = instalment.ClampCount(er.Instalments)
		entries = append(entries, entry)
	}

	snap := pathway.Snapshot{
		Entries:     entries,
		StudentType: catalog.NormalizeStudentType(req.StudentType),
		Scholarship: pathway.Scholarship{
			Kind:  pathway.ScholarshipKind(req.Scholarship.Kind),
			Value: req.Scholarship.Value,
		}.Normalize(),
		LivingCosts: clampLivingCosts(req.LivingCosts),
	}
	participant := report.Participant{
		Name:     strings.TrimSpace(req.Participant.Name),
		WhatsApp: strings.TrimSpace(req.Participant.WhatsApp),
		Email:    strings.TrimSpace(req.Participant.Email),
	}
	return snap, participant, nil
}

// Compute runs the full quotation pipeline and assembles the shareable
// report document.
func (s *Service) Compute(req Request) (report.Report, error) {
	snap, participant, err := s.Snapshot(req)
	if err != nil {
		return report.Report{}, err
	}
	breakdowns, totals := pathway.Compute(s.catalog, snap)
	return report.Assemble(s.catalog, participant, snap, breakdowns, totals, s.now().UTC()), nil
}

// Refund resolves a refund estimate. A missing withdrawal date means today.
func (s *Service) Refund(req RefundRequest) (refund.Estimate, error) {
	if err := s.validate.Struct(req); err != nil {
		return refund.Estimate{}, validationError(err)
	}
	var start time.Time
	if req.CourseStartDate != "" {
		parsed, err := dateutil.ParseDate(req.CourseStartDate)
		if err != nil {
			return refund.Estimate{}, common.BadRequest("courseStartDate", "invalid course start date", err)
		}
		start = parsed
	}
	withdrawal := s.today()
	if req.WithdrawalDate != "" {
		parsed, err := dateutil.ParseDate(req.WithdrawalDate)
		if err != nil {
			return refund.Estimate{}, common.BadRequest("withdrawalDate", "invalid withdrawal date", err)
		}
		withdrawal = parsed
	}
	return refund.Calculate(start, withdrawal, req.TotalPayable), nil
}

func clampLivingCosts(lc pathway.LivingCosts) pathway.LivingCosts {
	if lc.Rent < 0 {
		lc.Rent = 0
	}
	if lc.Food < 0 {
		lc.Food = 0
	}
	if lc.Transport < 0 {
		lc.Transport = 0
	}
	if lc.Medical < 0 {
		lc.Medical = 0
	}
	return lc
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		details := make([]map[string]any, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, map[string]any{
				"field": fe.Namespace(),
				"rule":  fe.Tag(),
			})
		}
		return &common.AppError{
			Code:       "VALIDATION_ERROR",
			Message:    "invalid quotation request",
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
			Details:    details,
		}
	}
	return &common.AppError{
		Code:       "BAD_REQUEST",
		Message:    "invalid request",
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}
