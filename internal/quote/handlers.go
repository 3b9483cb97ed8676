package quote

import (
	"net/http"
	"strconv"
	"time"

	"github.com/noah-isme/backend-quote/internal/common"
	"github.com/noah-isme/backend-quote/internal/obs"
	"github.com/noah-isme/backend-quote/internal/report"
)

// Handler exposes the quotation endpoints.
type Handler struct {
	service *Service
	reports *report.Store
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
	Reports *report.Store
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service, reports: cfg.Reports}
}

// Quote handles POST /api/v1/quotes.
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var req Request
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	start := time.Now()
	rep, err := h.service.Compute(req)
	if err != nil {
		countCompute("error")
		common.WriteError(w, err)
		return
	}
	countCompute("ok")
	if obs.QuoteComputeDuration != nil {
		obs.QuoteComputeDuration.Observe(obs.DurationMillis(time.Since(start)))
	}
	common.JSONData(w, http.StatusOK, rep)
}

func countCompute(result string) {
	if obs.QuoteComputeTotal != nil {
		obs.QuoteComputeTotal.WithLabelValues(result).Inc()
	}
}

// Refund handles POST /api/v1/quotes/refund. A missing course start date is
// not an error; the returned estimate explains that no estimate is possible.
func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var req RefundRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	estimate, err := h.service.Refund(req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	if obs.RefundEstimateTotal != nil {
		obs.RefundEstimateTotal.WithLabelValues(strconv.Itoa(estimate.Percentage)).Inc()
	}
	common.JSONData(w, http.StatusOK, estimate)
}

// ShareReport handles POST /api/v1/reports: it computes the quotation and
// stores the resulting report under a share token.
func (h *Handler) ShareReport(w http.ResponseWriter, r *http.Request) {
	if h.service == nil || h.reports == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "report sharing not configured", nil)
		return
	}
	var req Request
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, err)
		return
	}
	rep, err := h.service.Compute(req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	token, expiresAt, err := h.reports.Save(r.Context(), rep)
	if err != nil {
		countShare("error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to store report", nil)
		return
	}
	countShare("ok")
	common.JSONData(w, http.StatusCreated, map[string]any{
		"token":     token,
		"expiresAt": expiresAt,
		"report":    rep,
	})
}

func countShare(result string) {
	if obs.ReportShareTotal != nil {
		obs.ReportShareTotal.WithLabelValues(result).Inc()
	}
}
