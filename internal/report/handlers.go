package report

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-quote/internal/common"
	"github.com/noah-isme/backend-quote/internal/obs"
)

// Handler exposes shared report lookup.
type Handler struct {
	store *Store
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Store *Store
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{store: cfg.Store}
}

// Get handles GET /api/v1/reports/{token}. Expired and unknown tokens are
// indistinguishable and both come back as 404.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "report store not configured", nil)
		return
	}
	token := chi.URLParam(r, "token")
	rep, err := h.store.Get(r.Context(), token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			countFetch("not_found")
			common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "report not found or expired", nil)
			return
		}
		countFetch("error")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "failed to load report", nil)
		return
	}
	countFetch("ok")
	common.JSONData(w, http.StatusOK, rep)
}

func countFetch(result string) {
	if obs.ReportFetchTotal != nil {
		obs.ReportFetchTotal.WithLabelValues(result).Inc()
	}
}
