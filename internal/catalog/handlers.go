package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-quote/internal/common"
)

// Handler exposes public catalog endpoints.
type Handler struct {
	service *Service
}

// HandlerConfig configures the Handler dependencies.
type HandlerConfig struct {
	Service *Service
}

// NewHandler constructs a Handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{service: cfg.Service}
}

// CourseSummary is the list-view payload; the shared misc fee list is
// omitted to keep the listing compact.
type CourseSummary struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Abbreviation   string      `json:"abbreviation"`
	DurationMonths int         `json:"durationMonths"`
	Modules        int         `json:"modules"`
	Fees           FeeSchedule `json:"fees"`
}

// Courses handles GET /api/v1/courses.
func (h *Handler) Courses(w http.ResponseWriter, _ *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	courses := h.service.List()
	summaries := make([]CourseSummary, 0, len(courses))
	for _, c := range courses {
		summaries = append(summaries, CourseSummary{
			ID:             c.ID,
			Name:           c.Name,
			Abbreviation:   c.Abbreviation,
			DurationMonths: c.DurationMonths,
			Modules:        c.Modules,
			Fees:           c.Fees,
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": summaries})
}

// CourseDetail handles GET /api/v1/courses/{id}, including misc fees.
func (h *Handler) CourseDetail(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	id := chi.URLParam(r, "id")
	course, ok := h.service.ByID(id)
	if !ok {
		common.WriteError(w, &common.AppError{Code: "NOT_FOUND", Message: "course not found", HTTPStatus: http.StatusNotFound})
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": course})
}
