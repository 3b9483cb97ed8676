package catalog_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-quote/internal/catalog"
)

func TestLoadEmbedded(t *testing.T) {
	svc, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	require.Equal(t, 31, svc.Len())

	course, ok := svc.ByID("aeis-p2")
	require.True(t, ok)
	require.Equal(t, "AEISP2", course.Abbreviation)
	require.Equal(t, 6, course.DurationMonths)
	require.InDelta(t, 9500.0, course.Fees.Course, 0)
	require.InDelta(t, 400.0, course.Fees.Application.For(catalog.StudentInternational), 0)
	require.InDelta(t, 150.0, course.Fees.Application.For(catalog.StudentLocal), 0)
	require.Len(t, course.MiscFees, 17)

	mf, ok := course.MiscFeeByID("photocopy-a4-bw")
	require.True(t, ok)
	require.Equal(t, catalog.PricingPerUnit, mf.Pricing)
	require.InDelta(t, 0.10, mf.Amount, 1e-9)

	flat, ok := course.MiscFeeByID("graduation")
	require.True(t, ok)
	require.Equal(t, catalog.PricingFlat, flat.Pricing)

	_, ok = course.MiscFeeByID("no-such-fee")
	require.False(t, ok)

	require.Equal(t, "aeis-p2", svc.First().ID)
}

func TestLoadRejectsBadCatalog(t *testing.T) {
	cases := map[string]string{
		"no courses":   `{"miscFees": [], "courses": []}`,
		"missing id":   `{"miscFees": [], "courses": [{"name": "X", "durationMonths": 3}]}`,
		"duplicate id": `{"miscFees": [], "courses": [{"id": "a", "durationMonths": 3}, {"id": "a", "durationMonths": 3}]}`,
		"bad pricing":  `{"miscFees": [{"id": "f", "pricing": "hourly"}], "courses": [{"id": "a", "durationMonths": 3}]}`,
		"zero months":  `{"miscFees": [], "courses": [{"id": "a", "durationMonths": 0}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Load([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestNormalizeStudentType(t *testing.T) {
	require.Equal(t, catalog.StudentLocal, catalog.NormalizeStudentType(" Local "))
	require.Equal(t, catalog.StudentInternational, catalog.NormalizeStudentType("international"))
	require.Equal(t, catalog.StudentInternational, catalog.NormalizeStudentType(""))
	require.Equal(t, catalog.StudentInternational, catalog.NormalizeStudentType("overseas"))
}

func TestCourseHandlers(t *testing.T) {
	svc, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	handler := catalog.NewHandler(catalog.HandlerConfig{Service: svc})

	r := chi.NewRouter()
	r.Get("/api/v1/courses", handler.Courses)
	r.Get("/api/v1/courses/{id}", handler.CourseDetail)

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data []catalog.CourseSummary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data, 31)
		require.Equal(t, "aeis-p2", body.Data[0].ID)
	})

	t.Run("detail", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courses/ielts", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data catalog.Course `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "IELTS", body.Data.Abbreviation)
		require.Len(t, body.Data.MiscFees, 17)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courses/nope", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
