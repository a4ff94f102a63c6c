package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/middleware"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/api/casts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/casts/"+id, nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() != "http_requests_total" {
			continue
		}
		require.Len(t, f.GetMetric(), 1, "three ids share one route series")
		for _, metric := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range metric.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			assert.Equal(t, "/api/casts/{id}", labels["route"])
			assert.Equal(t, "404", labels["status"])
			assert.Equal(t, float64(3), metric.GetCounter().GetValue())
			found = true
		}
	}
	assert.True(t, found)
}

func TestMetrics_InFlightReturnsToZero(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := middleware.NewMetrics(reg)

	h := m.Handler(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "http_inflight_requests" {
			assert.Equal(t, float64(0), f.GetMetric()[0].GetGauge().GetValue())
		}
	}
}
