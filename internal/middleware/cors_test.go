package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arisa-app/castdir/internal/middleware"
)

const adminOrigin = "http://localhost:3000"

// trivialHandler is a minimal http.Handler that always returns 200.
var trivialHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/casts", nil)
	req.Header.Set("Origin", adminOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// Browsers preflight PATCH and DELETE; both must be allowed for the admin UI.
func TestCORSHandler_OPTIONS_Preflight(t *testing.T) {
	for _, method := range []string{http.MethodPost, http.MethodPatch, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			h := middleware.NewCORSHandler([]string{adminOrigin})(trivialHandler)

			req := httptest.NewRequest(http.MethodOptions, "/api/casts/1", nil)
			req.Header.Set("Origin", adminOrigin)
			req.Header.Set("Access-Control-Request-Method", method)
			// rs/cors compares requested headers in lowercase, as browsers send them.
			req.Header.Set("Access-Control-Request-Headers", "content-type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
				"expected 2xx for OPTIONS preflight, got %d", rec.Code)
			assert.Equal(t, adminOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), method)
		})
	}
}

func TestCORSHandler_PUT_NotAllowed(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/casts/1", nil)
	req.Header.Set("Origin", adminOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/casts", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHandler_ExposesDownloadAndRequestIDHeaders(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/casts/export?format=csv", nil)
	req.Header.Set("Origin", adminOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	exposed := rec.Header().Get("Access-Control-Expose-Headers")
	assert.Contains(t, exposed, "Content-Disposition")
	assert.Contains(t, exposed, "X-Request-Id")
}

func TestCORSHandler_PreflightIsCacheable(t *testing.T) {
	h := middleware.NewCORSHandler([]string{adminOrigin})(trivialHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/areas", nil)
	req.Header.Set("Origin", adminOrigin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "600", rec.Header().Get("Access-Control-Max-Age"))
}
