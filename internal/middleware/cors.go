// Package middleware provides reusable HTTP middleware for the cast directory API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// corsMaxAge is how long, in seconds, a browser may cache a preflight answer.
const corsMaxAge = 600

// NewCORSHandler lets the admin UI at allowedOrigins call the API.
// Origins are full origins (scheme and host, no trailing slash).
// Content-Disposition is exposed so the browser can read export file names,
// and X-Request-Id so UI error reports can quote the server's request id.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-Id"},
		MaxAge:         corsMaxAge,
	}).Handler
}
