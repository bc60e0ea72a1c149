// Package middleware provides reusable HTTP middleware for the Planner API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// NewCORSHandler lets the web app at allowedOrigins call the API from the browser.
// Origins are matched without a trailing slash and "*" admits any origin.
// Location is exposed so clients can follow the confirmation redirects.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.New(corsOptions(allowedOrigins)).Handler
}

func corsOptions(allowedOrigins []string) cors.Options {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-Id"},
		ExposedHeaders: []string{"Location", "X-Request-Id"},
		MaxAge:         600,
	}
}
