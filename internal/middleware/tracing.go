package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewTracing returns a middleware that starts a server span per request via
// otelhttp. Spans are named "METHOD /route/{pattern}" once chi has matched the
// route, and just "METHOD" for requests no route matched.
//
// Register it with chi's Use so the route context is present.
func NewTracing(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, service, otelhttp.WithSpanNameFormatter(routeSpanName))
	}
}

// routeSpanName is called when the span starts and again when the request
// ends; only the second call sees the matched pattern.
func routeSpanName(_ string, r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return r.Method + " " + pattern
		}
	}
	return r.Method
}
