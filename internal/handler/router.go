package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/planner/internal/handler/gen"
	"github.com/pkordes/planner/spec"
)

// NewRouter registers every API route of srv on r, plus GET /openapi.yaml.
// gen.NewStrictHandlerWithOptions adapts the StrictServerInterface
// implementation to the lower-level ServerInterface chi expects.
func NewRouter(r chi.Router, srv *Server) http.Handler {
	r.Get("/openapi.yaml", serveOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(srv, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: internalError(srv.log),
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: badRequest,
	})
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
