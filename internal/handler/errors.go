package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler/gen"
)

// Error codes carried in ErrorDetail.Code.
const (
	codeNotFound      = "not_found"
	codeValidation    = "validation_error"
	codeOutOfRange    = "out_of_range"
	codeBadRequest    = "bad_request"
	codeTooLarge      = "request_too_large"
	codeInternalError = "internal_error"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFound builds the 404 body for a missing trip or participant.
// The message comes from the domain error ("trip not found").
func notFound(err error) gen.NotFoundJSONResponse {
	return gen.NotFoundJSONResponse(errorBody(codeNotFound, domain.MessageOf(err)))
}

// unprocessable builds the 422 body for validation and out-of-range failures.
func unprocessable(err error) gen.UnprocessableJSONResponse {
	code := codeValidation
	if domain.KindOf(err) == domain.KindOutOfRange {
		code = codeOutOfRange
	}
	return gen.UnprocessableJSONResponse(errorBody(code, domain.MessageOf(err)))
}

// isUnprocessable reports whether err should become a 422.
func isUnprocessable(err error) bool {
	k := domain.KindOf(err)
	return k == domain.KindValidation || k == domain.KindOutOfRange
}

func isNotFound(err error) bool {
	return domain.KindOf(err) == domain.KindNotFound
}

func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// badRequest handles requests the generated layer rejects before they reach
// a handler: malformed path or query parameters and undecodable bodies.
func badRequest(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, errorBody(codeTooLarge, "request body too large"))
		return
	}
	writeError(w, http.StatusBadRequest, errorBody(codeBadRequest, err.Error()))
}

// internalError handles errors handlers return instead of a typed response.
// Details are logged, never sent to the client.
func internalError(log *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeError(w, http.StatusInternalServerError, errorBody(codeInternalError, "internal server error"))
	}
}
