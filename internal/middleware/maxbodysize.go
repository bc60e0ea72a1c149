package middleware

import (
	"encoding/json"
	"net/http"
)

type tooLargeBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewMaxBodySizeHandler caps request bodies at limit bytes. A declared
// Content-Length over the limit is answered with 413 here; a body of unknown
// length is wrapped in http.MaxBytesReader and fails when the handler decodes it.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeTooLarge(w)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func writeTooLarge(w http.ResponseWriter) {
	var body tooLargeBody
	body.Error.Code = "request_too_large"
	body.Error.Message = "request body too large"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusRequestEntityTooLarge)
	_ = json.NewEncoder(w).Encode(body)
}
