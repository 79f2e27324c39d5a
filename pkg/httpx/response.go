package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorBody

// JSON writes v as JSON with the given status code and sets the JSON and
// nosniff headers. Encoding errors are dropped since the status line has
// already been sent.
func JSON(w http.ResponseWriter, status int, v any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// JSONFieldErrors writes a 422 carrying per-field messages keyed by the
// field's JSON name.
func JSONFieldErrors(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, ErrorBody{Error: "Validation failed", Fields: fields})
}

// SafeError returns the message to show a client. When hideInternal is set,
// 5xx messages collapse to the status text.
func SafeError(err error, status int, hideInternal bool) string {
	if hideInternal && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
