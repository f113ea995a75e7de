package model

import (
	"encoding/json"
	"net/http"
)

// The API uses exactly two error envelopes. Field-level and body-decode
// failures are reported under "errors" as a map from field name (or the
// sentinel key "error" for body-level decode failures) to a message. All
// other failures use the single-message "error" envelope. The two shapes are
// never mixed in one response.

// FieldErrors maps a field name to a human-readable validation message.
type FieldErrors map[string]string

// ErrorsEnvelope is the field-keyed error response shape.
type ErrorsEnvelope struct {
	Errors FieldErrors `json:"errors"`
}

// ErrorEnvelope is the single-message error response shape.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// WriteJSON writes the envelope with the given status code.
func (e ErrorsEnvelope) WriteJSON(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

// WriteJSON writes the envelope with the given status code.
func (e ErrorEnvelope) WriteJSON(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(e)
}

// NewFieldErrors wraps a validation error map in its envelope.
func NewFieldErrors(errs FieldErrors) ErrorsEnvelope {
	return ErrorsEnvelope{Errors: errs}
}

// NewBodyError wraps a single message in the body-level envelope.
func NewBodyError(msg string) ErrorEnvelope {
	return ErrorEnvelope{Error: msg}
}
