package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/plume-pub/plume/api/internal/model"
	"github.com/plume-pub/plume/api/internal/service"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeServiceError maps a service error to its wire representation.
// Conflicts on unique fields use the field-keyed envelope so clients can
// attach the message to the form field; everything else uses the
// single-message envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		model.NewFieldErrors(model.FieldErrors{"Username": "Username is already taken"}).WriteJSON(w, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrEmailTaken):
		model.NewFieldErrors(model.FieldErrors{"Email": "Email is already taken"}).WriteJSON(w, http.StatusUnprocessableEntity)
	case errors.Is(err, service.ErrInvalidCredentials):
		model.NewBodyError("Invalid email or password").WriteJSON(w, http.StatusUnauthorized)
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrProfileNotFound):
		model.NewBodyError("User not found").WriteJSON(w, http.StatusNotFound)
	default:
		slog.Error("request failed", slog.Any("error", err))
		model.NewBodyError("An unexpected error occurred").WriteJSON(w, http.StatusInternalServerError)
	}
}
