package handler

import (
	"net/http"

	"github.com/plume-pub/plume/api/internal/middleware"
	"github.com/plume-pub/plume/api/internal/model"
	"github.com/plume-pub/plume/api/internal/service"
)

// ProfileHandler handles public profile and follow endpoints
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/profiles/{username}
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	caller := middleware.GetCaller(r.Context())
	username := r.PathValue("username")

	profile, err := h.profiles.Resolve(r.Context(), caller, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.ProfileEnvelope{Profile: *profile})
}

// Follow handles POST /api/profiles/{username}/follow
func (h *ProfileHandler) Follow(w http.ResponseWriter, r *http.Request) {
	follower, ok := middleware.GetCaller(r.Context()).User()
	if !ok {
		model.NewBodyError("Authentication required").WriteJSON(w, http.StatusUnauthorized)
		return
	}
	username := r.PathValue("username")

	profile, err := h.profiles.Follow(r.Context(), follower, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.ProfileEnvelope{Profile: *profile})
}

// Unfollow handles DELETE /api/profiles/{username}/follow
func (h *ProfileHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	follower, ok := middleware.GetCaller(r.Context()).User()
	if !ok {
		model.NewBodyError("Authentication required").WriteJSON(w, http.StatusUnauthorized)
		return
	}
	username := r.PathValue("username")

	profile, err := h.profiles.Unfollow(r.Context(), follower, username)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, model.ProfileEnvelope{Profile: *profile})
}
