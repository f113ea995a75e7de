package handler

import (
	"net/http"

	"github.com/plume-pub/plume/api/internal/middleware"
	"github.com/plume-pub/plume/api/internal/model"
	"github.com/plume-pub/plume/api/internal/service"
)

// UserHandler handles registration, login, and account endpoints
type UserHandler struct {
	users  *service.UserService
	tokens *service.TokenService
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *service.UserService, tokens *service.TokenService) *UserHandler {
	return &UserHandler{
		users:  users,
		tokens: tokens,
	}
}

// RegisterUserRequest represents the register endpoint request body
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterUserEnvelope wraps the register request under the "user" key
type RegisterUserEnvelope struct {
	User RegisterUserRequest `json:"user"`
}

// LoginUserRequest represents the login endpoint request body
type LoginUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginUserEnvelope wraps the login request under the "user" key
type LoginUserEnvelope struct {
	User LoginUserRequest `json:"user"`
}

// UpdateUserRequest represents the partial-update request body. A nil field
// is left unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

// UpdateUserEnvelope wraps the update request under the "user" key
type UpdateUserEnvelope struct {
	User UpdateUserRequest `json:"user"`
}

// Register handles POST /api/users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserEnvelope
	if errs := model.DecodeBody(r.Body, &req); errs != nil {
		model.NewFieldErrors(errs).WriteJSON(w, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.users.Register(r.Context(), req.User.Username, req.User.Email, req.User.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.writeAuthenticatedUser(w, user)
}

// Login handles POST /api/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginUserEnvelope
	if errs := model.DecodeBody(r.Body, &req); errs != nil {
		model.NewFieldErrors(errs).WriteJSON(w, http.StatusUnprocessableEntity)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.User.Email, req.User.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.writeAuthenticatedUser(w, user)
}

// Current handles GET /api/user
func (h *UserHandler) Current(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCaller(r.Context()).User()
	if !ok {
		model.NewBodyError("Authentication required").WriteJSON(w, http.StatusUnauthorized)
		return
	}

	h.writeAuthenticatedUser(w, user)
}

// Update handles PUT /api/user
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetCaller(r.Context()).User()
	if !ok {
		model.NewBodyError("Authentication required").WriteJSON(w, http.StatusUnauthorized)
		return
	}

	var req UpdateUserEnvelope
	if errs := model.DecodeBody(r.Body, &req); errs != nil {
		model.NewFieldErrors(errs).WriteJSON(w, http.StatusUnprocessableEntity)
		return
	}

	patch := req.User
	if patch.Username == nil && patch.Email == nil && patch.Password == nil && patch.Bio == nil && patch.Image == nil {
		model.NewBodyError("At least one field must be provided").WriteJSON(w, http.StatusUnprocessableEntity)
		return
	}

	updated, err := h.users.Update(r.Context(), user, service.UpdateParams{
		Username: patch.Username,
		Email:    patch.Email,
		Password: patch.Password,
		Bio:      patch.Bio,
		Image:    patch.Image,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.writeAuthenticatedUser(w, updated)
}

// writeAuthenticatedUser issues a fresh token for the user and writes the
// user envelope. Tokens are bound to the username, so updates that rename
// the account hand back a token for the new name.
func (h *UserHandler) writeAuthenticatedUser(w http.ResponseWriter, user *model.User) {
	token, err := h.tokens.Issue(user.Username)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, model.NewUserEnvelope(user, token))
}
