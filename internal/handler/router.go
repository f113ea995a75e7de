package handler

import (
	"net/http"

	"github.com/plume-pub/plume/api/internal/middleware"
	"github.com/plume-pub/plume/api/internal/service"
)

// RouterConfig holds the dependencies for the HTTP router.
type RouterConfig struct {
	Users    *service.UserService
	Profiles *service.ProfileService
	Tokens   *service.TokenService

	// UserSource resolves token subjects for the auth middleware. A missing
	// user is reported as (nil, nil).
	UserSource middleware.UserSource

	AllowedOrigins []string
}

// NewRouter builds the HTTP router with all API routes and the shared
// middleware stack.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	userHandler := NewUserHandler(cfg.Users, cfg.Tokens)
	profileHandler := NewProfileHandler(cfg.Profiles)

	auth := middleware.Auth(cfg.Tokens, cfg.UserSource)
	optionalAuth := middleware.OptionalAuth(cfg.Tokens, cfg.UserSource)

	// Health
	mux.HandleFunc("GET /api", Health)

	// Public user routes
	mux.HandleFunc("POST /api/users", userHandler.Register)
	mux.HandleFunc("POST /api/users/login", userHandler.Login)

	// Authenticated user routes
	mux.Handle("GET /api/user", auth(http.HandlerFunc(userHandler.Current)))
	mux.Handle("PUT /api/user", auth(http.HandlerFunc(userHandler.Update)))

	// Profile routes
	mux.Handle("GET /api/profiles/{username}", optionalAuth(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("POST /api/profiles/{username}/follow", auth(http.HandlerFunc(profileHandler.Follow)))
	mux.Handle("DELETE /api/profiles/{username}/follow", auth(http.HandlerFunc(profileHandler.Unfollow)))

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.AllowedOrigins),
		middleware.Compress,
	)
}
