package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/plume-pub/plume/api/internal/model"
)

// TokenVerifier defines the interface for token validation. Verify returns
// the username the token was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// UserSource defines the interface for resolving a token subject to a user.
// A (nil, nil) return means no such user exists.
type UserSource interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// Auth returns a middleware that requires a valid token and resolves it to a
// user. The caller is stored in the request context.
func Auth(tokens TokenVerifier, users UserSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				model.NewBodyError("Authentication required").WriteJSON(w, http.StatusUnauthorized)
				return
			}

			caller, errMsg, status := resolveCaller(r.Context(), tokens, users, token)
			if errMsg != "" {
				model.NewBodyError(errMsg).WriteJSON(w, status)
				return
			}

			ctx := context.WithValue(r.Context(), CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth resolves a token when one is presented but lets anonymous
// requests through. A token that is present but invalid is still rejected;
// optional means the header may be absent, not that garbage is ignored.
func OptionalAuth(tokens TokenVerifier, users UserSource) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				ctx := context.WithValue(r.Context(), CallerKey, model.Anonymous())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			caller, errMsg, status := resolveCaller(r.Context(), tokens, users, token)
			if errMsg != "" {
				model.NewBodyError(errMsg).WriteJSON(w, status)
				return
			}

			ctx := context.WithValue(r.Context(), CallerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCaller extracts the caller from context. Requests that bypassed the
// auth middlewares report as anonymous.
func GetCaller(ctx context.Context) model.Caller {
	if caller, ok := ctx.Value(CallerKey).(model.Caller); ok {
		return caller
	}
	return model.Anonymous()
}

// extractToken reads the raw token from the Authorization header. The header
// value is the token itself; a "Bearer" or "Token" scheme prefix is
// tolerated and stripped.
func extractToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && (strings.EqualFold(parts[0], "Bearer") || strings.EqualFold(parts[0], "Token")) {
		return strings.TrimSpace(parts[1])
	}
	return header
}

func resolveCaller(ctx context.Context, tokens TokenVerifier, users UserSource, token string) (model.Caller, string, int) {
	username, err := tokens.Verify(token)
	if err != nil {
		return model.Anonymous(), "Invalid token", http.StatusUnauthorized
	}

	user, err := users.GetByUsername(ctx, username)
	if err != nil {
		return model.Anonymous(), "An unexpected error occurred", http.StatusInternalServerError
	}
	if user == nil {
		// Token subject no longer exists (deleted or renamed account); the
		// token no longer identifies anyone.
		return model.Anonymous(), "Invalid token", http.StatusUnauthorized
	}

	return model.Identified(user), "", 0
}
