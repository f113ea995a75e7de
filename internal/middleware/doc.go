// Package middleware provides HTTP middleware for the Plume API.
//
// The middleware package contains reusable middleware components for
// authentication and request processing.
//
// # Authentication
//
// Auth requires a valid bearer token and resolves it to a user; OptionalAuth
// does the same when a token is presented but lets anonymous requests
// through. The Authorization header carries the raw token; a "Bearer" or
// "Token" scheme prefix is tolerated.
//
// After authentication, handlers read the caller from the request context:
//
//	caller := middleware.GetCaller(r.Context())
//	if user, ok := caller.User(); ok { ... }
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetCaller(ctx): Returns the authenticated caller (or anonymous)
//   - GetRequestID(ctx): Returns unique request identifier
package middleware
