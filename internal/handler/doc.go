// Package handler provides HTTP request handlers for the Plume API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the dependencies needed to serve
// requests for a specific feature area (accounts, profiles).
//
// # Response Format
//
// Successful responses wrap their payload in a domain envelope ("user" or
// "profile"). Failures use one of two envelopes:
//
//   - {"errors": {field: message}} for body decode and validation failures,
//     and for unique-field conflicts
//   - {"error": message} for everything else
//
// # Routing
//
// NewRouter wires all endpoints onto an http.ServeMux using method-qualified
// patterns and applies the shared middleware stack.
package handler
