// Package model defines domain entities and wire types for the Plume API.
//
// The model package contains the struct definitions for domain objects,
// response envelopes, and error envelopes. Models are used across all layers
// of the application.
//
// # Domain Entities
//
//   - User: registered account with credentials
//   - Caller: the identity a request is made under (anonymous or a user)
//   - Profile: public projection of a user with the caller-relative
//     following flag
//
// # Error Envelopes
//
// The API uses exactly two error shapes, defined in errors.go:
//
//	{"errors": {"FieldName": "message"}}
//	{"error": "message"}
//
// # Request Binding
//
// DecodeBody in binding.go decodes and validates request bodies, reporting
// failures as a FieldErrors map ready for the "errors" envelope.
package model
