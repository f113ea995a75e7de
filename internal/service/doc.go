// Package service implements the business logic layer for the Plume API.
//
// The service package contains all domain logic and orchestration of
// repository operations. Services are the primary abstraction between HTTP
// handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts repository dependencies
//   - Methods implement business operations
//   - Errors are returned as sentinel errors defined in errors.go
//   - Context is passed through for cancellation and request-scoped values
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
package service
