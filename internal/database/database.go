// Package database provides the storage abstraction for Plume.
//
// The Database interface hides SurrealDB behind three query methods:
//
//   - Query: returns all results (SELECT queries returning lists)
//   - QueryOne: returns a single result (SELECT by key)
//   - Execute: runs a mutation without returning results
//
// Standard errors are defined for the common failure cases and should be
// checked with errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
package database

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g. duplicate
	// email or username).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with
	// the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// DuplicateError is a unique constraint violation attributed to a specific
// field. It matches ErrDuplicate under errors.Is; callers needing the field
// use errors.As.
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return "duplicate record: " + e.Field + " already exists"
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// Database defines the interface for database operations.
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results.
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result, or ErrNotFound
	// when the result set is empty.
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations).
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database connection settings.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
