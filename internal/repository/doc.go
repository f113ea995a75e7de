// Package repository implements the data access layer for Plume.
//
// Each repository struct handles the SurrealQL for one domain entity. All
// repositories accept a database.Database, so they can be backed by a live
// connection in production and a test double in tests.
//
// Uniqueness of username and email is enforced by unique indexes defined in
// EnsureSchema, making registration an atomic check-and-insert rather than a
// read-then-write race. The follow relation is keyed by the composite
// (follower, followee) record ID, which makes follow/unfollow idempotent at
// the storage level.
package repository
