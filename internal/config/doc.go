// Package config manages application configuration for the Plume API.
//
// The config package loads and validates configuration from environment
// variables. All configuration is centralized here to provide a single
// source of truth.
//
// # Configuration Groups
//
// Configuration is organized into logical groups:
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings
//   - JWTConfig: token signing settings
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT          - HTTP server port (default: 3000)
//	SERVER_ENV           - development, production, or test
//	CORS_ALLOWED_ORIGINS - comma-separated list of allowed origins
//	DB_HOST, DB_PORT     - SurrealDB endpoint
//	DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//	JWT_SECRET           - token signing secret
//	JWT_EXPIRATION       - token lifetime (default: 24h)
//
// Sensible defaults are provided for development; Validate rejects the
// development JWT secret in production.
package config
