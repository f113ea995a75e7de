package repository

import (
	"context"
	"fmt"

	"github.com/plume-pub/plume/api/internal/database"
)

// Unique index names end with the field they guard, so a duplicate-key error
// can be attributed to a field by the index name it mentions.
const (
	userUsernameIndex = "unique_user_username"
	userEmailIndex    = "unique_user_email"
)

// schemaStatements are applied on startup. Every statement is idempotent.
var schemaStatements = []string{
	`DEFINE TABLE IF NOT EXISTS user SCHEMALESS`,
	`DEFINE INDEX IF NOT EXISTS ` + userUsernameIndex + ` ON TABLE user COLUMNS username UNIQUE`,
	`DEFINE INDEX IF NOT EXISTS ` + userEmailIndex + ` ON TABLE user COLUMNS email UNIQUE`,
	`DEFINE TABLE IF NOT EXISTS follow SCHEMALESS`,
}

// EnsureSchema defines the tables and unique indexes Plume relies on.
// It is safe to call on every startup.
func EnsureSchema(ctx context.Context, db database.Database) error {
	for _, stmt := range schemaStatements {
		if err := db.Execute(ctx, stmt, nil); err != nil {
			return fmt.Errorf("applying schema statement %q: %w", stmt, err)
		}
	}
	return nil
}
