package db

import (
	"context"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate for both initial schema creation and later
// migrations, so the operation is idempotent and safe to repeat.
type SchemaManager interface {
	// Migrate brings the database schema to the latest version and
	// creates it from scratch when the tables do not exist yet.
	Migrate(ctx context.Context) error

	// Seed inserts the built-in reference rows (the sources registry)
	// that the collectors attribute history rows to. Existing rows are
	// left untouched.
	Seed(ctx context.Context) error
}
