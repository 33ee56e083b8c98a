// Package ioschema implements the SchemaManager interface. This is an
// impure I/O package that wraps GORM AutoMigrate and reference-row
// seeding.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/livingcost/lccollect/pkg/db"
	"github.com/livingcost/lccollect/pkg/schema"
)

// seedSources registers the external providers that history rows are
// attributed to. The ids are stable contract values: reference data
// curated outside this service refers to them.
const seedSources = `
INSERT INTO sources (id_source, name) VALUES
  (1, 'ilostat'),
  (2, 'canopy')
ON CONFLICT (id_source) DO NOTHING
`

type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager over a connected operator.
func NewManager(op db.Operator) db.SchemaManager {
	return &manager{operator: op}
}

// Migrate brings the schema to the latest version using GORM
// AutoMigrate. Creation and migration are the same idempotent
// operation; missing tables are created, existing ones updated.
func (m *manager) Migrate(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err = schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	slog.Info("Schema migration complete",
		"tables", len(schema.AllModels()))
	return nil
}

// Seed inserts the built-in source registry rows. Already-present
// rows are never overwritten.
func (m *manager) Seed(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	if _, err := pool.Exec(ctx, seedSources); err != nil {
		return SeedError(err)
	}

	return nil
}
