package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/livingcost/lccollect/pkg/config"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes
// the pgxpool.Pool for the collection components (ProductStore, Stager,
// Reconciler) to execute their specialized SQL operations internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - Pool() enables components to use performance-critical features
//   (CopyFrom for bulk staging loads) and explicit transactions
// - Schema creation and migration are handled by GORM AutoMigrate via
//   the migrate command
type Operator interface {
	// Connect establishes a connection pool to the database.
	// A failed Connect at process start is a fatal condition.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for components to
	// execute specialized SQL operations (transactions, CopyFrom,
	// custom queries).
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
