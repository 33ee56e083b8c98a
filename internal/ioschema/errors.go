package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// NotConnectedError creates an error for a schema operation attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Connection pool not initialized
  - Database configuration issue`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// MigrateSchemaError creates an error for schema migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate database schema

<em>Possible causes:</em>
  - Insufficient database permissions
  - Incompatible schema changes

<em>How to fix:</em>
  1. Check database user has CREATE and ALTER permissions
  2. Check database logs for details`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// SeedError creates an error for reference-row seeding failures.
func SeedError(err error) error {
	msg := `Cannot seed the sources registry

<em>Possible causes:</em>
  - The sources table is missing (migration did not run)
  - Insufficient database permissions`

	return &gn.Error{
		Code: errcode.SchemaSeedError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to seed sources: %w", err),
	}
}
