package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/livingcost/lccollect/pkg/errcode"
)

// ConnectionError creates an error with user-friendly remediation
// steps for a failed database connection. A failed connection at
// process start is fatal: the collectors never run in degraded mode.
func ConnectionError(host string, port int, database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running:
     <em>pg_isready -h %s -p %d</em>

  2. Verify the database exists:
     <em>psql -h %s -U %s -l</em>

  3. Review connection settings (config.yaml or DATABASE_URL):
     Host: %s
     Port: %d
     Database: %s
     User: %s`

	vars := []any{
		host, port,
		host, user,
		host, port, database, user,
	}

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to connect to %s:%d/%s: %w",
			host, port, database, err),
	}
}

// NotConnectedError creates an error for operations attempted before
// Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for a failed table
// existence check.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("failed to check table %s: %w",
			table, err),
	}
}
