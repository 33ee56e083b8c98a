/*
Copyright © 2026 The lccollect authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"

	"github.com/livingcost/lccollect/internal/ioschema"
	"github.com/livingcost/lccollect/pkg/db"
)

// getMigrateCmd returns the migrate command. Extracted as a function
// to facilitate testing and dynamic command registration.
func getMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Migrate brings the database schema to the latest version.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Runs GORM AutoMigrate to create or update the schema
  3. Seeds the sources registry (existing rows are kept)

GORM AutoMigrate:
  - Adds new tables if they don't exist
  - Adds new columns to existing tables
  - Adds missing indexes and constraints
  - Does NOT delete columns or tables (safe)

The command is idempotent; run it after every upgrade.

Examples:
  lccollect migrate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, args)
		},
	}

	return migrateCmd
}

func runMigrate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	return withOperator(ctx, func(op db.Operator) error {
		sm := ioschema.NewManager(op)

		gn.Info("Migrating schema to latest version...")
		if err := sm.Migrate(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		if err := sm.Seed(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}

		gn.Info("Schema is now up to date.")
		return nil
	})
}
