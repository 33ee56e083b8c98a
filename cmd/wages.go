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

	"github.com/livingcost/lccollect/pkg/db"
)

// getWagesCmd returns the wages command.
func getWagesCmd() *cobra.Command {
	wagesCmd := &cobra.Command{
		Use:   "wages",
		Short: "Run one wage collection cycle",
		Long: `Wages runs one collection cycle over the labor-statistics API.

This command, for every configured indicator:
  1. Downloads the indicator's complete time series
  2. Keeps the most recent observation per country
  3. Bulk-loads the cycle into the staging table
  4. Reconciles staged rows into the wage history

A (country, indicator, year) triple already present in history is
never overwritten; re-running a cycle is idempotent.

Examples:
  lccollect wages`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWages(cmd, args)
		},
	}

	return wagesCmd
}

func runWages(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	return withOperator(ctx, func(op db.Operator) error {
		if err := ensureTables(ctx, op, wageJobTables); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if err := newWageJob(op).Run(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		return nil
	})
}
