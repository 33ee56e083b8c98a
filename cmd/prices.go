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

// getPricesCmd returns the prices command.
func getPricesCmd() *cobra.Command {
	pricesCmd := &cobra.Command{
		Use:   "prices",
		Short: "Run one price collection cycle",
		Long: `Prices runs one collection cycle over the pricing API.

This command:
  1. Loads the region reference file and the product mappings
  2. Looks up every mapped product on every region domain
  3. Appends one history row per resolved price

A product without a price on some domain is an expected outcome and
is skipped. Re-running within the same day inserts nothing new: one
price per product, country and source is kept per day.

Examples:
  lccollect prices`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrices(cmd, args)
		},
	}

	return pricesCmd
}

func runPrices(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	return withOperator(ctx, func(op db.Operator) error {
		if err := ensureTables(ctx, op, priceJobTables); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if err := newPriceJob(op).Run(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		return nil
	})
}
