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

	"github.com/livingcost/lccollect/internal/iocollect"
	"github.com/livingcost/lccollect/internal/iodb"
	"github.com/livingcost/lccollect/internal/ioprice"
	"github.com/livingcost/lccollect/internal/iosources"
	"github.com/livingcost/lccollect/internal/iostage"
	"github.com/livingcost/lccollect/internal/iowage"
	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/db"
)

// withOperator connects to the database, reports the connection, and
// hands the operator to fn. The pool is closed when fn returns.
func withOperator(
	ctx context.Context,
	fn func(op db.Operator) error,
) error {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	return fn(op)
}

// Tables each collection job writes to or resolves against. Checked
// before a cycle starts so a missing schema fails up front with a
// pointer to migrate, not mid-cycle.
var (
	priceJobTables = []string{
		"countries", "sources", "products", "product_mappings",
		"product_prices",
	}
	wageJobTables = []string{
		"countries", "sources", "wage_indicators", "staging_wages",
		"wage_history",
	}
)

// ensureTables verifies that every named table exists.
func ensureTables(
	ctx context.Context,
	op db.Operator,
	tables []string,
) error {
	for _, table := range tables {
		exists, err := op.TableExists(ctx, table)
		if err != nil {
			return err
		}
		if !exists {
			return MissingTableError(table)
		}
	}
	return nil
}

// newPriceJob wires the price collection job against a connected
// operator.
func newPriceJob(op db.Operator) collect.Collector {
	return iocollect.NewPriceCollector(
		cfg,
		ioprice.New(&cfg.Pricing),
		iostage.NewProductStore(op.Pool()),
		iosources.New(cfg),
	)
}

// newWageJob wires the wage collection job against a connected
// operator.
func newWageJob(op db.Operator) collect.Collector {
	return iocollect.NewWageCollector(
		iowage.New(&cfg.Wages),
		iostage.NewStager(op.Pool(), cfg.Database.BatchSize),
		iostage.NewReconciler(op.Pool()),
		iosources.New(cfg),
	)
}
