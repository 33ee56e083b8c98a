// Package iostage implements the Postgres side of the wage pipeline:
// bulk staging, reconciliation into history, and the product store
// used by price collection.
package iostage

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/livingcost/lccollect/pkg/collect"
)

var stagingColumns = []string{
	"iso_3_code", "indicator_code", "wage_value",
	"reference_year", "currency",
}

type stager struct {
	pool      *pgxpool.Pool
	batchSize int
}

// NewStager creates a Stager that loads wage rows into staging_wages
// in batches of batchSize via pgx CopyFrom.
func NewStager(pool *pgxpool.Pool, batchSize int) collect.Stager {
	return &stager{pool: pool, batchSize: batchSize}
}

// Stage truncates staging_wages and bulk-loads the given rows inside a
// single transaction. The truncate and the load commit together; a
// fault in either rolls both back, leaving whatever the table held
// before, and reports 0 rows.
func (s *stager) Stage(
	ctx context.Context,
	rows []collect.StagingRow,
) (int64, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, LoadError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, "TRUNCATE staging_wages RESTART IDENTITY")
	if err != nil {
		return 0, TruncateError(err)
	}

	var total int64
	for i := 0; i < len(rows); i += s.batchSize {
		end := min(i+s.batchSize, len(rows))
		batch := rows[i:end]

		copyRows := make([][]any, len(batch))
		for j, r := range batch {
			copyRows[j] = []any{
				r.ISO3Code, r.IndicatorCode, r.Value, r.Year, r.Currency,
			}
		}

		n, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"staging_wages"},
			stagingColumns,
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return 0, LoadError(err)
		}
		total += n
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, LoadError(err)
	}

	slog.Info("Staged wage rows", "rows", total)
	return total, nil
}
