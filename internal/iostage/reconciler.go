package iostage

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/livingcost/lccollect/pkg/collect"
)

// reconcileQuery resolves staged rows against the reference tables and
// merges them into history. Staged values are in local currency units,
// so the history currency is the joined country's base_currency, not
// the staged classification tag. Staged rows whose country or
// indicator has no reference row do not join and are silently left
// behind; rows that collide with an already-recorded (country,
// indicator, year) triple are skipped by the conflict clause.
const reconcileQuery = `
INSERT INTO wage_history
  (id_country, id_indicator, id_source, wage_value, currency,
   reference_year)
SELECT c.id_country, i.id_indicator, $1, s.wage_value, c.base_currency,
       s.reference_year
  FROM staging_wages s
  JOIN countries c ON c.iso_3_code = s.iso_3_code
  JOIN wage_indicators i ON i.original_code = s.indicator_code
ON CONFLICT (id_country, id_indicator, reference_year) DO NOTHING
`

type reconciler struct {
	pool *pgxpool.Pool
}

// NewReconciler creates a Reconciler over the given pool.
func NewReconciler(pool *pgxpool.Pool) collect.Reconciler {
	return &reconciler{pool: pool}
}

// Reconcile runs the join-insert as one statement, attributing the new
// history rows to sourceID. The returned count is the number of rows
// actually inserted; duplicates and unresolvable rows are excluded.
func (r *reconciler) Reconcile(
	ctx context.Context,
	sourceID int,
) (int64, error) {
	tag, err := r.pool.Exec(ctx, reconcileQuery, sourceID)
	if err != nil {
		return 0, ReconcileError(err)
	}

	n := tag.RowsAffected()
	slog.Info("Reconciled wage history", "inserted", n,
		"source", sourceID)
	return n, nil
}
