package iostage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/livingcost/lccollect/pkg/collect"
)

const mappingsQuery = `
SELECT p.id_product, p.name, m.external_id
  FROM products p
  JOIN product_mappings m ON m.id_product = p.id_product
 WHERE m.id_source = $1
 ORDER BY p.id_product
`

// insertPriceQuery relies on the per-day uniqueness constraint: a
// second observation of the same (product, country, source) within one
// day is dropped, which is what makes re-runs idempotent.
const insertPriceQuery = `
INSERT INTO product_prices
  (id_product, id_country, id_source, price_value, currency)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id_product, id_country, id_source, price_date) DO NOTHING
`

type productStore struct {
	pool *pgxpool.Pool
}

// NewProductStore creates a ProductStore over the given pool.
func NewProductStore(pool *pgxpool.Pool) collect.ProductStore {
	return &productStore{pool: pool}
}

func (ps *productStore) Mappings(
	ctx context.Context,
	sourceID int,
) ([]collect.ProductMapping, error) {
	rows, err := ps.pool.Query(ctx, mappingsQuery, sourceID)
	if err != nil {
		return nil, ProductListError(err)
	}
	defer rows.Close()

	var res []collect.ProductMapping
	for rows.Next() {
		var m collect.ProductMapping
		err = rows.Scan(&m.ProductID, &m.Name, &m.ExternalID)
		if err != nil {
			return nil, ProductListError(err)
		}
		res = append(res, m)
	}
	if err = rows.Err(); err != nil {
		return nil, ProductListError(err)
	}

	return res, nil
}

func (ps *productStore) InsertPrice(
	ctx context.Context,
	row collect.PriceInsert,
) (bool, error) {
	tag, err := ps.pool.Exec(ctx, insertPriceQuery,
		row.ProductID, row.CountryID, row.SourceID,
		row.Value, row.Currency,
	)
	if err != nil {
		return false, PriceInsertError(row.ProductID, err)
	}

	return tag.RowsAffected() > 0, nil
}
