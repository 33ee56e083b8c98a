// Package collect defines the domain types and contracts of the
// collection-and-reconciliation pipeline. Implementations of the
// contracts live in internal/io* packages; this package stays pure.
package collect

import (
	"context"
)

// Region describes one market to collect prices for: the internal
// country id, the domain token understood by the pricing service, and
// the currency assumed when a payload carries none.
type Region struct {
	CountryID       int    `yaml:"country_id"`
	Domain          string `yaml:"domain"`
	DefaultCurrency string `yaml:"default_currency"`
}

// Indicator describes one wage indicator to collect: the external code
// used by the labor-statistics service and the internal source id the
// reconciled rows are attributed to.
type Indicator struct {
	Code        string `yaml:"code"`
	SourceID    int    `yaml:"source_id"`
	Description string `yaml:"description,omitempty"`
}

// PriceQuote is the canonical result of one price lookup.
// Currency is empty when the payload did not supply one; the caller
// substitutes the region's default currency in that case.
type PriceQuote struct {
	Value    float64
	Currency string
}

// WageObservation is one raw record of an indicator time series, after
// structural filtering but before recency selection.
type WageObservation struct {
	// Area is the reporting-entity key, an ISO-3 country code.
	Area string

	// IndicatorCode is the external code of the indicator.
	IndicatorCode string

	// Value is the observed wage in local currency units.
	Value float64

	// Year is the reference period of the observation.
	Year int
}

// StagingRow is a wage observation keyed by external identifiers,
// ready for bulk load into the staging table.
type StagingRow struct {
	ISO3Code      string
	IndicatorCode string
	Value         float64
	Year          int
	Currency      string
}

// ProductMapping pairs an internal product with its external key for
// one source. Produced by joining products with product_mappings.
type ProductMapping struct {
	ProductID  int
	Name       string
	ExternalID string
}

// PriceInsert is one resolved price row destined for product_prices.
type PriceInsert struct {
	ProductID int
	CountryID int
	SourceID  int
	Value     float64
	Currency  string
}

// PriceSource fetches the current price of one external key on one
// region domain. A (nil, nil) result means the source has no usable
// price for the pair; it is an expected outcome, not a fault.
type PriceSource interface {
	Fetch(ctx context.Context, externalKey, domain string) (*PriceQuote, error)
}

// WageSource fetches the whole time series of one indicator across all
// reporting entities. Transport or parse faults fail the entire call.
type WageSource interface {
	Fetch(ctx context.Context, indicatorCode string) ([]WageObservation, error)
}

// ProductStore reads product mappings and writes price history rows.
type ProductStore interface {
	// Mappings lists products that have an external id for the source.
	Mappings(ctx context.Context, sourceID int) ([]ProductMapping, error)

	// InsertPrice adds one history row. Returns false when the row was
	// skipped because an identical (product, country, source, day) row
	// already exists.
	InsertPrice(ctx context.Context, row PriceInsert) (bool, error)
}

// Stager bulk-loads one cycle of wage rows into the staging table.
// The staging table is truncated first; on any fault the whole batch
// is rolled back and the count is 0.
type Stager interface {
	Stage(ctx context.Context, rows []StagingRow) (int64, error)
}

// Reconciler resolves staged rows against reference tables and merges
// them into wage_history. Runs as a single transaction; rows that hit
// the (country, indicator, year) uniqueness constraint are skipped.
type Reconciler interface {
	Reconcile(ctx context.Context, sourceID int) (int64, error)
}

// Collector is one schedulable unit of work. Run never returns an
// error for per-item faults; only job-level faults surface, already
// logged, so callers can decide whether to retry on the next trigger.
type Collector interface {
	Run(ctx context.Context) error
}

// References loads region and indicator reference configuration.
type References interface {
	Regions() ([]Region, error)
	Indicators() ([]Indicator, error)
}
