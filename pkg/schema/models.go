// Package schema provides database schema models for lccollect.
// Column names are aligned with the historical collector schema so
// reference data curated outside this service keeps working.
package schema

import (
	"time"
)

// Country is a reference row describing one tracked country.
// Curated by reference-data management; read-only to the collectors.
type Country struct {
	// ID is the internal country identifier.
	ID int `gorm:"column:id_country;primaryKey"`

	// ISO3Code is the ISO 3166-1 alpha-3 code used to join staged
	// wage rows to internal ids.
	ISO3Code string `gorm:"column:iso_3_code;size:3;uniqueIndex;not null"`

	// Name is the human-readable country name.
	Name string `gorm:"column:name;size:100;not null"`

	// BaseCurrency is the local currency attributed to reconciled
	// wage rows.
	BaseCurrency string `gorm:"column:base_currency;size:3;not null"`
}

func (Country) TableName() string { return "countries" }

// Source is an external data provider (pricing API, labor-statistics
// API) referenced by history rows.
type Source struct {
	ID   int    `gorm:"column:id_source;primaryKey"`
	Name string `gorm:"column:name;size:100;uniqueIndex;not null"`
}

func (Source) TableName() string { return "sources" }

// Product is a tracked product. Curated by reference-data management.
type Product struct {
	ID   int    `gorm:"column:id_product;primaryKey"`
	Name string `gorm:"column:name;size:255;not null"`
}

func (Product) TableName() string { return "products" }

// ProductMapping links a product to its external identifier on one
// source. A product may carry one mapping per source, which is what
// lets several external providers feed the same product history.
type ProductMapping struct {
	ID        int    `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int    `gorm:"column:id_product;not null;uniqueIndex:uq_product_mappings_source"`
	SourceID  int    `gorm:"column:id_source;not null;uniqueIndex:uq_product_mappings_source"`
	// ExternalID is the source-side key, e.g. an ASIN.
	ExternalID string `gorm:"column:external_id;size:64;not null"`

	Product Product `gorm:"foreignKey:ProductID"`
	Source  Source  `gorm:"foreignKey:SourceID"`
}

func (ProductMapping) TableName() string { return "product_mappings" }

// WageIndicator maps an external indicator code to an internal id.
type WageIndicator struct {
	ID           int    `gorm:"column:id_indicator;primaryKey"`
	OriginalCode string `gorm:"column:original_code;size:64;uniqueIndex;not null"`
	Description  string `gorm:"column:description;size:255"`
}

func (WageIndicator) TableName() string { return "wage_indicators" }

// ProductPrice is one point-in-time price observation. Rows are only
// inserted, never updated or deleted; the uq_product_prices_day
// constraint makes re-runs within the same day idempotent.
type ProductPrice struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int     `gorm:"column:id_product;not null;uniqueIndex:uq_product_prices_day"`
	CountryID int     `gorm:"column:id_country;not null;uniqueIndex:uq_product_prices_day"`
	SourceID  int     `gorm:"column:id_source;not null;uniqueIndex:uq_product_prices_day"`
	Value     float64 `gorm:"column:price_value;not null"`
	Currency  string  `gorm:"column:currency;size:3;not null"`
	// PriceDate is the observation day, part of the uniqueness key.
	PriceDate time.Time `gorm:"column:price_date;type:date;not null;default:CURRENT_DATE;uniqueIndex:uq_product_prices_day"`

	CollectedAt time.Time `gorm:"column:collected_at;not null;default:CURRENT_TIMESTAMP"`
}

func (ProductPrice) TableName() string { return "product_prices" }

// StagingWage is the transient pre-reconciliation form of a wage
// observation, keyed by external identifiers. The table holds at most
// one collection cycle and is truncated before every load.
type StagingWage struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`
	ISO3Code      string  `gorm:"column:iso_3_code;size:3;not null"`
	IndicatorCode string  `gorm:"column:indicator_code;size:64;not null"`
	Value         float64 `gorm:"column:wage_value;not null"`
	ReferenceYear int     `gorm:"column:reference_year;not null"`
	Currency      string  `gorm:"column:currency;size:3;not null"`
}

func (StagingWage) TableName() string { return "staging_wages" }

// WageHistory is one reconciled wage observation. At most one row
// exists per (country, indicator, reference year); later observations
// for an already-recorded year are discarded, never overwritten.
type WageHistory struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	CountryID   int     `gorm:"column:id_country;not null;uniqueIndex:uq_wage_history_period"`
	IndicatorID int     `gorm:"column:id_indicator;not null;uniqueIndex:uq_wage_history_period"`
	SourceID    int     `gorm:"column:id_source;not null"`
	Value       float64 `gorm:"column:wage_value;not null"`
	Currency    string  `gorm:"column:currency;size:3;not null"`
	ReferenceYear int   `gorm:"column:reference_year;not null;uniqueIndex:uq_wage_history_period"`

	CollectedAt time.Time `gorm:"column:collected_at;not null;default:CURRENT_TIMESTAMP"`
}

func (WageHistory) TableName() string { return "wage_history" }
