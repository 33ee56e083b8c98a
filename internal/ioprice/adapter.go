// Package ioprice implements the price source contract against the
// Canopy GraphQL pricing service.
package ioprice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/config"
	"github.com/livingcost/lccollect/pkg/money"
)

// requestTimeout bounds every price lookup; an expired request is a
// hard fault for that (key, region) pair only.
const requestTimeout = 30 * time.Second

// productQuery asks for the title and price of one external key on
// one region domain.
const productQuery = `
query GetProductData($asin: String!, $domain: AmazonDomain) {
  amazonProduct(input: { asinLookup: { asin: $asin, domain: $domain } }) {
    title
    price {
      display
      value
      currency
    }
  }
}
`

type adapter struct {
	cfg    *config.PricingConfig
	client *resty.Client
}

// New creates a PriceSource backed by the configured GraphQL endpoint.
func New(cfg *config.PricingConfig) collect.PriceSource {
	client := resty.New().
		SetTimeout(requestTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("API-KEY", cfg.APIKey)
	return &adapter{cfg: cfg, client: client}
}

// graphQLRequest is the POST body of one lookup.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// graphQLResponse mirrors the fields of the payload this adapter
// consumes; everything else in the response is ignored.
type graphQLResponse struct {
	Data struct {
		AmazonProduct *struct {
			Title string `json:"title"`
			Price *struct {
				Display  string   `json:"display"`
				Value    *float64 `json:"value"`
				Currency string   `json:"currency"`
			} `json:"price"`
		} `json:"amazonProduct"`
	} `json:"data"`
}

// Fetch queries the current price of externalKey on the given region
// domain. Absence of price data and any transport or parse fault all
// yield a nil quote: one failed pair never aborts a collection cycle.
// Currency is left empty when the payload carries none; the caller
// substitutes the region default.
func (a *adapter) Fetch(
	ctx context.Context,
	externalKey, domain string,
) (*collect.PriceQuote, error) {
	body := graphQLRequest{
		Query: productQuery,
		Variables: map[string]any{
			"asin":   externalKey,
			"domain": domain,
		},
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(a.cfg.Endpoint)
	if err != nil {
		slog.Warn("Price lookup failed",
			"externalKey", externalKey, "domain", domain, "error", err)
		return nil, nil
	}

	var res graphQLResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		slog.Warn("Price payload is not valid JSON",
			"externalKey", externalKey, "domain", domain, "error", err)
		return nil, nil
	}

	product := res.Data.AmazonProduct
	if product == nil || product.Price == nil {
		slog.Debug("No price data for product",
			"externalKey", externalKey, "domain", domain)
		return nil, nil
	}

	// Prefer the numeric value; fall back to normalizing the display
	// string when the value is absent.
	price := product.Price
	var value float64
	switch {
	case price.Value != nil:
		value = *price.Value
	default:
		v, ok := money.Normalize(price.Display)
		if !ok {
			slog.Debug("Price display string is unusable",
				"externalKey", externalKey, "domain", domain,
				"display", price.Display)
			return nil, nil
		}
		value = v
	}
	if value <= 0 {
		return nil, nil
	}

	return &collect.PriceQuote{
		Value:    value,
		Currency: price.Currency,
	}, nil
}
