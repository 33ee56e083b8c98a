// Package iocollect implements the schedulable collection jobs. Each
// collector wires sources, stores and reference data into one Run
// method; per-item faults are logged and absorbed so a bad product or
// indicator never aborts the rest of the cycle.
package iocollect

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/config"
)

type priceCollector struct {
	cfg   *config.Config
	src   collect.PriceSource
	store collect.ProductStore
	refs  collect.References
}

// NewPriceCollector creates the price collection job. Each run walks
// the cross product of mapped products and configured regions and
// appends one history row per resolved price.
func NewPriceCollector(
	cfg *config.Config,
	src collect.PriceSource,
	store collect.ProductStore,
	refs collect.References,
) collect.Collector {
	return &priceCollector{cfg: cfg, src: src, store: store, refs: refs}
}

func (pc *priceCollector) Run(ctx context.Context) error {
	runID := uuid.New().String()
	start := time.Now()

	regions, err := pc.refs.Regions()
	if err != nil {
		return err
	}
	mappings, err := pc.store.Mappings(ctx, pc.cfg.Pricing.SourceID)
	if err != nil {
		return err
	}

	slog.Info("Starting price collection", "run", runID,
		"products", len(mappings), "regions", len(regions))

	bar := pb.Full.Start(len(mappings) * len(regions))
	bar.Set("prefix", "Collecting prices: ")
	bar.Set(pb.CleanOnFinish, true)

	var inserted, skipped, missing, failed int
	for _, m := range mappings {
		for _, region := range regions {
			if err = ctx.Err(); err != nil {
				bar.Finish()
				return err
			}
			bar.Increment()

			quote, err := pc.src.Fetch(ctx, m.ExternalID, region.Domain)
			if err != nil {
				failed++
				slog.Warn("Price lookup failed",
					"run", runID, "product", m.Name,
					"domain", region.Domain, "error", err)
				continue
			}
			if quote == nil {
				missing++
				continue
			}

			currency := quote.Currency
			if currency == "" {
				currency = region.DefaultCurrency
			}

			ok, err := pc.store.InsertPrice(ctx, collect.PriceInsert{
				ProductID: m.ProductID,
				CountryID: region.CountryID,
				SourceID:  pc.cfg.Pricing.SourceID,
				Value:     quote.Value,
				Currency:  currency,
			})
			if err != nil {
				failed++
				slog.Warn("Price insert failed",
					"run", runID, "product", m.Name,
					"domain", region.Domain, "error", err)
				continue
			}
			if ok {
				inserted++
			} else {
				skipped++
			}
		}
	}
	bar.Finish()

	duration := time.Since(start)
	slog.Info("Price collection complete", "run", runID,
		"inserted", inserted, "skipped", skipped,
		"missing", missing, "failed", failed,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Price collection complete
Prices recorded: <em>%s</em>, already recorded today: %s,
unavailable: %s, failed: %s. Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(inserted)),
		humanize.Comma(int64(skipped)),
		humanize.Comma(int64(missing)),
		humanize.Comma(int64(failed)),
		gnfmt.TimeString(duration.Seconds()),
	)

	return nil
}
