package iocollect

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/series"
)

// localCurrencyUnits marks staged wage values as expressed in the
// reporting country's own currency, matching the structural filter
// applied by the wage source. It is a staging classification only;
// the concrete currency of a history row comes from the country's
// base_currency during reconciliation.
const localCurrencyUnits = "LCU"

type wageCollector struct {
	src        collect.WageSource
	stager     collect.Stager
	reconciler collect.Reconciler
	refs       collect.References
}

// NewWageCollector creates the wage collection job. Each run fetches
// the configured indicators one by one, keeps the most recent
// observation per country, stages the cycle and reconciles it into
// history. A failing indicator is logged and skipped.
func NewWageCollector(
	src collect.WageSource,
	stager collect.Stager,
	reconciler collect.Reconciler,
	refs collect.References,
) collect.Collector {
	return &wageCollector{
		src: src, stager: stager, reconciler: reconciler, refs: refs,
	}
}

func (wc *wageCollector) Run(ctx context.Context) error {
	runID := uuid.New().String()
	start := time.Now()

	indicators, err := wc.refs.Indicators()
	if err != nil {
		return err
	}

	slog.Info("Starting wage collection", "run", runID,
		"indicators", len(indicators))

	var succeeded, failed int
	var totalInserted int64
	for _, ind := range indicators {
		if err = ctx.Err(); err != nil {
			return err
		}

		inserted, err := wc.collectIndicator(ctx, ind)
		if err != nil {
			failed++
			slog.Warn("Indicator cycle failed", "run", runID,
				"indicator", ind.Code, "error", err)
			continue
		}

		succeeded++
		totalInserted += inserted
		gn.Info("Indicator <em>%s</em>: %d new history rows",
			ind.Code, inserted)
	}

	duration := time.Since(start)
	slog.Info("Wage collection complete", "run", runID,
		"succeeded", succeeded, "failed", failed,
		"inserted", totalInserted,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)

	if failed > 0 && succeeded == 0 {
		return AllIndicatorsFailedError(failed)
	}
	return nil
}

// collectIndicator runs one indicator through the full pipeline:
// fetch, recency selection, staging, reconciliation.
func (wc *wageCollector) collectIndicator(
	ctx context.Context,
	ind collect.Indicator,
) (int64, error) {
	obs, err := wc.src.Fetch(ctx, ind.Code)
	if err != nil {
		return 0, err
	}

	latest := series.Latest(obs)
	if len(latest) == 0 {
		slog.Warn("Indicator has no usable observations",
			"indicator", ind.Code)
		return 0, nil
	}

	rows := make([]collect.StagingRow, len(latest))
	for i, o := range latest {
		rows[i] = collect.StagingRow{
			ISO3Code:      o.Area,
			IndicatorCode: o.IndicatorCode,
			Value:         o.Value,
			Year:          o.Year,
			Currency:      localCurrencyUnits,
		}
	}

	staged, err := wc.stager.Stage(ctx, rows)
	if err != nil {
		return 0, err
	}
	slog.Info("Indicator staged", "indicator", ind.Code,
		"countries", staged)

	return wc.reconciler.Reconcile(ctx, ind.SourceID)
}
