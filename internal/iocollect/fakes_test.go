package iocollect_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/livingcost/lccollect/pkg/collect"
)

var errBoom = errors.New("boom")

// fakeRefs serves fixed reference data.
type fakeRefs struct {
	regions    []collect.Region
	indicators []collect.Indicator
	err        error
}

func (f *fakeRefs) Regions() ([]collect.Region, error) {
	return f.regions, f.err
}

func (f *fakeRefs) Indicators() ([]collect.Indicator, error) {
	return f.indicators, f.err
}

// fakePriceSource returns quotes keyed by "externalKey/domain". Keys
// in the faults set return an error; missing keys return (nil, nil).
type fakePriceSource struct {
	quotes map[string]*collect.PriceQuote
	faults map[string]bool
	calls  []string
}

func (f *fakePriceSource) Fetch(
	_ context.Context, externalKey, domain string,
) (*collect.PriceQuote, error) {
	key := externalKey + "/" + domain
	f.calls = append(f.calls, key)
	if f.faults[key] {
		return nil, errBoom
	}
	return f.quotes[key], nil
}

// fakeProductStore records inserted rows and can simulate per-day
// duplicates and insert faults.
type fakeProductStore struct {
	mappings    []collect.ProductMapping
	mappingsErr error
	inserted    []collect.PriceInsert
	duplicates  map[string]bool
	insertErr   error
}

func (f *fakeProductStore) Mappings(
	_ context.Context, _ int,
) ([]collect.ProductMapping, error) {
	return f.mappings, f.mappingsErr
}

func (f *fakeProductStore) InsertPrice(
	_ context.Context, row collect.PriceInsert,
) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	key := fmt.Sprintf("%d/%d", row.ProductID, row.CountryID)
	if f.duplicates[key] {
		return false, nil
	}
	f.inserted = append(f.inserted, row)
	return true, nil
}

// fakeWageSource serves observation series keyed by indicator code.
type fakeWageSource struct {
	series map[string][]collect.WageObservation
	faults map[string]bool
}

func (f *fakeWageSource) Fetch(
	_ context.Context, code string,
) ([]collect.WageObservation, error) {
	if f.faults[code] {
		return nil, errBoom
	}
	return f.series[code], nil
}

// fakeStager remembers the last staged batch.
type fakeStager struct {
	staged [][]collect.StagingRow
	err    error
}

func (f *fakeStager) Stage(
	_ context.Context, rows []collect.StagingRow,
) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.staged = append(f.staged, rows)
	return int64(len(rows)), nil
}

// fakeReconciler reports a fixed insert count per call.
type fakeReconciler struct {
	inserted int64
	err      error
	sources  []int
}

func (f *fakeReconciler) Reconcile(
	_ context.Context, sourceID int,
) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.sources = append(f.sources, sourceID)
	return f.inserted, nil
}
