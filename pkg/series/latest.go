// Package series provides recency selection over indicator time
// series. Pure in-memory logic, no I/O.
package series

import (
	"sort"

	"github.com/livingcost/lccollect/pkg/collect"
)

// Latest reduces a time series to one observation per reporting
// entity: the one with the highest reference year. When two records of
// the same entity share the maximal year, the first-encountered record
// in input order wins. This tie-break is defined behavior, not an
// accident of implementation: the stable sort preserves input order
// among equal years, and the first record per key is kept.
//
// The output preserves the sorted order (year descending) and is safe
// to use even when obs is empty or nil.
func Latest(obs []collect.WageObservation) []collect.WageObservation {
	if len(obs) == 0 {
		return nil
	}

	sorted := make([]collect.WageObservation, len(obs))
	copy(sorted, obs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Year > sorted[j].Year
	})

	seen := make(map[string]struct{}, len(sorted))
	res := make([]collect.WageObservation, 0, len(sorted))
	for _, o := range sorted {
		if _, ok := seen[o.Area]; ok {
			continue
		}
		seen[o.Area] = struct{}{}
		res = append(res, o)
	}
	return res
}
