package collect

import (
	"fmt"
	"strings"
)

// ValidateRegions checks region reference configuration before a price
// cycle starts. Invalid reference data is a startup-class fault.
func ValidateRegions(regions []Region) error {
	if len(regions) == 0 {
		return fmt.Errorf("no regions configured")
	}
	seen := make(map[string]struct{}, len(regions))
	for i, r := range regions {
		if r.CountryID <= 0 {
			return fmt.Errorf("region %d: country_id must be positive", i)
		}
		if strings.TrimSpace(r.Domain) == "" {
			return fmt.Errorf("region %d: domain is empty", i)
		}
		if len(r.DefaultCurrency) != 3 ||
			r.DefaultCurrency != strings.ToUpper(r.DefaultCurrency) {
			return fmt.Errorf(
				"region %d: default_currency %q is not a 3-letter uppercase code",
				i, r.DefaultCurrency)
		}
		if _, ok := seen[r.Domain]; ok {
			return fmt.Errorf("region %d: duplicate domain %q", i, r.Domain)
		}
		seen[r.Domain] = struct{}{}
	}
	return nil
}

// ValidateIndicators checks indicator reference configuration before a
// wage cycle starts.
func ValidateIndicators(indicators []Indicator) error {
	if len(indicators) == 0 {
		return fmt.Errorf("no indicators configured")
	}
	seen := make(map[string]struct{}, len(indicators))
	for i, ind := range indicators {
		if strings.TrimSpace(ind.Code) == "" {
			return fmt.Errorf("indicator %d: code is empty", i)
		}
		if ind.SourceID <= 0 {
			return fmt.Errorf(
				"indicator %d: source_id must be positive", i)
		}
		if _, ok := seen[ind.Code]; ok {
			return fmt.Errorf("indicator %d: duplicate code %q", i, ind.Code)
		}
		seen[ind.Code] = struct{}{}
	}
	return nil
}
