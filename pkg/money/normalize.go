// Package money provides normalization of locale-formatted price
// strings into canonical float values. The package is pure: no I/O,
// no currency or sign inference.
package money

import (
	"strconv"
	"strings"
)

// Normalize converts a display price such as "$199.00" or "R$ 1.200,50"
// into a canonical float (199.00, 1200.50). The second return value is
// false when the input is empty or cannot be interpreted as a number.
//
// Separator disambiguation:
//   - both comma and period present: period is a thousands separator and
//     is removed, comma becomes the decimal point ("1.200,50" → 1200.50);
//   - only comma present: comma becomes the decimal point ("150,00" → 150.00);
//   - only period present: the string is already in canonical form.
func Normalize(display string) (float64, bool) {
	if display == "" {
		return 0, false
	}

	// Keep only digits, commas and periods.
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return 0, false
	}

	hasComma := strings.Contains(clean, ",")
	hasPeriod := strings.Contains(clean, ".")

	switch {
	case hasComma && hasPeriod:
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasComma:
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	res, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return res, true
}
