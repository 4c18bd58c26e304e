// Package finance holds the pure settlement math: per-load revenue breakdowns,
// the pre-delivery COD decision, and driver pay. Nothing here touches storage
// and nothing here returns an error; malformed numeric input degrades to zero
// because the billing screens must render whatever data entry produced.
package finance

import "math"

// Round rounds a dollar amount to cents. Every intermediate aggregate is
// rounded before it is combined further; totals drift by cents otherwise.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// amount sanitizes a raw numeric field. NaN and infinities read as zero,
// matching the treat-missing-as-zero policy for unfilled form fields.
func amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
