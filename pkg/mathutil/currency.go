// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/itpenciles/deal-engine/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// RoundWhole rounds a value to whole currency units. Projection rows are
// emitted in whole units; intermediate computation stays unrounded.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// SafePercentOf returns value/total expressed as a percentage, or 0 when
// total is zero or negative. Ratio metrics degrade to 0 rather than
// propagating Inf or NaN.
func SafePercentOf(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total * constants.PercentageMultiplier
}
