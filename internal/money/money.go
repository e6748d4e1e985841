// Package money converts decimal currency amounts to and from integer
// minor units (cents). Sums are taken in minor units so that adding many
// fractional totals does not accumulate float error.
package money

import "math"

// ToMinor rounds a decimal amount to the nearest minor unit.
// Halves round away from zero.
func ToMinor(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// minorEpsilon absorbs binary representation error in amount*100.
const minorEpsilon = 1e-6

// IsWholeMinor reports whether amount is a whole number of minor units,
// so ToMinor stores it without rounding.
func IsWholeMinor(amount float64) bool {
	scaled := amount * 100
	return math.Abs(scaled-math.Round(scaled)) < minorEpsilon
}

// FromMinor converts minor units back to a decimal amount.
func FromMinor(minor int64) float64 {
	return float64(minor) / 100
}

// Sum adds decimal amounts in minor units and returns the decimal total.
func Sum(amounts ...float64) float64 {
	var total int64
	for _, a := range amounts {
		total += ToMinor(a)
	}
	return FromMinor(total)
}
