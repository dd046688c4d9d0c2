package engine

import "math"

// DollarsToCents converts a decimal dollar amount to integer cents,
// rounding half away from zero. Inputs are already rounded to 2 decimal
// places at the mutation boundary; the math.Round here only absorbs
// float64 representation noise (e.g. 10.01 * 100 = 1000.9999...).
func DollarsToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// CentsToDollars converts integer cents back to a dollar amount.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
