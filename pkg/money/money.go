// Package money keeps all monetary arithmetic on decimal values with an
// implied two-decimal-place precision. Amounts travel through the rest of
// the code as float64 and must pass IsValid before persistence.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round rounds to two decimal places, half up. Every multiplication or
// division result must pass through here before it is used further.
func Round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// IsValid reports whether v carries no fractional cents.
func IsValid(v float64) bool {
	d := decimal.NewFromFloat(v)
	return d.Equal(d.Round(2))
}

// Percent computes v * rate / 100, rounded once to two decimal places.
func Percent(v, rate float64) float64 {
	f, _ := decimal.NewFromFloat(v).
		Mul(decimal.NewFromFloat(rate)).
		Div(hundred).
		Round(2).
		Float64()
	return f
}

// Add returns a + b at two-decimal precision.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Sub returns a - b at two-decimal precision.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Equal reports whether a and b agree within tolerance.
func Equal(a, b, tolerance float64) bool {
	diff := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs()
	return diff.LessThan(decimal.NewFromFloat(tolerance))
}
