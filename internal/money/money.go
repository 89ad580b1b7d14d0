// Package money converts between the boundary representation of
// monetary values (plain JSON numbers with two-decimal precision) and
// the decimal type persisted by the store. Prices never pass through a
// binary float on the way to or from storage, so two-decimal values
// round-trip exactly.
package money

import "github.com/shopspring/decimal"

func init() {
	// Prices cross the API boundary as numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// FromFloat converts a boundary value into a two-decimal amount.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}

// FromInt converts a whole currency amount.
func FromInt(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

// ToFloat converts an amount back to the boundary representation.
func ToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// IsPositive reports whether the amount is strictly greater than zero.
func IsPositive(d decimal.Decimal) bool {
	return d.Sign() > 0
}
