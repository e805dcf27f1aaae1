// Package money holds the fixed-point arithmetic used for every price that
// can end up in a persisted total. Amounts are decimal values with two digits
// of precision; binary floats are never part of an accumulation.
package money

import "github.com/shopspring/decimal"

// Quantize rounds an amount to 2 decimal places, half away from zero.
// Prices are non-negative, so this is round-half-up.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Add combines two amounts exactly. Adding already-quantized values never
// introduces error, so quantizing once after a chain of Adds equals
// quantizing after every step.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

func Zero() decimal.Decimal {
	return decimal.Zero
}

// Format renders the fixed two-decimal wire representation, e.g. "9.99".
func Format(d decimal.Decimal) string {
	return Quantize(d).StringFixed(2)
}

func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
