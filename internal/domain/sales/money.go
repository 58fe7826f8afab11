package sales

import (
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the consumption tax rate applied when a store has no
// rate of its own. Stores carry their own rate so a future jurisdiction
// change does not require touching the math.
var DefaultTaxRate = decimal.New(10, -2) // 0.10

// All rounding in this package is round-half-away-from-zero at the integer
// boundary (decimal.Round semantics). Amounts are non-negative in valid
// input, so this is equivalent to "round half up".

// ExTax converts a tax-inclusive amount to its tax-exclusive equivalent:
// round(amount / (1 + rate)).
func ExTax(amountInclusive int64, rate decimal.Decimal) int64 {
	divisor := decimal.New(1, 0).Add(rate)
	return decimal.NewFromInt(amountInclusive).Div(divisor).Round(0).IntPart()
}

// AvgSpend returns the average spend per customer, rounded to the nearest
// integer. Zero customers yields zero rather than an error.
func AvgSpend(sales, customers int64) int64 {
	if customers <= 0 {
		return 0
	}
	return decimal.NewFromInt(sales).Div(decimal.NewFromInt(customers)).Round(0).IntPart()
}

// avgDaily returns the average per-day amount over the given day count,
// rounded to the nearest integer. Zero days yields zero.
func avgDaily(total, days int64) int64 {
	if days <= 0 {
		return 0
	}
	return decimal.NewFromInt(total).Div(decimal.NewFromInt(days)).Round(0).IntPart()
}

// wholePercent returns round(numer/denom*100) as an integer percentage,
// or 0 when denom is zero.
func wholePercent(numer, denom int64) int64 {
	if denom == 0 {
		return 0
	}
	return decimal.NewFromInt(numer).
		Div(decimal.NewFromInt(denom)).
		Mul(decimal.NewFromInt(100)).
		Round(0).IntPart()
}

// ratioPercent returns numer/denom*100 rounded to one decimal place,
// or 0 when denom is zero. Used for the pacing figures, which are
// displayed with a single decimal.
func ratioPercent(numer, denom decimal.Decimal) float64 {
	if denom.IsZero() {
		return 0
	}
	v, _ := numer.Div(denom).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return v
}
