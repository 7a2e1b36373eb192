package tote

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency whose symbol prefixes dividends.
const DefaultCurrency = "USD"

// DefaultSymbol prefixes dividends in canonical payout lines, and stands for
// any currency code that is not known.
const DefaultSymbol = "$"

// Amount is a dividend amount, per unit staked.
//
// It is a plain float64 so that the degenerate dividends (no winning stake,
// unreadable stakes) survive as ±Inf and NaN down to the payout line.
type Amount float64

// Round2 rounds v to two decimal places, half away from zero.
//
// The rounding applies to the shortest decimal representation of v, so that
// 1.275 rounds to 1.28 even though its binary value is slightly below.
// Non finite values are returned unchanged.
func Round2(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount(v)
	}
	return Amount(decimal.NewFromFloat(v).Round(2).InexactFloat64())
}

func (a Amount) Float64() float64 { return float64(a) }

// IsFinite reports whether the amount is a real payout.
func (a Amount) IsFinite() bool {
	v := float64(a)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// String returns the natural digits of the amount: 1.28, 1.3, 2.
// Non finite amounts are "Infinity", "-Infinity" and "NaN".
//
// Digits are never written in exponent form: a huge dividend such as 1e25
// is written in full, "10000000000000000000000000".
func (a Amount) String() string {
	v := float64(a)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(v).String()
}

// Display returns the amount prefixed with the symbol of the currency.
// Unknown currency codes fall back to DefaultSymbol.
func (a Amount) Display(currency string) string {
	return Symbol(currency) + a.String()
}

// Symbol returns the symbol of currency code: "$" for USD, "A$" for AUD,
// "€" for EUR. It is DefaultSymbol for unknown codes.
func Symbol(currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil || cur.Grapheme == "" {
		return DefaultSymbol
	}
	return cur.Grapheme
}
