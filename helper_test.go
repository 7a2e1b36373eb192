package tote

import "math"

// sameFloat compares floats, considering NaN equal to itself.
func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}

// sameBet compares bets, considering NaN stakes equal.
func sameBet(a, b Bet) bool {
	return a.product == b.product && a.selection == b.selection && sameFloat(a.stake, b.stake)
}

// parseBets is a helper for tests to parse bets from raw lines.
func parseBets(lines ...string) []Bet { return Bets(ParseRecords(lines)) }
