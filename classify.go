package tote

import "slices"

// Bets returns the bets of records, in input order.
func Bets(records []Record) []Bet {
	var bets []Bet
	for _, r := range records {
		if bet, ok := r.Bet(); ok {
			bets = append(bets, bet)
		}
	}
	return bets
}

// FirstResult returns the first result of records. Any later result is ignored.
// ok is false if there is no result at all.
func FirstResult(records []Record) (result Result, ok bool) {
	for _, r := range records {
		if res, isResult := r.Result(); isResult {
			return res, true
		}
	}
	return Result{}, false
}

// ByProduct returns the bets placed on product p.
func ByProduct(bets []Bet, p Product) []Bet {
	return Select(bets, func(b Bet) bool { return b.product == p })
}

// Rule decides whether a bet is a winning one.
type Rule func(Bet) bool

// Select returns the bets for which rule holds, in order.
func Select(bets []Bet, rule Rule) []Bet {
	var selected []Bet
	for _, b := range bets {
		if rule(b) {
			selected = append(selected, b)
		}
	}
	return selected
}

// WinRule holds for bets on the winner of result.
func WinRule(result Result) Rule {
	return func(b Bet) bool { return b.selection == result.first }
}

// PlaceRule holds for bets on the given placement. Place bets are evaluated
// once per placement, each evaluation paying an independent dividend.
func PlaceRule(placement string) Rule {
	return func(b Bet) bool { return b.selection == placement }
}

// ExactaRule holds for bets naming the first two runners in the exact finishing order.
func ExactaRule(result Result) Rule {
	want := []string{result.first, result.second}
	return func(b Bet) bool { return slices.Equal(b.Selections(), want) }
}
