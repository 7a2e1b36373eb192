package tote

import "errors"

// ErrNoResult is returned when the input holds no Result record. Dividends
// are undefined without a finishing order.
var ErrNoResult = errors.New("no race result in records")

// Compute returns the payout lines of records in the fixed order Win,
// Place for the first, second and third placements, and Exacta.
//
// Only the first Result record is used. Records of unknown kind are ignored.
func Compute(records []Record) ([]Line, error) {
	result, ok := FirstResult(records)
	if !ok {
		return nil, ErrNoResult
	}
	bets := Bets(records)

	lines := make([]Line, 0, 5)
	lines = append(lines, winLine(bets, result))
	lines = append(lines, placeLines(bets, result)...)
	lines = append(lines, exactaLine(bets, result))
	return lines, nil
}

// Process parses raw lines and returns the payout lines as strings.
func Process(raw []string) ([]string, error) {
	lines, err := Compute(ParseRecords(raw))
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out, nil
}

// payout computes the line of product p, for a given winning rule.
func payout(bets []Bet, p Product, rule Rule, selections ...string) Line {
	pool := ByProduct(bets, p)
	return Line{
		Product:    p,
		Selections: selections,
		Dividend:   Dividend(pool, Select(pool, rule), Policies[p]),
	}
}

func winLine(bets []Bet, result Result) Line {
	return payout(bets, Win, WinRule(result), result.first)
}

func placeLines(bets []Bet, result Result) []Line {
	lines := make([]Line, 0, 3)
	for _, placement := range result.Placements() {
		lines = append(lines, payout(bets, Place, PlaceRule(placement), placement))
	}
	return lines
}

func exactaLine(bets []Bet, result Result) Line {
	return payout(bets, Exacta, ExactaRule(result), result.first, result.second)
}
