package tote

// Total returns the sum of the stakes of bets, 0 if there are none.
// A NaN stake makes the total NaN.
func Total(bets []Bet) float64 {
	total := 0.
	for _, b := range bets {
		total += b.stake
	}
	return total
}

// Dividend computes the payout per unit staked on a winning selection.
//
// all is the whole product pool, winning the bets that hold the winning
// selection. The commission is taken from the pool, the rest is split across
// the policy divisor and then across the winning stakes.
//
// When no bet wins the division is by zero and the dividend is not finite.
// It is returned as is.
func Dividend(all, winning []Bet, policy Policy) Amount {
	pool := Total(all)
	perUnitPool := policy.NetPool(pool)
	winningPool := Total(winning)
	return Round2(perUnitPool / winningPool)
}
