// Package tote computes pari-mutuel dividends for a small race-day pool.
//
// Input is a sequence of colon delimited records, bets and a race result:
//
//	Bet:W:1:100
//	Bet:E:1,2:20
//	Result:1:2:3
//
// The package is a stateless pipeline:
//   - Parsing: every raw line becomes a Record, tagged as a Bet, a Result or
//     an unknown kind that the rest of the pipeline ignores.
//   - Classification: bets are split by Product and matched against the
//     authoritative (first) Result with the product's winning Rule.
//   - Pool arithmetic: the stakes of a product pool are summed, the
//     commission is taken, the net pool is shared across the divisor and the
//     winning stakes, and the dividend is rounded to two places.
//   - Formatting: one line per payout, "Win:1:$1.28".
//
// Process runs the whole pipeline for the three products and returns the
// five payout lines in a fixed order: Win, Place for each of the three
// placements, and Exacta.
//
// This package serves as the foundational logic for the `tote` command-line
// tool.
package tote
