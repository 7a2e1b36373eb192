package tote

import (
	"math"
	"strconv"
	"strings"
)

// FieldSeparator separates the fields of a raw record.
const FieldSeparator = ":"

// SelectionSeparator separates the runners of a multi-runner selection (Exacta).
const SelectionSeparator = ","

// Kind is the kind of a raw record, decided by its first field.
type Kind int

const (
	KindUnknown Kind = iota
	KindBet
	KindResult
)

func (k Kind) String() string {
	switch k {
	case KindBet:
		return "Bet"
	case KindResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// parseKind maps the discriminator field onto a Kind. It is case sensitive.
func parseKind(field string) Kind {
	switch field {
	case "Bet":
		return KindBet
	case "Result":
		return KindResult
	default:
		return KindUnknown
	}
}

// Bet is a single wager on a product.
type Bet struct {
	product   Product
	selection string
	stake     float64
}

// NewBet creates a new Bet.
func NewBet(product Product, selection string, stake float64) Bet {
	return Bet{product: product, selection: selection, stake: stake}
}

// Product returns the product the bet was placed on.
func (b Bet) Product() Product { return b.product }

// Selection returns the raw selection, a comma separated pair for Exacta bets.
func (b Bet) Selection() string { return b.selection }

// Selections returns the selection split into its runners.
func (b Bet) Selections() []string { return strings.Split(b.selection, SelectionSeparator) }

// Stake returns the amount staked. It is NaN if the stake field could not be read.
func (b Bet) Stake() float64 { return b.stake }

func (b Bet) String() string {
	return strings.Join([]string{"Bet", string(b.product), b.selection, strconv.FormatFloat(b.stake, 'f', -1, 64)}, FieldSeparator)
}

// Result is the finishing order of a race.
type Result struct {
	first, second, third string
}

// NewResult creates a new Result.
func NewResult(first, second, third string) Result {
	return Result{first: first, second: second, third: third}
}

func (r Result) First() string  { return r.first }
func (r Result) Second() string { return r.second }
func (r Result) Third() string  { return r.third }

// Placements returns the three placed runners, in finishing order.
func (r Result) Placements() []string { return []string{r.first, r.second, r.third} }

func (r Result) String() string {
	return strings.Join([]string{"Result", r.first, r.second, r.third}, FieldSeparator)
}

// Record is a parsed raw line. Exactly one of Bet or Result is meaningful,
// according to Kind; records of KindUnknown carry neither.
type Record struct {
	raw    string
	kind   Kind
	bet    Bet
	result Result
}

// Raw returns the line the record was parsed from.
func (r Record) Raw() string { return r.raw }

// Kind returns the record kind.
func (r Record) Kind() Kind { return r.kind }

// Bet returns the bet carried by the record, ok is false if it is not a bet.
func (r Record) Bet() (bet Bet, ok bool) { return r.bet, r.kind == KindBet }

// Result returns the result carried by the record, ok is false if it is not a result.
func (r Record) Result() (result Result, ok bool) { return r.result, r.kind == KindResult }

// ParseRecord parses a raw line. It never fails: a line whose first field is
// neither "Bet" nor "Result" is returned as a KindUnknown record.
//
// Missing fields are read as empty strings, and a stake that does not start
// with an integer is read as NaN.
func ParseRecord(line string) Record {
	fields := strings.Split(line, FieldSeparator)
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	rec := Record{raw: line, kind: parseKind(fields[0])}
	switch rec.kind {
	case KindBet:
		rec.bet = Bet{
			product:   Product(field(1)),
			selection: field(2),
			stake:     parseStake(field(3)),
		}
	case KindResult:
		rec.result = Result{first: field(1), second: field(2), third: field(3)}
	}
	return rec
}

// ParseRecords parses every line, in order.
func ParseRecords(lines []string) []Record {
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		records = append(records, ParseRecord(line))
	}
	return records
}

// parseStake reads the leading base-10 integer of s.
//
// Leading white space and a sign are accepted, and reading stops at the first
// non digit, so "12abc" is 12. If there is no digit at all, the stake is NaN.
// TODO: report malformed stakes instead of poisoning the pool once callers
// can handle a parse error.
func parseStake(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return math.NaN()
	}
	// the only possible error is a range error, and then v is ±Inf.
	v, _ := strconv.ParseFloat(s[:end], 64)
	return v
}
