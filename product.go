package tote

import "fmt"

// Product is a bet product, identified by its one letter code in Bet records.
type Product string

const (
	Win    Product = "W"
	Place  Product = "P"
	Exacta Product = "E"
)

// Products lists the known products in payout order.
var Products = []Product{Win, Place, Exacta}

// ParseProduct parses a product code ("W", "P", "E") or a product label ("Win", "Place", "Exacta").
func ParseProduct(s string) (Product, error) {
	for _, p := range Products {
		if s == string(p) || s == Policies[p].Label {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown product %q, valid products are W, P or E", s)
}

// IsValid reports whether p is one of the known products.
func (p Product) IsValid() bool {
	_, ok := Policies[p]
	return ok
}

// Label returns the product name used in payout lines, or the raw code for unknown products.
func (p Product) Label() string {
	if policy, ok := Policies[p]; ok {
		return policy.Label
	}
	return string(p)
}

// Policy holds the fixed pool parameters of a product.
type Policy struct {
	Label      string  // name in payout lines
	Commission Percent // taken from the pool before any payout
	Divisor    int     // number of ways the net pool is split (one per placement for Place)
}

// NetPool returns what is left of pool once the commission is taken, shared across the divisor.
func (p Policy) NetPool(pool float64) float64 {
	return pool * (100 - float64(p.Commission)) / 100 / float64(p.Divisor)
}

// Policies is the fixed policy table of every product.
var Policies = map[Product]Policy{
	Win:    {Label: "Win", Commission: 15, Divisor: 1},
	Place:  {Label: "Place", Commission: 12, Divisor: 3},
	Exacta: {Label: "Exacta", Commission: 18, Divisor: 1},
}
