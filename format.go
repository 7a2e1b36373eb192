package tote

import "strings"

// Line is one payout: a product, its winning selections and the dividend.
type Line struct {
	Product    Product
	Selections []string
	Dividend   Amount
}

// Label returns the product label, "Win", "Place" or "Exacta".
func (l Line) Label() string { return l.Product.Label() }

// String returns the canonical payout line, for instance "Win:1:$1.28".
func (l Line) String() string {
	return Format(l.Label(), l.Selections, l.Dividend)
}

// Display is like String but prefixes the dividend with the symbol of currency.
func (l Line) Display(currency string) string {
	return strings.Join([]string{l.Label(), strings.Join(l.Selections, SelectionSeparator), l.Dividend.Display(currency)}, FieldSeparator)
}

// Format renders a payout line "<label>:<selections>:$<dividend>".
func Format(label string, selections []string, dividend Amount) string {
	return strings.Join([]string{label, strings.Join(selections, SelectionSeparator), DefaultSymbol + dividend.String()}, FieldSeparator)
}

// MarshalJSON writes the line as an object with a stable field order. The
// dividend is written as its string form since JSON has no NaN or Infinity.
func (l Line) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("product", l.Label())
	w.Append("selections", l.Selections)
	w.Append("dividend", l.Dividend.String())
	return w.MarshalJSON()
}
