// Package renderer renders payouts and the product policies as markdown or HTML reports.
package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/tote"
	md "github.com/nao1215/markdown"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// DividendsMarkdown renders the payout lines as a markdown table, amounts
// prefixed with the symbol of currency.
func DividendsMarkdown(lines []tote.Line, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Dividends")

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.Label(),
			strings.Join(l.Selections, tote.SelectionSeparator),
			l.Dividend.Display(currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Product", "Selections", "Dividend"},
		Rows:   rows,
	})

	if unpaid := countUnpaid(lines); unpaid > 0 {
		doc.PlainText(fmt.Sprintf("%d payout(s) have no winning stake or an unreadable stake.", unpaid))
	}

	return doc.String()
}

func countUnpaid(lines []tote.Line) (n int) {
	for _, l := range lines {
		if !l.Dividend.IsFinite() {
			n++
		}
	}
	return
}

// ProductsMarkdown renders the fixed policy table of products, of all of them
// if none is given.
func ProductsMarkdown(products ...tote.Product) string {
	if len(products) == 0 {
		products = tote.Products
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Products")

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		policy := tote.Policies[p]
		rows = append(rows, []string{
			policy.Label,
			string(p),
			policy.Commission.String(),
			fmt.Sprintf("%d", policy.Divisor),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Product", "Code", "Commission", "Divisor"},
		Rows:   rows,
	})

	return doc.String()
}

// HTML converts a markdown report into an HTML fragment.
func HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := converter.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("error converting markdown to HTML: %w", err)
	}
	return buf.String(), nil
}
