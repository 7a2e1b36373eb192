package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/tote"
	"github.com/etnz/tote/renderer"
	"github.com/google/subcommands"
)

type productsCmd struct {
	html bool
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "show the commission and divisor of each product" }
func (*productsCmd) Usage() string {
	return `tote products [-html] [<product>...]

  Prints the fixed pool policy of the given products (W, P, E or Win, Place,
  Exacta), of all of them by default.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Print the table as an HTML fragment.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	products, err := parseProducts(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := c.run(os.Stdout, products); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run writes the policy table of products to w.
func (c *productsCmd) run(w io.Writer, products []tote.Product) error {
	doc := renderer.ProductsMarkdown(products...)
	if !c.html {
		printMarkdown(w, doc)
		return nil
	}
	html, err := renderer.HTML(doc)
	if err != nil {
		return err
	}
	fmt.Fprint(w, html)
	return nil
}

func parseProducts(args []string) ([]tote.Product, error) {
	products := make([]tote.Product, 0, len(args))
	for _, arg := range args {
		p, err := tote.ParseProduct(arg)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
