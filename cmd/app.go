// Package cmd implements the CLI application to compute race-day dividends.
package cmd

import (
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tote"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")

	c.Register(&dividendsCmd{}, "pool")
	c.Register(&productsCmd{}, "pool")

	c.Register(&topicCmd{}, "documentation")
}

// Registered reports whether name is a subcommand registered in c.
func Registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", tote.DefaultCurrency, "Currency code whose symbol prefixes dividends (USD, AUD, EUR, ...)")

// Verbose logs what the pipeline ignored.
var Verbose = flag.Bool("v", false, "Log ignored records and the result in use")

// printMarkdown renders md for the terminal. If the terminal renderer cannot
// be set up, the raw markdown is printed instead.
func printMarkdown(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
