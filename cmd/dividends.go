package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/etnz/tote"
	"github.com/etnz/tote/renderer"
	"github.com/google/subcommands"
)

// Output formats of the dividends subcommand.
const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

var formats = []string{formatText, formatJSON, formatMarkdown, formatHTML}

type dividendsCmd struct {
	file     string
	format   string
	jsonpath string
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "compute the dividends of a race-day pool" }
func (*dividendsCmd) Usage() string {
	return `tote dividends [-f <file>] [-format text|json|markdown|html] [-jsonpath <expr>]

  Reads bet and result records and prints the Win, Place and Exacta
  dividends. See 'tote topic input' for the record format.
`
}

func (c *dividendsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "File to read the records from, '-' for the standard input.")
	f.StringVar(&c.format, "format", formatText, "Output format: text, json, markdown or html.")
	f.StringVar(&c.jsonpath, "jsonpath", "", "Read a JSON document and select the records with this JSONPath expression.")
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !slices.Contains(formats, c.format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, valid formats are %v\n", c.format, formats)
		return subcommands.ExitUsageError
	}

	in := io.Reader(os.Stdin)
	if c.file != "-" {
		file, err := os.Open(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening records file %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	if err := c.run(in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, tote.ErrNoResult) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// run reads the records from r and writes the dividends to w.
func (c *dividendsCmd) run(r io.Reader, w io.Writer) error {
	var raw []string
	var err error
	if c.jsonpath != "" {
		raw, err = tote.DecodeRecordsJSON(r, c.jsonpath)
	} else {
		raw, err = tote.DecodeRecords(r)
	}
	if err != nil {
		return err
	}

	records := tote.ParseRecords(raw)
	if *Verbose {
		logRecords(records)
	}

	lines, err := tote.Compute(records)
	if err != nil {
		return fmt.Errorf("error computing dividends: %w", err)
	}

	switch c.format {
	case formatJSON:
		return tote.EncodeLines(w, lines)
	case formatMarkdown:
		printMarkdown(w, renderer.DividendsMarkdown(lines, *currency))
	case formatHTML:
		html, err := renderer.HTML(renderer.DividendsMarkdown(lines, *currency))
		if err != nil {
			return err
		}
		fmt.Fprint(w, html)
	default:
		for _, l := range lines {
			fmt.Fprintln(w, l.Display(*currency))
		}
	}
	return nil
}

// logRecords logs how the records were classified.
func logRecords(records []tote.Record) {
	var bets, results, unknown int
	for _, r := range records {
		switch r.Kind() {
		case tote.KindBet:
			bets++
			if bet, _ := r.Bet(); !bet.Product().IsValid() {
				log.Printf("bet %q is on an unknown product, it is in no pool", r.Raw())
			}
		case tote.KindResult:
			results++
		default:
			unknown++
			log.Printf("ignoring record %q", r.Raw())
		}
	}
	log.Printf("read %d records: %d bets, %d results, %d ignored", len(records), bets, results, unknown)
	if result, ok := tote.FirstResult(records); ok && results > 1 {
		log.Printf("using %q, %d later result(s) ignored", result, results-1)
	}
}
