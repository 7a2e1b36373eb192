// Command tote computes the dividends of a race-day pool.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tote/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands are delegated to tote-<subcommand> extensions.
	if sub := flag.Arg(0); sub != "" && !cmd.Registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}
