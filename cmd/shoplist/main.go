package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/shoplist/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "classic", "output theme (classic|mono)")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	code := cli.Run(args, cli.Options{
		Theme:   *theme,
		NoColor: *noColor,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
