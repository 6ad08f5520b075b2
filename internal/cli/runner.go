package cli

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/shoplist/internal/flux"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Theme   string // "classic" or "mono"
	NoColor bool
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	ui.SetColorForcing(false, opt.NoColor)
	ui.SetTheme(opt.Theme)

	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ls":
		return doList()

	case "add":
		if len(a) == 0 {
			ui.Fail("usage: shoplist add <description...>")
			return 2
		}
		return doAdd(strings.Join(a, " "))
	}

	ui.Fail("unknown subcommand: " + cmd)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`shoplist - a shopping list in one terminal session

Usage:
  shoplist [flags] <subcommand> [args]

Subcommands:
  ls                   Browse the list (interactive TUI, 'a' adds items)
  add <description...> Append an item and print the resulting list
  help                 Show this help

Flags:
  -theme <classic|mono>  Output theme
  -no-color              Disable ANSI colors

Examples:
  shoplist ls
  shoplist add chocolate
`)
}

// bootstrap builds the session store and loads the fixed seed through a
// regular dispatch, the same path the UI uses for everything else.
func bootstrap() *flux.Store {
	s := flux.New()
	s.Dispatch(flux.LoadItems(flux.Seed()))
	return s
}

func doList() int {
	if err := runInteractiveList(bootstrap()); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doAdd(description string) int {
	description = strings.TrimSpace(description)
	if description == "" {
		ui.Fail("add: empty description")
		return 2
	}

	s := bootstrap()
	s.Dispatch(flux.AddItem(description))

	printItems(s.GetState())
	ui.OK("added")
	return 0
}

func printItems(items []model.Item) {
	t := ui.Current()
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, ui.C(t.Title, "Shopping list")+ui.C(t.Muted, fmt.Sprintf("  (%d items)", len(items))))
	for _, it := range items {
		lines = append(lines, ui.C(t.Accent, t.Bullet)+" "+it.Description)
	}
	ui.Panel(lines)
}
