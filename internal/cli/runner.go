// Package cli dispatches subcommands and wires the fetcher, store and
// views together.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/idilsaglam/triptych/internal/collection"
	"github.com/idilsaglam/triptych/internal/fetch"
	"github.com/idilsaglam/triptych/internal/logging"
	"github.com/idilsaglam/triptych/internal/tui"
	"github.com/idilsaglam/triptych/internal/ui"
)

// Options tune behavior from root flags (over config/env defaults).
type Options struct {
	Quantity int           // batch size for the initial load
	BaseURL  string        // data provider root
	Timeout  time.Duration // per-request timeout, 0 = none
	Theme    string        // static table theme
	NoColor  bool          // disable ANSI color output
	Verbose  bool          // log fetch progress to stderr
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string, opt Options) int {
	ui.SetColorForcing(false, opt.NoColor)
	ui.SetTheme(opt.Theme)

	if len(args) == 0 {
		args = []string{"browse"}
	}
	cmd := args[0]

	if opt.Quantity < 0 {
		ui.Fail(fmt.Sprintf("item count must be >= 0, got %d", opt.Quantity))
		return 2
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "browse":
		return doBrowse(opt)

	case "ls":
		return doList(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`triptych - browse post/album/user triples from a mock API

Usage:
  triptych [flags] <subcommand>

Subcommands:
  browse             Interactive table (default): rename and delete rows
  ls                 Fetch once and print the table
  help               Show this help

Flags:
  -n int             Number of items to fetch
  -api string        Data provider base URL
  -timeout duration  Per-request timeout (0 = none)
  -theme string      Table theme: classic, neon or mono
  -no-color          Disable colored output
  -v                 Log fetch progress to stderr

Edits live in memory only; quitting discards them.
`)
}

// newStore builds the provider client and the collection store that
// owns the session's items.
func newStore(opt Options, log logging.Logger) *collection.Store {
	client := fetch.NewClient(opt.BaseURL,
		fetch.WithTimeout(opt.Timeout),
		fetch.WithLogger(log.With("component", "fetch")),
	)
	return collection.New(client, collection.WithLogger(log.With("component", "collection")))
}

func doBrowse(opt Options) int {
	// The TUI owns the terminal, so logs are dropped unless they can
	// go somewhere harmless.
	log := logging.Logger(logging.Discard())
	if opt.Verbose {
		log = logging.NewText(os.Stderr, slog.LevelDebug)
	}

	store := newStore(opt, log)
	if err := tui.Run(store, opt.Quantity); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options) int {
	level := slog.LevelError
	if opt.Verbose {
		level = slog.LevelDebug
	}
	log := logging.NewText(os.Stderr, level)

	store := newStore(opt, log)
	if err := store.Init(context.Background(), opt.Quantity); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}

	items := store.Items()
	lines := []string{ui.Header(len(items)), ""}
	lines = append(lines, ui.ItemRows(items)...)
	ui.Panel(lines)
	return 0
}
