package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/triptych/internal/cli"
	"github.com/idilsaglam/triptych/internal/config"
)

func main() {
	// Config file and environment provide the flag defaults; flags win.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	quantity := flag.Int("n", cfg.Quantity, "number of items to fetch")
	baseURL := flag.String("api", cfg.APIBaseURL, "data provider base URL")
	timeout := flag.Duration("timeout", cfg.Timeout, "per-request timeout (0 = none)")
	theme := flag.String("theme", cfg.Theme, "table theme: classic, neon or mono")
	noColor := flag.Bool("no-color", cfg.NoColor, "disable colored output")
	verbose := flag.Bool("v", false, "log fetch progress to stderr")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{
		Quantity: *quantity,
		BaseURL:  *baseURL,
		Timeout:  *timeout,
		Theme:    *theme,
		NoColor:  *noColor,
		Verbose:  *verbose,
	})
	os.Exit(code)
}
