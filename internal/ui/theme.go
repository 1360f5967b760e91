// Package ui renders the non-interactive item table: ANSI themes, a
// framed panel and per-item row formatting.
package ui

import (
	"os"
	"strings"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"

	fgGray    = "\033[90m"
	fgGreen   = "\033[32m"
	fgYellow  = "\033[33m"
	fgBlue    = "\033[34m"
	fgRed     = "\033[31m"
	fgCyan    = "\033[36m"
	fgMagenta = "\033[95m"
)

var (
	forceColor   bool
	disableColor bool
)

func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in the given ANSI color when output is a TTY (or forced).
func C(color, s string) string {
	if disableColor || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

// Theme bundles palette + box borders for the static table. Post, Album
// and User color the three columns of a row.
type Theme struct {
	Title, Muted, Accent, Error            string
	ID, Post, Album, User                  string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
}

var current Theme

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title: fgMagenta, Muted: fgGray, Accent: "\033[96m", Error: fgRed,
			ID: fgGray, Post: fgMagenta, Album: "\033[96m", User: fgYellow,
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
		}
	case "mono":
		disableColor = true
		current = Theme{
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
		}
	default: // classic
		current = Theme{
			Title: bold, Muted: fgGray, Accent: fgBlue, Error: fgRed,
			ID: fgGray, Post: "", Album: fgCyan, User: fgGreen,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
		}
	}
}

// Current exposes what the renderers need.
func Current() Theme { return current }

func init() { SetTheme("classic") }
