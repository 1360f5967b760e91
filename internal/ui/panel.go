package ui

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

// Panel draws a framed box around lines using the current theme.
func Panel(lines []string) {
	fmt.Print(PanelString(lines))
}

// PanelString is Panel without the printing, for tests and callers that
// compose output themselves.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := len([]rune(stripANSI(ln))); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		vis := len([]rune(stripANSI(s)))
		if vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}

	var b strings.Builder
	b.WriteString(t.CornerTL + strings.Repeat(t.H, maxw+2) + t.CornerTR + "\n")
	for _, ln := range lines {
		b.WriteString(t.V + " " + pad(ln) + " " + t.V + "\n")
	}
	b.WriteString(t.CornerBL + strings.Repeat(t.H, maxw+2) + t.CornerBR + "\n")
	return b.String()
}

func Fail(msg string) { fmt.Fprintln(os.Stderr, C(fgRed, "✖ "+msg)) }
