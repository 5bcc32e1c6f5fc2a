package cli

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"

	"linefold"
)

// lineWidth measures the display width of a single line in columns. Tabs
// advance to the next tab stop; everything else is sized with runewidth,
// so wide runes count as two columns rather than one.
func lineWidth(line string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = defaultConfig.TabWidth
	}

	width := 0
	rest := line
	for {
		seg, tail, found := strings.Cut(rest, "\t")
		width += runewidth.StringWidth(seg)
		if !found {
			return width
		}
		width = (width/tabWidth + 1) * tabWidth
		rest = tail
	}
}

// guardedCollapse collapses s unless the result would exceed maxWidth
// display columns, in which case s comes back unchanged. maxWidth 0
// disables the guard.
func guardedCollapse(s string, maxWidth, tabWidth int, logger *log.Logger) string {
	out := linefold.Collapse(s)
	if maxWidth > 0 {
		if w := lineWidth(out, tabWidth); w > maxWidth {
			logger.Debugf("collapse skipped: line would be %d columns (limit %d)", w, maxWidth)
			return s
		}
	}
	return out
}

// guardedToggle toggles s, applying the width guard to the collapsing
// direction only; expanding is never refused.
func guardedToggle(s string, opts linefold.Options, maxWidth, tabWidth int, logger *log.Logger) string {
	if maxWidth > 0 && linefold.DetectLayout(s) == linefold.MultiLine {
		return guardedCollapse(s, maxWidth, tabWidth, logger)
	}
	return linefold.Toggle(s, opts)
}
