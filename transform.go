package linefold

import (
	"regexp"
	"strings"
)

// Options configures how Expand places line breaks. The zero value is
// the default behavior.
type Options struct {
	// CommaOnNewLine moves the break in front of a comma separator so
	// the new line starts with the comma. When false, the comma stays at
	// the end of its line and the break follows it.
	CommaOnNewLine bool
}

// stripBreaks removes the characters Collapse strips after trimming.
var stripBreaks = strings.NewReplacer("\r", "", "\n", "", "\t", "")

var (
	breakRuns   = regexp.MustCompile(`[\r\n\t]+`)
	spaceRuns   = regexp.MustCompile(`\s{2,}`)
	afterOpen   = regexp.MustCompile(`\{\s+`)
	beforeClose = regexp.MustCompile(`\s+\}`)
)

// Collapse renders s on a single line: the buffer is trimmed, then every
// carriage return, line feed, and tab is removed. Spaces survive, so the
// result keeps the original inline spacing rather than being reflowed.
// Collapse of its own output is a no-op.
func Collapse(s string) string {
	return stripBreaks.Replace(strings.TrimSpace(s))
}

// Expand renders s across multiple lines by inserting a line break at
// every separator position reported by Separators. The break goes after
// the separator character, except for commas under opts.CommaOnNewLine,
// where it goes before. The usual input is a trimmed single-line buffer
// (Toggle passes one), but any string is accepted; a buffer with no
// separators comes back unchanged.
func Expand(s string, opts Options) string {
	seps := Separators(s)
	if len(seps) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(seps))

	// Separator indices are strictly ascending, so a single forward walk
	// can splice each break without shifting later positions.
	prev := 0
	for _, sep := range seps {
		if opts.CommaOnNewLine && sep.IsComma {
			b.WriteString(s[prev:sep.Index])
			b.WriteByte('\n')
			prev = sep.Index
		} else {
			b.WriteString(s[prev : sep.Index+1])
			b.WriteByte('\n')
			prev = sep.Index + 1
		}
	}
	b.WriteString(s[prev:])

	return b.String()
}

// Toggle flips the layout of s: multi-line buffers collapse to a single
// line and single-line buffers expand at their separators. Empty and
// whitespace-only buffers come back untouched, surrounding whitespace
// and all.
func Toggle(s string, opts Options) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	if DetectLayout(trimmed) == MultiLine {
		return Collapse(trimmed)
	}
	return Expand(trimmed, opts)
}

// CompactBlocks renders each top-level brace block of s on its own line,
// preserving the separators between blocks and the indentation found in
// front of the first block. Block bodies are collapsed to single-spaced
// text with one space kept just inside each brace. A buffer containing
// no balanced block degrades to Collapse of the whole buffer.
func CompactBlocks(s string) string {
	blocks := Blocks(s)
	if len(blocks) == 0 {
		return Collapse(s)
	}

	indent := trailingIndent(s[:blocks[0].Open])

	lines := make([]string, 0, len(blocks))
	for i, blk := range blocks {
		line := indent + compactBlock(s[blk.Open:blk.Close+1])

		stop := len(s)
		if i+1 < len(blocks) {
			stop = blocks[i+1].Open
		}
		line += blockSuffix(s[blk.Close+1 : stop])

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// compactBlock renders one raw block, braces included, single-line and
// single-spaced. The replacements are plain text substitutions: runs of
// whitespace inside quoted strings are collapsed like any other.
func compactBlock(raw string) string {
	out := breakRuns.ReplaceAllString(raw, " ")
	out = spaceRuns.ReplaceAllString(out, " ")
	out = afterOpen.ReplaceAllString(out, "{ ")
	out = beforeClose.ReplaceAllString(out, " }")
	return out
}

// blockSuffix renders the trimmed text between a block and the next one
// (or the buffer end). A comma-led remainder reduces to a bare comma,
// dropping whatever followed the comma; any other non-empty remainder is
// appended verbatim after one space.
func blockSuffix(between string) string {
	t := strings.TrimSpace(between)
	switch {
	case t == "":
		return ""
	case strings.HasPrefix(t, ","):
		return ","
	default:
		return " " + t
	}
}

// trailingIndent returns the run of spaces and tabs ending s.
func trailingIndent(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	return s[i:]
}
