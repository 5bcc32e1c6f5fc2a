package linefold

import "strings"

// Layout classifies how a buffer is laid out.
type Layout int

const (
	// SingleLine means the trimmed buffer contains no line break.
	SingleLine Layout = iota

	// MultiLine means the trimmed buffer contains at least one line break.
	MultiLine
)

// String returns "single-line" or "multi-line".
func (l Layout) String() string {
	if l == MultiLine {
		return "multi-line"
	}
	return "single-line"
}

// DetectLayout reports whether s lays out on one line or several.
// Leading and trailing whitespace is ignored, so a buffer whose only
// line breaks surround the content is still SingleLine, as is an empty
// or whitespace-only buffer.
func DetectLayout(s string) Layout {
	if strings.ContainsAny(strings.TrimSpace(s), "\r\n") {
		return MultiLine
	}
	return SingleLine
}

// Separator marks a position at which Expand inserts a line break.
type Separator struct {
	// Index is the byte offset of the separator character.
	Index int

	// IsComma records whether the character at Index is a comma, the one
	// separator whose break placement is configurable.
	IsComma bool
}

// Separators scans s left to right and returns every position that
// qualifies as a line-break point, in strictly ascending index order.
// A position qualifies when it holds an opening bracket, a comma or
// semicolon, a closing bracket not immediately followed by a comma or
// semicolon, or any character immediately preceding a closing bracket.
// The last two rules together put a break both before and after a run
// of closing brackets. Characters inside quoted strings never qualify.
// Each index is reported at most once, and IsComma depends only on the
// character at the index, not on which rule qualified it.
func Separators(s string) []Separator {
	var seps []Separator

	inString := false
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			if ch == quote {
				inString = false
			}
			continue
		}
		if isQuote(ch) {
			inString = true
			quote = ch
			continue
		}

		var next byte
		hasNext := i+1 < len(s)
		if hasNext {
			next = s[i+1]
		}

		if isSeparator(ch, next, hasNext) {
			seps = append(seps, Separator{Index: i, IsComma: ch == ','})
		}
	}

	return seps
}

// isSeparator reports whether the character at a position qualifies as
// a line-break point, given the character that follows it.
func isSeparator(ch, next byte, hasNext bool) bool {
	switch {
	case isOpenBracket(ch):
		return true
	case isCloseBracket(ch) && hasNext && next != ',' && next != ';':
		return true
	case hasNext && isCloseBracket(next):
		return true
	case ch == ',' || ch == ';':
		return true
	}
	return false
}

// Block is a balanced top-level brace span. Open and Close are the byte
// offsets of the '{' and of its matching '}'.
type Block struct {
	Open  int
	Close int
}

// Blocks scans s left to right and returns every top-level balanced
// brace span, in the order opened. Nested braces are absorbed into the
// enclosing span, braces inside quoted strings are invisible, and an
// unmatched '{' produces no span. Returned spans never overlap.
func Blocks(s string) []Block {
	var blocks []Block

	inString := false
	var quote byte
	depth := 0
	start := -1

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inString {
			if ch == quote {
				inString = false
			}
			continue
		}

		switch {
		case isQuote(ch):
			inString = true
			quote = ch
		case ch == '{':
			if depth == 0 {
				start = i
			}
			depth++
		case ch == '}':
			depth--
			if depth == 0 && start >= 0 {
				blocks = append(blocks, Block{Open: start, Close: i})
				start = -1
			}
		}
	}

	return blocks
}

// Quote tracking is a plain toggle on the three quote characters; it has
// no notion of backslash escaping. An escaped quote inside a string ends
// string mode early, and a string left open swallows the rest of the
// buffer. Both scans share the rule so separator and block discovery
// always agree on what is inside a string.
func isQuote(ch byte) bool { return ch == '\'' || ch == '"' || ch == '`' }

func isOpenBracket(ch byte) bool { return ch == '{' || ch == '[' || ch == '(' }

func isCloseBracket(ch byte) bool { return ch == '}' || ch == ']' || ch == ')' }
