// Package linefold provides layout transformations for structured,
// delimiter-separated text such as JSON-like objects, arrays, and argument
// lists: collapsing a multi-line buffer onto a single line, expanding a
// single-line buffer at its separators, toggling between the two, and
// compacting a sequence of brace blocks to one block per line.
//
// The transformations are lexical. A single left-to-right scan classifies
// characters while tracking quoted-string context ('\'', '"', '`') and brace
// nesting; no syntax tree is built and the input is never validated.
// Brackets, commas, and semicolons inside quoted strings are invisible to
// every operation.
//
// The operations are:
//   - Collapse: trim the buffer and strip line breaks and tabs
//   - Expand: insert a line break at every separator position
//   - Toggle: dispatch to Collapse or Expand based on the detected layout
//   - CompactBlocks: render each top-level brace block on its own line
//
// All operations are pure functions over immutable strings and are safe
// to call concurrently. They never fail: malformed input degrades
// gracefully, so an unmatched brace yields no block and an unclosed quote
// suppresses detection in the rest of the buffer.
// Quote tracking has no backslash-escape awareness, so an escaped quote
// inside a string ends string mode early.
//
// Outputs are not re-indented; callers wanting pretty-printed multi-line
// text run a formatter over the result.
//
// Basic usage:
//
//	out := linefold.Toggle(`{ "name": "Alice", "age": 30 }`, linefold.Options{})
//
//	// Break before commas instead of after.
//	out = linefold.Expand(line, linefold.Options{CommaOnNewLine: true})
//
//	// One block per line.
//	out = linefold.CompactBlocks(config)
package linefold
