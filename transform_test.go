package linefold_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"linefold"
)

func TestCollapse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "object",
			input: "{\n \"name\": \"Alice\",\n \"age\": 30 \n}",
			want:  `{ "name": "Alice", "age": 30 }`,
		},
		{
			name:  "indent_spaces_survive",
			input: "{\n  \"a\": 1\n}",
			want:  `{  "a": 1}`,
		},
		{
			name:  "plain_text",
			input: "just\nsome\ntext",
			want:  "justsometext",
		},
		{
			name:  "tabs_removed",
			input: "connect(\n\thost,\n\tport\n)",
			want:  "connect(host,port)",
		},
		{name: "crlf", input: "a\r\nb", want: "ab"},
		{name: "surrounding_whitespace_trimmed", input: "  a\tb  ", want: "ab"},
		{name: "empty", input: "", want: ""},
		{name: "whitespace_only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := linefold.Collapse(tt.input); got != tt.want {
				t.Errorf("Collapse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseIdempotent(t *testing.T) {
	inputs := []string{
		"{\n \"name\": \"Alice\",\n \"age\": 30 \n}",
		"just\nsome\ntext",
		"  already flat  ",
		"",
	}

	for _, in := range inputs {
		once := linefold.Collapse(in)
		if twice := linefold.Collapse(once); twice != once {
			t.Errorf("Collapse(%q) not idempotent: %q then %q", in, once, twice)
		}
	}
}

func TestCollapseRemovesAllBreaks(t *testing.T) {
	inputs := []string{
		"{\r\n\t\"a\": 1,\r\n\t\"b\": 2\r\n}",
		"a\rb\nc\td",
		"\n\n\n",
	}

	for _, in := range inputs {
		got := linefold.Collapse(in)
		if strings.ContainsAny(got, "\n\r\t") {
			t.Errorf("Collapse(%q) = %q still contains break characters", in, got)
		}
		if linefold.DetectLayout(got) != linefold.SingleLine {
			t.Errorf("Collapse(%q) = %q is not single-line", in, got)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  linefold.Options
		want  string
	}{
		{
			name:  "object",
			input: `{ "name": "Alice", "age": 30 }`,
			want:  "{\n \"name\": \"Alice\",\n \"age\": 30 \n}",
		},
		{
			name:  "array",
			input: "[1,2]",
			want:  "[\n1,\n2\n]",
		},
		{
			name:  "array_comma_first",
			input: "[1,2]",
			opts:  linefold.Options{CommaOnNewLine: true},
			want:  "[\n1\n,2\n]",
		},
		{
			name:  "trailing_comma",
			input: "[1,]",
			want:  "[\n1,\n]",
		},
		{
			// Comma-first placement applies to a trailing comma too.
			name:  "trailing_comma_comma_first",
			input: "[1,]",
			opts:  linefold.Options{CommaOnNewLine: true},
			want:  "[\n1\n,]",
		},
		{
			name:  "adjacent_openers",
			input: "{[",
			want:  "{\n[\n",
		},
		{
			name:  "semicolon",
			input: "a; b",
			want:  "a;\n b",
		},
		{name: "no_separators", input: "plain text", want: "plain text"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linefold.Expand(tt.input, tt.opts)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestExpandProducesMultiLine(t *testing.T) {
	inputs := []string{
		`{ "name": "Alice", "age": 30 }`,
		"[1,2]",
		"f(a; b)",
	}

	for _, in := range inputs {
		got := linefold.Expand(in, linefold.Options{})
		if linefold.DetectLayout(got) != linefold.MultiLine {
			t.Errorf("Expand(%q) = %q is not multi-line", in, got)
		}
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  linefold.Options
		want  string
	}{
		{
			name:  "single_to_multi",
			input: `{ "name": "Alice", "age": 30 }`,
			want:  "{\n \"name\": \"Alice\",\n \"age\": 30 \n}",
		},
		{
			name:  "multi_to_single",
			input: "{\n \"name\": \"Alice\",\n \"age\": 30 \n}",
			want:  `{ "name": "Alice", "age": 30 }`,
		},
		{
			name:  "surrounding_whitespace_trimmed",
			input: "  [1,2]  ",
			want:  "[\n1,\n2\n]",
		},
		{
			name:  "carriage_return_counts_as_multi",
			input: "a\rb",
			want:  "ab",
		},
		{name: "empty", input: "", want: ""},
		{name: "whitespace_only", input: "   ", want: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linefold.Toggle(tt.input, tt.opts)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestToggleRoundTrip(t *testing.T) {
	inputs := []string{
		`{ "name": "Alice", "age": 30 }`,
		"[1,2]",
		`[{"a":1},{"b":2}]`,
	}

	for _, in := range inputs {
		opts := linefold.Options{}
		there := linefold.Toggle(in, opts)
		if linefold.DetectLayout(there) != linefold.MultiLine {
			t.Fatalf("Toggle(%q) = %q did not change layout", in, there)
		}
		if back := linefold.Toggle(there, opts); back != in {
			t.Errorf("Toggle round trip of %q came back as %q", in, back)
		}
	}
}

func TestCompactBlocks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name: "rule_list",
			input: "{\n  \"name\": \"content\",\n  \"regexp\": \"*\"\n},\n" +
				"{\n  \"name\": \"filename\",\n  \"regexp\": \"*\"\n},",
			want: "{ \"name\": \"content\", \"regexp\": \"*\" },\n" +
				"{ \"name\": \"filename\", \"regexp\": \"*\" },",
		},
		{
			name:  "no_blocks_collapses",
			input: "just\nsome\ntext",
			want:  "justsometext",
		},
		{
			name:  "indent_carried_to_every_line",
			input: "  {\n \"a\": 1\n},\n{\n \"b\": 2\n}",
			want:  "  { \"a\": 1 },\n  { \"b\": 2 }",
		},
		{
			name:  "tab_indent",
			input: "\t{\n\"a\": 1\n}",
			want:  "\t{ \"a\": 1 }",
		},
		{
			// Only trailing whitespace of the prefix counts as
			// indentation. Anything before it is dropped.
			name:  "non_whitespace_prefix_dropped",
			input: "rules = {\n \"a\": 1\n}",
			want:  " { \"a\": 1 }",
		},
		{
			// Trailing content that starts with a comma is reduced to
			// the comma alone.
			name:  "comment_after_comma_dropped",
			input: "{\n\"a\": 1\n}, // first\n{\n\"b\": 2\n}",
			want:  "{ \"a\": 1 },\n{ \"b\": 2 }",
		},
		{
			name:  "keyword_between_blocks_kept",
			input: "{a} AND {b}",
			want:  "{a} AND\n{b}",
		},
		{
			name:  "semicolon_suffix",
			input: "{a};",
			want:  "{a} ;",
		},
		{
			// Whitespace runs collapse everywhere, inside quotes too.
			name:  "spaces_inside_strings_collapse",
			input: "{ \"a  b\": 1 }",
			want:  "{ \"a b\": 1 }",
		},
		{
			name:  "tight_braces_padded",
			input: "{\n\t\"a\": 1\n}",
			want:  "{ \"a\": 1 }",
		},
		{name: "empty_braces", input: "{}", want: "{}"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := linefold.CompactBlocks(tt.input)
			if diff := cmp.Diff(got, tt.want); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestCompactBlocksLineCount(t *testing.T) {
	inputs := []string{
		"{\n\"a\": 1\n},\n{\n\"b\": 2\n},\n{\n\"c\": 3\n}",
		"{a}, {b}",
		"{x}",
	}

	for _, in := range inputs {
		n := len(linefold.Blocks(in))
		if n == 0 {
			t.Fatalf("Blocks(%q) found no spans, input is wrong for this test", in)
		}
		got := linefold.CompactBlocks(in)
		if lines := strings.Count(got, "\n") + 1; lines != n {
			t.Errorf("CompactBlocks(%q) = %q has %d lines, want %d", in, got, lines, n)
		}
	}
}
