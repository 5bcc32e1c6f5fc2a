package cli

import (
	"github.com/spf13/cobra"

	"linefold"
)

// newExpandCmd creates the expand command, which breaks each input
// across multiple lines at its separators.
func newExpandCmd() *cobra.Command {
	var commaFirst bool

	cmd := &cobra.Command{
		Use:   "expand [flags] [path ...]",
		Short: "Break text across lines at its separators",
		Long: `Expand inserts a line break after every opening bracket, comma, and
semicolon, and around closing brackets. With --comma-first the break
moves in front of each comma, so continuation lines start with the
comma.

The result is not re-indented; run a formatter over it if you want
pretty-printed output.

Examples:
  echo '[1, 2, 3]' | linefold expand
  linefold expand --comma-first params.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if !cmd.Flags().Changed("comma-first") {
				commaFirst = cfg.CommaFirst
			}

			opts := linefold.Options{CommaOnNewLine: commaFirst}
			op := func(s string) string {
				return linefold.Expand(s, opts)
			}
			return run(cmd.Context(), args, extensions(cmd, cfg), op)
		},
	}

	cmd.Flags().BoolVar(&commaFirst, "comma-first", false, "start new lines with the comma")

	return cmd
}
