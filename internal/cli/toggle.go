package cli

import (
	"github.com/spf13/cobra"

	"linefold"
)

// newToggleCmd creates the toggle command, which flips each input
// between single-line and multi-line layout.
func newToggleCmd() *cobra.Command {
	var (
		commaFirst bool
		maxWidth   int
		tabWidth   int
	)

	cmd := &cobra.Command{
		Use:   "toggle [flags] [path ...]",
		Short: "Toggle between single-line and multi-line layout",
		Long: `Toggle flips the layout of each input: multi-line text collapses onto a
single line, single-line text expands at its brackets, commas, and
semicolons. Empty input passes through unchanged.

With --max-width, text is left multi-line when collapsing it would
produce a line wider than the given number of display columns.

Examples:
  echo '{ "name": "Alice", "age": 30 }' | linefold toggle
  linefold toggle --comma-first snippet.json
  linefold toggle --max-width 100 config/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			flags := cmd.Flags()
			if !flags.Changed("comma-first") {
				commaFirst = cfg.CommaFirst
			}
			if !flags.Changed("max-width") {
				maxWidth = cfg.MaxWidth
			}
			if !flags.Changed("tab-width") {
				tabWidth = cfg.TabWidth
			}

			opts := linefold.Options{CommaOnNewLine: commaFirst}
			logger := loggerFromContext(cmd.Context())
			op := func(s string) string {
				return guardedToggle(s, opts, maxWidth, tabWidth, logger)
			}
			return run(cmd.Context(), args, extensions(cmd, cfg), op)
		},
	}

	cmd.Flags().BoolVar(&commaFirst, "comma-first", false, "start new lines with the comma when expanding")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "do not collapse onto lines wider than this many columns (0 = no limit)")
	cmd.Flags().IntVar(&tabWidth, "tab-width", defaultConfig.TabWidth, "tab width for column measurement")

	return cmd
}
