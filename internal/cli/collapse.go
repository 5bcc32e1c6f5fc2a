package cli

import (
	"github.com/spf13/cobra"
)

// newCollapseCmd creates the collapse command, which joins each input
// onto a single line.
func newCollapseCmd() *cobra.Command {
	var (
		maxWidth int
		tabWidth int
	)

	cmd := &cobra.Command{
		Use:   "collapse [flags] [path ...]",
		Short: "Join text onto a single line",
		Long: `Collapse trims each input and strips every line break and tab, leaving
a single line. Spaces are kept, so inline spacing survives.

With --max-width, input is left untouched when the collapsed line would
exceed the given number of display columns.

Examples:
  linefold collapse < snippet.json
  linefold collapse --max-width 120 testdata/...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			flags := cmd.Flags()
			if !flags.Changed("max-width") {
				maxWidth = cfg.MaxWidth
			}
			if !flags.Changed("tab-width") {
				tabWidth = cfg.TabWidth
			}

			logger := loggerFromContext(cmd.Context())
			op := func(s string) string {
				return guardedCollapse(s, maxWidth, tabWidth, logger)
			}
			return run(cmd.Context(), args, extensions(cmd, cfg), op)
		},
	}

	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "do not collapse onto lines wider than this many columns (0 = no limit)")
	cmd.Flags().IntVar(&tabWidth, "tab-width", defaultConfig.TabWidth, "tab width for column measurement")

	return cmd
}
