package cli

import (
	"github.com/spf13/cobra"

	"linefold"
)

// newCompactCmd creates the compact command, which renders one brace
// block per line.
func newCompactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compact [flags] [path ...]",
		Short: "Render one brace block per line",
		Long: `Compact collapses every top-level { ... } block of an input onto its
own line, preserving the separators between blocks and the indentation
in front of the first block. Input without any balanced block is simply
joined onto a single line.

Examples:
  linefold compact rules.json
  linefold compact < fragments.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			return run(cmd.Context(), args, extensions(cmd, cfg), linefold.CompactBlocks)
		},
	}
}
