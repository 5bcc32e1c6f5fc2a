// Package cli implements the linefold command-line interface.
//
// The CLI exposes one subcommand per layout operation: collapse, expand,
// toggle, and compact. Every command reads stdin and writes stdout when
// invoked without paths, and rewrites files in place otherwise. Defaults
// such as comma placement and the width guard can come from an optional
// linefold.toml discovered by walking upward from the working directory.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// and the loaded config are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"     // semantic version (e.g., "v1.2.3")
	commit  = "none"    // git commit SHA
	date    = "unknown" // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// typically called by the main package with values injected via ldflags
// at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the linefold CLI and returns an error if any command
// fails. The root command wires up the subcommands, loads the optional
// config file, and attaches a logger to the context (info level by
// default, debug with --verbose).
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "linefold",
		Short: "linefold toggles structured text between single-line and multi-line layouts",
		Long: `linefold transforms structured, delimiter-separated text such as JSON
objects, arrays, and argument lists: collapse joins a buffer onto one
line, expand breaks it at brackets, commas, and semicolons, toggle picks
whichever of the two applies, and compact renders one brace block per
line.

Without paths a command filters stdin to stdout. With paths it rewrites
files in place; directories process their matching files, and a trailing
/... recurses (e.g. "linefold toggle config/...").`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			cfg, err := loadConfig(configPath, logger)
			if err != nil {
				return err
			}

			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("linefold %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to linefold.toml (default: search upward from the working directory)")
	root.PersistentFlags().String("ext", "json", "comma-separated extensions considered by directory walks")

	root.AddCommand(newCollapseCmd())
	root.AddCommand(newExpandCmd())
	root.AddCommand(newToggleCmd())
	root.AddCommand(newCompactCmd())

	return root.ExecuteContext(ctx)
}

// extensions resolves the directory-walk extension filter: the --ext
// flag when set, the config file value otherwise.
func extensions(cmd *cobra.Command, cfg config) []string {
	flags := cmd.Root().PersistentFlags()
	if flags.Changed("ext") {
		v, err := flags.GetString("ext")
		if err == nil {
			return parseExts(v)
		}
	}
	return cfg.Extensions
}
