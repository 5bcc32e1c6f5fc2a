package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// configFile is the file name searched for when --config is not given.
const configFile = "linefold.toml"

// config holds the command defaults read from linefold.toml. A flag set
// on the command line overrides the corresponding config value.
type config struct {
	// CommaFirst starts new lines with the comma when expanding, instead
	// of leaving the comma at the end of the previous line.
	CommaFirst bool `toml:"comma_first"`

	// MaxWidth refuses to collapse onto a line wider than this many
	// display columns. 0 disables the limit.
	MaxWidth int `toml:"max_width"`

	// TabWidth is the width of a tab character for column measurement.
	// 0 selects the built-in default.
	TabWidth int `toml:"tab_width"`

	// Extensions lists the file extensions (without leading dot) that
	// directory walks consider.
	Extensions []string `toml:"extensions"`
}

// defaultConfig mirrors the built-in flag defaults.
var defaultConfig = config{
	TabWidth:   4,
	Extensions: []string{"json"},
}

// loadConfig returns the effective config. With an empty path the file
// is discovered by walking upward from the working directory; a missing
// file is not an error and yields the defaults. An explicit path that
// cannot be read or parsed is an error.
func loadConfig(path string, logger *log.Logger) (config, error) {
	cfg := defaultConfig

	if path == "" {
		found, ok, err := findConfig(".")
		if err != nil {
			return config{}, err
		}
		if !ok {
			return cfg, nil
		}
		path = found
		logger.Debugf("using config %s", path)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if cfg.MaxWidth < 0 {
		return config{}, fmt.Errorf("%s: max_width must not be negative", path)
	}
	if cfg.TabWidth < 0 {
		return config{}, fmt.Errorf("%s: tab_width must not be negative", path)
	}
	if cfg.TabWidth == 0 {
		cfg.TabWidth = defaultConfig.TabWidth
	}

	return cfg, nil
}

// findConfig walks upward from startDir looking for a linefold.toml.
func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// withConfig returns a new context with the given config attached.
func withConfig(ctx context.Context, cfg config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to the
// defaults.
func configFromContext(ctx context.Context) config {
	if cfg, ok := ctx.Value(configKey).(config); ok {
		return cfg
	}
	return defaultConfig
}
