package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/semaphore"
)

// transform is one text-layout operation applied to a whole buffer.
type transform func(string) string

// run applies op to stdin when args is empty, writing the result to
// stdout, and otherwise to every file named by args, rewriting each file
// in place when the transform changes it. A directory argument processes
// matching files at its top level; a trailing /... recurses.
func run(ctx context.Context, args, exts []string, op transform) error {
	if len(args) == 0 {
		return filterStdin(op)
	}
	return processPaths(ctx, args, exts, op)
}

// filterStdin reads all of stdin, transforms it, and writes the result
// to stdout.
func filterStdin(op transform) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}
	if _, err := os.Stdout.WriteString(op(string(input))); err != nil {
		return fmt.Errorf("failed to write stdout: %w", err)
	}
	return nil
}

// processPaths walks every path argument and transforms matching files
// in parallel, bounded by a weighted semaphore sized to the CPU count.
// Explicitly named files are always processed; directory walks only
// consider files whose extension is in exts. Failures are logged and
// counted rather than aborting the batch; a cancelled ctx aborts it and
// is returned as the context's own error.
func processPaths(ctx context.Context, args, exts []string, op transform) error {
	logger := loggerFromContext(ctx)

	var (
		wg       sync.WaitGroup
		failures atomic.Int64
	)
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for _, arg := range args {
		path := arg
		recursive := strings.HasSuffix(arg, "/...")
		if recursive {
			path = strings.TrimSuffix(arg, "/...")
		}

		info, err := os.Stat(path)
		if err != nil {
			logger.Errorf("failed to stat %s: %v", path, err)
			failures.Add(1)
			continue
		}
		isDir := info.IsDir()

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			switch {
			case fi.IsDir():
				if p != path && isDir && !recursive {
					return filepath.SkipDir
				}
			case p == path || hasExt(p, exts):
				if err := sem.Acquire(ctx, 1); err != nil {
					return err
				}
				wg.Add(1)
				go func(p string) {
					defer sem.Release(1)
					defer wg.Done()
					if err := processFile(p, op, logger); err != nil {
						logger.Errorf("%v", err)
						failures.Add(1)
					}
				}(p)
			}
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			logger.Errorf("failed to walk %s: %v", path, err)
			failures.Add(1)
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("failed to process %d file(s)", n)
	}
	return nil
}

// processFile rewrites path with op applied. Files the transform leaves
// unchanged are not rewritten.
func processFile(path string, op transform, logger *log.Logger) error {
	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	output := op(string(input))
	if output == string(input) {
		logger.Debugf("%s unchanged", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(output), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debugf("rewrote %s", path)
	return nil
}

// hasExt reports whether path has one of the given extensions, listed
// without their leading dot.
func hasExt(path string, exts []string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return slices.Contains(exts, ext)
}

// parseExts splits a comma-separated extension list, dropping empties
// and leading dots.
func parseExts(s string) []string {
	var exts []string
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), ".")
		if part != "" {
			exts = append(exts, part)
		}
	}
	return exts
}
