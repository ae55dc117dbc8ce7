// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"golly2kt/internal/config"
	"golly2kt/internal/emitter"
	"golly2kt/internal/issue"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// globMeta are the characters that make an argument a glob pattern.
const globMeta = "*?[{"

// runGenerate prints the Kotlin listing for args. Without args it prints the
// usage line to stdout and exits 1.
func runGenerate(cmd *cobra.Command, app *App, flags *rootFlags, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(app.stdout, "Usage: %s <file1> <file2> ...\n", cmd.Root().Name())
		return &ExitError{Code: 1}
	}

	cfg, err := app.Config.Load(cmd.Context(), config.LoadOptions{ConfigFilePath: flags.cfgFile})
	if err != nil {
		app.verbose = flags.verbose
		return err
	}
	app.verbose = flags.verbose || cfg.UI.Verbose
	logger := app.newLogger()

	paths := args
	if cfg.Input.ExpandGlobs && !flags.noGlob {
		if paths, err = expandGlobs(args); err != nil {
			return err
		}
	}
	logger.Debug("generating listing", "files", len(paths), "enum", cfg.Listing.EnumName)

	em := emitter.New(emitter.Options{
		EnumName: cfg.Listing.EnumName.String(),
		Logger:   logger,
	})
	return em.Emit(cmd.Context(), app.stdout, paths)
}

// expandGlobs replaces every argument containing glob metacharacters with
// its sorted file matches. A pattern matching nothing is kept as-is so it
// surfaces as a missing file, as with a shell that has nullglob off. An
// argument naming an existing file is never treated as a pattern.
func expandGlobs(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.ContainsAny(arg, globMeta) || fileExists(arg) {
			out = append(out, arg)
			continue
		}

		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("expand glob").
				WithResource(arg).
				WithSuggestion("Quote the pattern or pass --no-glob to use the argument literally").
				Wrap(err).
				BuildError()
		}
		if len(matches) == 0 {
			out = append(out, arg)
			continue
		}
		slices.Sort(matches)
		out = append(out, matches...)
	}
	return out, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
