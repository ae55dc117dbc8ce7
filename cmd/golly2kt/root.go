// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"golly2kt/internal/config"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	verbose bool
	cfgFile string
	noGlob  bool
}

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   config.AppName + " <file1> [file2 ...]",
		Short: "Convert Golly RLE pattern files into a Kotlin enum",
		Long: TitleStyle.Render(config.AppName) + SubtitleStyle.Render(" - Convert Golly RLE pattern files into a Kotlin enum") + `

Each file becomes one constant of ` + "`enum class Patterns(val value: String)`" + `.
Comment (#) and header (x = ...) lines are dropped, the remaining rows are
joined, and '$' is escaped for Kotlin string templates. Patterns of 5000
characters or more are left out. The listing is printed to stdout.

Files must be given as <dir>/<name>.<ext>; the constant name is built from
<name> by capitalizing each '-'-separated word.

` + SubtitleStyle.Render("Examples:") + `
  golly2kt patterns/*.rle > Patterns.kt
  golly2kt 'patterns/**/*.rle'     Expand the glob without the shell
  golly2kt config show              Show current configuration`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, flags, args)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&flags.cfgFile, "config", "", "config file (default is ./"+config.ConfigFileName+" when present)")
	rootCmd.Flags().BoolVar(&flags.noGlob, "no-glob", false, "treat file arguments literally")

	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		os.Exit(exitCode(err))
	}
}
