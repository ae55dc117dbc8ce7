// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"golly2kt/internal/config"

	"github.com/spf13/cobra"
)

const (
	dumpFormatCUE  = "cue"
	dumpFormatTOML = "toml"
)

// newConfigCommand creates the `golly2kt config` command tree.
func newConfigCommand(app *App, flags *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage golly2kt configuration",
		Long: `Manage golly2kt configuration.

Configuration is read from the file passed with --config, or from
` + config.ConfigFileName + ` in the working directory when present.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app, flags)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app, flags)
		},
	})

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE or TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpConfig(cmd.Context(), app, flags, format)
		},
	}
	dumpCmd.Flags().StringVar(&format, "format", dumpFormatCUE, "output format (cue, toml)")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func loadOptions(flags *rootFlags) config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: flags.cfgFile}
}

func showConfig(ctx context.Context, app *App, flags *rootFlags) error {
	app.verbose = flags.verbose
	cfg, err := app.Config.Load(ctx, loadOptions(flags))
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(app.stdout)

	if path := config.ResolvePath(loadOptions(flags)); path != "" {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("listing"))
	fmt.Fprintf(app.stdout, "  enum_name: %s\n", valueStyle.Render(cfg.Listing.EnumName.String()))

	fmt.Fprintln(app.stdout)
	fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("input"))
	fmt.Fprintf(app.stdout, "  expand_globs: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Input.ExpandGlobs)))

	return nil
}

func showConfigPath(app *App, flags *rootFlags) error {
	if path := config.ResolvePath(loadOptions(flags)); path != "" {
		fmt.Fprintf(app.stdout, "Config file: %s\n", path)
		return nil
	}
	fmt.Fprintf(app.stdout, "Config file: %s (not present, using defaults)\n", config.ConfigFileName)
	return nil
}

func initConfig(app *App, flags *rootFlags) error {
	path := flags.cfgFile
	if path == "" {
		path = config.ConfigFileName
	}

	created, err := config.CreateDefaultConfig(path)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(app.stdout, "%s already exists, leaving it unchanged\n", path)
		return nil
	}

	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func dumpConfig(ctx context.Context, app *App, flags *rootFlags, format string) error {
	app.verbose = flags.verbose
	cfg, err := app.Config.Load(ctx, loadOptions(flags))
	if err != nil {
		return err
	}

	switch format {
	case dumpFormatCUE:
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
	case dumpFormatTOML:
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", format, dumpFormatCUE, dumpFormatTOML)
	}
	return nil
}
