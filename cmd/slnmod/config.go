// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slnmod/slnmod/internal/config"
)

// newConfigCommand creates the `slnmod config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage slnmod configuration",
		Long: `Manage slnmod configuration.

Configuration is read from slnmod.cue in:
  - Linux: ~/.config/slnmod/
  - macOS: ~/Library/Application Support/slnmod/
  - Windows: %APPDATA%\slnmod\
falling back to ./slnmod.cue. Every key can be overridden with an SLNMOD_
environment variable, e.g. SLNMOD_SOLUTION_ROOT.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig()
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintln(app.stdout, SuccessStyle.Render("Created ")+path)
			} else {
				fmt.Fprintln(app.stdout, SubtitleStyle.Render("Already exists: ")+path)
			}
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	w := app.stdout

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	path, locErr := config.Locate(config.LoadOptions{ConfigFilePath: app.configPath})
	switch {
	case locErr != nil || path == "":
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	default:
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), path)
	}
	fmt.Fprintln(w)

	root := cfg.SolutionRoot
	if root == "" {
		root = SubtitleStyle.Render("(not set)")
	} else {
		root = valueStyle.Render(root)
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("solution_root"), root)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("modules_root"), valueStyle.Render(cfg.ModulesRoot))
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("target_modules"), valueStyle.Render(listOrNone(cfg.TargetModules)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("solution"))
	fmt.Fprintf(w, "  container_dir: %s\n", valueStyle.Render(cfg.Solution.ContainerDir))
	fmt.Fprintf(w, "  file_name: %s\n", valueStyle.Render(cfg.Solution.FileName))
	fmt.Fprintf(w, "  modules_dir: %s\n", valueStyle.Render(cfg.Solution.ModulesDir))
	fmt.Fprintf(w, "  project_path_prefix: %s\n", valueStyle.Render(cfg.Solution.ProjectPathPrefix))
	fmt.Fprintf(w, "  modules_folder_id: %s\n", valueStyle.Render(cfg.Solution.ModulesFolderID))
	fmt.Fprintf(w, "  project_type_id: %s\n", valueStyle.Render(cfg.Solution.ProjectTypeID))
	fmt.Fprintf(w, "  manifest_ext: %s\n", valueStyle.Render(cfg.Solution.ManifestExt))
	fmt.Fprintf(w, "  build_flavors: %s\n", valueStyle.Render(listOrNone(cfg.Solution.BuildFlavors)))
	fmt.Fprintf(w, "  platform: %s\n", valueStyle.Render(cfg.Solution.Platform))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("sources"), valueStyle.Render(fmt.Sprintf("%d versions", len(cfg.Sources))))
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func showConfigPath(app *App) error {
	path, err := config.Locate(config.LoadOptions{ConfigFilePath: app.configPath})
	if err != nil {
		return err
	}
	if path != "" {
		fmt.Fprintln(app.stdout, path)
		return nil
	}

	defPath, err := config.DefaultConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "%s %s\n", defPath, SubtitleStyle.Render("(does not exist, using defaults)"))
	return nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
