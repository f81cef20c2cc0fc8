// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slnmod/slnmod/internal/issue"
	"github.com/slnmod/slnmod/pkg/types"
)

func newSourcesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sources [version]",
		Short: "Show the Orchard source archive for a version",
		Long: `Show the Orchard source archive for a version.

Without arguments every known version is listed. The table comes from the
sources list in the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := ""
			if len(args) == 1 {
				version = args[0]
			}
			return runSources(cmd.Context(), app, version)
		},
	}
}

func runSources(ctx context.Context, app *App, version string) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	if version == "" {
		for _, s := range cfg.Sources {
			fmt.Fprintf(app.stdout, "%-8s %s\n", CmdStyle.Render(s.Version), s.URL)
		}
		return nil
	}

	src, err := cfg.LookupSource(version)
	if err != nil {
		known := make([]string, len(cfg.Sources))
		for i, s := range cfg.Sources {
			known[i] = s.Version
		}
		return &ExitError{Code: types.ExitFailure, Err: issue.NewErrorContext().
			WithOperation("look up source archive").
			WithResource(version).
			WithSuggestion("Known versions: " + strings.Join(known, ", ")).
			Wrap(err).
			BuildError()}
	}
	fmt.Fprintln(app.stdout, src.URL)
	return nil
}
