// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slnmod/slnmod/internal/discovery"
)

func newRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [module...]",
		Short: "Remove modules from the solution and delete their directories",
		Long: `Remove modules from the solution and delete their directories.

Each named module is looked up under <solution_root>/src/Orchard.Web/Modules.
Its directory is deleted and every solution entry tied to its project
identifier is removed. A module whose manifest cannot be read is treated as
already gone. With no arguments the target_modules list from the config is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd.Context(), app, args)
		},
	}
}

func runRemove(ctx context.Context, app *App, names []string) error {
	rc, err := app.prepare(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = rc.cfg.TargetModules
	}
	if len(names) == 0 {
		fmt.Fprintln(app.stdout, SubtitleStyle.Render("No modules to remove."))
		return nil
	}

	sync, err := app.synchronizer(rc)
	if err != nil {
		return err
	}

	targets, diags := discovery.ResolveTargets(rc.cfg.ModulesContainerPath(), names, sync.Layout().ManifestExt)
	renderDiagnostics(app.stderr, diags)

	solutionPath := rc.cfg.SolutionPath()
	res, err := sync.Remove(ctx, solutionPath, targets)
	if err != nil {
		return app.failRun("remove modules", solutionPath, err)
	}
	renderResult(app.stdout, res, app.dryRun)
	return nil
}
