// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/slnmod/slnmod/internal/discovery"
)

func newAddCommand(app *App) *cobra.Command {
	var modulesRoot string

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add every module under the modules root to the solution",
		Long: `Add every module under the modules root to the solution.

A module is a directory <name> holding <name>.csproj. Directories without a
manifest are skipped, and modules whose project identifier already occurs in
the solution are left alone, so running add twice changes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd.Context(), app, modulesRoot)
		},
	}
	addCmd.Flags().StringVar(&modulesRoot, "modules-root", "", "directory holding the modules to add (default from config, ./modules)")

	return addCmd
}

func runAdd(ctx context.Context, app *App, modulesRoot string) error {
	rc, err := app.prepare(ctx)
	if err != nil {
		return err
	}
	if modulesRoot == "" {
		modulesRoot = rc.cfg.ModulesRoot
	}

	sync, err := app.synchronizer(rc)
	if err != nil {
		return err
	}

	modules, diags, err := discovery.Discover(modulesRoot, sync.Layout().ManifestExt)
	if err != nil {
		return app.failRun("discover modules", absPath(modulesRoot), err)
	}
	renderDiagnostics(app.stderr, diags)
	rc.logger.Debug("modules discovered", "root", modulesRoot, "count", len(modules))

	solutionPath := rc.cfg.SolutionPath()
	res, err := sync.Add(ctx, solutionPath, modules)
	if err != nil {
		return app.failRun("add modules", solutionPath, err)
	}
	renderResult(app.stdout, res, app.dryRun)
	return nil
}
