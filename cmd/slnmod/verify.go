// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slnmod/slnmod/internal/issue"
	"github.com/slnmod/slnmod/pkg/solution"
	"github.com/slnmod/slnmod/pkg/types"
)

func newVerifyCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the project list, configurations and nesting agree",
		Long: `Check that the project list, configurations and nesting agree.

Every module project must appear in all three managed regions, and every
configuration or nesting line must belong to a referenced project. verify
exits with status 3 when they disagree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), app)
		},
	}
}

func runVerify(ctx context.Context, app *App) error {
	rc, err := app.prepare(ctx)
	if err != nil {
		return err
	}
	layout, err := rc.cfg.Layout()
	if err != nil {
		return err
	}

	solutionPath := rc.cfg.SolutionPath()
	doc, err := solution.Load(solutionPath)
	if err != nil {
		return app.failRun("verify solution", solutionPath, err)
	}

	err = doc.CheckConsistency(layout)
	var ce *solution.ConsistencyError
	if errors.As(err, &ce) {
		for _, inc := range ce.Issues {
			fmt.Fprintf(app.stdout, "%s %s\n", ErrorStyle.Render("x"), inc.String())
		}
		app.renderIssue(issue.SolutionInconsistentId)
		return &ExitError{Code: types.ExitInconsistent, Err: err}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(app.stdout, "%s %s (%d module projects)\n",
		SuccessStyle.Render("Consistent:"), solutionPath, len(doc.ModuleProjects(layout)))
	return nil
}
