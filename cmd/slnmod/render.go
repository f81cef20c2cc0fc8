// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/slnmod/slnmod/internal/discovery"
	"github.com/slnmod/slnmod/internal/issue"
	"github.com/slnmod/slnmod/internal/modsync"
	"github.com/slnmod/slnmod/pkg/manifest"
	"github.com/slnmod/slnmod/pkg/solution"
	"github.com/slnmod/slnmod/pkg/types"
)

const issueStyle = "dark"

// renderIssue writes the catalog entry for id to stderr.
func (a *App) renderIssue(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(issueStyle)
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, rendered)
}

// failRun converts a run failure into an actionable error with an exit code,
// rendering the matching catalog entry.
func (a *App) failRun(op, resource string, err error) error {
	ctx := issue.NewErrorContext().WithOperation(op).WithResource(resource)

	switch {
	case errors.Is(err, manifest.ErrMalformed), errors.Is(err, manifest.ErrNotFound):
		ctx = ctx.WithIssue(issue.ManifestMalformedId).
			WithSuggestion("Check that the manifest is well-formed XML with a ProjectGuid in its first PropertyGroup")
	case errors.Is(err, solution.ErrRegionNotFound):
		ctx = ctx.WithIssue(issue.RegionNotFoundId).
			WithSuggestion("Open the solution in Visual Studio once to restore its GlobalSection blocks")
	case errors.Is(err, solution.ErrPersistence):
		ctx = ctx.WithIssue(issue.PersistenceFailedId).
			WithSuggestion("Check that the solution file is writable and not locked by another process")
	case errors.Is(err, solution.ErrIO):
		ctx = ctx.WithIssue(issue.SolutionNotFoundId).
			WithSuggestion("Check --solution-root and solution.container_dir / solution.file_name")
	case errors.Is(err, discovery.ErrModulesRootNotFound):
		ctx = ctx.WithIssue(issue.ModulesRootNotFoundId).
			WithSuggestion("Pass --modules-root or set modules_root in slnmod.cue")
	}

	ae := ctx.Wrap(err).Build()
	if ae.IssueID != 0 {
		a.renderIssue(ae.IssueID)
	}
	return &ExitError{Code: types.ExitFailure, Err: ae}
}

// renderDiagnostics writes discovery diagnostics, one per line.
func renderDiagnostics(w io.Writer, diags []discovery.Diagnostic) {
	for _, d := range diags {
		style := WarningStyle
		if d.Severity == discovery.SeverityError {
			style = ErrorStyle
		}
		fmt.Fprintln(w, style.Render(d.String()))
	}
}

// renderResult writes a human-readable summary of a synchronizer run.
func renderResult(w io.Writer, res *modsync.Result, dryRun bool) {
	for _, o := range res.Added {
		fmt.Fprintf(w, "%s %s %s\n", SuccessStyle.Render("+"), CmdStyle.Render(o.Module), SubtitleStyle.Render(o.Identifier.String()))
	}
	for _, o := range res.Removed {
		fmt.Fprintf(w, "%s %s %s\n", ErrorStyle.Render("-"), CmdStyle.Render(o.Module), SubtitleStyle.Render(o.Identifier.String()))
	}
	for _, o := range res.Skipped {
		fmt.Fprintf(w, "%s %s %s\n", WarningStyle.Render("="), CmdStyle.Render(o.Module), SubtitleStyle.Render("("+string(o.Reason)+")"))
	}
	for _, dir := range res.DeletedDirs {
		fmt.Fprintf(w, "%s %s\n", SubtitleStyle.Render("deleted"), dir)
	}
	for _, inc := range res.Inconsistencies {
		fmt.Fprintf(w, "%s %s\n", WarningStyle.Render("inconsistent:"), inc.String())
	}

	switch {
	case res.Written:
		fmt.Fprintln(w, SuccessStyle.Render("Solution updated: ")+res.Solution)
	case res.Modified && dryRun:
		fmt.Fprintln(w, WarningStyle.Render("Dry run, solution would change: ")+res.Solution)
	default:
		fmt.Fprintln(w, SubtitleStyle.Render("Solution unchanged: ")+res.Solution)
	}
}
