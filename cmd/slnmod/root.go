// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

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

// NewRootCommand builds the slnmod command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slnmod",
		Short: "Keep an Orchard solution file in sync with its modules",
		Long: TitleStyle.Render("slnmod") + SubtitleStyle.Render(" - Keep an Orchard solution file in sync with its modules") + `

slnmod adds module projects to an Orchard .sln file and removes them again,
editing the project list, GlobalSection(ProjectConfigurationPlatforms) and
GlobalSection(NestedProjects) together. Everything else in the solution is
left byte-for-byte untouched, and the file is only rewritten when it changes.

` + SubtitleStyle.Render("Examples:") + `
  slnmod add -s ~/src/Orchard                 Add every module under ./modules
  slnmod add -s ~/src/Orchard --modules-root ../my-modules
  slnmod remove Blog Shop -s ~/src/Orchard    Remove two modules
  slnmod list -o json                         List module projects as JSON
  slnmod verify                               Check that all three regions agree`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/slnmod/slnmod.cue)")
	pf.BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVarP(&app.solutionRoot, "solution-root", "s", "", "root of the Orchard checkout")
	pf.BoolVar(&app.dryRun, "dry-run", false, "report changes without writing the solution or deleting directories")

	rootCmd.AddCommand(
		newAddCommand(app),
		newRemoveCommand(app),
		newListCommand(app),
		newVerifyCommand(app),
		newSourcesCommand(app),
		newConfigCommand(app),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI. It is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}
