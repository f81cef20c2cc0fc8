// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/slnmod/slnmod/internal/config"
	"github.com/slnmod/slnmod/internal/issue"
	"github.com/slnmod/slnmod/internal/modsync"
	"github.com/slnmod/slnmod/pkg/fspath"
	"github.com/slnmod/slnmod/pkg/types"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every command handler receives an App and reaches
	// configuration and output through it.
	App struct {
		Config ConfigProvider
		stdout io.Writer
		stderr io.Writer

		// Global flag values, bound by NewRootCommand.
		configPath   string
		verbose      bool
		solutionRoot string
		dryRun       bool
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// runContext is the resolved state shared by the solution commands.
	runContext struct {
		cfg    *config.Config
		logger *log.Logger
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	return &App{
		Config: deps.Config,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}
}

// loadConfig loads configuration and applies the global flag overrides.
// A load failure is a configuration error.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.configPath})
	if err != nil {
		a.renderIssue(issue.ConfigLoadFailedId)
		return nil, &ExitError{Code: types.ExitConfigError, Err: err}
	}
	if a.solutionRoot != "" {
		cfg.SolutionRoot = a.solutionRoot
	}
	if a.verbose {
		cfg.UI.Verbose = true
	}
	return cfg, nil
}

// prepare loads configuration for commands that touch the solution. Missing or
// invalid settings fail here, before any file is read.
func (a *App) prepare(ctx context.Context) (*runContext, error) {
	cfg, err := a.loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireSolutionRoot(); err != nil {
		a.renderIssue(issue.SolutionRootMissingId)
		return nil, &ExitError{Code: types.ExitConfigError, Err: issue.NewErrorContext().
			WithOperation("resolve solution").
			WithIssue(issue.SolutionRootMissingId).
			WithSuggestion("Pass --solution-root <path to Orchard checkout>").
			WithSuggestion("Or set SLNMOD_SOLUTION_ROOT, or solution_root in slnmod.cue").
			Wrap(err).
			BuildError()}
	}
	return &runContext{cfg: cfg, logger: a.newLogger(cfg.UI.Verbose)}, nil
}

// newLogger returns the stderr logger used for run progress.
func (a *App) newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(a.stderr, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

// synchronizer builds a modsync.Synchronizer from the run context.
func (a *App) synchronizer(rc *runContext) (*modsync.Synchronizer, error) {
	layout, err := rc.cfg.Layout()
	if err != nil {
		return nil, &ExitError{Code: types.ExitConfigError, Err: err}
	}
	return modsync.New(modsync.Options{
		Layout: layout,
		Logger: rc.logger,
		DryRun: a.dryRun,
	}), nil
}

// absPath resolves p against the working directory for display and logging.
func absPath(p string) string {
	if abs, err := fspath.Abs(types.FilesystemPath(p)); err == nil {
		return abs.String()
	}
	return p
}
