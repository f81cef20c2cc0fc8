// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slnmod/slnmod/internal/config"
	"github.com/slnmod/slnmod/internal/testutil"
	"github.com/slnmod/slnmod/pkg/types"
)

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the command tree with a static configuration.
func runCLI(t *testing.T, cfg *config.Config, args ...string) cliResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: config.StaticProvider{Config: cfg},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// orchard is a temp Orchard checkout plus a separate modules root.
type orchard struct {
	root        string
	solution    string
	container   string
	modulesRoot string
}

func newOrchard(t *testing.T, text string) orchard {
	t.Helper()
	root := t.TempDir()
	sln, container := testutil.OrchardTree(t, root, text)
	modulesRoot := filepath.Join(root, "modules")
	testutil.MustMkdirAll(t, modulesRoot, 0o755)
	return orchard{root: root, solution: sln, container: container, modulesRoot: modulesRoot}
}

func wantExitCode(t *testing.T, err error, code types.ExitCode) {
	t.Helper()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v (%T), want *ExitError", err, err)
	}
	if exitErr.Code != code {
		t.Fatalf("exit code = %d, want %d (err: %v)", exitErr.Code, code, err)
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}))
	want := []string{"add", "remove", "list", "verify", "sources", "config"}
	for _, name := range want {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}

	for _, flag := range []string{"config", "verbose", "solution-root", "dry-run"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("persistent flag --%s missing", flag)
		}
	}
}

func TestGetVersionString(t *testing.T) {
	t.Parallel()

	if got := getVersionString(); !strings.HasPrefix(got, "dev") {
		t.Errorf("getVersionString() = %q", got)
	}
}

func TestSolutionRootRequired(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"add"}, {"remove", "Blog"}, {"list"}, {"verify"}} {
		t.Run(args[0], func(t *testing.T) {
			t.Parallel()
			res := runCLI(t, nil, args...)
			wantExitCode(t, res.err, types.ExitConfigError)
			if !errors.Is(res.err, config.ErrSolutionRootRequired) {
				t.Errorf("error = %v, want ErrSolutionRootRequired", res.err)
			}
		})
	}
}

func TestConfigLoadFailure(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	app := NewApp(Dependencies{
		Config: config.StaticProvider{Err: errors.New("bad config")},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	root := NewRootCommand(app)
	root.SetArgs([]string{"sources"})
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	wantExitCode(t, root.ExecuteContext(context.Background()), types.ExitConfigError)
}

func TestExitError(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	e := &ExitError{Code: types.ExitFailure, Err: inner}
	if e.Error() != "inner" || !errors.Is(e, inner) {
		t.Errorf("ExitError does not expose its cause: %v", e)
	}
	if (&ExitError{Code: 3}).Error() != "exit status 3" {
		t.Errorf("bare ExitError message = %q", (&ExitError{Code: 3}).Error())
	}
}
