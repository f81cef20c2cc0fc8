// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/slnmod/slnmod/pkg/projectid"
	"github.com/slnmod/slnmod/pkg/solution"
	"github.com/slnmod/slnmod/pkg/types"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// ErrUnknownFormat is returned for an unsupported --output value.
var ErrUnknownFormat = errors.New("unknown output format")

type (
	// moduleListing is the machine-readable form of `slnmod list`.
	moduleListing struct {
		Solution string        `json:"solution" yaml:"solution" toml:"solution"`
		Modules  []moduleEntry `json:"modules" yaml:"modules" toml:"modules"`
	}

	moduleEntry struct {
		Name           string       `json:"name" yaml:"name" toml:"name"`
		Identifier     projectid.ID `json:"identifier" yaml:"identifier" toml:"identifier"`
		RelativePath   string       `json:"relative_path" yaml:"relative_path" toml:"relative_path"`
		Configurations int          `json:"configurations" yaml:"configurations" toml:"configurations"`
		Nested         bool         `json:"nested" yaml:"nested" toml:"nested"`
	}
)

func newListCommand(app *App) *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the module projects of the solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd.Context(), app, format)
		},
	}
	listCmd.Flags().StringVarP(&format, "output", "o", formatText, "output format: text, json, yaml or toml")

	return listCmd
}

func runList(ctx context.Context, app *App, format string) error {
	switch format {
	case formatText, formatJSON, formatYAML, formatTOML:
	default:
		return &ExitError{Code: types.ExitConfigError, Err: fmt.Errorf("%w: %q", ErrUnknownFormat, format)}
	}

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
		return app.failRun("list modules", solutionPath, err)
	}

	listing := buildListing(solutionPath, doc, layout)
	return writeListing(app.stdout, listing, format)
}

func buildListing(solutionPath string, doc *solution.Document, layout solution.Layout) moduleListing {
	listing := moduleListing{Solution: solutionPath, Modules: []moduleEntry{}}
	for _, p := range doc.ModuleProjects(layout) {
		parent, nested := doc.NestedParent(p.Identifier)
		listing.Modules = append(listing.Modules, moduleEntry{
			Name:           p.Name,
			Identifier:     p.Identifier,
			RelativePath:   p.RelativePath,
			Configurations: len(doc.ConfigurationEntries(p.Identifier)),
			Nested:         nested && parent.Equal(layout.ModulesFolder),
		})
	}
	return listing
}

func writeListing(w io.Writer, listing moduleListing, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(listing); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(w).Encode(listing)
	}

	fmt.Fprintln(w, TitleStyle.Render("Modules in ")+listing.Solution)
	if len(listing.Modules) == 0 {
		fmt.Fprintln(w, SubtitleStyle.Render("  (none)"))
		return nil
	}
	for _, m := range listing.Modules {
		marker := SuccessStyle.Render("ok")
		if m.Configurations == 0 || !m.Nested {
			marker = WarningStyle.Render("incomplete")
		}
		fmt.Fprintf(w, "  %s %s %s\n", CmdStyle.Render(m.Name), SubtitleStyle.Render(m.Identifier.String()), marker)
	}
	return nil
}
