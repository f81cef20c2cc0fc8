// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slnmod/slnmod/pkg/fspath"
	"github.com/slnmod/slnmod/pkg/manifest"
	"github.com/slnmod/slnmod/pkg/projectid"
	"github.com/slnmod/slnmod/pkg/solution"
	"github.com/slnmod/slnmod/pkg/types"
)

var (
	// ErrSolutionRootRequired is returned when no solution root was configured.
	ErrSolutionRootRequired = errors.New("solution root is required")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownSource is returned by LookupSource when a version is not in the table.
	ErrUnknownSource = errors.New("unknown source version")
)

type (
	// Config holds the application configuration.
	Config struct {
		// SolutionRoot is the root of the Orchard checkout.
		SolutionRoot string `json:"solution_root" mapstructure:"solution_root"`
		// ModulesRoot is scanned for modules to add.
		ModulesRoot string `json:"modules_root" mapstructure:"modules_root"`
		// TargetModules are removed when `remove` is run without arguments.
		TargetModules []string `json:"target_modules" mapstructure:"target_modules"`
		// Solution describes the solution layout.
		Solution SolutionConfig `json:"solution" mapstructure:"solution"`
		// Sources maps versions to source archive URLs.
		Sources []SourceEntry `json:"sources" mapstructure:"sources"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// SolutionConfig locates the solution file inside the checkout and
	// controls how module entries are written.
	SolutionConfig struct {
		ContainerDir      string   `json:"container_dir" mapstructure:"container_dir"`
		FileName          string   `json:"file_name" mapstructure:"file_name"`
		ModulesDir        string   `json:"modules_dir" mapstructure:"modules_dir"`
		ProjectPathPrefix string   `json:"project_path_prefix" mapstructure:"project_path_prefix"`
		ModulesFolderID   string   `json:"modules_folder_id" mapstructure:"modules_folder_id"`
		ProjectTypeID     string   `json:"project_type_id" mapstructure:"project_type_id"`
		ManifestExt       string   `json:"manifest_ext" mapstructure:"manifest_ext"`
		BuildFlavors      []string `json:"build_flavors" mapstructure:"build_flavors"`
		Platform          string   `json:"platform" mapstructure:"platform"`
	}

	// SourceEntry is one downloadable source archive.
	SourceEntry struct {
		Version string `json:"version" mapstructure:"version" yaml:"version" toml:"version"`
		URL     string `json:"url" mapstructure:"url" yaml:"url" toml:"url"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// InvalidConfigError is returned when Config.Validate finds invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ModulesRoot:   "./modules",
		TargetModules: []string{},
		Solution: SolutionConfig{
			ContainerDir:      "src",
			FileName:          "Orchard.sln",
			ModulesDir:        "Orchard.Web/Modules",
			ProjectPathPrefix: solution.DefaultProjectPathPrefix,
			ModulesFolderID:   projectid.ModulesFolder.String(),
			ProjectTypeID:     projectid.CSharpProjectType.String(),
			ManifestExt:       manifest.DefaultExt,
			BuildFlavors:      []string{"Debug", "Release"},
			Platform:          "Any CPU",
		},
		Sources: DefaultSources(),
	}
}

// DefaultSources returns the built-in table of Orchard source archives.
func DefaultSources() []SourceEntry {
	versions := []string{"1.9.1", "1.9", "1.8.2", "1.8.1", "1.7.1"}
	entries := make([]SourceEntry, len(versions))
	for i, v := range versions {
		entries[i] = SourceEntry{Version: v, URL: "https://github.com/OrchardCMS/Orchard/archive/" + v + ".zip"}
	}
	return entries
}

// Validate checks the fields that must be usable before any file is touched.
// The solution root is checked separately by RequireSolutionRoot because
// commands like `config show` run without one.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ModulesRoot) == "" {
		errs = append(errs, errors.New("modules_root must not be empty"))
	}
	if strings.TrimSpace(c.Solution.FileName) == "" {
		errs = append(errs, errors.New("solution.file_name must not be empty"))
	}
	if len(c.Solution.BuildFlavors) == 0 {
		errs = append(errs, errors.New("solution.build_flavors must not be empty"))
	}
	if _, err := projectid.Parse(c.Solution.ModulesFolderID); err != nil {
		errs = append(errs, fmt.Errorf("solution.modules_folder_id: %w", err))
	}
	if _, err := projectid.Parse(c.Solution.ProjectTypeID); err != nil {
		errs = append(errs, fmt.Errorf("solution.project_type_id: %w", err))
	}
	seen := make(map[string]bool, len(c.Sources))
	for i, s := range c.Sources {
		if seen[s.Version] {
			errs = append(errs, fmt.Errorf("sources[%d]: duplicate version %q", i, s.Version))
		}
		seen[s.Version] = true
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// RequireSolutionRoot returns ErrSolutionRootRequired when no root is set.
func (c *Config) RequireSolutionRoot() error {
	if strings.TrimSpace(c.SolutionRoot) == "" {
		return ErrSolutionRootRequired
	}
	return nil
}

// SolutionPath returns <solution_root>/<container_dir>/<file_name>.
func (c *Config) SolutionPath() string {
	return fspath.JoinStr(types.FilesystemPath(c.SolutionRoot), c.Solution.ContainerDir, c.Solution.FileName).String()
}

// ModulesContainerPath returns the directory holding the solution's module
// directories, <solution_root>/<container_dir>/<modules_dir>.
func (c *Config) ModulesContainerPath() string {
	return fspath.Join(
		types.FilesystemPath(c.SolutionRoot),
		types.FilesystemPath(c.Solution.ContainerDir),
		fspath.FromSlash(types.FilesystemPath(c.Solution.ModulesDir)),
	).String()
}

// Layout converts the solution settings into a solution.Layout.
func (c *Config) Layout() (solution.Layout, error) {
	folder, err := projectid.Parse(c.Solution.ModulesFolderID)
	if err != nil {
		return solution.Layout{}, fmt.Errorf("solution.modules_folder_id: %w", err)
	}
	projectType, err := projectid.Parse(c.Solution.ProjectTypeID)
	if err != nil {
		return solution.Layout{}, fmt.Errorf("solution.project_type_id: %w", err)
	}
	return solution.Layout{
		ProjectType:       projectType,
		ModulesFolder:     folder,
		ProjectPathPrefix: c.Solution.ProjectPathPrefix,
		ManifestExt:       c.Solution.ManifestExt,
		BuildFlavors:      append([]string(nil), c.Solution.BuildFlavors...),
		Platform:          c.Solution.Platform,
	}, nil
}

// LookupSource returns the archive entry for version.
func (c *Config) LookupSource(version string) (SourceEntry, error) {
	for _, s := range c.Sources {
		if s.Version == version {
			return s, nil
		}
	}
	return SourceEntry{}, fmt.Errorf("%w: %q", ErrUnknownSource, version)
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }
