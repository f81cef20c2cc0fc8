// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/slnmod/slnmod/internal/issue"
	"github.com/slnmod/slnmod/pkg/cueutil"
	"github.com/slnmod/slnmod/pkg/platform"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "slnmod"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "slnmod"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes environment overrides, e.g. SLNMOD_SOLUTION_ROOT.
	EnvPrefix = "SLNMOD"

	schemaDefinition = "#Config"
)

//go:embed config_schema.cue
var configSchema string

// configDirOverride replaces the platform config directory when set. Tests
// use it because os.UserHomeDir ignores HOME on some platforms.
var configDirOverride string

// SetConfigDirOverride points ConfigDir at dir until Reset is called.
func SetConfigDirOverride(dir string) { configDirOverride = dir }

// Reset clears SetConfigDirOverride.
func Reset() { configDirOverride = "" }

// ConfigDir returns the slnmod configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case platform.Windows:
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case platform.Darwin:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultConfigPath returns the path of the config file inside ConfigDir.
func DefaultConfigPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// Locate returns the config file that loading with opts would read, or ""
// when none exists and defaults apply.
func Locate(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, nil
	}

	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	if p := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt); fileExists(p) {
		return p, nil
	}
	if p := ConfigFileName + "." + ConfigFileExt; fileExists(p) {
		return p, nil
	}
	return "", nil
}

// loadWithOptions performs option-driven config loading without mutating
// package-level state. It returns the loaded config and the file it came
// from ("" when only defaults and environment were used).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := newViper()

	if opts.ConfigFilePath != "" && !fileExists(opts.ConfigFilePath) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Use 'slnmod config init' to write a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	resolvedPath, err := Locate(opts)
	if err != nil {
		return nil, "", err
	}

	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithIssue(issue.ConfigLoadFailedId).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'slnmod config dump' to see a valid configuration").
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithIssue(issue.ConfigLoadFailedId).
			WithSuggestion("Identifiers must be GUIDs such as {E9C9F120-07BA-4DFB-B9C3-3AFB9D44C9D5}").
			WithSuggestion("Each source version may appear only once").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// newViper returns a Viper instance preloaded with every default and bound to
// SLNMOD_* environment variables. Every key needs a default for AutomaticEnv
// to pick it up during Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("solution_root", defaults.SolutionRoot)
	v.SetDefault("modules_root", defaults.ModulesRoot)
	v.SetDefault("target_modules", defaults.TargetModules)
	v.SetDefault("solution.container_dir", defaults.Solution.ContainerDir)
	v.SetDefault("solution.file_name", defaults.Solution.FileName)
	v.SetDefault("solution.modules_dir", defaults.Solution.ModulesDir)
	v.SetDefault("solution.project_path_prefix", defaults.Solution.ProjectPathPrefix)
	v.SetDefault("solution.modules_folder_id", defaults.Solution.ModulesFolderID)
	v.SetDefault("solution.project_type_id", defaults.Solution.ProjectTypeID)
	v.SetDefault("solution.manifest_ext", defaults.Solution.ManifestExt)
	v.SetDefault("solution.build_flavors", defaults.Solution.BuildFlavors)
	v.SetDefault("solution.platform", defaults.Solution.Platform)
	v.SetDefault("sources", sourcesAsMaps(defaults.Sources))
	v.SetDefault("ui.verbose", defaults.UI.Verbose)
	return v
}

func sourcesAsMaps(entries []SourceEntry) []map[string]any {
	out := make([]map[string]any, len(entries))
	for i, e := range entries {
		out[i] = map[string]any{"version": e.Version, "url": e.URL}
	}
	return out
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper validates a CUE file against #Config and merges its
// contents into Viper, keeping defaults for every key the file leaves out.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, schemaDefinition, data, path)
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes a default config file into ConfigDir unless one
// already exists. It returns the path and whether a file was written.
func CreateDefaultConfig() (string, bool, error) {
	cfgPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(cfgPath); err == nil {
		return cfgPath, false, nil
	}

	if err := os.WriteFile(cfgPath, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfgPath, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// slnmod configuration file\n\n")

	if cfg.SolutionRoot != "" {
		fmt.Fprintf(&sb, "solution_root: %q\n", cfg.SolutionRoot)
	} else {
		sb.WriteString("// solution_root: \"/path/to/Orchard\"\n")
	}
	fmt.Fprintf(&sb, "modules_root: %q\n", cfg.ModulesRoot)
	sb.WriteString("target_modules: [")
	writeStringList(&sb, cfg.TargetModules)
	sb.WriteString("]\n")

	sb.WriteString("\nsolution: {\n")
	fmt.Fprintf(&sb, "\tcontainer_dir: %q\n", cfg.Solution.ContainerDir)
	fmt.Fprintf(&sb, "\tfile_name: %q\n", cfg.Solution.FileName)
	fmt.Fprintf(&sb, "\tmodules_dir: %q\n", cfg.Solution.ModulesDir)
	fmt.Fprintf(&sb, "\tproject_path_prefix: %q\n", cfg.Solution.ProjectPathPrefix)
	fmt.Fprintf(&sb, "\tmodules_folder_id: %q\n", cfg.Solution.ModulesFolderID)
	fmt.Fprintf(&sb, "\tproject_type_id: %q\n", cfg.Solution.ProjectTypeID)
	fmt.Fprintf(&sb, "\tmanifest_ext: %q\n", cfg.Solution.ManifestExt)
	sb.WriteString("\tbuild_flavors: [")
	writeStringList(&sb, cfg.Solution.BuildFlavors)
	sb.WriteString("]\n")
	fmt.Fprintf(&sb, "\tplatform: %q\n", cfg.Solution.Platform)
	sb.WriteString("}\n")

	if len(cfg.Sources) > 0 {
		sb.WriteString("\nsources: [\n")
		for _, s := range cfg.Sources {
			fmt.Fprintf(&sb, "\t{version: %q, url: %q},\n", s.Version, s.URL)
		}
		sb.WriteString("]\n")
	}

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

func writeStringList(sb *strings.Builder, items []string) {
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(sb, "%q", item)
	}
}
