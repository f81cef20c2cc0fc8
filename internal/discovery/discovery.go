// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/slnmod/slnmod/pkg/fspath"
	"github.com/slnmod/slnmod/pkg/manifest"
	"github.com/slnmod/slnmod/pkg/projectid"
	"github.com/slnmod/slnmod/pkg/types"
)

// ErrModulesRootNotFound is wrapped by ModulesRootError.
var ErrModulesRootNotFound = errors.New("modules root not found")

type (
	// Module is a module directory and its manifest location. Identifier is
	// empty until the manifest has been read.
	Module struct {
		Name         string
		Dir          types.FilesystemPath
		ManifestPath types.FilesystemPath
		Identifier   projectid.ID
	}

	// ModulesRootError is returned when the modules root cannot be listed.
	ModulesRootError struct {
		Path  string
		Cause error
	}
)

// Error implements the error interface.
func (e *ModulesRootError) Error() string {
	return fmt.Sprintf("modules root %s: %v", e.Path, e.Cause)
}

// Unwrap returns ErrModulesRootNotFound and the underlying cause.
func (e *ModulesRootError) Unwrap() []error { return []error{ErrModulesRootNotFound, e.Cause} }

// HasManifest reports whether the module manifest exists as a regular file.
func (m Module) HasManifest() bool {
	return m.ManifestPath != "" && m.ManifestPath.IsFile()
}

// Discover lists the immediate subdirectories of rootDir, sorted by name, and
// returns those holding a manifest named after the directory. Directories
// without one are reported as diagnostics and skipped.
func Discover(rootDir, manifestExt string) ([]Module, []Diagnostic, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, nil, &ModulesRootError{Path: rootDir, Cause: err}
	}

	var (
		modules     []Module
		diagnostics []Diagnostic
	)
	for _, entry := range entries {
		dir := fspath.JoinStr(types.FilesystemPath(rootDir), entry.Name())
		if !entry.IsDir() && !dir.IsDir() {
			continue
		}

		name := entry.Name()
		if err := types.ModuleName(name).Validate(); err != nil {
			diagnostics = append(diagnostics, NewDiagnosticWithCause(SeverityWarning, CodeInvalidModuleName,
				fmt.Sprintf("skipping directory %q: %v", name, err), dir.String(), err))
			continue
		}

		m := newModule(dir, name, manifestExt)
		if !m.HasManifest() {
			diagnostics = append(diagnostics, NewDiagnosticWithPath(SeverityWarning, CodeModuleManifestMissing,
				fmt.Sprintf("skipping directory %q: no %s manifest", name, manifest.FileName(name, manifestExt)), dir.String()))
			continue
		}
		modules = append(modules, m)
	}
	return modules, diagnostics, nil
}

// ResolveTargets maps explicit module names to directories under
// containerDir. Input order is kept; blank and repeated names are dropped and
// names that are not a single path element are rejected so that they can
// never address anything outside containerDir. Neither the directories nor
// their manifests need to exist.
func ResolveTargets(containerDir string, names []string, manifestExt string) ([]Module, []Diagnostic) {
	var (
		modules     []Module
		diagnostics []Diagnostic
	)
	seen := make(map[string]bool, len(names))
	for i := range names {
		name := strings.TrimSpace(names[i])
		if name == "" {
			diagnostics = append(diagnostics, NewDiagnostic(SeverityWarning, CodeBlankTarget,
				fmt.Sprintf("ignoring blank target at position %d", i+1)))
			continue
		}
		if seen[name] {
			diagnostics = append(diagnostics, NewDiagnostic(SeverityWarning, CodeDuplicateTarget,
				fmt.Sprintf("ignoring repeated target %q", name)))
			continue
		}
		seen[name] = true

		if err := types.ModuleName(name).Validate(); err != nil {
			diagnostics = append(diagnostics, NewDiagnosticWithCause(SeverityError, CodeInvalidModuleName,
				fmt.Sprintf("skipping target %q: %v", name, err), "", err))
			continue
		}
		modules = append(modules, newModule(fspath.JoinStr(types.FilesystemPath(containerDir), name), name, manifestExt))
	}
	return modules, diagnostics
}

func newModule(dir types.FilesystemPath, name, manifestExt string) Module {
	return Module{
		Name:         name,
		Dir:          dir,
		ManifestPath: fspath.JoinStr(dir, manifest.FileName(name, manifestExt)),
	}
}
