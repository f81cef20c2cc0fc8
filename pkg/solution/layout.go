// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"fmt"
	"strings"

	"github.com/slnmod/slnmod/pkg/projectid"
)

// DefaultProjectPathPrefix is where module projects live relative to the solution file.
const DefaultProjectPathPrefix = `Orchard.Web\Modules`

// Layout describes how module entries are written into a solution.
type Layout struct {
	// ProjectType is the type identifier written into Project("...") headers.
	ProjectType projectid.ID
	// ModulesFolder is the solution folder every module is nested under.
	ModulesFolder projectid.ID
	// ProjectPathPrefix is the backslash-separated directory that holds module
	// directories, relative to the solution file.
	ProjectPathPrefix string
	// ManifestExt is the project manifest extension, including the dot.
	ManifestExt string
	// BuildFlavors are the configurations mapped for each module (e.g. Debug, Release).
	BuildFlavors []string
	// Platform is the platform half of each configuration (e.g. "Any CPU").
	Platform string
}

// DefaultLayout returns the layout of an Orchard CMS solution.
func DefaultLayout() Layout {
	return Layout{
		ProjectType:       projectid.CSharpProjectType,
		ModulesFolder:     projectid.ModulesFolder,
		ProjectPathPrefix: DefaultProjectPathPrefix,
		ManifestExt:       ".csproj",
		BuildFlavors:      []string{"Debug", "Release"},
		Platform:          "Any CPU",
	}
}

// ProjectPath returns the solution-relative manifest path of a module.
func (l Layout) ProjectPath(name string) string {
	prefix := strings.TrimRight(strings.ReplaceAll(l.ProjectPathPrefix, "/", `\`), `\`)
	file := name + l.ManifestExt
	if prefix == "" {
		return name + `\` + file
	}
	return prefix + `\` + name + `\` + file
}

// IsModulePath reports whether a project path points inside ProjectPathPrefix.
func (l Layout) IsModulePath(relativePath string) bool {
	prefix := strings.TrimRight(strings.ReplaceAll(l.ProjectPathPrefix, "/", `\`), `\`) + `\`
	p := strings.ReplaceAll(relativePath, "/", `\`)
	return len(p) > len(prefix) && strings.EqualFold(p[:len(prefix)], prefix)
}

// projectEntry formats the two lines of a project reference.
func (l Layout) projectEntry(name string, id projectid.ID) []string {
	return []string{
		fmt.Sprintf(`Project("%s") = "%s", "%s", "%s"`, l.ProjectType, name, l.ProjectPath(name), id),
		tokenEndProject,
	}
}

// configurationEntries formats the ActiveCfg/Build.0 pair for every build flavor.
func (l Layout) configurationEntries(indent string, id projectid.ID) []string {
	entries := make([]string, 0, 2*len(l.BuildFlavors))
	for _, flavor := range l.BuildFlavors {
		cfg := flavor + "|" + l.Platform
		entries = append(entries,
			fmt.Sprintf("%s%s.%s.ActiveCfg = %s", indent, id, cfg, cfg),
			fmt.Sprintf("%s%s.%s.Build.0 = %s", indent, id, cfg, cfg),
		)
	}
	return entries
}

// nestedEntry formats the mapping of a module to the modules folder.
func (l Layout) nestedEntry(indent string, id projectid.ID) string {
	return fmt.Sprintf("%s%s = %s", indent, id, l.ModulesFolder)
}
