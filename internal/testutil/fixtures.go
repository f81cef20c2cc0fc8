// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/slnmod/slnmod/pkg/projectid"
)

const (
	// AlphaID and BetaID are fixture module identifiers.
	AlphaID projectid.ID = "{AAAAAAAA-AAAA-4AAA-8AAA-AAAAAAAAAAAA}"
	BetaID  projectid.ID = "{BBBBBBBB-BBBB-4BBB-8BBB-BBBBBBBBBBBB}"
	// GammaID is a fixture identifier that shares a long prefix with AlphaID.
	GammaID projectid.ID = "{AAAAAAAA-AAAA-4AAA-8AAA-AAAAAAAAAAAB}"

	// WebID is the identifier of the Orchard.Web host project in fixtures.
	WebID projectid.ID = "{50B779EA-EC00-4699-84C0-03B395C365D2}"

	utf8BOM = "\xEF\xBB\xBF"
)

// FixtureModule is a module entry rendered into a fixture solution.
type FixtureModule struct {
	Name string
	ID   projectid.ID
}

// Alpha and Beta are the modules used by the example scenarios.
var (
	Alpha = FixtureModule{Name: "Alpha", ID: AlphaID}
	Beta  = FixtureModule{Name: "Beta", ID: BetaID}
)

// Solution renders an Orchard-style solution with CRLF line endings that
// contains the Modules folder, the Orchard.Web host project and the given
// modules in order. Entries are laid out exactly as the synchronizer writes
// them, so a fixture with modules [A, B] equals the fixture with [A] after B
// is added.
func Solution(modules ...FixtureModule) string {
	var lines []string
	add := func(l ...string) { lines = append(lines, l...) }

	add(utf8BOM,
		"Microsoft Visual Studio Solution File, Format Version 12.00",
		"# Visual Studio 14",
		"VisualStudioVersion = 14.0.25420.1",
		"MinimumVisualStudioVersion = 10.0.40219.1",
		fmt.Sprintf(`Project("%s") = "Modules", "Modules", "%s"`, projectid.SolutionFolderType, projectid.ModulesFolder),
		"EndProject",
		fmt.Sprintf(`Project("%s") = "Orchard.Web", "Orchard.Web\Orchard.Web.csproj", "%s"`, projectid.CSharpProjectType, WebID),
		"EndProject",
	)
	for _, m := range modules {
		add(fmt.Sprintf(`Project("%s") = "%s", "Orchard.Web\Modules\%s\%s.csproj", "%s"`, projectid.CSharpProjectType, m.Name, m.Name, m.Name, m.ID),
			"EndProject")
	}

	add("Global",
		"\tGlobalSection(SolutionConfigurationPlatforms) = preSolution",
		"\t\tDebug|Any CPU = Debug|Any CPU",
		"\t\tRelease|Any CPU = Release|Any CPU",
		"\tEndGlobalSection",
		"\tGlobalSection(ProjectConfigurationPlatforms) = postSolution",
	)
	add(ConfigurationLines(WebID)...)
	for _, m := range modules {
		add(ConfigurationLines(m.ID)...)
	}
	add("\tEndGlobalSection",
		"\tGlobalSection(SolutionProperties) = preSolution",
		"\t\tHideSolutionNode = FALSE",
		"\tEndGlobalSection",
		"\tGlobalSection(NestedProjects) = preSolution",
	)
	for _, m := range modules {
		add(fmt.Sprintf("\t\t%s = %s", m.ID, projectid.ModulesFolder))
	}
	add("\tEndGlobalSection", "EndGlobal")

	return strings.Join(lines, "\r\n") + "\r\n"
}

// ConfigurationLines returns the four Debug/Release lines of a project.
func ConfigurationLines(id projectid.ID) []string {
	return []string{
		fmt.Sprintf("\t\t%s.Debug|Any CPU.ActiveCfg = Debug|Any CPU", id),
		fmt.Sprintf("\t\t%s.Debug|Any CPU.Build.0 = Debug|Any CPU", id),
		fmt.Sprintf("\t\t%s.Release|Any CPU.ActiveCfg = Release|Any CPU", id),
		fmt.Sprintf("\t\t%s.Release|Any CPU.Build.0 = Release|Any CPU", id),
	}
}

// Manifest renders a minimal MSBuild project manifest carrying id.
func Manifest(id projectid.ID) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="12.0" DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <Configuration Condition=" '$(Configuration)' == '' ">Debug</Configuration>
    <ProjectGuid>` + string(id) + `</ProjectGuid>
    <OutputType>Library</OutputType>
  </PropertyGroup>
</Project>
`
}

// WriteModule creates root/<name>/<name>.csproj carrying id and returns the module directory.
func WriteModule(t testing.TB, root string, m FixtureModule) string {
	t.Helper()
	dir := filepath.Join(root, m.Name)
	MustWriteFile(t, filepath.Join(dir, m.Name+".csproj"), Manifest(m.ID))
	return dir
}

// OrchardTree lays out an Orchard checkout under root: root/src/Orchard.sln
// holding the given solution text and root/src/Orchard.Web/Modules. It returns
// the solution path and the modules container directory.
func OrchardTree(t testing.TB, root, solutionText string) (solutionPath, modulesDir string) {
	t.Helper()
	solutionPath = filepath.Join(root, "src", "Orchard.sln")
	modulesDir = filepath.Join(root, "src", "Orchard.Web", "Modules")
	MustWriteFile(t, solutionPath, solutionText)
	MustMkdirAll(t, modulesDir, 0o755)
	return solutionPath, modulesDir
}
