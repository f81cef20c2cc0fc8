// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"
)

const (
	SolutionRootMissingId Id = iota + 1
	SolutionNotFoundId
	ManifestMalformedId
	RegionNotFoundId
	ModulesRootNotFoundId
	ConfigLoadFailedId
	PersistenceFailedId
	SolutionInconsistentId
)

type (
	// Id identifies a catalog entry.
	Id int

	MarkdownMsg string

	HttpLink string

	// Issue is a catalog entry: markdown guidance shown when a run fails.
	Issue struct {
		id       Id          // ID used to lookup the issue
		mdMsg    MarkdownMsg // Markdown text that will be rendered
		docLinks []HttpLink
		extLinks []HttpLink // external links that might be useful for the user
	}
)

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the entry with the glamour style at stylePath (e.g. "dark", "notty").
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		md.WriteString("\n\n## See also\n")
		for _, link := range i.docLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
		for _, link := range i.extLinks {
			md.WriteString("- <" + string(link) + ">\n")
		}
	}
	return render(md.String(), stylePath)
}

var (
	render = glamour.Render

	solutionRootMissingIssue = &Issue{
		id: SolutionRootMissingId,
		mdMsg: `
# No solution root configured!

slnmod needs to know where the Orchard checkout lives before it touches anything.

## Things you can try:
- Pass it on the command line:
~~~
$ slnmod add --solution-root ./orchard
~~~

- Or set it once in your configuration:
~~~cue
solution_root: "/path/to/orchard"
~~~

- Or export it:
~~~
$ export SLNMOD_SOLUTION_ROOT=/path/to/orchard
~~~`,
	}

	solutionNotFoundIssue = &Issue{
		id: SolutionNotFoundId,
		mdMsg: `
# Solution file not found!

The solution is looked up as <solution_root>/<container_dir>/<file_name>,
by default <solution_root>/src/Orchard.sln.

## Things you can try:
- Check that --solution-root points at the checkout root, not at src/
- Override the layout if your checkout differs:
~~~cue
solution: {
	container_dir: "src"
	file_name:     "Orchard.sln"
}
~~~`,
		extLinks: []HttpLink{"https://github.com/OrchardCMS/Orchard"},
	}

	manifestMalformedIssue = &Issue{
		id: ManifestMalformedId,
		mdMsg: `
# Module manifest is unusable!

Every module directory must contain <name>/<name>.csproj whose first
PropertyGroup holds a ProjectGuid. Adding modules stops at the first broken
manifest, and the solution is left untouched.

## Things you can try:
- Open the manifest and check that it is well-formed XML
- Make sure the first PropertyGroup contains a ProjectGuid:
~~~xml
<PropertyGroup>
  <ProjectGuid>{6F2B6DB3-6E6B-4F5C-9C5B-2B1B0D5C7A11}</ProjectGuid>
</PropertyGroup>
~~~

- Remove the directory from the modules root if it is not a module`,
	}

	regionNotFoundIssue = &Issue{
		id: RegionNotFoundId,
		mdMsg: `
# Solution is missing a section!

Modules are written into three places of the solution: the project list
(after the last EndProject), GlobalSection(ProjectConfigurationPlatforms) and
GlobalSection(NestedProjects). One of them could not be found.

## Things you can try:
- Open the solution in Visual Studio once and save it; it recreates empty sections
- Make sure the file is the Orchard solution and not a partial copy`,
	}

	modulesRootNotFoundIssue = &Issue{
		id: ModulesRootNotFoundId,
		mdMsg: `
# Modules directory not found!

slnmod scans the modules root for <name>/<name>.csproj directories.

## Things you can try:
- Create it, or point at an existing one:
~~~
$ slnmod add --modules-root ./modules
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

There was an error loading your slnmod configuration.

## Things you can try:
- Check the CUE syntax of your configuration file
- Print the file location:
~~~
$ slnmod config path
~~~

- Start over from the defaults:
~~~
$ slnmod config dump > slnmod.cue
~~~`,
	}

	persistenceFailedIssue = &Issue{
		id: PersistenceFailedId,
		mdMsg: `
# Could not write the solution!

All changes were computed but the file could not be replaced. Nothing on
disk was changed; running the same command again is safe.

## Things you can try:
- Check that the solution file and its directory are writable
- Close Visual Studio if it holds a lock on the file`,
	}

	solutionInconsistentIssue = &Issue{
		id: SolutionInconsistentId,
		mdMsg: `
# Solution sections disagree!

A module must appear in the project list, in
GlobalSection(ProjectConfigurationPlatforms) and in
GlobalSection(NestedProjects), or in none of them.

## Things you can try:
- Remove the module and add it again:
~~~
$ slnmod remove <Name>
$ slnmod add
~~~`,
	}

	issues = map[Id]*Issue{
		solutionRootMissingIssue.Id():  solutionRootMissingIssue,
		solutionNotFoundIssue.Id():     solutionNotFoundIssue,
		manifestMalformedIssue.Id():    manifestMalformedIssue,
		regionNotFoundIssue.Id():       regionNotFoundIssue,
		modulesRootNotFoundIssue.Id():  modulesRootNotFoundIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		persistenceFailedIssue.Id():    persistenceFailedIssue,
		solutionInconsistentIssue.Id(): solutionInconsistentIssue,
	}
)

// Values returns every catalog entry ordered by id.
func Values() []*Issue {
	values := make([]*Issue, 0, len(issues))
	for _, i := range issues {
		values = append(values, i)
	}
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}
