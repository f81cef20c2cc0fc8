// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"regexp"
	"slices"
	"strings"

	"github.com/slnmod/slnmod/pkg/projectid"
)

var (
	projectHeaderPattern = regexp.MustCompile(`^\s*Project\("([^"]*)"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"\s*$`)
	configLinePattern    = regexp.MustCompile(`^\s*(\{[0-9A-Fa-f-]+\})\.([^|=]+)\|([^=]+?)\.([^.=]+(?:\.\d+)?)\s*=\s*(.*?)\s*$`)
	nestedLinePattern    = regexp.MustCompile(`^\s*(\{[0-9A-Fa-f-]+\})\s*=\s*(\{[0-9A-Fa-f-]+\})\s*$`)
)

type (
	// ProjectReference is one Project(...) entry of the project region.
	ProjectReference struct {
		TypeID       projectid.ID `json:"type_id" yaml:"type_id" toml:"type_id"`
		Name         string       `json:"name" yaml:"name" toml:"name"`
		RelativePath string       `json:"relative_path" yaml:"relative_path" toml:"relative_path"`
		Identifier   projectid.ID `json:"identifier" yaml:"identifier" toml:"identifier"`
	}

	// ConfigurationEntry is one line of GlobalSection(ProjectConfigurationPlatforms),
	// e.g. {ID}.Debug|Any CPU.Build.0 = Debug|Any CPU.
	ConfigurationEntry struct {
		Identifier projectid.ID
		Flavor     string
		Platform   string
		Key        string
		Value      string
	}
)

// Projects returns every project reference in document order. Headers whose
// identifiers do not parse are skipped.
func (d *Document) Projects() []ProjectReference {
	var refs []ProjectReference
	end := d.globalStart()
	for i := 0; i < end; i++ {
		m := projectHeaderPattern.FindStringSubmatch(d.content(i))
		if m == nil {
			continue
		}
		id, err := projectid.Parse(m[4])
		if err != nil {
			continue
		}
		typeID, err := projectid.Parse(m[1])
		if err != nil {
			continue
		}
		refs = append(refs, ProjectReference{TypeID: typeID, Name: m[2], RelativePath: m[3], Identifier: id})
	}
	return refs
}

// Project returns the project reference with the given identifier.
func (d *Document) Project(id projectid.ID) (ProjectReference, bool) {
	for _, ref := range d.Projects() {
		if ref.Identifier.Equal(id) {
			return ref, true
		}
	}
	return ProjectReference{}, false
}

// ModuleProjects returns the project references that the layout manages:
// projects of the module type stored under the module path prefix, or nested
// directly under the modules folder.
func (d *Document) ModuleProjects(layout Layout) []ProjectReference {
	nested := d.nestedProjects()
	var refs []ProjectReference
	for _, ref := range d.Projects() {
		parent, ok := nested[ref.Identifier]
		underFolder := ok && parent.Equal(layout.ModulesFolder)
		isModule := ref.TypeID.Equal(layout.ProjectType) && layout.IsModulePath(ref.RelativePath)
		if underFolder || isModule {
			refs = append(refs, ref)
		}
	}
	return refs
}

// ConfigurationEntries returns the configuration lines for id.
func (d *Document) ConfigurationEntries(id projectid.ID) []ConfigurationEntry {
	var entries []ConfigurationEntry
	for _, e := range d.configurationEntries() {
		if e.Identifier.Equal(id) {
			entries = append(entries, e)
		}
	}
	return entries
}

// NestedParent returns the solution folder id is nested under.
func (d *Document) NestedParent(id projectid.ID) (projectid.ID, bool) {
	parent, ok := d.nestedProjects()[canonical(id)]
	return parent, ok
}

// CheckConsistency verifies that the three regions agree:
//   - every configuration line and nested mapping belongs to a project reference
//   - every managed module is referenced, configured and nested under the modules folder
func (d *Document) CheckConsistency(layout Layout) error {
	projects := make(map[projectid.ID]ProjectReference)
	for _, ref := range d.Projects() {
		projects[ref.Identifier] = ref
	}
	configured := make(map[projectid.ID]bool)
	for _, e := range d.configurationEntries() {
		configured[e.Identifier] = true
	}
	nested := d.nestedProjects()

	missing := make(map[projectid.ID][]string)
	var order []projectid.ID
	report := func(id projectid.ID, region string) {
		if _, seen := missing[id]; !seen {
			order = append(order, id)
		}
		if !slices.Contains(missing[id], region) {
			missing[id] = append(missing[id], region)
		}
	}

	for id := range configured {
		if _, ok := projects[id]; !ok {
			report(id, RegionProjects)
		}
	}
	for child := range nested {
		if _, ok := projects[child]; !ok {
			report(child, RegionProjects)
		}
	}
	for _, ref := range d.ModuleProjects(layout) {
		if !configured[ref.Identifier] {
			report(ref.Identifier, sectionRegion(SectionProjectConfigurationPlatforms))
		}
		if parent, ok := nested[ref.Identifier]; !ok || !parent.Equal(layout.ModulesFolder) {
			report(ref.Identifier, sectionRegion(SectionNestedProjects))
		}
	}

	if len(order) == 0 {
		return nil
	}
	slices.SortFunc(order, func(a, b projectid.ID) int { return strings.Compare(string(a), string(b)) })
	issues := make([]Inconsistency, 0, len(order))
	for _, id := range order {
		issues = append(issues, Inconsistency{Identifier: id, Name: projects[id].Name, Missing: missing[id]})
	}
	return &ConsistencyError{Issues: issues}
}

func (d *Document) configurationEntries() []ConfigurationEntry {
	b, ok := d.section(SectionProjectConfigurationPlatforms)
	if !ok {
		return nil
	}
	var entries []ConfigurationEntry
	for i := b.open + 1; i < b.close; i++ {
		m := configLinePattern.FindStringSubmatch(d.content(i))
		if m == nil {
			continue
		}
		id, err := projectid.Parse(m[1])
		if err != nil {
			continue
		}
		entries = append(entries, ConfigurationEntry{
			Identifier: id,
			Flavor:     strings.TrimSpace(m[2]),
			Platform:   strings.TrimSpace(m[3]),
			Key:        m[4],
			Value:      m[5],
		})
	}
	return entries
}

// nestedProjects maps child identifiers to their parent folder.
func (d *Document) nestedProjects() map[projectid.ID]projectid.ID {
	nested := make(map[projectid.ID]projectid.ID)
	b, ok := d.section(SectionNestedProjects)
	if !ok {
		return nested
	}
	for i := b.open + 1; i < b.close; i++ {
		m := nestedLinePattern.FindStringSubmatch(d.content(i))
		if m == nil {
			continue
		}
		child, err := projectid.Parse(m[1])
		if err != nil {
			continue
		}
		parent, err := projectid.Parse(m[2])
		if err != nil {
			continue
		}
		nested[child] = parent
	}
	return nested
}

// canonical returns id in canonical form, or id unchanged when it does not parse.
func canonical(id projectid.ID) projectid.ID {
	if parsed, err := projectid.Parse(string(id)); err == nil {
		return parsed
	}
	return id
}
