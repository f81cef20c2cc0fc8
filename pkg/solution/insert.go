// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"errors"

	"github.com/slnmod/slnmod/pkg/projectid"
	"github.com/slnmod/slnmod/pkg/types"
)

var errZeroIdentifier = errors.New("project identifier is empty")

// InsertProjectReference appends a Project(...)/EndProject pair immediately
// after the last EndProject line. Entries keep insertion order; they are never
// sorted.
func (d *Document) InsertProjectReference(layout Layout, name string, id projectid.ID) error {
	if err := checkEntry(name, id); err != nil {
		return err
	}
	at := d.lastEndProject()
	if at < 0 {
		return &RegionNotFoundError{Region: RegionProjects}
	}
	d.ensureTerminated(at)
	d.insertLines(at+1, layout.projectEntry(name, id)...)
	return nil
}

// InsertConfigurationPlatforms inserts the ActiveCfg and Build.0 lines of every
// build flavor immediately before the end of GlobalSection(ProjectConfigurationPlatforms).
func (d *Document) InsertConfigurationPlatforms(layout Layout, id projectid.ID) error {
	if id.IsZero() {
		return errZeroIdentifier
	}
	b, ok := d.section(SectionProjectConfigurationPlatforms)
	if !ok {
		return &RegionNotFoundError{Region: sectionRegion(SectionProjectConfigurationPlatforms)}
	}
	d.insertLines(b.close, layout.configurationEntries(d.entryIndent(b), id)...)
	return nil
}

// InsertNestedProject maps id to the modules folder immediately before the end
// of GlobalSection(NestedProjects).
func (d *Document) InsertNestedProject(layout Layout, id projectid.ID) error {
	if id.IsZero() {
		return errZeroIdentifier
	}
	b, ok := d.section(SectionNestedProjects)
	if !ok {
		return &RegionNotFoundError{Region: sectionRegion(SectionNestedProjects)}
	}
	d.insertLines(b.close, layout.nestedEntry(d.entryIndent(b), id))
	return nil
}

// AddModule performs the three inserts for one module. Every insertion point
// is located before anything is written, so a missing region leaves the
// document untouched.
func (d *Document) AddModule(layout Layout, name string, id projectid.ID) error {
	if err := checkEntry(name, id); err != nil {
		return err
	}
	if d.lastEndProject() < 0 {
		return &RegionNotFoundError{Region: RegionProjects}
	}
	for _, section := range []string{SectionProjectConfigurationPlatforms, SectionNestedProjects} {
		if _, ok := d.section(section); !ok {
			return &RegionNotFoundError{Region: sectionRegion(section)}
		}
	}

	if err := d.InsertProjectReference(layout, name, id); err != nil {
		return err
	}
	if err := d.InsertConfigurationPlatforms(layout, id); err != nil {
		return err
	}
	return d.InsertNestedProject(layout, id)
}

// entryIndent returns the indentation used by entries of a section: that of
// its first entry, or one tab deeper than the header when it is empty.
func (d *Document) entryIndent(b sectionBounds) string {
	if b.close > b.open+1 {
		return d.indent(b.open + 1)
	}
	return d.indent(b.open) + "\t"
}

func checkEntry(name string, id projectid.ID) error {
	if err := types.ModuleName(name).Validate(); err != nil {
		return err
	}
	if id.IsZero() {
		return errZeroIdentifier
	}
	return nil
}

func sectionRegion(name string) string {
	return tokenGlobalSection + name + ")"
}
