// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"os"
	"strings"

	"github.com/slnmod/slnmod/pkg/projectid"
)

const (
	// SectionProjectConfigurationPlatforms maps project identifiers to build flavors.
	SectionProjectConfigurationPlatforms = "ProjectConfigurationPlatforms"
	// SectionNestedProjects maps project identifiers to their parent solution folder.
	SectionNestedProjects = "NestedProjects"

	// RegionProjects names the project-reference region in errors and reports.
	RegionProjects = "projects"

	tokenEndProject       = "EndProject"
	tokenEndGlobalSection = "EndGlobalSection"
	tokenGlobal           = "Global"
	tokenGlobalSection    = "GlobalSection("
	tokenProject          = "Project("

	crlf = "\r\n"
	lf   = "\n"
)

type (
	// Document is an in-memory solution file. It is not safe for concurrent
	// use; edits are positional and must be applied one at a time.
	Document struct {
		lines    []string
		newline  string
		baseline string
	}

	// sectionBounds holds the line indexes of a GlobalSection header and of
	// its closing EndGlobalSection line.
	sectionBounds struct {
		open  int
		close int
	}
)

// Load reads the solution file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Cause: err}
	}
	return Parse(string(data)), nil
}

// Parse builds a Document from solution text. Parsing never fails: regions
// that are absent only matter to the operations that need them.
func Parse(text string) *Document {
	lines := strings.SplitAfter(text, lf)
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	newline := crlf
	if strings.Contains(text, lf) && !strings.Contains(text, crlf) {
		newline = lf
	}

	return &Document{lines: lines, newline: newline, baseline: text}
}

// String returns the current text of the document.
func (d *Document) String() string {
	return strings.Join(d.lines, "")
}

// Newline returns the line terminator new entries are written with.
func (d *Document) Newline() string { return d.newline }

// Dirty reports whether the text differs from what was loaded or last saved.
func (d *Document) Dirty() bool {
	return d.String() != d.baseline
}

// markClean records the current text as the persisted baseline.
func (d *Document) markClean() {
	d.baseline = d.String()
}

// ContainsIdentifier reports whether id occurs anywhere in the document,
// compared case-insensitively.
func (d *Document) ContainsIdentifier(id projectid.ID) bool {
	if id.IsZero() {
		return false
	}
	needle := strings.ToUpper(id.String())
	for _, line := range d.lines {
		if strings.Contains(strings.ToUpper(line), needle) {
			return true
		}
	}
	return false
}

// content returns line i without its terminator.
func (d *Document) content(i int) string {
	return strings.TrimRight(d.lines[i], "\r\n")
}

// trimmed returns line i without surrounding whitespace.
func (d *Document) trimmed(i int) string {
	return strings.TrimSpace(d.lines[i])
}

// indent returns the leading whitespace of line i.
func (d *Document) indent(i int) string {
	c := d.content(i)
	return c[:len(c)-len(strings.TrimLeft(c, " \t"))]
}

// globalStart returns the index of the "Global" line, or len(lines) when the
// document has no global block.
func (d *Document) globalStart() int {
	for i := range d.lines {
		if d.trimmed(i) == tokenGlobal {
			return i
		}
	}
	return len(d.lines)
}

// lastEndProject returns the index of the last EndProject line before the
// global block, or -1.
func (d *Document) lastEndProject() int {
	for i := d.globalStart() - 1; i >= 0; i-- {
		if d.trimmed(i) == tokenEndProject {
			return i
		}
	}
	return -1
}

// section locates GlobalSection(name) and its closing line.
func (d *Document) section(name string) (sectionBounds, bool) {
	header := tokenGlobalSection + name + ")"
	for i := range d.lines {
		if !strings.HasPrefix(d.trimmed(i), header) {
			continue
		}
		for j := i + 1; j < len(d.lines); j++ {
			if d.trimmed(j) == tokenEndGlobalSection {
				return sectionBounds{open: i, close: j}, true
			}
		}
		return sectionBounds{}, false
	}
	return sectionBounds{}, false
}

// insertLines inserts entries before line index at, terminating each with the
// document newline.
func (d *Document) insertLines(at int, entries ...string) {
	added := make([]string, len(entries))
	for i, e := range entries {
		added[i] = e + d.newline
	}
	lines := make([]string, 0, len(d.lines)+len(added))
	lines = append(lines, d.lines[:at]...)
	lines = append(lines, added...)
	lines = append(lines, d.lines[at:]...)
	d.lines = lines
}

// ensureTerminated adds a newline to line i if it is the unterminated last line.
func (d *Document) ensureTerminated(i int) {
	if !strings.HasSuffix(d.lines[i], lf) {
		d.lines[i] += d.newline
	}
}

// deleteLines removes every line whose index is set in drop and returns the
// number of removed lines.
func (d *Document) deleteLines(drop map[int]bool) int {
	if len(drop) == 0 {
		return 0
	}
	kept := make([]string, 0, len(d.lines)-len(drop))
	for i, line := range d.lines {
		if !drop[i] {
			kept = append(kept, line)
		}
	}
	d.lines = kept
	return len(drop)
}
