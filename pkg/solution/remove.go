// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"regexp"
	"strings"

	"github.com/slnmod/slnmod/pkg/projectid"
)

// identifierPatterns are the line patterns tied to one identifier. The
// identifier is escaped with regexp.QuoteMeta because its braces are pattern
// syntax, and every pattern is anchored so that an identifier can never match
// inside a longer or different one.
type identifierPatterns struct {
	header     *regexp.Regexp
	dependency *regexp.Regexp
	config     *regexp.Regexp
	nested     *regexp.Regexp
}

func patternsFor(id projectid.ID) identifierPatterns {
	q := regexp.QuoteMeta(id.String())
	return identifierPatterns{
		header:     regexp.MustCompile(`(?i)^\s*Project\("[^"]*"\)\s*=\s*"([^"]*)"\s*,\s*"[^"]*"\s*,\s*"` + q + `"\s*$`),
		dependency: regexp.MustCompile(`(?i)^\s*` + q + `\s*=\s*` + q + `\s*$`),
		config:     regexp.MustCompile(`(?i)^\s*` + q + `\.[^|=]+\|[^=]+=.*$`),
		nested:     regexp.MustCompile(`(?i)^\s*` + q + `\s*=\s*\{[0-9A-F-]+\}\s*$`),
	}
}

// RemoveProjectReference deletes every Project(...) block whose identifier is id
// and whose name is name (case-insensitive; an empty name matches any), along
// with ProjectDependencies lines in other projects that reference id.
// It returns the number of removed lines.
func (d *Document) RemoveProjectReference(name string, id projectid.ID) int {
	if id.IsZero() {
		return 0
	}
	p := patternsFor(id)
	end := d.globalStart()
	drop := make(map[int]bool)

	for i := 0; i < end; i++ {
		line := d.content(i)
		if m := p.header.FindStringSubmatch(line); m != nil {
			if name != "" && !strings.EqualFold(m[1], name) {
				continue
			}
			last := d.blockEnd(i, end)
			for k := i; k <= last; k++ {
				drop[k] = true
			}
			i = last
			continue
		}
		if p.dependency.MatchString(line) {
			drop[i] = true
		}
	}
	return d.deleteLines(drop)
}

// RemoveConfigurationPlatforms deletes every "<id>.<flavor>|<platform>.<key> = ..."
// line from GlobalSection(ProjectConfigurationPlatforms). Lines of other
// identifiers are never touched, whatever their suffix.
func (d *Document) RemoveConfigurationPlatforms(id projectid.ID) int {
	return d.removeInSection(SectionProjectConfigurationPlatforms, id, patternsFor(id).config)
}

// RemoveNestedProject deletes the "<id> = {parent}" line from GlobalSection(NestedProjects).
func (d *Document) RemoveNestedProject(id projectid.ID) int {
	return d.removeInSection(SectionNestedProjects, id, patternsFor(id).nested)
}

// RemoveModule removes all entries tied to id from the three regions. The
// identifier is authoritative: when the project entry carries a different name
// than the module directory, the entry is still removed so the regions stay in
// lockstep. It returns the total number of removed lines.
func (d *Document) RemoveModule(name string, id projectid.ID) int {
	if ref, ok := d.Project(id); ok && !strings.EqualFold(ref.Name, name) {
		name = ref.Name
	}
	removed := d.RemoveProjectReference(name, id)
	removed += d.RemoveConfigurationPlatforms(id)
	removed += d.RemoveNestedProject(id)
	return removed
}

func (d *Document) removeInSection(section string, id projectid.ID, pattern *regexp.Regexp) int {
	if id.IsZero() {
		return 0
	}
	b, ok := d.section(section)
	if !ok {
		return 0
	}
	drop := make(map[int]bool)
	for i := b.open + 1; i < b.close; i++ {
		if pattern.MatchString(d.content(i)) {
			drop[i] = true
		}
	}
	return d.deleteLines(drop)
}

// blockEnd returns the EndProject line that closes the block opened at start.
// A block without a terminator before the next Project( header is treated as
// the header line alone.
func (d *Document) blockEnd(start, limit int) int {
	for j := start + 1; j < limit; j++ {
		t := d.trimmed(j)
		if t == tokenEndProject {
			return j
		}
		if strings.HasPrefix(t, tokenProject) {
			break
		}
	}
	return start
}
