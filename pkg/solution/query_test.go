// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"errors"
	"slices"
	"testing"

	"github.com/slnmod/slnmod/internal/testutil"
	"github.com/slnmod/slnmod/pkg/projectid"
)

func TestDocument_Projects(t *testing.T) {
	t.Parallel()

	doc := Parse(testutil.Solution(testutil.Alpha, testutil.Beta))

	refs := doc.Projects()
	if len(refs) != 4 {
		t.Fatalf("Projects() len = %d, want 4", len(refs))
	}
	if refs[0].Name != "Modules" || !refs[0].Identifier.Equal(projectid.ModulesFolder) {
		t.Errorf("Projects()[0] = %+v, want the Modules folder", refs[0])
	}

	mods := doc.ModuleProjects(DefaultLayout())
	var names []string
	for _, m := range mods {
		names = append(names, m.Name)
	}
	if !slices.Equal(names, []string{"Alpha", "Beta"}) {
		t.Errorf("ModuleProjects() names = %v, want [Alpha Beta]", names)
	}

	ref, ok := doc.Project(testutil.BetaID)
	if !ok {
		t.Fatal("Project(Beta) not found")
	}
	if ref.RelativePath != `Orchard.Web\Modules\Beta\Beta.csproj` {
		t.Errorf("RelativePath = %q", ref.RelativePath)
	}
	if !ref.TypeID.Equal(projectid.CSharpProjectType) {
		t.Errorf("TypeID = %q", ref.TypeID)
	}
}

func TestDocument_ConfigurationEntries(t *testing.T) {
	t.Parallel()

	doc := Parse(testutil.Solution(testutil.Alpha))
	entries := doc.ConfigurationEntries(testutil.AlphaID)
	if len(entries) != 4 {
		t.Fatalf("ConfigurationEntries() len = %d, want 4", len(entries))
	}

	want := ConfigurationEntry{Identifier: testutil.AlphaID, Flavor: "Debug", Platform: "Any CPU", Key: "ActiveCfg", Value: "Debug|Any CPU"}
	if entries[0] != want {
		t.Errorf("entries[0] = %+v, want %+v", entries[0], want)
	}
	if entries[3].Flavor != "Release" || entries[3].Key != "Build.0" {
		t.Errorf("entries[3] = %+v", entries[3])
	}
}

func TestDocument_NestedParent(t *testing.T) {
	t.Parallel()

	doc := Parse(testutil.Solution(testutil.Alpha))
	parent, ok := doc.NestedParent(testutil.AlphaID)
	if !ok || !parent.Equal(projectid.ModulesFolder) {
		t.Errorf("NestedParent(Alpha) = %q, %v", parent, ok)
	}
	if _, ok := doc.NestedParent(testutil.WebID); ok {
		t.Error("Orchard.Web should not be nested")
	}
}

func TestDocument_CheckConsistency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(*Document)
		wantID      projectid.ID
		wantName    string
		wantMissing []string
	}{
		{
			name:   "consistent",
			mutate: func(*Document) {},
		},
		{
			name:        "missing nested entry",
			mutate:      func(d *Document) { d.RemoveNestedProject(testutil.BetaID) },
			wantID:      testutil.BetaID,
			wantName:    "Beta",
			wantMissing: []string{"GlobalSection(NestedProjects)"},
		},
		{
			name:        "missing configuration",
			mutate:      func(d *Document) { d.RemoveConfigurationPlatforms(testutil.AlphaID) },
			wantID:      testutil.AlphaID,
			wantName:    "Alpha",
			wantMissing: []string{"GlobalSection(ProjectConfigurationPlatforms)"},
		},
		{
			name:        "orphaned entries",
			mutate:      func(d *Document) { d.RemoveProjectReference("Beta", testutil.BetaID) },
			wantID:      testutil.BetaID,
			wantMissing: []string{RegionProjects},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Parse(testutil.Solution(testutil.Alpha, testutil.Beta))
			tt.mutate(doc)

			err := doc.CheckConsistency(DefaultLayout())
			if tt.wantID == "" {
				if err != nil {
					t.Fatalf("CheckConsistency() error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInconsistent) {
				t.Fatalf("CheckConsistency() error = %v, want ErrInconsistent", err)
			}
			var ce *ConsistencyError
			if !errors.As(err, &ce) || len(ce.Issues) != 1 {
				t.Fatalf("CheckConsistency() error = %#v, want one issue", err)
			}
			issue := ce.Issues[0]
			if issue.Identifier != tt.wantID || issue.Name != tt.wantName || !slices.Equal(issue.Missing, tt.wantMissing) {
				t.Errorf("issue = %+v, want id=%s name=%q missing=%v", issue, tt.wantID, tt.wantName, tt.wantMissing)
			}
		})
	}
}
