// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"errors"
	"strings"
	"testing"

	"github.com/slnmod/slnmod/internal/testutil"
	"github.com/slnmod/slnmod/pkg/projectid"
	"github.com/slnmod/slnmod/pkg/types"
)

func TestAddModule_MatchesFixture(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		before []testutil.FixtureModule
		add    testutil.FixtureModule
		after  []testutil.FixtureModule
	}{
		{
			name:  "into solution without modules",
			add:   testutil.Alpha,
			after: []testutil.FixtureModule{testutil.Alpha},
		},
		{
			name:   "after existing module",
			before: []testutil.FixtureModule{testutil.Alpha},
			add:    testutil.Beta,
			after:  []testutil.FixtureModule{testutil.Alpha, testutil.Beta},
		},
		{
			name:   "keeps insertion order",
			before: []testutil.FixtureModule{testutil.Beta},
			add:    testutil.Alpha,
			after:  []testutil.FixtureModule{testutil.Beta, testutil.Alpha},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Parse(testutil.Solution(tt.before...))
			if err := doc.AddModule(DefaultLayout(), tt.add.Name, tt.add.ID); err != nil {
				t.Fatalf("AddModule() error = %v", err)
			}
			if got, want := doc.String(), testutil.Solution(tt.after...); got != want {
				t.Errorf("AddModule() text mismatch\ngot:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestAddModule_LFDocument(t *testing.T) {
	t.Parallel()

	lf := func(s string) string { return strings.ReplaceAll(s, "\r\n", "\n") }

	doc := Parse(lf(testutil.Solution(testutil.Alpha)))
	if err := doc.AddModule(DefaultLayout(), "Beta", testutil.BetaID); err != nil {
		t.Fatalf("AddModule() error = %v", err)
	}
	if got, want := doc.String(), lf(testutil.Solution(testutil.Alpha, testutil.Beta)); got != want {
		t.Errorf("AddModule() text mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAddModule_MissingRegion(t *testing.T) {
	t.Parallel()

	base := testutil.Solution(testutil.Alpha)
	nested := "\tGlobalSection(NestedProjects) = preSolution\r\n" +
		"\t\t" + string(testutil.AlphaID) + " = " + string(projectid.ModulesFolder) + "\r\n" +
		"\tEndGlobalSection\r\n"
	withoutNested := strings.Replace(base, nested, "", 1)
	if withoutNested == base {
		t.Fatal("fixture does not contain the expected NestedProjects section")
	}

	tests := []struct {
		name   string
		text   string
		region string
	}{
		{"no nested projects", withoutNested, "GlobalSection(NestedProjects)"},
		{"no configuration platforms", strings.Replace(base, "GlobalSection(ProjectConfigurationPlatforms)", "GlobalSection(Renamed)", 1), "GlobalSection(ProjectConfigurationPlatforms)"},
		{"no projects", "Global\r\nEndGlobal\r\n", RegionProjects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Parse(tt.text)
			err := doc.AddModule(DefaultLayout(), "Beta", testutil.BetaID)
			if !errors.Is(err, ErrRegionNotFound) {
				t.Fatalf("AddModule() error = %v, want ErrRegionNotFound", err)
			}
			var regionErr *RegionNotFoundError
			if !errors.As(err, &regionErr) || regionErr.Region != tt.region {
				t.Errorf("AddModule() region = %v, want %q", err, tt.region)
			}
			if doc.Dirty() {
				t.Error("document should be untouched when a region is missing")
			}
		})
	}
}

func TestAddModule_InvalidEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modName string
		id      projectid.ID
		wantErr error
	}{
		{"empty name", "", testutil.BetaID, types.ErrInvalidModuleName},
		{"name with separator", `Beta\Sub`, testutil.BetaID, types.ErrInvalidModuleName},
		{"name with quote", `Be"ta`, testutil.BetaID, types.ErrInvalidModuleName},
		{"zero identifier", "Beta", "", errZeroIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := Parse(testutil.Solution(testutil.Alpha))
			if err := doc.AddModule(DefaultLayout(), tt.modName, tt.id); !errors.Is(err, tt.wantErr) {
				t.Errorf("AddModule() error = %v, want %v", err, tt.wantErr)
			}
			if doc.Dirty() {
				t.Error("document should be untouched on invalid input")
			}
		})
	}
}

func TestInsertConfigurationPlatforms_CustomLayout(t *testing.T) {
	t.Parallel()

	layout := DefaultLayout()
	layout.BuildFlavors = []string{"Debug", "Release", "FxCop"}

	doc := Parse(testutil.Solution())
	if err := doc.InsertConfigurationPlatforms(layout, testutil.BetaID); err != nil {
		t.Fatalf("InsertConfigurationPlatforms() error = %v", err)
	}

	entries := doc.ConfigurationEntries(testutil.BetaID)
	if len(entries) != 6 {
		t.Fatalf("ConfigurationEntries() len = %d, want 6", len(entries))
	}
	last := entries[len(entries)-1]
	if last.Flavor != "FxCop" || last.Platform != "Any CPU" || last.Key != "Build.0" || last.Value != "FxCop|Any CPU" {
		t.Errorf("last entry = %+v", last)
	}
}
