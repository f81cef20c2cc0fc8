// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/slnmod/slnmod/pkg/projectid"
)

const validManifest = `<?xml version="1.0" encoding="utf-8"?>
<Project ToolsVersion="12.0" DefaultTargets="Build" xmlns="http://schemas.microsoft.com/developer/msbuild/2003">
  <PropertyGroup>
    <Configuration Condition=" '$(Configuration)' == '' ">Debug</Configuration>
    <ProjectGuid>{b3d1a7e2-4c55-4f0b-9e1a-0c2d3e4f5a6b}</ProjectGuid>
    <OutputType>Library</OutputType>
  </PropertyGroup>
  <PropertyGroup Condition=" '$(Configuration)|$(Platform)' == 'Debug|AnyCPU' ">
    <ProjectGuid>{00000000-0000-0000-0000-000000000000}</ProjectGuid>
  </PropertyGroup>
</Project>
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Alpha.csproj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		want     projectid.ID
		wantKind Kind
	}{
		{
			name:    "namespaced msbuild project",
			content: validManifest,
			want:    "{B3D1A7E2-4C55-4F0B-9E1A-0C2D3E4F5A6B}",
		},
		{
			name:    "utf-8 byte order mark",
			content: "\xEF\xBB\xBF" + validManifest,
			want:    "{B3D1A7E2-4C55-4F0B-9E1A-0C2D3E4F5A6B}",
		},
		{
			name:    "quoted identifier",
			content: `<Project><PropertyGroup><ProjectGuid>"{B3D1A7E2-4C55-4F0B-9E1A-0C2D3E4F5A6B}"</ProjectGuid></PropertyGroup></Project>`,
			want:    "{B3D1A7E2-4C55-4F0B-9E1A-0C2D3E4F5A6B}",
		},
		{
			name:     "not xml",
			content:  "this is not a project file",
			wantKind: KindMalformed,
		},
		{
			name:     "no property group",
			content:  `<Project><ItemGroup/></Project>`,
			wantKind: KindMalformed,
		},
		{
			name:     "guid only in later property group",
			content:  `<Project><PropertyGroup/><PropertyGroup><ProjectGuid>{B3D1A7E2-4C55-4F0B-9E1A-0C2D3E4F5A6B}</ProjectGuid></PropertyGroup></Project>`,
			wantKind: KindMalformed,
		},
		{
			name:     "invalid guid",
			content:  `<Project><PropertyGroup><ProjectGuid>{nope}</ProjectGuid></PropertyGroup></Project>`,
			wantKind: KindMalformed,
		},
		{
			name:     "wrong root element",
			content:  `<Solution><PropertyGroup><ProjectGuid>{B3D1A7E2-4C55-4F0B-9E1A-0C2D3E4F5A6B}</ProjectGuid></PropertyGroup></Solution>`,
			wantKind: KindMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeManifest(t, tt.content)
			got, err := Extract(path)

			if tt.wantKind != 0 {
				var extractErr *ExtractError
				if !errors.As(err, &extractErr) {
					t.Fatalf("Extract() error = %v, want *ExtractError", err)
				}
				if extractErr.Kind != tt.wantKind {
					t.Errorf("Kind = %v, want %v", extractErr.Kind, tt.wantKind)
				}
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("error should wrap ErrMalformed, got: %v", err)
				}
				if extractErr.Path != path {
					t.Errorf("Path = %q, want %q", extractErr.Path, path)
				}
				return
			}

			if err != nil {
				t.Fatalf("Extract() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Gone", "Gone.csproj")
	_, err := Extract(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Extract() error = %v, want ErrNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should also wrap fs.ErrNotExist, got: %v", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("missing manifest should not be reported as malformed")
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	if got := FileName("Orchard.Blogs", ""); got != "Orchard.Blogs.csproj" {
		t.Errorf("FileName() = %q", got)
	}
	if got := FileName("Theme", ".vbproj"); got != "Theme.vbproj" {
		t.Errorf("FileName() = %q", got)
	}
}
