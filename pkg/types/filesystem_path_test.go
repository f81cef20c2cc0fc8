// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemPath_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    FilesystemPath
		wantErr bool
	}{
		{"absolute path", FilesystemPath("/srv/orchard/src/Orchard.sln"), false},
		{"relative path", FilesystemPath("modules"), false},
		{"windows style", FilesystemPath("C:\\Orchard\\src"), false},
		{"dot path", FilesystemPath("."), false},
		{"empty is invalid", FilesystemPath(""), true},
		{"whitespace only is invalid", FilesystemPath("   "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.path.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("FilesystemPath(%q).Validate() error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidFilesystemPath) {
				t.Errorf("error should wrap ErrInvalidFilesystemPath, got: %v", err)
			}
		})
	}
}

func TestFilesystemPath_IsFileIsDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "Alpha.csproj")
	if err := os.WriteFile(file, []byte("<Project/>"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if !FilesystemPath(file).IsFile() {
		t.Error("IsFile() = false for regular file")
	}
	if FilesystemPath(file).IsDir() {
		t.Error("IsDir() = true for regular file")
	}
	if !FilesystemPath(dir).IsDir() {
		t.Error("IsDir() = false for directory")
	}
	if FilesystemPath(filepath.Join(dir, "missing")).IsFile() {
		t.Error("IsFile() = true for missing path")
	}
}
