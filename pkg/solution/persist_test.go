// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/slnmod/slnmod/internal/testutil"
)

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.sln"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("Load() error = %v, want ErrIO", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestSave_CleanDocumentIsNotWritten(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Orchard.sln")
	testutil.MustWriteFile(t, path, testutil.Solution(testutil.Alpha))
	old := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes() error = %v", err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// Absent module: nothing to remove.
	doc.RemoveModule("Beta", testutil.BetaID)

	written, err := doc.Save(path)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if written {
		t.Error("Save() wrote a clean document")
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("ModTime() = %v, want %v", info.ModTime(), old)
	}
}

func TestSave_DirtyDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Orchard.sln")
	testutil.MustWriteFile(t, path, testutil.Solution(testutil.Alpha))

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := doc.AddModule(DefaultLayout(), "Beta", testutil.BetaID); err != nil {
		t.Fatalf("AddModule() error = %v", err)
	}

	written, err := doc.Save(path)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !written {
		t.Error("Save() did not write a dirty document")
	}
	if doc.Dirty() {
		t.Error("document should be clean after Save()")
	}
	if got, want := testutil.MustReadFile(t, path), testutil.Solution(testutil.Alpha, testutil.Beta); got != want {
		t.Errorf("file content mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("temporary file left behind: %v", err)
	}

	written, err = doc.Save(path)
	if err != nil || written {
		t.Errorf("second Save() = %v, %v; want false, nil", written, err)
	}
}

func TestSave_Failure(t *testing.T) {
	t.Parallel()

	doc := Parse(testutil.Solution(testutil.Alpha))
	if err := doc.AddModule(DefaultLayout(), "Beta", testutil.BetaID); err != nil {
		t.Fatalf("AddModule() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "missing-dir", "Orchard.sln")
	written, err := doc.Save(path)
	if !errors.Is(err, ErrPersistence) {
		t.Fatalf("Save() error = %v, want ErrPersistence", err)
	}
	if written {
		t.Error("Save() reported a write on failure")
	}
	if !doc.Dirty() {
		t.Error("document should stay dirty after a failed Save()")
	}
}
