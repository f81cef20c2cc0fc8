// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Save writes the document to path when it is dirty and reports whether a
// write happened. A clean document is never written, so the file keeps its
// modification time. The write goes through a temporary file and a rename;
// on failure the file on disk is unchanged and the document stays dirty.
func (d *Document) Save(path string) (bool, error) {
	if !d.Dirty() {
		return false, nil
	}
	if err := atomicWriteFile(path, []byte(d.String())); err != nil {
		return false, &PersistenceError{Path: path, Cause: err}
	}
	d.markClean()
	return true, nil
}

// atomicWriteFile writes data next to path and renames it into place,
// keeping the permission bits of an existing file.
func atomicWriteFile(path string, data []byte) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat target file: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath) // Best-effort cleanup
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
