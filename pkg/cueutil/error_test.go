// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		if err := FormatError(nil, "slnmod.cue"); err != nil {
			t.Errorf("expected nil, got %v", err)
		}
	})

	t.Run("non-CUE error is wrapped with filepath", func(t *testing.T) {
		t.Parallel()
		original := errors.New("some error")
		err := FormatError(original, "slnmod.cue")
		if !errors.Is(err, original) {
			t.Errorf("FormatError() lost the original error: %v", err)
		}
		if !strings.HasPrefix(err.Error(), "slnmod.cue: ") {
			t.Errorf("error should start with the file path, got: %v", err)
		}
	})
}

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{"empty path", nil, ""},
		{"single element", []string{"solution_root"}, "solution_root"},
		{"nested path", []string{"solution", "platform"}, "solution.platform"},
		{"array index", []string{"sources", "0", "url"}, "sources[0].url"},
		{"trailing index", []string{"solution", "build_flavors", "1"}, "solution.build_flavors[1]"},
		{"numeric first element", []string{"0", "x"}, "0.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.expected {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := CheckFileSize(make([]byte, 100), 100, "slnmod.cue"); err != nil {
		t.Errorf("data at exact limit: %v", err)
	}

	err := CheckFileSize(make([]byte, 101), 100, "slnmod.cue")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("CheckFileSize() = %v, want ErrFileTooLarge", err)
	}
	for _, want := range []string{"slnmod.cue", "101", "100"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got: %v", want, err)
		}
	}
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	single := &ValidationError{FilePath: "slnmod.cue", Violations: []Violation{{Path: "ui.verbose", Message: "expected bool"}}}
	if got := single.Error(); got != "slnmod.cue: ui.verbose: expected bool" {
		t.Errorf("Error() = %q", got)
	}

	multi := &ValidationError{FilePath: "slnmod.cue", Violations: []Violation{
		{Path: "a", Message: "one"},
		{Message: "two"},
	}}
	if got := multi.Error(); got != "slnmod.cue: validation failed:\n  a: one\n  two" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(multi, ErrValidation) {
		t.Error("ValidationError should wrap ErrValidation")
	}
}
