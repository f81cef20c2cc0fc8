// SPDX-License-Identifier: MPL-2.0

package solution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slnmod/slnmod/pkg/projectid"
)

var (
	// ErrIO is wrapped by IOError when the solution file cannot be read.
	ErrIO = errors.New("solution file I/O failed")
	// ErrRegionNotFound is wrapped by RegionNotFoundError.
	ErrRegionNotFound = errors.New("solution region not found")
	// ErrPersistence is wrapped by PersistenceError when a mutated document cannot be written.
	ErrPersistence = errors.New("solution file write failed")
	// ErrInconsistent is wrapped by ConsistencyError.
	ErrInconsistent = errors.New("solution regions are inconsistent")
)

type (
	// IOError reports a failure to read the solution file.
	IOError struct {
		Path  string
		Cause error
	}

	// RegionNotFoundError is returned when an insertion point is missing, for
	// example a solution without GlobalSection(NestedProjects).
	RegionNotFoundError struct {
		Region string
	}

	// PersistenceError reports a failure to write the solution file. The
	// in-memory document keeps its mutations so the caller can retry.
	PersistenceError struct {
		Path  string
		Cause error
	}

	// Inconsistency describes one identifier that is not represented in all
	// of the regions it should be in.
	Inconsistency struct {
		Identifier projectid.ID
		Name       string
		Missing    []string
	}

	// ConsistencyError lists every inconsistency found by CheckConsistency.
	ConsistencyError struct {
		Issues []Inconsistency
	}
)

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("read solution %s: %v", e.Path, e.Cause)
}

// Unwrap returns ErrIO and the underlying cause.
func (e *IOError) Unwrap() []error { return []error{ErrIO, e.Cause} }

// Error implements the error interface.
func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("solution region %s not found", e.Region)
}

// Unwrap returns ErrRegionNotFound for errors.Is() compatibility.
func (e *RegionNotFoundError) Unwrap() error { return ErrRegionNotFound }

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("write solution %s: %v", e.Path, e.Cause)
}

// Unwrap returns ErrPersistence and the underlying cause.
func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Cause} }

// String renders a single inconsistency.
func (i Inconsistency) String() string {
	label := i.Identifier.String()
	if i.Name != "" {
		label = i.Name + " " + label
	}
	return fmt.Sprintf("%s missing from %s", label, strings.Join(i.Missing, ", "))
}

// Error implements the error interface.
func (e *ConsistencyError) Error() string {
	if len(e.Issues) == 1 {
		return "inconsistent solution: " + e.Issues[0].String()
	}
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("inconsistent solution (%d issues):\n  %s", len(e.Issues), strings.Join(parts, "\n  "))
}

// Unwrap returns ErrInconsistent for errors.Is() compatibility.
func (e *ConsistencyError) Unwrap() error { return ErrInconsistent }
