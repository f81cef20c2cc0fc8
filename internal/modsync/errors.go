// SPDX-License-Identifier: MPL-2.0

package modsync

import (
	"errors"
	"fmt"
)

// ErrModule is wrapped by ModuleError.
var ErrModule = errors.New("module synchronization failed")

// ModuleError reports a fatal failure while processing one module. It
// unwraps to ErrModule and to the underlying cause, so callers can test for
// manifest.ErrMalformed or solution.ErrRegionNotFound directly.
type ModuleError struct {
	Op     string
	Module string
	Path   string
	Cause  error
}

// Error implements the error interface.
func (e *ModuleError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s module %q: %v", e.Op, e.Module, e.Cause)
	}
	return fmt.Sprintf("%s module %q (%s): %v", e.Op, e.Module, e.Path, e.Cause)
}

// Unwrap returns ErrModule and the underlying cause.
func (e *ModuleError) Unwrap() []error { return []error{ErrModule, e.Cause} }
