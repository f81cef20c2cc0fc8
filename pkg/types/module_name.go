// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/slnmod/slnmod/pkg/platform"
)

// ErrInvalidModuleName is the sentinel error wrapped by InvalidModuleNameError.
var ErrInvalidModuleName = errors.New("invalid module name")

type (
	// ModuleName is the directory name of a module, which is also the base name
	// of its project manifest (e.g. "Orchard.Blogs" -> Orchard.Blogs/Orchard.Blogs.csproj).
	ModuleName string

	// InvalidModuleNameError is returned when a ModuleName is empty or would
	// escape the modules container directory.
	InvalidModuleNameError struct {
		Value  ModuleName
		Reason string
	}
)

// String returns the string representation of the ModuleName.
func (n ModuleName) String() string { return string(n) }

// Validate rejects names that cannot be a module directory in a Windows
// checkout: empty, dot-only or reserved names and names with separators.
func (n ModuleName) Validate() error {
	s := string(n)
	switch {
	case strings.TrimSpace(s) == "":
		return &InvalidModuleNameError{Value: n, Reason: "must be non-empty"}
	case strings.ContainsAny(s, `/\`):
		return &InvalidModuleNameError{Value: n, Reason: "must not contain path separators"}
	case strings.Trim(s, ".") == "":
		return &InvalidModuleNameError{Value: n, Reason: "must not be a relative path element"}
	case strings.ContainsAny(s, "\"\r\n"):
		return &InvalidModuleNameError{Value: n, Reason: "must not contain quotes or line breaks"}
	case platform.IsWindowsReservedName(s):
		return &InvalidModuleNameError{Value: n, Reason: "must not be a Windows reserved device name"}
	}
	return nil
}

// Error implements the error interface for InvalidModuleNameError.
func (e *InvalidModuleNameError) Error() string {
	return fmt.Sprintf("invalid module name %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidModuleName for errors.Is() compatibility.
func (e *InvalidModuleNameError) Unwrap() error { return ErrInvalidModuleName }
