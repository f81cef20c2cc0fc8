// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"errors"
	"fmt"
)

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"

	// CodeModuleManifestMissing marks a directory without <name>/<name><ext>.
	CodeModuleManifestMissing DiagnosticCode = "module_manifest_missing"
	// CodeInvalidModuleName marks a directory or target whose name cannot be
	// written into a solution entry.
	CodeInvalidModuleName DiagnosticCode = "invalid_module_name"
	// CodeBlankTarget marks an empty entry in the removal target list.
	CodeBlankTarget DiagnosticCode = "blank_target_ignored"
	// CodeDuplicateTarget marks a repeated entry in the removal target list.
	CodeDuplicateTarget DiagnosticCode = "duplicate_target_ignored"
)

var (
	// ErrInvalidSeverity is returned when a Severity value is not recognized.
	ErrInvalidSeverity = errors.New("invalid diagnostic severity")
	// ErrInvalidDiagnosticCode is returned when a DiagnosticCode value is not recognized.
	ErrInvalidDiagnosticCode = errors.New("invalid diagnostic code")
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// DiagnosticCode is a machine-readable diagnostic identifier.
	DiagnosticCode string

	// Diagnostic represents a structured discovery diagnostic that is returned
	// to callers (rather than written to stderr) for consistent rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier (e.g., "module_manifest_missing").
		Code DiagnosticCode
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}
)

// NewDiagnostic creates a diagnostic without path or cause.
func NewDiagnostic(severity Severity, code DiagnosticCode, message string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message}
}

// NewDiagnosticWithPath creates a diagnostic tied to a filesystem path.
func NewDiagnosticWithPath(severity Severity, code DiagnosticCode, message, path string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path}
}

// NewDiagnosticWithCause creates a diagnostic tied to a path and an underlying error.
func NewDiagnosticWithCause(severity Severity, code DiagnosticCode, message, path string, cause error) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Message: message, Path: path, Cause: cause}
}

// Validate returns an error wrapping ErrInvalidSeverity for unknown values.
func (s Severity) Validate() error {
	switch s {
	case SeverityWarning, SeverityError:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, string(s))
	}
}

// String returns the string representation of the DiagnosticCode.
func (c DiagnosticCode) String() string { return string(c) }

// Validate returns an error wrapping ErrInvalidDiagnosticCode for unknown values.
func (c DiagnosticCode) Validate() error {
	switch c {
	case CodeModuleManifestMissing, CodeInvalidModuleName, CodeBlankTarget, CodeDuplicateTarget:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDiagnosticCode, string(c))
	}
}

// String renders the diagnostic as a single line.
func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", d.Severity, d.Message, d.Path)
}
