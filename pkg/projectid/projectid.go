// SPDX-License-Identifier: MPL-2.0

package projectid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// ModulesFolder identifies the "Modules" solution folder that every module
	// project is nested under.
	ModulesFolder ID = "{E9C9F120-07BA-4DFB-B9C3-3AFB9D44C9D5}"
	// CSharpProjectType is the project type of a classic C# project (.csproj).
	CSharpProjectType ID = "{FAE04EC0-301F-11D3-BF4B-00C04F79EFBC}"
	// SolutionFolderType is the project type used for solution folders.
	SolutionFolderType ID = "{2150E333-8FDC-42A3-9474-1A3956D46DE8}"
)

// ErrInvalidID is the sentinel error wrapped by InvalidIDError.
var ErrInvalidID = errors.New("invalid project identifier")

type (
	// ID is a project identifier in canonical form: "{" + upper-case GUID + "}".
	// The zero value is invalid.
	ID string

	// InvalidIDError is returned when a token cannot be read as a GUID.
	InvalidIDError struct {
		Token string
		Cause error
	}
)

// Parse reads a GUID token as found in a manifest or solution file. Surrounding
// whitespace and quote characters are stripped, braces are optional but must be
// balanced.
func Parse(token string) (ID, error) {
	s := strings.Trim(strings.TrimSpace(token), `"'`)
	s = strings.TrimSpace(s)

	hasOpen, hasClose := strings.HasPrefix(s, "{"), strings.HasSuffix(s, "}")
	if hasOpen != hasClose {
		return "", &InvalidIDError{Token: token, Cause: errors.New("unbalanced braces")}
	}
	if hasOpen {
		s = s[1 : len(s)-1]
	}
	if strings.ContainsAny(s, "{}") {
		return "", &InvalidIDError{Token: token, Cause: errors.New("unexpected brace")}
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return "", &InvalidIDError{Token: token, Cause: err}
	}
	return ID("{" + strings.ToUpper(u.String()) + "}"), nil
}

// MustParse is like Parse but panics on error. Intended for constants and tests.
func MustParse(token string) ID {
	id, err := Parse(token)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the braced form.
func (id ID) String() string { return string(id) }

// Bare returns the GUID without braces.
func (id ID) Bare() string {
	return strings.TrimSuffix(strings.TrimPrefix(string(id), "{"), "}")
}

// Validate reports whether the identifier is in canonical form.
func (id ID) Validate() error {
	parsed, err := Parse(string(id))
	if err != nil {
		return err
	}
	if parsed != id {
		return &InvalidIDError{Token: string(id), Cause: errors.New("not in canonical form")}
	}
	return nil
}

// Equal compares two identifiers case-insensitively.
func (id ID) Equal(other ID) bool {
	return strings.EqualFold(string(id), string(other))
}

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool { return id == "" }

// Error implements the error interface.
func (e *InvalidIDError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid project identifier %q: %v", e.Token, e.Cause)
	}
	return fmt.Sprintf("invalid project identifier %q", e.Token)
}

// Unwrap returns ErrInvalidID for errors.Is() compatibility.
func (e *InvalidIDError) Unwrap() error { return ErrInvalidID }
