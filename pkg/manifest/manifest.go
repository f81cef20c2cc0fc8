// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/slnmod/slnmod/pkg/projectid"
)

// DefaultExt is the manifest extension used by classic C# module projects.
const DefaultExt = ".csproj"

const (
	// KindNotFound means the manifest file does not exist or cannot be read.
	KindNotFound Kind = iota + 1
	// KindMalformed means the manifest was read but holds no usable identifier.
	KindMalformed
)

var (
	// ErrNotFound is wrapped by ExtractError when the manifest cannot be read.
	ErrNotFound = errors.New("project manifest not found")
	// ErrMalformed is wrapped by ExtractError when the manifest does not parse
	// or lacks a valid ProjectGuid.
	ErrMalformed = errors.New("project manifest malformed")

	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
)

type (
	// Kind classifies an extraction failure.
	Kind int

	// ExtractError reports why a project identifier could not be extracted.
	// It unwraps to both the kind sentinel and the underlying cause.
	ExtractError struct {
		Kind  Kind
		Path  string
		Cause error
	}

	projectXML struct {
		XMLName        xml.Name           `xml:"Project"`
		PropertyGroups []propertyGroupXML `xml:"PropertyGroup"`
	}

	propertyGroupXML struct {
		ProjectGUIDs []string `xml:"ProjectGuid"`
	}
)

// FileName returns the manifest file name for a module directory name.
func FileName(moduleName, ext string) string {
	if ext == "" {
		ext = DefaultExt
	}
	return moduleName + ext
}

// Extract reads the manifest at path and returns its project identifier.
func Extract(path string) (projectid.ID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Kind: KindNotFound, Path: path, Cause: err}
	}
	return parse(path, data)
}

func parse(path string, data []byte) (projectid.ID, error) {
	var doc projectXML
	if err := xml.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &doc); err != nil {
		return "", &ExtractError{Kind: KindMalformed, Path: path, Cause: err}
	}

	if len(doc.PropertyGroups) == 0 {
		return "", &ExtractError{Kind: KindMalformed, Path: path, Cause: errors.New("no PropertyGroup element")}
	}
	guids := doc.PropertyGroups[0].ProjectGUIDs
	if len(guids) == 0 {
		return "", &ExtractError{Kind: KindMalformed, Path: path, Cause: errors.New("first PropertyGroup has no ProjectGuid element")}
	}

	id, err := projectid.Parse(guids[0])
	if err != nil {
		return "", &ExtractError{Kind: KindMalformed, Path: path, Cause: err}
	}
	return id, nil
}

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	return fmt.Sprintf("extract project identifier from %s: %s: %v", e.Path, e.Kind, e.Cause)
}

// Unwrap returns the kind sentinel and the underlying cause.
func (e *ExtractError) Unwrap() []error {
	sentinel := ErrMalformed
	if e.Kind == KindNotFound {
		sentinel = ErrNotFound
	}
	if e.Cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, e.Cause}
}
