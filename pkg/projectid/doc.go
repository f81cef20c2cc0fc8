// SPDX-License-Identifier: MPL-2.0

// Package projectid models project identifiers as they appear in solution files
// and project manifests: brace-delimited GUIDs such as
// {E9C9F120-07BA-4DFB-B9C3-3AFB9D44C9D5}.
//
// Identifiers are parsed through github.com/google/uuid and kept in a canonical
// upper-case, braced form. Comparisons are case-insensitive because tooling in the
// wild writes both cases into the same solution.
package projectid
