// SPDX-License-Identifier: MPL-2.0

// Package modsync adds modules to and removes modules from a solution file.
//
// A run loads the solution once, walks its module list one entry at a time
// against the in-memory document and writes the file at most once, at the
// end, and only when the text changed. A fatal error aborts the run before
// anything is written, so the solution on disk is either fully updated or
// untouched.
//
// Runs against the same solution file must not overlap; callers serialize
// them.
package modsync
