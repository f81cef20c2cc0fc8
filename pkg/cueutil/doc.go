// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates CUE documents against an embedded schema.
//
// DecodeMap runs the three steps used for configuration files:
//
//  1. Compile the embedded schema and look up its root definition
//  2. Compile the user file and unify it with that definition
//  3. Validate (non-concrete values allowed) and decode to a map
//
// Errors carry the file name and a JSON-style path to the offending field,
// e.g. "slnmod.cue: solution.build_flavors[0]: conflicting values".
package cueutil
