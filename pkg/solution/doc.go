// SPDX-License-Identifier: MPL-2.0

// Package solution is a line-oriented editor for Visual Studio style solution
// files. It understands three regions well enough to keep module entries in
// lockstep:
//
//   - the project region: Project(...) ... EndProject blocks
//   - GlobalSection(ProjectConfigurationPlatforms)
//   - GlobalSection(NestedProjects)
//
// Everything else is opaque and is reproduced byte-for-byte. Lines keep their
// original terminators, so a document that is parsed and serialized without
// edits is identical to its input.
//
// Region boundaries are recomputed from the current lines on every operation;
// offsets are never cached across mutations.
package solution
