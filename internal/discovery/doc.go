// SPDX-License-Identifier: MPL-2.0

// Package discovery locates module directories.
//
// Two entry points exist because the add and remove paths find modules
// differently:
//   - Discover scans a modules root and returns every subdirectory that holds
//     a <name>/<name><ext> manifest, sorted by name.
//   - ResolveTargets turns an explicit list of names into module locations
//     under the solution's modules container, without requiring the
//     directories or manifests to exist.
//
// Neither writes output. Skipped entries are reported as Diagnostic values
// that the CLI renders.
package discovery
