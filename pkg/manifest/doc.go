// SPDX-License-Identifier: MPL-2.0

// Package manifest reads project manifests (MSBuild .csproj files) far enough to
// extract the project identifier that ties a module to its solution entries.
//
// Only the field path Project -> PropertyGroup[0] -> ProjectGuid[0] is modeled.
// The rest of the manifest schema is ignored.
package manifest
