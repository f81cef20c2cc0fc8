// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the slnmod CLI.
//
// Commands are built per App so tests can run them against temporary
// Orchard trees with captured output. Business logic lives in
// internal/modsync and pkg/solution; this package loads configuration,
// resolves paths, renders results and maps failures to exit codes.
package cmd
