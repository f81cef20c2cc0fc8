// SPDX-License-Identifier: MPL-2.0

// Package testutil provides helper functions for tests that handle errors
// appropriately, reducing boilerplate and ensuring consistent error handling.
//
// Besides the Must* helpers (MustSetenv, MustChdir, MustWriteFile, ...), it
// renders fixture solutions and module manifests so package tests can build
// Orchard-style trees in a temporary directory.
package testutil
