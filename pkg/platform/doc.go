// SPDX-License-Identifier: MPL-2.0

// Package platform holds OS name constants and Windows naming rules. Module
// directories end up in a Visual Studio solution, so their names must be
// valid on Windows even when slnmod runs elsewhere.
package platform
