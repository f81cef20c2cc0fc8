// SPDX-License-Identifier: MPL-2.0

// Package config handles slnmod configuration using Viper with CUE as the file format.
//
// The config file is slnmod.cue, looked up in the platform config directory
// ($XDG_CONFIG_HOME/slnmod on Linux, ~/Library/Application Support/slnmod on macOS,
// %APPDATA%\slnmod on Windows) and then in the current directory. Any key can be
// overridden with an SLNMOD_ environment variable, e.g. SLNMOD_SOLUTION_ROOT or
// SLNMOD_SOLUTION_FILE_NAME.
//
// Files are validated against the embedded CUE schema (config_schema.cue) before
// they are merged over the defaults.
package config
