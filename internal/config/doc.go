// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the ytdlpcmd configuration.
//
// Configuration lives in a CUE file resolved from the platform config
// directory (or the current directory as a fallback). The file is validated
// against an embedded CUE schema before being merged into Viper, so defaults
// survive partial configs and schema violations surface with file and path
// context.
package config
