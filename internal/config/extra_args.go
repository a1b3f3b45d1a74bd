// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"

	"mvdan.cc/sh/v3/shell"
)

// SplitExtraArgs splits the extra_args config value into individual command
// tokens using POSIX shell word rules, so quoted arguments with spaces
// survive intact (e.g. `--output "My Videos/%(title)s.%(ext)s"`).
// Environment variables are expanded from the process environment.
func SplitExtraArgs(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	fields, err := shell.Fields(raw, os.Getenv)
	if err != nil {
		return nil, fmt.Errorf("failed to split extra_args: %w", err)
	}
	return fields, nil
}
