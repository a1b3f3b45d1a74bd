// SPDX-License-Identifier: MPL-2.0

package ytdlp

import (
	"slices"
	"strings"
)

// Invocation is the materialized view of a Command: everything a
// process-execution layer needs, whether it spawns from an argv list or a
// single command-line string.
type Invocation struct {
	// BaseCommand is the executable reference.
	BaseCommand string `json:"base_command"`
	// Args is the token sequence in call order.
	Args []string `json:"args"`
	// CompleteCommand is BaseCommand and Args joined by single spaces.
	CompleteCommand string `json:"complete_command"`
}

// Base returns the executable reference.
func (c *Command) Base() string {
	return c.base
}

// Args returns a snapshot copy of the token sequence in call order. Repeated
// calls without intervening configuration yield identical results.
func (c *Command) Args() []string {
	return slices.Clone(c.args)
}

// CommandLine returns the executable reference followed by the token
// sequence, space-separated.
//
// No quoting or escaping is applied. Tokens containing spaces or shell
// metacharacters are joined verbatim, which keeps the output predictable and
// target-shell agnostic; a caller passing the result to a shell is
// responsible for quoting it. Callers spawning processes directly should
// prefer Build and hand Args to the process as an argv list.
func (c *Command) CommandLine() string {
	if len(c.args) == 0 {
		return c.base
	}
	return c.base + " " + strings.Join(c.args, " ")
}

// String implements fmt.Stringer as CommandLine.
func (c *Command) String() string {
	return c.CommandLine()
}

// Build materializes the current state into an Invocation. It is computed
// fresh on every call, so it always reflects the latest configuration; the
// Command itself is left untouched and may keep accumulating options.
func (c *Command) Build() Invocation {
	return Invocation{
		BaseCommand:     c.base,
		Args:            c.Args(),
		CompleteCommand: c.CommandLine(),
	}
}
