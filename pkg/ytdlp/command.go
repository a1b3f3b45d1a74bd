// SPDX-License-Identifier: MPL-2.0

package ytdlp

import "strings"

// DefaultExecutable is the bare program name used when no explicit path is
// given at construction; resolution is left to the environment's search path.
const DefaultExecutable = "yt-dlp"

// Command accumulates one yt-dlp invocation under construction: the
// executable reference, the ordered token sequence, and the set of single-use
// options already configured. One instance equals one command; it is owned by
// a single sequential caller and is not safe for concurrent mutation.
type Command struct {
	base string
	args []string
	used usageTracker
}

// New creates a Command that invokes DefaultExecutable.
func New() *Command {
	return NewWithPath(DefaultExecutable)
}

// NewWithPath creates a Command that invokes the given executable, either a
// bare name resolved via PATH or an explicit filesystem path. A blank path
// falls back to DefaultExecutable. The executable reference is immutable for
// the lifetime of the Command.
func NewWithPath(path string) *Command {
	if strings.TrimSpace(path) == "" {
		path = DefaultExecutable
	}
	return &Command{base: path, used: usageTracker{}}
}

// Set configures the option identified by id with the given value tokens.
// The catalog entry decides everything structural: the emitted flag text, how
// many values must follow it, whether a second call is rejected with an
// AlreadyUsedError, and which validation each value must pass. Validation and
// the single-use check both happen before any token is appended, so a failed
// call leaves the Command unchanged.
func (c *Command) Set(id OptionID, values ...string) error {
	spec, err := lookup(id)
	if err != nil {
		return err
	}
	if len(values) != spec.Arity {
		return inputErrorf(id, "expected %d value(s), got %d", spec.Arity, len(values))
	}
	switch {
	case spec.ValidateAt != nil:
		for i, v := range values {
			if vf := spec.ValidateAt[i]; vf != nil {
				if verr := vf(v); verr != nil {
					return &InputError{Option: id, Reason: verr.Error()}
				}
			}
		}
	case spec.Validate != nil:
		for _, v := range values {
			if verr := spec.Validate(v); verr != nil {
				return &InputError{Option: id, Reason: verr.Error()}
			}
		}
	}
	if spec.SingleUse {
		if err := c.used.checkAndMark(id); err != nil {
			return err
		}
	}
	if spec.Flag != "" {
		c.args = append(c.args, spec.Flag)
	}
	c.args = append(c.args, values...)
	return nil
}

// SetFlag configures a boolean switch (an arity-0 option).
func (c *Command) SetFlag(id OptionID) error {
	return c.Set(id)
}

// SetList configures a list-valued option, joining items with EncodeList.
// A single already-comma-separated string passes through unchanged.
func (c *Command) SetList(id OptionID, items ...string) error {
	if len(items) == 0 {
		return inputErrorf(id, "expected at least one item")
	}
	return c.Set(id, EncodeList(items...))
}

// URL appends the source locator as a bare positional token. yt-dlp reads it
// at the position implied by the call, so URL participates in call order like
// any flag; it is single-use per the catalog.
func (c *Command) URL(locator string) error {
	return c.Set(SourceURL, locator)
}

// Append pushes literal tokens onto the sequence with no validation and no
// usage tracking, preserving call order. It is the escape hatch for flags the
// catalog does not know, and returns the Command for chaining.
func (c *Command) Append(tokens ...string) *Command {
	c.args = append(c.args, tokens...)
	return c
}
