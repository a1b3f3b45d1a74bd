// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Option is a deferred configuration call, applied with Command.Apply. It
// exists for callers that assemble an invocation from a slice of settings
// (config files, request payloads) rather than direct method calls.
type Option func(*Command) error

// WithValue defers Command.Set.
func WithValue(id OptionID, values ...string) Option {
	return func(c *Command) error { return c.Set(id, values...) }
}

// WithFlag defers Command.SetFlag.
func WithFlag(id OptionID) Option {
	return func(c *Command) error { return c.SetFlag(id) }
}

// WithList defers Command.SetList.
func WithList(id OptionID, items ...string) Option {
	return func(c *Command) error { return c.SetList(id, items...) }
}

// WithURL defers Command.URL.
func WithURL(locator string) Option {
	return func(c *Command) error { return c.URL(locator) }
}

// Apply runs the given options in order and stops at the first error. Options
// applied before the failing one remain in effect; the failing call itself
// leaves the Command unchanged, so the caller may continue from the last good
// state.
func (c *Command) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}
