// SPDX-License-Identifier: MPL-2.0

package ytdlp

// General options, self-update targets and the positional source locator.
const (
	// SourceURL is the positional video/playlist locator. Single-use: a second
	// locator in the same builder would be ambiguous about intent, so batch
	// work goes through BatchFile instead.
	SourceURL OptionID = "source-url"

	Update            OptionID = "update"
	UpdateTo          OptionID = "update-to"
	IgnoreErrors      OptionID = "ignore-errors"
	AbortOnError      OptionID = "abort-on-error"
	DumpUserAgent     OptionID = "dump-user-agent"
	ListExtractors    OptionID = "list-extractors"
	DefaultSearch     OptionID = "default-search"
	IgnoreConfig      OptionID = "ignore-config"
	ConfigLocations   OptionID = "config-locations"
	FlatPlaylist      OptionID = "flat-playlist"
	LiveFromStart     OptionID = "live-from-start"
	WaitForVideo      OptionID = "wait-for-video"
	MarkWatched       OptionID = "mark-watched"
	Color             OptionID = "color"
	CompatOptions     OptionID = "compat-options"
	JSRuntimes        OptionID = "js-runtimes"
)

var generalOptions = []OptionSpec{
	{ID: SourceURL, Flag: "", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: Update, Flag: "--update", Arity: 0, SingleUse: true},
	{ID: UpdateTo, Flag: "--update-to", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: IgnoreErrors, Flag: "--ignore-errors", Arity: 0, SingleUse: true},
	{ID: AbortOnError, Flag: "--abort-on-error", Arity: 0, SingleUse: true},
	{ID: DumpUserAgent, Flag: "--dump-user-agent", Arity: 0, SingleUse: true},
	{ID: ListExtractors, Flag: "--list-extractors", Arity: 0, SingleUse: true},
	{ID: DefaultSearch, Flag: "--default-search", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: IgnoreConfig, Flag: "--ignore-config", Arity: 0, SingleUse: true},
	// Multiple config files may be layered, one per occurrence.
	{ID: ConfigLocations, Flag: "--config-locations", Arity: 1, Validate: requireValue},
	{ID: FlatPlaylist, Flag: "--flat-playlist", Arity: 0, SingleUse: true},
	{ID: LiveFromStart, Flag: "--live-from-start", Arity: 0, SingleUse: true},
	{ID: WaitForVideo, Flag: "--wait-for-video", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: MarkWatched, Flag: "--mark-watched", Arity: 0, SingleUse: true},
	{ID: Color, Flag: "--color", Arity: 1, SingleUse: true, Validate: oneOf("always", "auto", "never", "no_color", "auto-tty", "no_color-tty")},
	{ID: CompatOptions, Flag: "--compat-options", Arity: 1, SingleUse: true, Validate: requireValue},
	// One runtime per occurrence, in preference order.
	{ID: JSRuntimes, Flag: "--js-runtimes", Arity: 1, Validate: requireValue},
}
