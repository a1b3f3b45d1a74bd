// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Video selection options.
const (
	PlaylistItems           OptionID = "playlist-items"
	MinFilesize             OptionID = "min-filesize"
	MaxFilesize             OptionID = "max-filesize"
	Date                    OptionID = "date"
	DateBefore              OptionID = "datebefore"
	DateAfter               OptionID = "dateafter"
	MatchFilters            OptionID = "match-filters"
	NoMatchFilters          OptionID = "no-match-filters"
	BreakMatchFilters       OptionID = "break-match-filters"
	NoPlaylist              OptionID = "no-playlist"
	YesPlaylist             OptionID = "yes-playlist"
	AgeLimit                OptionID = "age-limit"
	DownloadArchive         OptionID = "download-archive"
	MaxDownloads            OptionID = "max-downloads"
	BreakOnExisting         OptionID = "break-on-existing"
	BreakPerInput           OptionID = "break-per-input"
	SkipPlaylistAfterErrors OptionID = "skip-playlist-after-errors"
)

var selectionOptions = []OptionSpec{
	{ID: PlaylistItems, Flag: "--playlist-items", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: MinFilesize, Flag: "--min-filesize", Arity: 1, SingleUse: true, Validate: requireSize},
	{ID: MaxFilesize, Flag: "--max-filesize", Arity: 1, SingleUse: true, Validate: requireSize},
	{ID: Date, Flag: "--date", Arity: 1, SingleUse: true, Validate: requireDate},
	{ID: DateBefore, Flag: "--datebefore", Arity: 1, SingleUse: true, Validate: requireDate},
	{ID: DateAfter, Flag: "--dateafter", Arity: 1, SingleUse: true, Validate: requireDate},
	// Filters are additive: each occurrence ORs another filter expression.
	{ID: MatchFilters, Flag: "--match-filters", Arity: 1, Validate: requireValue},
	{ID: NoMatchFilters, Flag: "--no-match-filters", Arity: 0, SingleUse: true},
	{ID: BreakMatchFilters, Flag: "--break-match-filters", Arity: 1, Validate: requireValue},
	{ID: NoPlaylist, Flag: "--no-playlist", Arity: 0, SingleUse: true},
	{ID: YesPlaylist, Flag: "--yes-playlist", Arity: 0, SingleUse: true},
	{ID: AgeLimit, Flag: "--age-limit", Arity: 1, SingleUse: true, Validate: requireUint},
	{ID: DownloadArchive, Flag: "--download-archive", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: MaxDownloads, Flag: "--max-downloads", Arity: 1, SingleUse: true, Validate: requireUint},
	{ID: BreakOnExisting, Flag: "--break-on-existing", Arity: 0, SingleUse: true},
	{ID: BreakPerInput, Flag: "--break-per-input", Arity: 0, SingleUse: true},
	{ID: SkipPlaylistAfterErrors, Flag: "--skip-playlist-after-errors", Arity: 1, SingleUse: true, Validate: requireUint},
}
