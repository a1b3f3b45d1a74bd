// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Filesystem, cookie and thumbnail options.
const (
	BatchFile              OptionID = "batch-file"
	Paths                  OptionID = "paths"
	Output                 OptionID = "output"
	OutputNAPlaceholder    OptionID = "output-na-placeholder"
	RestrictFilenames      OptionID = "restrict-filenames"
	WindowsFilenames       OptionID = "windows-filenames"
	TrimFilenames          OptionID = "trim-filenames"
	NoOverwrites           OptionID = "no-overwrites"
	ForceOverwrites        OptionID = "force-overwrites"
	Continue               OptionID = "continue"
	NoContinue             OptionID = "no-continue"
	WriteDescription       OptionID = "write-description"
	WriteInfoJSON          OptionID = "write-info-json"
	WritePlaylistMetafiles OptionID = "write-playlist-metafiles"
	WriteComments          OptionID = "write-comments"
	LoadInfoJSON           OptionID = "load-info-json"
	Cookies                OptionID = "cookies"
	CookiesFromBrowser     OptionID = "cookies-from-browser"
	CacheDir               OptionID = "cache-dir"
	NoCacheDir             OptionID = "no-cache-dir"
	RmCacheDir             OptionID = "rm-cache-dir"
	WriteThumbnail         OptionID = "write-thumbnail"
	WriteAllThumbnails     OptionID = "write-all-thumbnails"
	ListThumbnails         OptionID = "list-thumbnails"
)

var filesystemOptions = []OptionSpec{
	{ID: BatchFile, Flag: "--batch-file", Arity: 1, SingleUse: true, Validate: requireValue},
	// One path per file type, one binding per occurrence ("home:...", "temp:...").
	{ID: Paths, Flag: "--paths", Arity: 1, Validate: requireValue},
	{ID: Output, Flag: "--output", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: OutputNAPlaceholder, Flag: "--output-na-placeholder", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: RestrictFilenames, Flag: "--restrict-filenames", Arity: 0, SingleUse: true},
	{ID: WindowsFilenames, Flag: "--windows-filenames", Arity: 0, SingleUse: true},
	{ID: TrimFilenames, Flag: "--trim-filenames", Arity: 1, SingleUse: true, Validate: requireUint},
	{ID: NoOverwrites, Flag: "--no-overwrites", Arity: 0, SingleUse: true},
	{ID: ForceOverwrites, Flag: "--force-overwrites", Arity: 0, SingleUse: true},
	{ID: Continue, Flag: "--continue", Arity: 0, SingleUse: true},
	{ID: NoContinue, Flag: "--no-continue", Arity: 0, SingleUse: true},
	{ID: WriteDescription, Flag: "--write-description", Arity: 0, SingleUse: true},
	{ID: WriteInfoJSON, Flag: "--write-info-json", Arity: 0, SingleUse: true},
	{ID: WritePlaylistMetafiles, Flag: "--write-playlist-metafiles", Arity: 0, SingleUse: true},
	{ID: WriteComments, Flag: "--write-comments", Arity: 0, SingleUse: true},
	{ID: LoadInfoJSON, Flag: "--load-info-json", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: Cookies, Flag: "--cookies", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: CookiesFromBrowser, Flag: "--cookies-from-browser", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: CacheDir, Flag: "--cache-dir", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: NoCacheDir, Flag: "--no-cache-dir", Arity: 0, SingleUse: true},
	{ID: RmCacheDir, Flag: "--rm-cache-dir", Arity: 0, SingleUse: true},
	{ID: WriteThumbnail, Flag: "--write-thumbnail", Arity: 0, SingleUse: true},
	{ID: WriteAllThumbnails, Flag: "--write-all-thumbnails", Arity: 0, SingleUse: true},
	{ID: ListThumbnails, Flag: "--list-thumbnails", Arity: 0, SingleUse: true},
}
