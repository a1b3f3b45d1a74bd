// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Download options.
const (
	ConcurrentFragments        OptionID = "concurrent-fragments"
	LimitRate                  OptionID = "limit-rate"
	ThrottledRate              OptionID = "throttled-rate"
	Retries                    OptionID = "retries"
	FileAccessRetries          OptionID = "file-access-retries"
	FragmentRetries            OptionID = "fragment-retries"
	RetrySleep                 OptionID = "retry-sleep"
	SkipUnavailableFragments   OptionID = "skip-unavailable-fragments"
	AbortOnUnavailableFragment OptionID = "abort-on-unavailable-fragments"
	KeepFragments              OptionID = "keep-fragments"
	BufferSize                 OptionID = "buffer-size"
	HTTPChunkSize              OptionID = "http-chunk-size"
	PlaylistRandom             OptionID = "playlist-random"
	LazyPlaylist               OptionID = "lazy-playlist"
	XAttrSetFilesize           OptionID = "xattr-set-filesize"
	HLSUseMpegTS               OptionID = "hls-use-mpegts"
	DownloadSections           OptionID = "download-sections"
	Downloader                 OptionID = "downloader"
	DownloaderArgs             OptionID = "downloader-args"
)

var downloadOptions = []OptionSpec{
	{ID: ConcurrentFragments, Flag: "--concurrent-fragments", Arity: 1, SingleUse: true, Validate: requireUint},
	{ID: LimitRate, Flag: "--limit-rate", Arity: 1, SingleUse: true, Validate: requireSize},
	{ID: ThrottledRate, Flag: "--throttled-rate", Arity: 1, SingleUse: true, Validate: requireSize},
	{ID: Retries, Flag: "--retries", Arity: 1, SingleUse: true, Validate: requireRetries},
	{ID: FileAccessRetries, Flag: "--file-access-retries", Arity: 1, SingleUse: true, Validate: requireRetries},
	{ID: FragmentRetries, Flag: "--fragment-retries", Arity: 1, SingleUse: true, Validate: requireRetries},
	// One expression per occurrence, each optionally scoped to a retry type.
	{ID: RetrySleep, Flag: "--retry-sleep", Arity: 1, Validate: requireValue},
	{ID: SkipUnavailableFragments, Flag: "--skip-unavailable-fragments", Arity: 0, SingleUse: true},
	{ID: AbortOnUnavailableFragment, Flag: "--abort-on-unavailable-fragments", Arity: 0, SingleUse: true},
	{ID: KeepFragments, Flag: "--keep-fragments", Arity: 0, SingleUse: true},
	{ID: BufferSize, Flag: "--buffer-size", Arity: 1, SingleUse: true, Validate: requireSize},
	{ID: HTTPChunkSize, Flag: "--http-chunk-size", Arity: 1, SingleUse: true, Validate: requireSize},
	{ID: PlaylistRandom, Flag: "--playlist-random", Arity: 0, SingleUse: true},
	{ID: LazyPlaylist, Flag: "--lazy-playlist", Arity: 0, SingleUse: true},
	{ID: XAttrSetFilesize, Flag: "--xattr-set-filesize", Arity: 0, SingleUse: true},
	{ID: HLSUseMpegTS, Flag: "--hls-use-mpegts", Arity: 0, SingleUse: true},
	// Each occurrence adds another section to download.
	{ID: DownloadSections, Flag: "--download-sections", Arity: 1, Validate: requireValue},
	// One downloader per protocol, one binding per occurrence.
	{ID: Downloader, Flag: "--downloader", Arity: 1, Validate: requireValue},
	{ID: DownloaderArgs, Flag: "--downloader-args", Arity: 1, Validate: requireValue},
}
