// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Post-processing options.
const (
	ExtractAudio        OptionID = "extract-audio"
	AudioFormat         OptionID = "audio-format"
	AudioQuality        OptionID = "audio-quality"
	RemuxVideo          OptionID = "remux-video"
	RecodeVideo         OptionID = "recode-video"
	PPArgs              OptionID = "postprocessor-args"
	KeepVideo           OptionID = "keep-video"
	NoPostOverwrites    OptionID = "no-post-overwrites"
	EmbedSubs           OptionID = "embed-subs"
	EmbedThumbnail      OptionID = "embed-thumbnail"
	EmbedMetadata       OptionID = "embed-metadata"
	EmbedChapters       OptionID = "embed-chapters"
	EmbedInfoJSON       OptionID = "embed-info-json"
	ParseMetadata       OptionID = "parse-metadata"
	ReplaceInMetadata   OptionID = "replace-in-metadata"
	XAttrs              OptionID = "xattrs"
	ConcatPlaylist      OptionID = "concat-playlist"
	Fixup               OptionID = "fixup"
	FFmpegLocation      OptionID = "ffmpeg-location"
	Exec                OptionID = "exec"
	NoExec              OptionID = "no-exec"
	ConvertSubs         OptionID = "convert-subs"
	ConvertThumbnails   OptionID = "convert-thumbnails"
	SplitChapters       OptionID = "split-chapters"
	RemoveChapters      OptionID = "remove-chapters"
	ForceKeyframesAtCuts OptionID = "force-keyframes-at-cuts"
	UsePostprocessor    OptionID = "use-postprocessor"
)

var postProcessingOptions = []OptionSpec{
	{ID: ExtractAudio, Flag: "--extract-audio", Arity: 0, SingleUse: true},
	{ID: AudioFormat, Flag: "--audio-format", Arity: 1, SingleUse: true, Validate: oneOf("best", "aac", "alac", "flac", "m4a", "mp3", "opus", "vorbis", "wav")},
	{ID: AudioQuality, Flag: "--audio-quality", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: RemuxVideo, Flag: "--remux-video", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: RecodeVideo, Flag: "--recode-video", Arity: 1, SingleUse: true, Validate: requireValue},
	// One NAME:ARGS binding per occurrence.
	{ID: PPArgs, Flag: "--postprocessor-args", Arity: 1, Validate: requireValue},
	{ID: KeepVideo, Flag: "--keep-video", Arity: 0, SingleUse: true},
	{ID: NoPostOverwrites, Flag: "--no-post-overwrites", Arity: 0, SingleUse: true},
	{ID: EmbedSubs, Flag: "--embed-subs", Arity: 0, SingleUse: true},
	{ID: EmbedThumbnail, Flag: "--embed-thumbnail", Arity: 0, SingleUse: true},
	{ID: EmbedMetadata, Flag: "--embed-metadata", Arity: 0, SingleUse: true},
	{ID: EmbedChapters, Flag: "--embed-chapters", Arity: 0, SingleUse: true},
	{ID: EmbedInfoJSON, Flag: "--embed-info-json", Arity: 0, SingleUse: true},
	// Each occurrence interprets one more field.
	{ID: ParseMetadata, Flag: "--parse-metadata", Arity: 1, Validate: requireValue},
	// FIELDS REGEX REPLACE as three tokens; repeatable.
	// FIELDS and REGEX must be present; REPLACE may be blank (deleting or
	// collapsing matches is a legitimate replacement).
	{ID: ReplaceInMetadata, Flag: "--replace-in-metadata", Arity: 3, ValidateAt: []ValidateFunc{requireValue, requireValue, nil}},
	{ID: XAttrs, Flag: "--xattrs", Arity: 0, SingleUse: true},
	{ID: ConcatPlaylist, Flag: "--concat-playlist", Arity: 1, SingleUse: true, Validate: oneOf("never", "always", "multi_video")},
	{ID: Fixup, Flag: "--fixup", Arity: 1, SingleUse: true, Validate: oneOf("never", "warn", "detect_or_warn", "force")},
	{ID: FFmpegLocation, Flag: "--ffmpeg-location", Arity: 1, SingleUse: true, Validate: requireValue},
	// Each occurrence registers another hook, optionally scoped with WHEN:.
	{ID: Exec, Flag: "--exec", Arity: 1, Validate: requireValue},
	{ID: NoExec, Flag: "--no-exec", Arity: 0, SingleUse: true},
	{ID: ConvertSubs, Flag: "--convert-subs", Arity: 1, SingleUse: true, Validate: oneOf("ass", "lrc", "srt", "vtt", "none")},
	{ID: ConvertThumbnails, Flag: "--convert-thumbnails", Arity: 1, SingleUse: true, Validate: oneOf("jpg", "png", "webp", "none")},
	{ID: SplitChapters, Flag: "--split-chapters", Arity: 0, SingleUse: true},
	{ID: RemoveChapters, Flag: "--remove-chapters", Arity: 1, Validate: requireValue},
	{ID: ForceKeyframesAtCuts, Flag: "--force-keyframes-at-cuts", Arity: 0, SingleUse: true},
	{ID: UsePostprocessor, Flag: "--use-postprocessor", Arity: 1, Validate: requireValue},
}
