// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Video format options.
const (
	Format            OptionID = "format"
	FormatSort        OptionID = "format-sort"
	FormatSortForce   OptionID = "format-sort-force"
	VideoMultistreams OptionID = "video-multistreams"
	AudioMultistreams OptionID = "audio-multistreams"
	PreferFreeFormats OptionID = "prefer-free-formats"
	CheckFormats      OptionID = "check-formats"
	CheckAllFormats   OptionID = "check-all-formats"
	ListFormats       OptionID = "list-formats"
	MergeOutputFormat OptionID = "merge-output-format"
)

var formatOptions = []OptionSpec{
	{ID: Format, Flag: "--format", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: FormatSort, Flag: "--format-sort", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: FormatSortForce, Flag: "--format-sort-force", Arity: 0, SingleUse: true},
	{ID: VideoMultistreams, Flag: "--video-multistreams", Arity: 0, SingleUse: true},
	{ID: AudioMultistreams, Flag: "--audio-multistreams", Arity: 0, SingleUse: true},
	{ID: PreferFreeFormats, Flag: "--prefer-free-formats", Arity: 0, SingleUse: true},
	{ID: CheckFormats, Flag: "--check-formats", Arity: 0, SingleUse: true},
	{ID: CheckAllFormats, Flag: "--check-all-formats", Arity: 0, SingleUse: true},
	{ID: ListFormats, Flag: "--list-formats", Arity: 0, SingleUse: true},
	{ID: MergeOutputFormat, Flag: "--merge-output-format", Arity: 1, SingleUse: true, Validate: oneOf("avi", "flv", "mkv", "mov", "mp4", "webm")},
}
