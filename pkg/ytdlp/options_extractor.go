// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Extractor options.
const (
	ExtractorRetries       OptionID = "extractor-retries"
	AllowDynamicMPD        OptionID = "allow-dynamic-mpd"
	IgnoreDynamicMPD       OptionID = "ignore-dynamic-mpd"
	HLSSplitDiscontinuity  OptionID = "hls-split-discontinuity"
	ExtractorArgs          OptionID = "extractor-args"
)

var extractorOptions = []OptionSpec{
	{ID: ExtractorRetries, Flag: "--extractor-retries", Arity: 1, SingleUse: true, Validate: requireRetries},
	{ID: AllowDynamicMPD, Flag: "--allow-dynamic-mpd", Arity: 0, SingleUse: true},
	{ID: IgnoreDynamicMPD, Flag: "--ignore-dynamic-mpd", Arity: 0, SingleUse: true},
	{ID: HLSSplitDiscontinuity, Flag: "--hls-split-discontinuity", Arity: 0, SingleUse: true},
	// One IE_KEY:ARGS binding per occurrence.
	{ID: ExtractorArgs, Flag: "--extractor-args", Arity: 1, Validate: requireValue},
}
