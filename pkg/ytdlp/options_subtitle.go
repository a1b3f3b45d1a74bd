// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Subtitle options.
const (
	WriteSubs     OptionID = "write-subs"
	WriteAutoSubs OptionID = "write-auto-subs"
	ListSubs      OptionID = "list-subs"
	SubFormat     OptionID = "sub-format"
	SubLangs      OptionID = "sub-langs"
)

var subtitleOptions = []OptionSpec{
	{ID: WriteSubs, Flag: "--write-subs", Arity: 0, SingleUse: true},
	{ID: WriteAutoSubs, Flag: "--write-auto-subs", Arity: 0, SingleUse: true},
	{ID: ListSubs, Flag: "--list-subs", Arity: 0, SingleUse: true},
	{ID: SubFormat, Flag: "--sub-format", Arity: 1, SingleUse: true, Validate: requireValue},
	// All languages go into one comma-separated token (see SetList).
	{ID: SubLangs, Flag: "--sub-langs", Arity: 1, SingleUse: true, Validate: requireValue},
}
