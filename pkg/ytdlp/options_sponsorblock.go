// SPDX-License-Identifier: MPL-2.0

package ytdlp

// SponsorBlock options.
const (
	SponsorBlockMark         OptionID = "sponsorblock-mark"
	SponsorBlockRemove       OptionID = "sponsorblock-remove"
	SponsorBlockChapterTitle OptionID = "sponsorblock-chapter-title"
	NoSponsorBlock           OptionID = "no-sponsorblock"
	SponsorBlockAPI          OptionID = "sponsorblock-api"
)

var sponsorBlockOptions = []OptionSpec{
	// Categories go into one comma-separated token (see SetList).
	{ID: SponsorBlockMark, Flag: "--sponsorblock-mark", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: SponsorBlockRemove, Flag: "--sponsorblock-remove", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: SponsorBlockChapterTitle, Flag: "--sponsorblock-chapter-title", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: NoSponsorBlock, Flag: "--no-sponsorblock", Arity: 0, SingleUse: true},
	{ID: SponsorBlockAPI, Flag: "--sponsorblock-api", Arity: 1, SingleUse: true, Validate: requireValue},
}
