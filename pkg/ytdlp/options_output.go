// SPDX-License-Identifier: MPL-2.0

package ytdlp

// Verbosity, simulation and workaround options.
const (
	Quiet                OptionID = "quiet"
	NoWarnings           OptionID = "no-warnings"
	Simulate             OptionID = "simulate"
	IgnoreNoFormatsError OptionID = "ignore-no-formats-error"
	SkipDownload         OptionID = "skip-download"
	Print                OptionID = "print"
	PrintToFile          OptionID = "print-to-file"
	DumpJSON             OptionID = "dump-json"
	DumpSingleJSON       OptionID = "dump-single-json"
	Newline              OptionID = "newline"
	Progress             OptionID = "progress"
	NoProgress           OptionID = "no-progress"
	ConsoleTitle         OptionID = "console-title"
	ProgressTemplate     OptionID = "progress-template"
	Verbose              OptionID = "verbose"
	DumpPages            OptionID = "dump-pages"
	WritePages           OptionID = "write-pages"
	Encoding             OptionID = "encoding"
	LegacyServerConnect  OptionID = "legacy-server-connect"
	NoCheckCertificates  OptionID = "no-check-certificates"
	PreferInsecure       OptionID = "prefer-insecure"
	AddHeaders           OptionID = "add-headers"
	SleepRequests        OptionID = "sleep-requests"
	SleepInterval        OptionID = "sleep-interval"
	MaxSleepInterval     OptionID = "max-sleep-interval"
	SleepSubtitles       OptionID = "sleep-subtitles"
)

var outputOptions = []OptionSpec{
	{ID: Quiet, Flag: "--quiet", Arity: 0, SingleUse: true},
	{ID: NoWarnings, Flag: "--no-warnings", Arity: 0, SingleUse: true},
	{ID: Simulate, Flag: "--simulate", Arity: 0, SingleUse: true},
	{ID: IgnoreNoFormatsError, Flag: "--ignore-no-formats-error", Arity: 0, SingleUse: true},
	{ID: SkipDownload, Flag: "--skip-download", Arity: 0, SingleUse: true},
	// Each occurrence prints another template.
	{ID: Print, Flag: "--print", Arity: 1, Validate: requireValue},
	// [WHEN:]TEMPLATE followed by the target file.
	{ID: PrintToFile, Flag: "--print-to-file", Arity: 2, Validate: requireValue},
	{ID: DumpJSON, Flag: "--dump-json", Arity: 0, SingleUse: true},
	{ID: DumpSingleJSON, Flag: "--dump-single-json", Arity: 0, SingleUse: true},
	{ID: Newline, Flag: "--newline", Arity: 0, SingleUse: true},
	{ID: Progress, Flag: "--progress", Arity: 0, SingleUse: true},
	{ID: NoProgress, Flag: "--no-progress", Arity: 0, SingleUse: true},
	{ID: ConsoleTitle, Flag: "--console-title", Arity: 0, SingleUse: true},
	{ID: ProgressTemplate, Flag: "--progress-template", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: Verbose, Flag: "--verbose", Arity: 0, SingleUse: true},
	{ID: DumpPages, Flag: "--dump-pages", Arity: 0, SingleUse: true},
	{ID: WritePages, Flag: "--write-pages", Arity: 0, SingleUse: true},
	{ID: Encoding, Flag: "--encoding", Arity: 1, SingleUse: true, Validate: requireValue},
	{ID: LegacyServerConnect, Flag: "--legacy-server-connect", Arity: 0, SingleUse: true},
	{ID: NoCheckCertificates, Flag: "--no-check-certificates", Arity: 0, SingleUse: true},
	{ID: PreferInsecure, Flag: "--prefer-insecure", Arity: 0, SingleUse: true},
	// Each occurrence adds one FIELD:VALUE header.
	{ID: AddHeaders, Flag: "--add-headers", Arity: 1, Validate: requireValue},
	{ID: SleepRequests, Flag: "--sleep-requests", Arity: 1, SingleUse: true, Validate: requireNonNegFloat},
	{ID: SleepInterval, Flag: "--sleep-interval", Arity: 1, SingleUse: true, Validate: requireNonNegFloat},
	{ID: MaxSleepInterval, Flag: "--max-sleep-interval", Arity: 1, SingleUse: true, Validate: requireNonNegFloat},
	{ID: SleepSubtitles, Flag: "--sleep-subtitles", Arity: 1, SingleUse: true, Validate: requireNonNegFloat},
}
