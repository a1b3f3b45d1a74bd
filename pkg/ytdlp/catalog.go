// SPDX-License-Identifier: MPL-2.0

package ytdlp

type (
	// OptionID identifies a logical configuration option. It names the option
	// as the builder knows it, not the flag text yt-dlp sees; the catalog maps
	// one to the other.
	OptionID string

	// ValidateFunc checks a single value token. A non-nil return becomes the
	// Reason of an InputError; no token is appended when it fails.
	ValidateFunc func(value string) error

	// OptionSpec is one catalog entry: the fixed structural policy for a
	// logical option. The builder engine is parametric over these entries and
	// hardcodes nothing about individual flags.
	OptionSpec struct {
		// ID is the logical option identifier.
		ID OptionID
		// Flag is the emitted flag text. Empty means the option is positional
		// and its values are appended bare (the source locator).
		Flag string
		// Arity is the number of value tokens that follow the flag (0 for
		// boolean switches).
		Arity int
		// SingleUse marks options whose second occurrence would be ambiguous
		// or overwrite-in-place at yt-dlp rather than additive.
		SingleUse bool
		// Validate, when non-nil, is applied to every value token before
		// anything is appended.
		Validate ValidateFunc
		// ValidateAt, when non-nil, replaces Validate with one check per
		// value position for multi-arity options whose positions have
		// different rules (e.g. a replacement string that may legitimately
		// be blank). A nil entry leaves that position unchecked. Its length
		// must equal Arity.
		ValidateAt []ValidateFunc
	}
)

// catalog is the fixed option table, populated from the options_*.go group
// slices. The single-use/multi-use partition recorded here is policy data
// preserved from yt-dlp's own behavior, not something derived at runtime.
var catalog = map[OptionID]*OptionSpec{}

func register(groups ...[]OptionSpec) {
	for _, group := range groups {
		for i := range group {
			spec := group[i]
			catalog[spec.ID] = &spec
		}
	}
}

func init() {
	register(
		generalOptions,
		networkOptions,
		selectionOptions,
		downloadOptions,
		filesystemOptions,
		outputOptions,
		formatOptions,
		subtitleOptions,
		authenticationOptions,
		postProcessingOptions,
		sponsorBlockOptions,
		extractorOptions,
	)
}

// lookup resolves an OptionID against the catalog.
func lookup(id OptionID) (*OptionSpec, error) {
	spec, ok := catalog[id]
	if !ok {
		return nil, &UnknownOptionError{Option: id}
	}
	return spec, nil
}

// Options returns a copy of the catalog entries, for callers that render the
// option table (e.g. a reference listing). Mutating the result does not
// affect the catalog.
func Options() []OptionSpec {
	out := make([]OptionSpec, 0, len(catalog))
	for _, spec := range catalog {
		out = append(out, *spec)
	}
	return out
}
