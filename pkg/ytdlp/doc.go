// SPDX-License-Identifier: MPL-2.0

// Package ytdlp assembles well-formed yt-dlp command-line invocations from
// typed, chainable configuration calls.
//
// A Command accumulates an ordered token sequence; the order of configuration
// calls is the order of the emitted tokens, which matters because yt-dlp is
// positional-argument sensitive. Options declared single-use in the catalog
// are rejected on a second call with an AlreadyUsedError, and every rejected
// call leaves the token sequence untouched.
//
// The option catalog (catalog.go and the options_*.go files) is data: a fixed
// table mapping option identifiers to flag text, arity, single-use policy and
// structural validation. The engine (Command, the encoding helpers and the
// usage tracker) is parametric over that table and knows nothing about what
// any individual flag means to yt-dlp.
package ytdlp
