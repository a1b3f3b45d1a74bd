// SPDX-License-Identifier: MPL-2.0

package ytdlp

import "strings"

// ListJoiner separates items joined by EncodeList.
const ListJoiner = ","

// EncodeCompound builds a single token by concatenating primary with each
// present part, in order, using the separator at the same index. A blank part
// is skipped along with its separator, so an absent qualifier never leaves a
// dangling or doubled separator:
//
//	EncodeCompound("firefox", []string{"", "Profile 1"}, []string{"+", ":"})
//	// "firefox:Profile 1"
//
// Every compound encoding in the catalog (browser cookies, update channels,
// external downloaders, JS runtimes, ...) goes through this one function.
// Separators beyond len(parts) are ignored; parts beyond len(separators) are
// joined bare.
func EncodeCompound(primary string, parts []string, separators []string) string {
	var b strings.Builder
	b.WriteString(primary)
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i < len(separators) {
			b.WriteString(separators[i])
		}
		b.WriteString(part)
	}
	return b.String()
}

// EncodeList joins items with ListJoiner. A single item passes through
// unchanged, so callers holding an already-comma-separated string can hand it
// over as-is:
//
//	EncodeList("en", "ja") // "en,ja"
//	EncodeList("en,ja")    // "en,ja"
func EncodeList(items ...string) string {
	return strings.Join(items, ListJoiner)
}
