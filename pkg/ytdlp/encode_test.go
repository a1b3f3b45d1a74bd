// SPDX-License-Identifier: MPL-2.0

package ytdlp

import "testing"

func TestEncodeCompound(t *testing.T) {
	tests := []struct {
		name       string
		primary    string
		parts      []string
		separators []string
		expected   string
	}{
		{
			name:       "no parts",
			primary:    "firefox",
			parts:      nil,
			separators: nil,
			expected:   "firefox",
		},
		{
			name:       "all parts present",
			primary:    "firefox",
			parts:      []string{"gnomekeyring", "Profile 1", "work"},
			separators: []string{"+", ":", "::"},
			expected:   "firefox+gnomekeyring:Profile 1::work",
		},
		{
			name:       "absent part skipped with its separator",
			primary:    "firefox",
			parts:      []string{"", "Profile 1"},
			separators: []string{"+", ":"},
			expected:   "firefox:Profile 1",
		},
		{
			name:       "trailing parts absent",
			primary:    "firefox",
			parts:      []string{"gnomekeyring", "", ""},
			separators: []string{"+", ":", "::"},
			expected:   "firefox+gnomekeyring",
		},
		{
			name:       "channel with version tag",
			primary:    "nightly",
			parts:      []string{"2025.08.27"},
			separators: []string{"@"},
			expected:   "nightly@2025.08.27",
		},
		{
			name:       "runtime with location",
			primary:    "quickjs",
			parts:      []string{"/opt/quickjs/bin/qjs"},
			separators: []string{":"},
			expected:   "quickjs:/opt/quickjs/bin/qjs",
		},
		{
			name:       "more separators than parts",
			primary:    "deno",
			parts:      []string{""},
			separators: []string{":", "::"},
			expected:   "deno",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeCompound(tt.primary, tt.parts, tt.separators)
			if got != tt.expected {
				t.Errorf("EncodeCompound() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEncodeList(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{name: "multiple items joined", items: []string{"en", "ja"}, expected: "en,ja"},
		{name: "pre-joined string passes through", items: []string{"en,ja"}, expected: "en,ja"},
		{name: "single item", items: []string{"en"}, expected: "en"},
		{name: "three items", items: []string{"sponsor", "intro", "outro"}, expected: "sponsor,intro,outro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeList(tt.items...)
			if got != tt.expected {
				t.Errorf("EncodeList() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// Pass-through idempotence: encoding an already-encoded list is a no-op.
func TestEncodeListIdempotent(t *testing.T) {
	once := EncodeList("en", "ja", "de")
	twice := EncodeList(once)
	if once != twice {
		t.Errorf("EncodeList is not idempotent: %q != %q", once, twice)
	}
}
