// SPDX-License-Identifier: MPL-2.0

package config

import (
	"slices"
	"testing"
)

func TestSplitExtraArgs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "empty", raw: "", expected: nil},
		{
			name:     "simple flags",
			raw:      "--no-mtime --retries 5",
			expected: []string{"--no-mtime", "--retries", "5"},
		},
		{
			name:     "quoted value with spaces",
			raw:      `--output "My Videos/%(title)s.%(ext)s"`,
			expected: []string{"--output", "My Videos/%(title)s.%(ext)s"},
		},
		{
			name:     "single quotes",
			raw:      `--format 'bv*+ba/b'`,
			expected: []string{"--format", "bv*+ba/b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitExtraArgs(tt.raw)
			if err != nil {
				t.Fatalf("SplitExtraArgs(%q) returned error: %v", tt.raw, err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("SplitExtraArgs(%q) = %v, expected %v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestSplitExtraArgsEnvExpansion(t *testing.T) {
	t.Setenv("YTDLPCMD_TEST_DIR", "/srv/media")

	got, err := SplitExtraArgs("--paths home:$YTDLPCMD_TEST_DIR")
	if err != nil {
		t.Fatalf("SplitExtraArgs returned error: %v", err)
	}
	expected := []string{"--paths", "home:/srv/media"}
	if !slices.Equal(got, expected) {
		t.Errorf("SplitExtraArgs = %v, expected %v", got, expected)
	}
}

func TestSplitExtraArgsSyntaxError(t *testing.T) {
	if _, err := SplitExtraArgs(`--output "unterminated`); err == nil {
		t.Error("expected unterminated quote to fail")
	}
}
