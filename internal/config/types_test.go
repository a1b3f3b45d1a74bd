// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		scheme   ColorScheme
		expected bool
	}{
		{name: "auto", scheme: ColorSchemeAuto, expected: true},
		{name: "dark", scheme: ColorSchemeDark, expected: true},
		{name: "light", scheme: ColorSchemeLight, expected: true},
		{name: "empty", scheme: "", expected: false},
		{name: "unknown", scheme: "solarized", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := tt.scheme.IsValid()
			if ok != tt.expected {
				t.Errorf("IsValid() = %v, expected %v", ok, tt.expected)
			}
			if !tt.expected {
				if len(errs) != 1 {
					t.Fatalf("expected one validation error, got %d", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Error("expected error to wrap ErrInvalidColorScheme")
				}
			}
		})
	}
}

func TestExecutablePathIsValid(t *testing.T) {
	tests := []struct {
		name     string
		path     ExecutablePath
		expected bool
	}{
		{name: "zero value", path: "", expected: true},
		{name: "absolute path", path: "/usr/local/bin/yt-dlp", expected: true},
		{name: "bare name", path: "yt-dlp", expected: true},
		{name: "whitespace only", path: "   ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, errs := tt.path.IsValid()
			if ok != tt.expected {
				t.Errorf("IsValid() = %v, expected %v", ok, tt.expected)
			}
			if !tt.expected && !errors.Is(errs[0], ErrInvalidExecutablePath) {
				t.Error("expected error to wrap ErrInvalidExecutablePath")
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate, got: %v", err)
	}

	cfg.UI.ColorScheme = "purple"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("expected ErrInvalidColorScheme, got: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Executable = "  "
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidExecutablePath) {
		t.Errorf("expected ErrInvalidExecutablePath, got: %v", err)
	}
}
