// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidExecutablePath is returned when an ExecutablePath value is whitespace-only.
	ErrInvalidExecutablePath = errors.New("invalid executable path")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// ExecutablePath is a filesystem path to the yt-dlp binary. The zero
	// value ("") is valid and means "resolve yt-dlp via PATH".
	ExecutablePath string

	// InvalidExecutablePathError is returned when an ExecutablePath value is
	// non-empty but whitespace-only.
	InvalidExecutablePathError struct {
		Value ExecutablePath
	}

	// UIConfig holds terminal presentation preferences.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// DownloadConfig holds the default download behavior applied to every
	// built command before per-run flags.
	DownloadConfig struct {
		// OutputDir is passed as --paths home:DIR when set.
		OutputDir string `mapstructure:"output_dir"`
		// OutputTemplate is passed as --output when set.
		OutputTemplate string `mapstructure:"output_template"`
		// RateLimit is passed as --limit-rate when set (e.g. "4.2M").
		RateLimit string `mapstructure:"rate_limit"`
		// Format is passed as --format when set.
		Format string `mapstructure:"format"`
	}

	// Config is the application configuration.
	Config struct {
		// Executable overrides where to find yt-dlp.
		Executable ExecutablePath `mapstructure:"executable"`
		// ExtraArgs are raw yt-dlp arguments appended to every command,
		// written in shell syntax and split with shell word rules.
		ExtraArgs string `mapstructure:"extra_args"`

		Download DownloadConfig `mapstructure:"download"`
		UI       UIConfig       `mapstructure:"ui"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark or light)", string(e.Value))
}

// Unwrap returns ErrInvalidColorScheme so callers can use errors.Is for programmatic detection.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the ColorScheme is recognized, and a list of
// validation errors if it is not.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	}
	return false, []error{&InvalidColorSchemeError{Value: s}}
}

// Error implements the error interface.
func (e *InvalidExecutablePathError) Error() string {
	return fmt.Sprintf("invalid executable path %q (must not be whitespace-only)", string(e.Value))
}

// Unwrap returns ErrInvalidExecutablePath so callers can use errors.Is for programmatic detection.
func (e *InvalidExecutablePathError) Unwrap() error { return ErrInvalidExecutablePath }

// IsValid returns whether the ExecutablePath is usable. The zero value is
// valid; a non-empty value must not be whitespace-only.
func (p ExecutablePath) IsValid() (bool, []error) {
	if p != "" && strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidExecutablePathError{Value: p}}
	}
	return true, nil
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Executable: "",
		ExtraArgs:  "",
		Download:   DownloadConfig{},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}

// Validate checks constraints the CUE schema cannot express or that apply to
// programmatically constructed configs.
func (c *Config) Validate() error {
	if ok, errs := c.Executable.IsValid(); !ok {
		return errs[0]
	}
	if ok, errs := c.UI.ColorScheme.IsValid(); !ok {
		return errs[0]
	}
	return nil
}
