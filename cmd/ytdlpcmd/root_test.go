// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"ytdlpcmd/internal/execer"
	"ytdlpcmd/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() {
		Version, Commit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "dev"
	if got := getVersionString(); got != "dev (built from source)" {
		t.Errorf("getVersionString() = %q", got)
	}

	Version, Commit, BuildDate = "1.2.3", "abc123", "2026-08-30"
	got := getVersionString()
	for _, want := range []string{"1.2.3", "abc123", "2026-08-30"} {
		if !strings.Contains(got, want) {
			t.Errorf("getVersionString() = %q, missing %q", got, want)
		}
	}
}

func TestExitError(t *testing.T) {
	e := &ExitError{Code: execer.ExitCanceled}
	if e.Error() != "exit status 101" {
		t.Errorf("Error() = %q", e.Error())
	}

	wrapped := errors.New("boom")
	e = &ExitError{Code: execer.ExitError, Err: wrapped}
	if e.Error() != "boom" {
		t.Errorf("Error() = %q", e.Error())
	}
	if !errors.Is(e, wrapped) {
		t.Error("expected Unwrap to expose the underlying error")
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	plain := errors.New("plain failure")
	if got := formatErrorForDisplay(plain, false); got != "plain failure" {
		t.Errorf("formatErrorForDisplay() = %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the file").
		Wrap(errors.New("bad syntax")).
		Build()
	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "load configuration") {
		t.Errorf("expected operation in output, got %q", got)
	}
	if !strings.Contains(got, "Check the file") {
		t.Errorf("expected suggestion in output, got %q", got)
	}
}

func TestCurrentConfigFallsBackToDefaults(t *testing.T) {
	origLoaded := loadedConfig
	defer func() { loadedConfig = origLoaded }()

	loadedConfig = nil
	cfg := currentConfig()
	if cfg == nil {
		t.Fatal("currentConfig() returned nil")
	}
	if cfg.UI.ColorScheme != "auto" {
		t.Errorf("expected default color scheme, got %s", cfg.UI.ColorScheme)
	}
}
