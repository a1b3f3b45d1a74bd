// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"slices"
	"testing"

	"ytdlpcmd/internal/config"
	"ytdlpcmd/pkg/ytdlp"
)

func TestBuildCommandDefaults(t *testing.T) {
	cfg := config.DefaultConfig()

	c, err := buildCommand(cfg, &buildFlags{}, "https://example.com/video")
	if err != nil {
		t.Fatalf("buildCommand() returned error: %v", err)
	}

	inv := c.Build()
	if inv.BaseCommand != "yt-dlp" {
		t.Errorf("BaseCommand = %q, want yt-dlp", inv.BaseCommand)
	}
	expected := []string{"https://example.com/video"}
	if !slices.Equal(inv.Args, expected) {
		t.Errorf("Args = %v, want %v", inv.Args, expected)
	}
}

func TestBuildCommandConfigDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Executable = "/opt/yt-dlp/yt-dlp"
	cfg.Download.Format = "best"
	cfg.Download.OutputDir = "/srv/media"
	cfg.Download.RateLimit = "1M"

	c, err := buildCommand(cfg, &buildFlags{}, "https://example.com/video")
	if err != nil {
		t.Fatalf("buildCommand() returned error: %v", err)
	}

	inv := c.Build()
	if inv.BaseCommand != "/opt/yt-dlp/yt-dlp" {
		t.Errorf("BaseCommand = %q, want configured executable", inv.BaseCommand)
	}
	expected := []string{
		"--format", "best",
		"--limit-rate", "1M",
		"--paths", "home:/srv/media",
		"https://example.com/video",
	}
	if !slices.Equal(inv.Args, expected) {
		t.Errorf("Args = %v, want %v", inv.Args, expected)
	}
}

func TestBuildCommandFlagBeatsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Download.Format = "best"

	c, err := buildCommand(cfg, &buildFlags{format: "bestaudio"}, "https://example.com/video")
	if err != nil {
		t.Fatalf("buildCommand() returned error: %v", err)
	}

	args := c.Build().Args
	idx := slices.Index(args, "--format")
	if idx < 0 || args[idx+1] != "bestaudio" {
		t.Errorf("expected flag value to win over config default, got args %v", args)
	}
	if slices.Contains(args, "best") {
		t.Errorf("expected config default to be suppressed, got args %v", args)
	}
}

func TestBuildCommandBoolAndValueFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &buildFlags{
		extractAudio: true,
		audioFormat:  "mp3",
		simulate:     true,
		retries:      "infinite",
	}

	c, err := buildCommand(cfg, flags, "https://example.com/video")
	if err != nil {
		t.Fatalf("buildCommand() returned error: %v", err)
	}

	args := c.Build().Args
	for _, want := range []string{"--retries", "infinite", "--audio-format", "mp3", "--extract-audio", "--simulate"} {
		if !slices.Contains(args, want) {
			t.Errorf("expected args to contain %q, got %v", want, args)
		}
	}
}

func TestBuildCommandRejectsInvalidValue(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := buildCommand(cfg, &buildFlags{retries: "often"}, "https://example.com/video")
	if err == nil {
		t.Fatal("expected invalid retries value to fail")
	}
	if !errors.Is(err, ytdlp.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got: %v", err)
	}
}

func TestBuildCommandExtraArgs(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExtraArgs = `--no-mtime --output "My Videos/%(title)s.%(ext)s"`

	c, err := buildCommand(cfg, &buildFlags{}, "https://example.com/video")
	if err != nil {
		t.Fatalf("buildCommand() returned error: %v", err)
	}

	expected := []string{
		"--no-mtime",
		"--output", "My Videos/%(title)s.%(ext)s",
		"https://example.com/video",
	}
	if !slices.Equal(c.Build().Args, expected) {
		t.Errorf("Args = %v, want %v", c.Build().Args, expected)
	}
}

func TestBuildCommandExtraArgsSyntaxError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ExtraArgs = `--output "unterminated`

	if _, err := buildCommand(cfg, &buildFlags{}, ""); err == nil {
		t.Fatal("expected unbalanced extra_args to fail")
	}
}

func TestBuildCommandNoURL(t *testing.T) {
	cfg := config.DefaultConfig()

	c, err := buildCommand(cfg, &buildFlags{}, "")
	if err != nil {
		t.Fatalf("buildCommand() returned error: %v", err)
	}
	if len(c.Build().Args) != 0 {
		t.Errorf("expected no args, got %v", c.Build().Args)
	}
}
