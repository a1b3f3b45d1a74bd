// SPDX-License-Identifier: MPL-2.0

package ytdlp

import (
	"errors"
	"slices"
	"testing"
)

func TestCookiesFromBrowser(t *testing.T) {
	tests := []struct {
		name     string
		browser  string
		keyring  string
		profile  string
		cont     string
		expected string
		wantErr  bool
	}{
		{
			name:     "browser only",
			browser:  "firefox",
			expected: "firefox",
		},
		{
			name:     "browser and profile",
			browser:  "firefox",
			profile:  "Profile 1",
			expected: "firefox:Profile 1",
		},
		{
			name:     "all qualifiers",
			browser:  "firefox",
			keyring:  "gnomekeyring",
			profile:  "Profile 1",
			cont:     "work",
			expected: "firefox+gnomekeyring:Profile 1::work",
		},
		{
			name:     "container without profile",
			browser:  "firefox",
			cont:     "work",
			expected: "firefox::work",
		},
		{
			name:    "unknown browser",
			browser: "netscape",
			wantErr: true,
		},
		{
			name:    "unknown keyring",
			browser: "chrome",
			keyring: "hashicorpvault",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.CookiesFromBrowser(tt.browser, tt.keyring, tt.profile, tt.cont)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if len(c.Args()) != 0 {
					t.Errorf("failed call mutated the token sequence: %v", c.Args())
				}
				return
			}
			if err != nil {
				t.Fatalf("CookiesFromBrowser() error: %v", err)
			}
			if !slices.Equal(c.Args(), []string{"--cookies-from-browser", tt.expected}) {
				t.Errorf("Args() = %v, want value %q", c.Args(), tt.expected)
			}
		})
	}
}

func TestUpdateTo(t *testing.T) {
	tests := []struct {
		name     string
		channel  string
		tag      string
		expected string
		wantErr  bool
	}{
		{name: "channel only", channel: "nightly", expected: "nightly"},
		{name: "channel with tag", channel: "stable", tag: "2025.08.27", expected: "stable@2025.08.27"},
		{name: "repo reference", channel: "yt-dlp/yt-dlp-nightly-builds", expected: "yt-dlp/yt-dlp-nightly-builds"},
		{name: "empty channel", channel: "", wantErr: true},
		{name: "unknown channel", channel: "beta", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.UpdateTo(tt.channel, tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateTo() error: %v", err)
			}
			if !slices.Equal(c.Args(), []string{"--update-to", tt.expected}) {
				t.Errorf("Args() = %v, want value %q", c.Args(), tt.expected)
			}
		})
	}
}

// UpdateTo is single-use: retargeting the updater twice is ambiguous.
func TestUpdateToSingleUse(t *testing.T) {
	c := New()
	if err := c.UpdateTo("stable", ""); err != nil {
		t.Fatalf("first UpdateTo() error: %v", err)
	}
	if err := c.UpdateTo("nightly", ""); !errors.Is(err, ErrAlreadyUsed) {
		t.Errorf("expected ErrAlreadyUsed, got %v", err)
	}
}

func TestRetrySleep(t *testing.T) {
	tests := []struct {
		name     string
		policy   string
		expr     string
		expected string
		wantErr  bool
	}{
		{name: "bare expression", policy: "", expr: "exp=1:20", expected: "exp=1:20"},
		{name: "scoped to fragment", policy: "fragment", expr: "linear=1::2", expected: "fragment:linear=1::2"},
		{name: "unknown policy", policy: "dns", expr: "5", wantErr: true},
		{name: "empty expression", policy: "http", expr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.RetrySleep(tt.policy, tt.expr)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("RetrySleep() error: %v", err)
			}
			if !slices.Equal(c.Args(), []string{"--retry-sleep", tt.expected}) {
				t.Errorf("Args() = %v, want value %q", c.Args(), tt.expected)
			}
		})
	}
}

// RetrySleep is multi-use: one expression per retry type.
func TestRetrySleepRepeats(t *testing.T) {
	c := New()
	if err := c.RetrySleep("http", "exp=1:20"); err != nil {
		t.Fatalf("RetrySleep(http) error: %v", err)
	}
	if err := c.RetrySleep("fragment", "exp=1:20"); err != nil {
		t.Fatalf("RetrySleep(fragment) error: %v", err)
	}

	expected := []string{"--retry-sleep", "http:exp=1:20", "--retry-sleep", "fragment:exp=1:20"}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("Args() = %v, want %v", c.Args(), expected)
	}
}

func TestExternalDownloader(t *testing.T) {
	c := New()
	if err := c.ExternalDownloader("dash,m3u8", "native"); err != nil {
		t.Fatalf("ExternalDownloader() error: %v", err)
	}
	if err := c.ExternalDownloader("", "aria2c"); err != nil {
		t.Fatalf("ExternalDownloader() error: %v", err)
	}
	if err := c.ExternalDownloaderArgs("aria2c", "--max-connection-per-server=8"); err != nil {
		t.Fatalf("ExternalDownloaderArgs() error: %v", err)
	}

	expected := []string{
		"--downloader", "dash,m3u8:native",
		"--downloader", "aria2c",
		"--downloader-args", "aria2c:--max-connection-per-server=8",
	}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("Args() = %v, want %v", c.Args(), expected)
	}

	if err := c.ExternalDownloaderArgs("aria2c", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty args, got %v", err)
	}
}

func TestPostprocessorArgs(t *testing.T) {
	c := New()
	if err := c.PostprocessorArgs("ffmpeg", "-threads 2"); err != nil {
		t.Fatalf("PostprocessorArgs() error: %v", err)
	}
	if err := c.PostprocessorArgs("SponsorBlock", "-v"); err != nil {
		t.Fatalf("PostprocessorArgs() error: %v", err)
	}

	expected := []string{
		"--postprocessor-args", "ffmpeg:-threads 2",
		"--postprocessor-args", "SponsorBlock:-v",
	}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("Args() = %v, want %v", c.Args(), expected)
	}

	if err := c.PostprocessorArgs("", "-threads 2"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if err := c.PostprocessorArgs("ffmpeg", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty args, got %v", err)
	}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("rejected calls mutated the token sequence: %v", c.Args())
	}
}

func TestSleepIntervals(t *testing.T) {
	c := New()
	if err := c.SleepIntervals(1.5, 10); err != nil {
		t.Fatalf("SleepIntervals() error: %v", err)
	}

	expected := []string{"--sleep-interval", "1.5", "--max-sleep-interval", "10"}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("Args() = %v, want %v", c.Args(), expected)
	}
}

func TestSleepIntervalsRejected(t *testing.T) {
	tests := []struct {
		name     string
		min      float64
		max      float64
		sentinel error
	}{
		{name: "out of order", min: 10, max: 1, sentinel: ErrInvalidInput},
		{name: "negative", min: -1, max: 5, sentinel: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.SleepIntervals(tt.min, tt.max)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("expected %v, got %v", tt.sentinel, err)
			}
			// Neither half may be appended on a rejected pair.
			if len(c.Args()) != 0 {
				t.Errorf("rejected pair mutated the token sequence: %v", c.Args())
			}
		})
	}
}

func TestSleepIntervalsAlreadyUsed(t *testing.T) {
	c := New()
	if err := c.Set(SleepInterval, "2"); err != nil {
		t.Fatalf("Set(SleepInterval) error: %v", err)
	}

	err := c.SleepIntervals(1, 5)
	if !errors.Is(err, ErrAlreadyUsed) {
		t.Fatalf("expected ErrAlreadyUsed, got %v", err)
	}
	// Only the original tokens remain.
	if !slices.Equal(c.Args(), []string{"--sleep-interval", "2"}) {
		t.Errorf("Args() = %v", c.Args())
	}
}

func TestWaitForVideo(t *testing.T) {
	tests := []struct {
		name     string
		min      int
		max      int
		expected string
		wantErr  bool
	}{
		{name: "lower bound only", min: 30, expected: "30"},
		{name: "both bounds", min: 30, max: 300, expected: "30-300"},
		{name: "out of order", min: 300, max: 30, wantErr: true},
		{name: "negative", min: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.WaitForVideo(tt.min, tt.max)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("WaitForVideo() error: %v", err)
			}
			if !slices.Equal(c.Args(), []string{"--wait-for-video", tt.expected}) {
				t.Errorf("Args() = %v, want value %q", c.Args(), tt.expected)
			}
		})
	}
}

func TestDateWindow(t *testing.T) {
	tests := []struct {
		name     string
		after    string
		before   string
		expected []string
		wantErr  bool
	}{
		{
			name:     "both bounds",
			after:    "20240101",
			before:   "20241231",
			expected: []string{"--dateafter", "20240101", "--datebefore", "20241231"},
		},
		{
			name:     "lower bound only",
			after:    "20240101",
			expected: []string{"--dateafter", "20240101"},
		},
		{
			name:     "relative bounds pass through",
			after:    "today-2weeks",
			before:   "today",
			expected: []string{"--dateafter", "today-2weeks", "--datebefore", "today"},
		},
		{name: "out of order", after: "20241231", before: "20240101", wantErr: true},
		{name: "no bounds", wantErr: true},
		{name: "malformed lower bound", after: "not-a-date", before: "20241231", wantErr: true},
		{name: "malformed upper bound", after: "20250101", before: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			err := c.DateWindow(tt.after, tt.before)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				if len(c.Args()) != 0 {
					t.Errorf("rejected window mutated the token sequence: %v", c.Args())
				}
				return
			}
			if err != nil {
				t.Fatalf("DateWindow() error: %v", err)
			}
			if !slices.Equal(c.Args(), tt.expected) {
				t.Errorf("Args() = %v, want %v", c.Args(), tt.expected)
			}
		})
	}
}

func TestDateWindowRetryAfterRejection(t *testing.T) {
	c := New()

	err := c.DateWindow("20250101", "not-a-date")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(c.Args()) != 0 {
		t.Fatalf("rejected window mutated the token sequence: %v", c.Args())
	}

	// The rejection must not have consumed the single-use slots.
	if err := c.DateWindow("20250101", "20251231"); err != nil {
		t.Fatalf("DateWindow() retry error: %v", err)
	}
	expected := []string{"--dateafter", "20250101", "--datebefore", "20251231"}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("Args() = %v, want %v", c.Args(), expected)
	}
}

func TestJSRuntimeRepeats(t *testing.T) {
	c := New()
	if err := c.JSRuntime("deno", ""); err != nil {
		t.Fatalf("JSRuntime(deno) error: %v", err)
	}
	if err := c.JSRuntime("quickjs", "/opt/quickjs/bin/qjs"); err != nil {
		t.Fatalf("JSRuntime(quickjs) error: %v", err)
	}
	if err := c.JSRuntime("", "/bin/js"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty runtime, got %v", err)
	}

	expected := []string{"--js-runtimes", "deno", "--js-runtimes", "quickjs:/opt/quickjs/bin/qjs"}
	if !slices.Equal(c.Args(), expected) {
		t.Errorf("Args() = %v, want %v", c.Args(), expected)
	}
}
