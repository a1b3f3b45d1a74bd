// SPDX-License-Identifier: MPL-2.0

package ytdlp

import (
	"strconv"
	"strings"
)

// Typed helpers for options whose value is a compound token. Each one checks
// the structured input, encodes it with EncodeCompound, and hands the result
// to Set; the catalog entry still decides flag text and single-use policy.

// Browsers supported by --cookies-from-browser.
var cookieBrowsers = []string{
	"brave", "chrome", "chromium", "edge", "firefox", "opera", "safari", "vivaldi", "whale",
}

// Keyrings supported by --cookies-from-browser on Linux.
var cookieKeyrings = []string{
	"basictext", "gnomekeyring", "kwallet", "kwallet5", "kwallet6",
}

// Sleep policies accepted by --retry-sleep.
var retrySleepPolicies = []string{"http", "fragment", "file_access", "extractor"}

// CookiesFromBrowser loads cookies from a browser profile, encoding
// BROWSER[+KEYRING][:PROFILE][::CONTAINER] into a single token. Only browser
// is required; absent qualifiers are omitted cleanly:
//
//	c.CookiesFromBrowser("firefox", "", "Profile 1", "")
//	// --cookies-from-browser firefox:Profile 1
func (c *Command) CookiesFromBrowser(browser, keyring, profile, container string) error {
	if err := oneOf(cookieBrowsers...)(browser); err != nil {
		return &InputError{Option: CookiesFromBrowser, Reason: err.Error()}
	}
	if keyring != "" {
		if err := oneOf(cookieKeyrings...)(keyring); err != nil {
			return &InputError{Option: CookiesFromBrowser, Reason: err.Error()}
		}
	}
	token := EncodeCompound(browser, []string{keyring, profile, container}, []string{"+", ":", "::"})
	return c.Set(CookiesFromBrowser, token)
}

// JSRuntime declares a JavaScript runtime for extractor challenges, encoding
// RUNTIME[:PATH]. The path qualifies where the runtime binary lives and may
// be omitted. Multi-use: each call declares another runtime in preference
// order.
func (c *Command) JSRuntime(runtime, path string) error {
	if strings.TrimSpace(runtime) == "" {
		return inputErrorf(JSRuntimes, "runtime name must not be empty")
	}
	return c.Set(JSRuntimes, EncodeCompound(runtime, []string{path}, []string{":"}))
}

// UpdateTo upgrades or downgrades yt-dlp to a release channel, encoding
// CHANNEL[@TAG]. Channel is "stable", "nightly", "master" or an OWNER/REPO
// reference; the tag pins a version within the channel.
func (c *Command) UpdateTo(channel, tag string) error {
	if err := requireValue(channel); err != nil {
		return &InputError{Option: UpdateTo, Reason: "channel must not be empty"}
	}
	if channel != "stable" && channel != "nightly" && channel != "master" && !strings.Contains(channel, "/") {
		return inputErrorf(UpdateTo, "%q is not a release channel (stable, nightly, master or OWNER/REPO)", channel)
	}
	return c.Set(UpdateTo, EncodeCompound(channel, []string{tag}, []string{"@"}))
}

// RetrySleep sets the back-off expression for retries, encoding [TYPE:]EXPR.
// An empty policy applies the expression to all retry types. Multi-use: each
// call may target a different policy.
func (c *Command) RetrySleep(policy, expr string) error {
	if err := requireValue(expr); err != nil {
		return &InputError{Option: RetrySleep, Reason: "expression must not be empty"}
	}
	if policy != "" {
		if err := oneOf(retrySleepPolicies...)(policy); err != nil {
			return &InputError{Option: RetrySleep, Reason: err.Error()}
		}
		expr = EncodeCompound(policy, []string{expr}, []string{":"})
	}
	return c.Set(RetrySleep, expr)
}

// ExternalDownloader selects an external downloader, encoding [PROTO:]NAME.
// An empty protocol applies the downloader to every protocol it supports.
// Multi-use: each call may bind a different protocol.
func (c *Command) ExternalDownloader(proto, name string) error {
	if err := requireValue(name); err != nil {
		return &InputError{Option: Downloader, Reason: "downloader name must not be empty"}
	}
	if proto != "" {
		name = EncodeCompound(proto, []string{name}, []string{":"})
	}
	return c.Set(Downloader, name)
}

// ExternalDownloaderArgs passes arguments to an external downloader, encoding
// NAME:ARGS. Both parts are required.
func (c *Command) ExternalDownloaderArgs(name, args string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(args) == "" {
		return inputErrorf(DownloaderArgs, "both downloader name and arguments are required")
	}
	return c.Set(DownloaderArgs, EncodeCompound(name, []string{args}, []string{":"}))
}

// PostprocessorArgs passes arguments to a postprocessor, encoding NAME:ARGS.
func (c *Command) PostprocessorArgs(name, args string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(args) == "" {
		return inputErrorf(PPArgs, "both postprocessor name and arguments are required")
	}
	return c.Set(PPArgs, EncodeCompound(name, []string{args}, []string{":"}))
}

// SleepIntervals sets the per-download sleep window. Both bounds must be
// non-negative and minSeconds must not exceed maxSeconds; the pair is checked
// up front so a rejected call appends neither half.
func (c *Command) SleepIntervals(minSeconds, maxSeconds float64) error {
	if minSeconds < 0 || maxSeconds < 0 {
		return inputErrorf(SleepInterval, "sleep intervals must not be negative")
	}
	if minSeconds > maxSeconds {
		return inputErrorf(SleepInterval, "minimum %v exceeds maximum %v", minSeconds, maxSeconds)
	}
	if c.used.inUse(SleepInterval) {
		return &AlreadyUsedError{Option: SleepInterval}
	}
	if c.used.inUse(MaxSleepInterval) {
		return &AlreadyUsedError{Option: MaxSleepInterval}
	}
	if err := c.Set(SleepInterval, formatFloat(minSeconds)); err != nil {
		return err
	}
	return c.Set(MaxSleepInterval, formatFloat(maxSeconds))
}

// WaitForVideo waits for a scheduled video to become available, encoding the
// retry interval as MIN[-MAX] in seconds. A zero maxSeconds omits the upper
// bound.
func (c *Command) WaitForVideo(minSeconds, maxSeconds int) error {
	if minSeconds < 0 || maxSeconds < 0 {
		return inputErrorf(WaitForVideo, "wait intervals must not be negative")
	}
	if maxSeconds > 0 && minSeconds > maxSeconds {
		return inputErrorf(WaitForVideo, "minimum %d exceeds maximum %d", minSeconds, maxSeconds)
	}
	upper := ""
	if maxSeconds > 0 {
		upper = strconv.Itoa(maxSeconds)
	}
	return c.Set(WaitForVideo, EncodeCompound(strconv.Itoa(minSeconds), []string{upper}, []string{"-"}))
}

// DateWindow bounds downloads to uploads between after and before, both
// inclusive, in yt-dlp date syntax. Both bounds are validated before either
// half is appended, so a malformed upper bound leaves the command untouched.
// When both bounds are absolute dates the ordering is checked as well;
// relative dates are passed through for yt-dlp to resolve. Either bound may
// be empty.
func (c *Command) DateWindow(after, before string) error {
	if after == "" && before == "" {
		return inputErrorf(DateAfter, "at least one bound is required")
	}
	if after != "" {
		if err := requireDate(after); err != nil {
			return &InputError{Option: DateAfter, Reason: err.Error()}
		}
	}
	if before != "" {
		if err := requireDate(before); err != nil {
			return &InputError{Option: DateBefore, Reason: err.Error()}
		}
	}
	if isAbsoluteDate(after) && isAbsoluteDate(before) && after > before {
		return inputErrorf(DateAfter, "lower bound %s exceeds upper bound %s", after, before)
	}
	if c.used.inUse(DateAfter) {
		return &AlreadyUsedError{Option: DateAfter}
	}
	if c.used.inUse(DateBefore) {
		return &AlreadyUsedError{Option: DateBefore}
	}
	if after != "" {
		if err := c.Set(DateAfter, after); err != nil {
			return err
		}
	}
	if before != "" {
		return c.Set(DateBefore, before)
	}
	return nil
}

// formatFloat renders seconds the way yt-dlp expects: no exponent, no
// trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isAbsoluteDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}
