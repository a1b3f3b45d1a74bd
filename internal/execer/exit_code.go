// SPDX-License-Identifier: MPL-2.0

package execer

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

type (
	// ExitCode represents a process exit status code, range 0-255 on POSIX
	// systems. The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// yt-dlp's documented exit codes.
const (
	// ExitSuccess means the download completed.
	ExitSuccess ExitCode = 0
	// ExitError means yt-dlp hit an unspecified error.
	ExitError ExitCode = 1
	// ExitUserError means yt-dlp rejected the supplied options.
	ExitUserError ExitCode = 2
	// ExitUpdateRestart means yt-dlp updated itself and must be restarted.
	ExitUpdateRestart ExitCode = 100
	// ExitCanceled means a --max-downloads or --break-* limit stopped the run.
	ExitCanceled ExitCode = 101
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// IsValid returns whether the ExitCode is in the valid range (0-255),
// and a list of validation errors if it is not.
func (c ExitCode) IsValid() (bool, []error) {
	if c < 0 || c > 255 {
		return false, []error{&InvalidExitCodeError{Value: c}}
	}
	return true, nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// IsUserError returns true if yt-dlp rejected the options it was given,
// which usually means the builder and the installed yt-dlp disagree about a
// flag.
func (c ExitCode) IsUserError() bool { return c == ExitUserError }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
