// SPDX-License-Identifier: MPL-2.0

package execer

// Result contains the outcome of one yt-dlp invocation.
type Result struct {
	// ExitCode is the exit code of the process.
	ExitCode ExitCode
	// Error contains any infrastructure error (spawn failure, bad workdir);
	// it is nil for a process that ran and exited non-zero.
	Error error
	// Output contains captured stdout (capture mode only).
	Output string
	// ErrOutput contains captured stderr (capture mode only).
	ErrOutput string
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewSuccessResult creates a Result with exit code 0 and no error.
func NewSuccessResult() *Result {
	return &Result{}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for non-zero exits that represent normal process termination
// rather than infrastructure failures.
func NewExitCodeResult(code ExitCode) *Result {
	return &Result{ExitCode: code}
}
