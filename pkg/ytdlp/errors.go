// SPDX-License-Identifier: MPL-2.0

package ytdlp

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyUsed is the sentinel error wrapped by AlreadyUsedError.
	ErrAlreadyUsed = errors.New("option already used")
	// ErrInvalidInput is the sentinel error wrapped by InputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownOption is the sentinel error wrapped by UnknownOptionError.
	ErrUnknownOption = errors.New("unknown option")
)

type (
	// AlreadyUsedError is returned when a single-use option is configured a
	// second time on the same Command. It wraps ErrAlreadyUsed for errors.Is()
	// compatibility.
	AlreadyUsedError struct {
		Option OptionID
	}

	// InputError is returned when a supplied value fails structural validation
	// (missing, blank, malformed number, out-of-order range, or a tag outside
	// the allowed set). It wraps ErrInvalidInput for errors.Is() compatibility.
	InputError struct {
		Option OptionID
		Reason string
	}

	// UnknownOptionError is returned when an OptionID has no catalog entry.
	// It wraps ErrUnknownOption for errors.Is() compatibility.
	UnknownOptionError struct {
		Option OptionID
	}
)

// Error implements the error interface.
func (e *AlreadyUsedError) Error() string {
	return fmt.Sprintf("option %q may only be set once per command", string(e.Option))
}

// Unwrap returns ErrAlreadyUsed so callers can use errors.Is for programmatic detection.
func (e *AlreadyUsedError) Unwrap() error { return ErrAlreadyUsed }

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("invalid value for option %q: %s", string(e.Option), e.Reason)
}

// Unwrap returns ErrInvalidInput so callers can use errors.Is for programmatic detection.
func (e *InputError) Unwrap() error { return ErrInvalidInput }

// Error implements the error interface.
func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("no catalog entry for option %q", string(e.Option))
}

// Unwrap returns ErrUnknownOption so callers can use errors.Is for programmatic detection.
func (e *UnknownOptionError) Unwrap() error { return ErrUnknownOption }

// inputErrorf builds an InputError with a formatted reason.
func inputErrorf(id OptionID, format string, args ...any) *InputError {
	return &InputError{Option: id, Reason: fmt.Sprintf(format, args...)}
}
