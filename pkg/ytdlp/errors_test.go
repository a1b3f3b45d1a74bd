// SPDX-License-Identifier: MPL-2.0

package ytdlp

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{
			name:     "already used",
			err:      &AlreadyUsedError{Option: SourceURL},
			sentinel: ErrAlreadyUsed,
			contains: "source-url",
		},
		{
			name:     "invalid input",
			err:      &InputError{Option: Format, Reason: "value must not be empty"},
			sentinel: ErrInvalidInput,
			contains: "format",
		},
		{
			name:     "unknown option",
			err:      &UnknownOptionError{Option: OptionID("bogus")},
			sentinel: ErrUnknownOption,
			contains: "bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false", tt.err)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("error message %q does not mention %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
