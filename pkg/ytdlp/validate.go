// SPDX-License-Identifier: MPL-2.0

package ytdlp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Validators used by the catalog entries. Each checks one value token and
// reports the violated constraint; InputError wrapping happens at the call
// site in Command.Set.

// requireValue rejects values that are empty after trimming.
func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value must not be empty")
	}
	return nil
}

// requireInt accepts any base-10 integer.
func requireInt(value string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%q is not an integer", value)
	}
	return nil
}

// requireUint accepts a non-negative base-10 integer. yt-dlp retry counts
// also accept the literal "infinite".
func requireUint(value string) error {
	v := strings.TrimSpace(value)
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%q is not an integer", value)
	}
	if n < 0 {
		return fmt.Errorf("%d must not be negative", n)
	}
	return nil
}

// requireRetries accepts a non-negative integer or "infinite".
func requireRetries(value string) error {
	if strings.TrimSpace(value) == "infinite" {
		return nil
	}
	return requireUint(value)
}

// requireFloat accepts a finite decimal number.
func requireFloat(value string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("%q is not a finite number", value)
	}
	return nil
}

// requireNonNegFloat accepts a finite decimal number >= 0.
func requireNonNegFloat(value string) error {
	if err := requireFloat(value); err != nil {
		return err
	}
	f, _ := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if f < 0 {
		return fmt.Errorf("%q must not be negative", value)
	}
	return nil
}

// oneOf builds a validator accepting only the given tags.
func oneOf(allowed ...string) ValidateFunc {
	return func(value string) error {
		for _, tag := range allowed {
			if value == tag {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of %s", value, strings.Join(allowed, ", "))
	}
}

var (
	// sizePattern matches yt-dlp byte sizes: a decimal number with an
	// optional binary suffix, e.g. "50k", "4.2MiB", "1048576".
	sizePattern = regexp.MustCompile(`(?i)^\d+(\.\d+)?([KMGTPEZY]i?B?)?$`)

	// datePattern matches absolute yt-dlp dates (YYYYMMDD) and relative ones
	// such as "today-2weeks" or "now"; full calendar validation is left to
	// yt-dlp itself.
	datePattern = regexp.MustCompile(`^(\d{8}|(now|today|yesterday)([+-]\d+(day|week|month|year)s?)?)$`)
)

// requireSize accepts a byte size such as "50k" or "4.2MiB".
func requireSize(value string) error {
	if !sizePattern.MatchString(strings.TrimSpace(value)) {
		return fmt.Errorf("%q is not a size (expected e.g. 50k or 4.2MiB)", value)
	}
	return nil
}

// requireDate accepts YYYYMMDD or a relative date like "today-2weeks".
func requireDate(value string) error {
	if !datePattern.MatchString(strings.TrimSpace(value)) {
		return fmt.Errorf("%q is not a date (expected YYYYMMDD or e.g. today-2weeks)", value)
	}
	return nil
}
