package service

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "MCTSGEN_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
	ErrEmptyInput    = errors.New("input is empty after sanitization")
)

// SanitizeInput cleans a text field sent by a driver by enforcing the size
// limit, validating UTF-8, trimming whitespace and stripping control
// characters.
func SanitizeInput(input string) (string, error) {
	limit := maxInputSize()
	if len(input) > limit {
		// Rejected rather than truncated so a clipped action never matches a legal one.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// Fast path: if no control chars, return as is.
	if strings.IndexFunc(input, unicode.IsControl) < 0 {
		return strings.TrimSpace(input), nil
	}

	// Strip ANSI escapes, NULL, BEL and friends so they cannot poison logs.
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

// sanitizeAll applies SanitizeInput to every element. An element that ends up
// empty is an error; dropping it could turn a restrictive list into no list.
func sanitizeAll(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(in))
	for i, s := range in {
		clean, err := SanitizeInput(s)
		if err != nil {
			return nil, err
		}
		if clean == "" {
			return nil, fmt.Errorf("%w: element %d", ErrEmptyInput, i)
		}
		out = append(out, clean)
	}
	return out, nil
}

func maxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
