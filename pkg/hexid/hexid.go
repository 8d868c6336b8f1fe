// Package hexid validates and normalizes the hex identifiers used across the
// Swarm gateway API: postage stamp batch IDs and content references. Both
// share the same lexical grammar — exactly 64 hexadecimal characters, with an
// optional "0x" prefix that callers may or may not include.
package hexid

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmpty is returned when the input is empty before prefix stripping.
	ErrEmpty = errors.New("identifier is empty")
	// ErrInvalidFormat is returned when the input, after stripping an
	// optional "0x" prefix, is not exactly 64 hexadecimal characters.
	ErrInvalidFormat = errors.New("identifier must be 64 hexadecimal characters")
)

// hexPattern matches exactly 64 hex characters, either case.
var hexPattern = regexp.MustCompile("^[0-9a-fA-F]{64}$")

// Normalize strips an optional case-insensitive "0x" prefix from raw and
// verifies that the remainder is exactly 64 hexadecimal characters. The
// character case of the identifier itself is preserved; only the prefix is
// removed.
//
// Returns ErrEmpty for empty input and ErrInvalidFormat for anything that
// does not match the 64-hex grammar.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", ErrEmpty
	}
	id := StripPrefix(raw)
	if !hexPattern.MatchString(id) {
		return "", ErrInvalidFormat
	}
	return id, nil
}

// StripPrefix removes a leading case-insensitive "0x" from raw, if present.
// Unlike Normalize it performs no length or character validation, which makes
// it suitable for gateway-issued IDs that are embedded into envelopes before
// any strict check has run.
func StripPrefix(raw string) string {
	if len(raw) >= 2 && strings.EqualFold(raw[:2], "0x") {
		return raw[2:]
	}
	return raw
}
