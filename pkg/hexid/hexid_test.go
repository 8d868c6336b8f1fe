package hexid

import (
	"errors"
	"strings"
	"testing"
)

// TestNormalize_StripsPrefix verifies that a "0x" prefix in either case is
// removed and the identifier itself is returned unchanged.
func TestNormalize_StripsPrefix(t *testing.T) {
	id := strings.Repeat("Ab3F", 16)

	tests := []struct {
		name string
		in   string
	}{
		{name: "bare", in: id},
		{name: "lowercase prefix", in: "0x" + id},
		{name: "uppercase prefix", in: "0X" + id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) returned error: %v", tt.in, err)
			}
			if got != id {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, id)
			}
			if len(got) != 64 {
				t.Fatalf("normalized length = %d, want 64", len(got))
			}
		})
	}
}

// TestNormalize_RejectsBadInput verifies the failure modes: empty input,
// wrong length, and non-hex characters.
func TestNormalize_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "", want: ErrEmpty},
		{name: "too short", in: strings.Repeat("a", 63), want: ErrInvalidFormat},
		{name: "too long", in: strings.Repeat("a", 65), want: ErrInvalidFormat},
		{name: "non-hex", in: strings.Repeat("z", 64), want: ErrInvalidFormat},
		{name: "prefix only", in: "0x", want: ErrInvalidFormat},
		{name: "embedded space", in: strings.Repeat("a", 32) + " " + strings.Repeat("a", 31), want: ErrInvalidFormat},
		{name: "double prefix", in: "0x0x" + strings.Repeat("a", 62), want: ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("Normalize(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

// TestStripPrefix verifies that StripPrefix removes only the prefix and
// performs no validation.
func TestStripPrefix(t *testing.T) {
	if got := StripPrefix("0xABC"); got != "ABC" {
		t.Fatalf("StripPrefix(0xABC) = %q, want ABC", got)
	}
	if got := StripPrefix("abc"); got != "abc" {
		t.Fatalf("StripPrefix(abc) = %q, want abc", got)
	}
	if got := StripPrefix(""); got != "" {
		t.Fatalf("StripPrefix(empty) = %q, want empty", got)
	}
	// Not valid hex, still passes through untouched.
	if got := StripPrefix("0Xzzzz"); got != "zzzz" {
		t.Fatalf("StripPrefix(0Xzzzz) = %q, want zzzz", got)
	}
}
