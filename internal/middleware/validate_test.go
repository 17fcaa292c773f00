package middleware

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Sunset Over Water", "Sunset Over Water"},
		{"surrounding whitespace", "  Sunset  ", "Sunset"},
		{"null bytes stripped", "Sun\x00set", "Sunset"},
		{"control characters stripped", "Sun\x01\x02set\r\n", "Sunset"},
		{"tabs survive", "Sun\tset", "Sun\tset"},
		{"empty stays empty", "", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := SanitizeTitle(tc.input); got != tc.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeTitle_Truncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", MaxTitleLength+50)
	if got := SanitizeTitle(long); len(got) != MaxTitleLength {
		t.Errorf("len = %d, want %d", len(got), MaxTitleLength)
	}
}

func TestSanitizeTitle_TruncatesOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// Three-byte runes never line up with the byte limit, so a byte-level
	// cut would split one and echo invalid UTF-8 back to the caller.
	long := strings.Repeat("世", MaxTitleLength)
	got := SanitizeTitle(long)

	if !utf8.ValidString(got) {
		t.Fatalf("truncated title is not valid UTF-8: %q", got)
	}
	if len(got) > MaxTitleLength {
		t.Errorf("len = %d, want <= %d", len(got), MaxTitleLength)
	}
	if !strings.HasPrefix(long, got) {
		t.Errorf("truncated title %q is not a prefix of the input", got)
	}
}
