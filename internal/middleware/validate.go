package middleware

import (
	"strings"
	"unicode/utf8"
)

// Input sanitization utilities for caller-supplied text fields.

// MaxTitleLength bounds artwork titles before they enter the pipeline.
const MaxTitleLength = 256

// SanitizeTitle strips null bytes and control characters and truncates the
// title. The identifier is deliberately untouched: content addresses are
// opaque and only checked for presence.
func SanitizeTitle(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' {
			result.WriteRune(r)
		}
	}

	title := strings.TrimSpace(result.String())
	if len(title) > MaxTitleLength {
		cut := MaxTitleLength
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = title[:cut]
	}
	return title
}
