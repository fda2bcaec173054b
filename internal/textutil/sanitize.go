package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// FallbackTitle is used when a title cannot be fetched or sanitizes to nothing.
const FallbackTitle = "video"

// DefaultMaxTitleLength caps sanitized titles well under common filesystem
// name limits while leaving room for the output extension.
const DefaultMaxTitleLength = 120

// SanitizeTitle filters a raw title down to ASCII letters, digits, spaces,
// and the characters -_.() — everything else is dropped. The input is
// NFC-normalized first so decomposed sequences collapse before filtering.
// Empty results fall back to FallbackTitle. maxLength bounds the result in
// runes; values <= 0 use DefaultMaxTitleLength.
func SanitizeTitle(title string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxTitleLength
	}
	title = norm.NFC.String(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if allowedRune(r) {
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())
	if runes := []rune(out); len(runes) > maxLength {
		out = strings.TrimRight(string(runes[:maxLength]), " .")
	}
	if out == "" {
		return FallbackTitle
	}
	return out
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case ' ', '-', '_', '.', '(', ')':
		return true
	}
	return false
}
