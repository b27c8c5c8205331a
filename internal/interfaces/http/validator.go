package http

import (
	"strings"
	"unicode/utf8"
)

// Input validation constants
const (
	MaxMessageLength      = 2000
	MaxBusinessIdeaLength = 500
	MaxBusinessNameLength = 120
)

// SanitizeString removes null bytes, control characters and invalid UTF-8.
// Newlines and tabs are kept.
func SanitizeString(s string) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// TruncateString safely truncates a string to at most maxLen bytes without splitting a rune
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// CleanInput sanitizes, trims and truncates a user supplied field
func CleanInput(s string, maxLen int) string {
	return strings.TrimSpace(TruncateString(SanitizeString(s), maxLen))
}
