package models

import (
	"strings"
)

const (
	// MaxNameLength is the longest accepted player display name
	MaxNameLength = 24

	// MaxOpinionLength is the longest accepted opinion text
	MaxOpinionLength = 220
)

// NormalizeName trims surrounding whitespace and clamps the name to
// MaxNameLength runes. An empty result means the input is not acceptable.
func NormalizeName(name string) string {
	return clamp(name, MaxNameLength)
}

// NormalizeOpinionText trims surrounding whitespace and clamps the text to
// MaxOpinionLength runes. An empty result means the input is not acceptable.
func NormalizeOpinionText(text string) string {
	return clamp(text, MaxOpinionLength)
}

// NameKey lowercases a normalized name for case-insensitive uniqueness
// checks within a game.
func NameKey(name string) string {
	return strings.ToLower(NormalizeName(name))
}

func clamp(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) > max {
		s = strings.TrimSpace(string(runes[:max]))
	}
	return s
}
