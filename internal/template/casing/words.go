package casing

import (
	"strings"
	"unicode"
)

// SplitWords breaks an identifier into words.
//
// Underscores, hyphens and spaces separate words and are dropped. Inside a
// chunk, words also break on lower-to-upper, letter/digit transitions and at
// the end of an acronym ("HTTPServer" -> "HTTP", "Server").
func SplitWords(text string) []string {
	chunks := strings.FieldsFunc(text, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})

	var words []string
	for _, chunk := range chunks {
		words = append(words, splitChunk(chunk)...)
	}
	return words
}

func splitChunk(chunk string) []string {
	runes := []rune(chunk)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if isBoundary(runes, i) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

// isBoundary reports whether a word starts at runes[i].
func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLower(cur):
		return true
	case unicode.IsLower(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) &&
		i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	}
	return false
}
