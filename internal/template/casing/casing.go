// Package casing renders identifiers in the fixed set of letter-casing styles
// understood by template placeholders.
package casing

import (
	"strings"
	"unicode"
)

// Style identifies one casing style.
type Style int

// Casing styles in the order placeholders are substituted.
const (
	// Upper renders "FILE NAME".
	Upper Style = iota
	// Lower renders "file name".
	Lower
	// Title renders "File Name".
	Title
	// Toggle renders "fILE nAME".
	Toggle
	// Camel renders "fileName".
	Camel
	// Pascal renders "FileName".
	Pascal
	// Snake renders "file_name".
	Snake
	// UpperSnake renders "FILE_NAME".
	UpperSnake
	// Kebab renders "file-name".
	Kebab
	// Cobol renders "FILE-NAME".
	Cobol
	// Train renders "File-Name".
	Train
	// Flat renders "filename".
	Flat
	// UpperFlat renders "FILENAME".
	UpperFlat
	// Alternating renders "fIlE nAmE".
	Alternating
)

// PlaceholderPhrase is the canonical phrase every placeholder is built from.
const PlaceholderPhrase = "file name"

// PlaceholderDelimiter surrounds a placeholder in template text.
const PlaceholderDelimiter = "$"

var styleNames = map[Style]string{
	Upper:       "upper",
	Lower:       "lower",
	Title:       "title",
	Toggle:      "toggle",
	Camel:       "camel",
	Pascal:      "pascal",
	Snake:       "snake",
	UpperSnake:  "upper-snake",
	Kebab:       "kebab",
	Cobol:       "cobol",
	Train:       "train",
	Flat:        "flat",
	UpperFlat:   "upper-flat",
	Alternating: "alternating",
}

// String returns the style name.
func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "unknown"
}

// Styles returns every style in substitution order.
// The order matters: a later style's placeholder may match text produced by
// an earlier substitution.
func Styles() []Style {
	return []Style{
		Upper, Lower, Title, Toggle, Camel, Pascal, Snake,
		UpperSnake, Kebab, Cobol, Train, Flat, UpperFlat, Alternating,
	}
}

// Placeholder returns the token a template author writes for style,
// e.g. "$FILE_NAME$" for UpperSnake.
func Placeholder(style Style) string {
	return PlaceholderDelimiter + Convert(PlaceholderPhrase, style) + PlaceholderDelimiter
}

// Convert renders text in the given style.
func Convert(text string, style Style) string {
	words := SplitWords(text)

	switch style {
	case Upper:
		return join(words, " ", strings.ToUpper)
	case Lower:
		return join(words, " ", strings.ToLower)
	case Title:
		return join(words, " ", capitalize)
	case Toggle:
		return join(words, " ", toggle)
	case Camel:
		if len(words) == 0 {
			return ""
		}
		return strings.ToLower(words[0]) + join(words[1:], "", capitalize)
	case Pascal:
		return join(words, "", capitalize)
	case Snake:
		return join(words, "_", strings.ToLower)
	case UpperSnake:
		return join(words, "_", strings.ToUpper)
	case Kebab:
		return join(words, "-", strings.ToLower)
	case Cobol:
		return join(words, "-", strings.ToUpper)
	case Train:
		return join(words, "-", capitalize)
	case Flat:
		return join(words, "", strings.ToLower)
	case UpperFlat:
		return join(words, "", strings.ToUpper)
	case Alternating:
		return alternate(words)
	}
	return text
}

func join(words []string, sep string, fn func(string) string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fn(w)
	}
	return strings.Join(out, sep)
}

func capitalize(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

func toggle(word string) string {
	runes := []rune(strings.ToUpper(word))
	if len(runes) > 0 {
		runes[0] = unicode.ToLower(runes[0])
	}
	return string(runes)
}

// alternate flips case on every cased letter, starting lower, and carries the
// alternation across word boundaries.
func alternate(words []string) string {
	upper := false
	out := make([]string, len(words))
	for i, w := range words {
		runes := []rune(w)
		for j, r := range runes {
			if !unicode.IsUpper(r) && !unicode.IsLower(r) {
				continue
			}
			if upper {
				runes[j] = unicode.ToUpper(r)
			} else {
				runes[j] = unicode.ToLower(r)
			}
			upper = !upper
		}
		out[i] = string(runes)
	}
	return strings.Join(out, " ")
}
