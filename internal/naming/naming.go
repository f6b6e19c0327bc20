// Package naming turns raw schema and property identifiers into
// human-readable display labels.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayPrefixes are the identifier prefixes stripped before word splitting.
// Order matters: at most one prefix is removed, the first that matches.
var displayPrefixes = []string{"definedAt", "is", "has", "x"}

// Clean converts a raw identifier into a display label.
//
// At most one recognized prefix is stripped, the remainder is split on
// upper-case boundaries, and each word is title-cased.
// Example: "isActiveFlag" -> "ActiveFlag"
// Example: "xSinceVersion" -> "SinceVersion"
func Clean(name string) string {
	for _, p := range displayPrefixes {
		if strings.HasPrefix(name, p) {
			name = name[len(p):]
			break
		}
	}

	// cases.Caser is not safe for concurrent use, so build one per call
	titleCaser := cases.Title(language.English)

	var result strings.Builder
	for _, word := range splitWords(name) {
		result.WriteString(titleCaser.String(word))
	}
	return result.String()
}

// splitWords splits an identifier at upper-case boundaries. A new word starts
// at each upper-case rune that follows at least one accumulated rune.
// Example: "ActiveFlag" -> ["Active", "Flag"]
func splitWords(s string) []string {
	var words []string
	var current []rune
	for _, r := range s {
		if unicode.IsUpper(r) && len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		words = append(words, string(current))
	}
	return words
}
