package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeName canonicalizes a user-supplied name for storage and
// comparison. Names are kept lower-case so uniqueness is case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayName capitalizes the first rune of a stored name for presentation.
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}
