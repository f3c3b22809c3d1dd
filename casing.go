package termpairs

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// icelandicUpper upper-cases text under Icelandic casing rules.
var icelandicUpper = cases.Upper(language.Icelandic)

// upperFirst returns s with its first letter upper-cased.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return icelandicUpper.String(string(r)) + s[size:]
}

// firstIsUpper reports whether s begins with an upper-case letter.
func firstIsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// isAllCaps reports whether s contains at least one letter and every
// letter in s is upper-case.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}
