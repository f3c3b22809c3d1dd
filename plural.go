package termpairs

import "strings"

// irregularPlurals maps singular nouns to plural forms that the suffix
// rules would get wrong, plus invariant nouns.
var irregularPlurals = map[string]string{
	"aircraft":    "aircraft",
	"alumnus":     "alumni",
	"analysis":    "analyses",
	"appendix":    "appendices",
	"axis":        "axes",
	"bacterium":   "bacteria",
	"basis":       "bases",
	"belief":      "beliefs",
	"cactus":      "cacti",
	"chief":       "chiefs",
	"child":       "children",
	"crisis":      "crises",
	"criterion":   "criteria",
	"datum":       "data",
	"deer":        "deer",
	"equipment":   "equipment",
	"fish":        "fish",
	"foot":        "feet",
	"fungus":      "fungi",
	"goose":       "geese",
	"halo":        "halos",
	"index":       "indices",
	"information": "information",
	"louse":       "lice",
	"man":         "men",
	"matrix":      "matrices",
	"medium":      "media",
	"mouse":       "mice",
	"nucleus":     "nuclei",
	"ox":          "oxen",
	"person":      "people",
	"phenomenon":  "phenomena",
	"photo":       "photos",
	"piano":       "pianos",
	"proof":       "proofs",
	"quiz":        "quizzes",
	"radius":      "radii",
	"roof":        "roofs",
	"safe":        "safes",
	"series":      "series",
	"sheep":       "sheep",
	"species":     "species",
	"thesis":      "theses",
	"tooth":       "teeth",
	"vertex":      "vertices",
	"woman":       "women",
}

// EnglishPlural returns the regular English plural of a noun phrase.
// Only the head (final) word is pluralized, so "large corporation"
// becomes "large corporations".
func EnglishPlural(phrase string) string {
	i := strings.LastIndexByte(phrase, ' ')
	return phrase[:i+1] + pluralWord(phrase[i+1:])
}

// pluralWord pluralizes a single word: irregular table first, then
// suffix rules, then a plain "s".
func pluralWord(w string) string {
	if w == "" {
		return w
	}
	if p, ok := irregularPlurals[strings.ToLower(w)]; ok {
		return p
	}
	switch {
	case hasAnySuffix(w, "s", "x", "z", "ch", "sh"):
		return w + "es"
	case strings.HasSuffix(w, "y") && endsConsonantPlus(w, "y"):
		return w[:len(w)-1] + "ies"
	case strings.HasSuffix(w, "o") && endsConsonantPlus(w, "o"):
		return w + "es"
	case strings.HasSuffix(w, "fe"):
		return w[:len(w)-2] + "ves"
	case strings.HasSuffix(w, "f"):
		return w[:len(w)-1] + "ves"
	default:
		return w + "s"
	}
}

func hasAnySuffix(w string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(w, s) {
			return true
		}
	}
	return false
}

// endsConsonantPlus reports whether w ends with suffix preceded by a
// consonant (so "city" qualifies but "day" does not).
func endsConsonantPlus(w, suffix string) bool {
	if len(w) <= len(suffix) {
		return false
	}
	prev := w[len(w)-len(suffix)-1]
	switch prev {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return false
	}
	return true
}
