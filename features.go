package termpairs

import (
	"fmt"
	"strconv"
	"strings"
)

// Gender is the grammatical gender of an Icelandic noun, using the
// conventional BÍN category tags.
type Gender string

const (
	Masculine Gender = "kk"
	Feminine  Gender = "kvk"
	Neuter    Gender = "hk"
)

// ParseGender maps a category tag to a Gender.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case Masculine, Feminine, Neuter:
		return Gender(s), true
	}
	return "", false
}

// Case is one of the four Icelandic cases, using the conventional
// lowercase tags (nefnifall, þolfall, þágufall, eignarfall).
type Case string

const (
	Nominative Case = "nf"
	Accusative Case = "þf"
	Dative     Case = "þgf"
	Genitive   Case = "ef"
)

// caseOrder lists the four cases in declension order, which is also the
// order used to resolve ambiguous surface forms.
var caseOrder = [4]Case{Nominative, Accusative, Dative, Genitive}

// caseRank returns the declension-order rank of c, or 4 if unknown.
func caseRank(c Case) int {
	for i, cc := range caseOrder {
		if cc == c {
			return i
		}
	}
	return len(caseOrder)
}

// Number is grammatical number (eintala/fleirtala).
type Number string

const (
	Singular Number = "et"
	Plural   Number = "ft"
)

// Features records everything about a matched noun occurrence that is
// needed to regenerate an agreeing surface form of a different lemma.
// It is created by the matcher, persisted inline in template files, and
// consumed read-only by the substitution engine.
type Features struct {
	Case     Case
	Number   Number
	Gender   Gender
	Definite bool
	// Capitalized records whether the Icelandic occurrence began with an
	// upper-case letter; AllCaps whether it was fully upper-case.
	Capitalized bool
	AllCaps     bool
	// Equivalent is the index of the English equivalent (in the glossary
	// entry's listed order) that matched on the English side.
	Equivalent int
}

// valid reports whether every grammatical axis is populated. A partially
// inferred feature set must never reach a template.
func (f Features) valid() bool {
	return caseRank(f.Case) < len(caseOrder) &&
		(f.Number == Singular || f.Number == Plural) &&
		(f.Gender == Masculine || f.Gender == Feminine || f.Gender == Neuter)
}

// icelandicTag renders the Icelandic-side placeholder tag, e.g.
// "kvk_nf_et_gr_cap".
func (f Features) icelandicTag() string {
	var b strings.Builder
	b.WriteString(string(f.Gender))
	b.WriteByte('_')
	b.WriteString(string(f.Case))
	b.WriteByte('_')
	b.WriteString(string(f.Number))
	if f.Definite {
		b.WriteString("_gr")
	}
	if f.AllCaps {
		b.WriteString("_caps")
	} else if f.Capitalized {
		b.WriteString("_cap")
	}
	return b.String()
}

// englishTag renders the English-side placeholder tag, e.g. "sg_eq0".
// English casing is regenerated from sentence position at substitution
// time, so no casing flag is recorded on this side.
func (f Features) englishTag() string {
	num := "sg"
	if f.Number == Plural {
		num = "pl"
	}
	return num + "_eq" + strconv.Itoa(f.Equivalent)
}

// parseIcelandicTag decodes a tag produced by icelandicTag. The returned
// Features has its English-side Equivalent left at zero.
func parseIcelandicTag(tag string) (Features, error) {
	var f Features
	parts := strings.Split(tag, "_")
	if len(parts) < 3 {
		return f, fmt.Errorf("placeholder tag %q: want at least gender, case and number", tag)
	}
	g, ok := ParseGender(parts[0])
	if !ok {
		return f, fmt.Errorf("placeholder tag %q: unknown gender %q", tag, parts[0])
	}
	f.Gender = g
	f.Case = Case(parts[1])
	if caseRank(f.Case) == len(caseOrder) {
		return f, fmt.Errorf("placeholder tag %q: unknown case %q", tag, parts[1])
	}
	f.Number = Number(parts[2])
	if f.Number != Singular && f.Number != Plural {
		return f, fmt.Errorf("placeholder tag %q: unknown number %q", tag, parts[2])
	}
	for _, v := range parts[3:] {
		switch v {
		case "gr":
			f.Definite = true
		case "cap":
			f.Capitalized = true
		case "caps":
			f.Capitalized = true
			f.AllCaps = true
		default:
			return f, fmt.Errorf("placeholder tag %q: unknown variant %q", tag, v)
		}
	}
	return f, nil
}

// parseEnglishTag decodes a tag produced by englishTag, returning the
// recorded number and equivalent index.
func parseEnglishTag(tag string) (Number, int, error) {
	parts := strings.Split(tag, "_")
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("placeholder tag %q: want number and equivalent index", tag)
	}
	var n Number
	switch parts[0] {
	case "sg":
		n = Singular
	case "pl":
		n = Plural
	default:
		return "", 0, fmt.Errorf("placeholder tag %q: unknown number %q", tag, parts[0])
	}
	idxStr, ok := strings.CutPrefix(parts[1], "eq")
	if !ok {
		return "", 0, fmt.Errorf("placeholder tag %q: missing equivalent index", tag)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 {
		return "", 0, fmt.Errorf("placeholder tag %q: bad equivalent index %q", tag, idxStr)
	}
	return n, idx, nil
}

// parseBinTag decodes a BÍN noun inflection tag such as "NFETgr" into
// case, number and definiteness. Tags for other word classes do not
// parse and are reported via ok=false.
func parseBinTag(tag string) (c Case, n Number, definite bool, ok bool) {
	if rest, found := strings.CutSuffix(tag, "gr"); found {
		definite = true
		tag = rest
	}
	switch {
	case strings.HasPrefix(tag, "NF"):
		c, tag = Nominative, tag[len("NF"):]
	case strings.HasPrefix(tag, "ÞGF"):
		c, tag = Dative, tag[len("ÞGF"):]
	case strings.HasPrefix(tag, "ÞF"):
		c, tag = Accusative, tag[len("ÞF"):]
	case strings.HasPrefix(tag, "EF"):
		c, tag = Genitive, tag[len("EF"):]
	default:
		return "", "", false, false
	}
	switch tag {
	case "ET":
		n = Singular
	case "FT":
		n = Plural
	default:
		return "", "", false, false
	}
	return c, n, definite, true
}
