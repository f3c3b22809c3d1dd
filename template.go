package termpairs

import (
	"fmt"
	"regexp"
	"strings"
)

// marker is the internal placeholder standing in for the abstracted noun
// inside a template's sentence skeletons. On disk the marker is rendered
// as an annotated token (see Line) so that a later process invocation
// can recover the grammatical features without shared memory.
const marker = "[*]"

// placeholderRe matches the on-disk placeholder token, e.g.
// "{0:kvk_nf_et_gr_cap}". The leading 0 is the placeholder ordinal;
// only one placeholder per side is supported.
var placeholderRe = regexp.MustCompile(`\{0:([^}]+)\}`)

// SentencePair is an aligned English/Icelandic sentence pair.
type SentencePair struct {
	English   string
	Icelandic string
}

// Template is a sentence-pair skeleton with exactly one placeholder per
// side and the grammatical features of the occurrence it abstracts.
// Templates are immutable once created.
type Template struct {
	Features Features

	en string // English skeleton containing marker once
	is string // Icelandic skeleton containing marker once
}

// newTemplate abstracts a matched occurrence out of a sentence pair,
// replacing the covered spans with the placeholder marker and keeping
// all surrounding text byte-for-byte intact.
func newTemplate(english, icelandic string, occ occurrence) *Template {
	return &Template{
		Features: occ.feats,
		en:       english[:occ.en.start] + marker + english[occ.en.end:],
		is:       icelandic[:occ.is.start] + marker + icelandic[occ.is.end:],
	}
}

// Gender returns the gender recorded in the template's features.
func (t *Template) Gender() Gender {
	return t.Features.Gender
}

// Line renders the template in its on-disk form: the English skeleton,
// a tab, and the Icelandic skeleton, with each marker replaced by its
// annotated placeholder token.
func (t *Template) Line() string {
	en := strings.Replace(t.en, marker, "{0:"+t.Features.englishTag()+"}", 1)
	is := strings.Replace(t.is, marker, "{0:"+t.Features.icelandicTag()+"}", 1)
	return en + "\t" + is
}

// ParseTemplate parses a template file line produced by Line. It is an
// error for either side to carry anything other than exactly one
// placeholder, or for the two sides to disagree on number.
func ParseTemplate(line string) (*Template, error) {
	en, is, found := strings.Cut(line, "\t")
	if !found {
		return nil, fmt.Errorf("template line: missing tab separator: %q", line)
	}

	enMatches := placeholderRe.FindAllStringSubmatchIndex(en, -1)
	if len(enMatches) != 1 {
		return nil, fmt.Errorf("template line: want exactly one English placeholder, got %d: %q", len(enMatches), en)
	}
	isMatches := placeholderRe.FindAllStringSubmatchIndex(is, -1)
	if len(isMatches) != 1 {
		return nil, fmt.Errorf("template line: want exactly one Icelandic placeholder, got %d: %q", len(isMatches), is)
	}

	feats, err := parseIcelandicTag(is[isMatches[0][2]:isMatches[0][3]])
	if err != nil {
		return nil, err
	}
	enNumber, eqIdx, err := parseEnglishTag(en[enMatches[0][2]:enMatches[0][3]])
	if err != nil {
		return nil, err
	}
	if enNumber != feats.Number {
		return nil, fmt.Errorf("template line: number disagrees between sides (%s vs %s): %q",
			enNumber, feats.Number, line)
	}
	feats.Equivalent = eqIdx

	return &Template{
		Features: feats,
		en:       en[:enMatches[0][0]] + marker + en[enMatches[0][1]:],
		is:       is[:isMatches[0][0]] + marker + is[isMatches[0][1]:],
	}, nil
}

// Substitute produces a synthetic sentence pair by inflecting the rare
// term to the template's recorded grammatical combination and splicing
// the result into both skeletons. The term's own gender governs the
// Icelandic inflection; determiners elsewhere in the sentence are left
// untouched.
//
// Icelandic casing reapplies the recorded flags of the original
// occurrence. English casing is positional instead: the inserted form is
// capitalized only when the placeholder opens the sentence, since
// English does not share Icelandic's capitalization conventions.
//
// Substitute is a pure function of the template, the term and the
// lexicon. A missing inflection is reported via ErrNoInflection and the
// caller is expected to skip the pairing.
func (t *Template) Substitute(term *Term, lx *Lexicon) (SentencePair, error) {
	isForm, err := lx.Inflect(term.Lemma, term.Gender,
		t.Features.Case, t.Features.Number, t.Features.Definite)
	if err != nil {
		return SentencePair{}, err
	}

	enForm := term.Singular
	if t.Features.Number == Plural {
		enForm = term.Plural
	}

	switch {
	case t.Features.AllCaps:
		isForm = icelandicUpper.String(isForm)
	case t.Features.Capitalized:
		isForm = upperFirst(isForm)
	}
	if strings.HasPrefix(t.en, marker) {
		enForm = upperFirst(enForm)
	}

	return SentencePair{
		English:   strings.Replace(t.en, marker, enForm, 1),
		Icelandic: strings.Replace(t.is, marker, isForm, 1),
	}, nil
}
