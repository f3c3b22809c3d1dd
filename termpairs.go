// Package termpairs generates synthetic English-Icelandic sentence
// pairs for machine-translation training data, injecting rare
// vocabulary with correct grammatical agreement on both sides.
//
// Generation runs in two phases. Phase 1 scans an authentic parallel
// corpus against a glossary of common Icelandic nouns: wherever an
// inflected form of a glossary noun appears in the Icelandic sentence
// and a corresponding English equivalent appears in the English
// sentence, both spans are abstracted into a placeholder annotated with
// the occurrence's case, number, definiteness, gender and casing,
// producing a reusable template. Phase 2 substitutes rare terms back
// into those templates, regenerating an agreeing surface form of the
// new lemma on both sides from a morphological lexicon.
//
// Only the noun span is regenerated: determiners and other words
// agreeing with the original noun elsewhere in the sentence are copied
// verbatim, which is a known limitation of the approach.
package termpairs

// Matcher finds abstractable noun occurrences in sentence pairs. It
// holds only read-only state and is safe for concurrent use.
type Matcher struct {
	lex      *Lexicon
	glossary *Glossary
}

// NewMatcher returns a Matcher over the given lexicon and common-noun
// glossary.
func NewMatcher(lx *Lexicon, g *Glossary) *Matcher {
	return &Matcher{lex: lx, glossary: g}
}

// MatchAndAbstract scans a sentence pair for a glossary noun occurrence
// and, when one is found, returns the template abstracting it. The
// second result is false when the pair yields no template, which is the
// common case and not an error.
func (m *Matcher) MatchAndAbstract(english, icelandic string) (*Template, bool) {
	occ, ok := m.match(english, icelandic)
	if !ok {
		return nil, false
	}
	return newTemplate(english, icelandic, occ), true
}
