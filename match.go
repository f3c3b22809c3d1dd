package termpairs

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// span is a half-open byte range within a sentence.
type span struct {
	start, end int
}

// occurrence is a matched noun occurrence: the covered spans on both
// language sides, the glossary entry that matched, and the inferred
// grammatical features. The entry identity is only needed while
// matching; downstream only the features survive, inside the template.
type occurrence struct {
	entry *Entry
	is    span
	en    span
	feats Features
}

// match scans the sentence pair for the first glossary entry that has a
// whole-word Icelandic occurrence aligned with an English equivalent of
// agreeing number. Entries are tried in glossary order; at most one
// occurrence per pair is reported.
func (m *Matcher) match(english, icelandic string) (occurrence, bool) {
	for _, entry := range m.glossary.Entries {
		if occ, ok := m.matchEntry(entry, english, icelandic); ok {
			return occ, true
		}
	}
	return occurrence{}, false
}

func (m *Matcher) matchEntry(entry *Entry, english, icelandic string) (occurrence, bool) {
	forms := m.lex.NounForms(entry.Lemma, entry.Gender)
	if len(forms) == 0 {
		return occurrence{}, false
	}

	// Icelandic side: earliest whole-word occurrence of any surface form,
	// ties resolved by longest span.
	var best span
	found := false
	for _, f := range forms {
		sp, ok := findWholeWordFold(icelandic, f.Text)
		if !ok {
			continue
		}
		if !found || sp.start < best.start ||
			(sp.start == best.start && sp.end > best.end) {
			best, found = sp, true
		}
	}
	if !found {
		return occurrence{}, false
	}
	matched := icelandic[best.start:best.end]

	// Every grammatical combination the matched surface can realize is a
	// candidate, ordered by declension rank so the inferred reading is
	// deterministic. The English side settles the number.
	var cands []Form
	for _, f := range forms {
		if strings.EqualFold(f.Text, matched) {
			cands = append(cands, f)
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		if ra, rb := caseRank(cands[a].Case), caseRank(cands[b].Case); ra != rb {
			return ra < rb
		}
		if cands[a].Number != cands[b].Number {
			return cands[a].Number == Singular
		}
		return !cands[a].Definite && cands[b].Definite
	})

	// English side: equivalents longest-first, each under both numbers
	// the Icelandic surface allows. A number mismatch just moves on to
	// the next candidate.
	for _, eqIdx := range entry.matchOrder {
		eq := entry.Equivalents[eqIdx]
		tried := make(map[Number]bool, 2)
		for _, cand := range cands {
			if tried[cand.Number] {
				continue
			}
			tried[cand.Number] = true
			target := eq.Singular
			if cand.Number == Plural {
				target = eq.Plural
			}
			ensp, ok := findWholeWordFold(english, target)
			if !ok {
				continue
			}
			feats := Features{
				Case:        cand.Case,
				Number:      cand.Number,
				Gender:      entry.Gender,
				Definite:    cand.Definite,
				Capitalized: firstIsUpper(matched),
				AllCaps:     isAllCaps(matched),
				Equivalent:  eqIdx,
			}
			if !feats.valid() {
				// Incomplete inference: discard this candidate
				continue
			}
			return occurrence{entry: entry, is: best, en: ensp, feats: feats}, true
		}
	}
	return occurrence{}, false
}

// findWholeWordFold locates the first case-insensitive occurrence of w
// in s that is delimited by non-letters on both ends. w may contain
// spaces (a whole-phrase match). The returned span indexes s itself:
// folding is done rune by rune so that characters whose case variants
// differ in UTF-8 length never shift the offsets.
func findWholeWordFold(s, w string) (span, bool) {
	if w == "" {
		return span{}, false
	}
	for start := 0; start < len(s); {
		if n, ok := foldPrefixLen(s[start:], w); ok && wordBoundary(s, start, start+n) {
			return span{start, start + n}, true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		start += size
	}
	return span{}, false
}

// foldPrefixLen reports how many bytes at the start of s case-fold to w,
// or ok=false when s does not begin with a fold of w.
func foldPrefixLen(s, w string) (n int, ok bool) {
	for _, wr := range w {
		sr, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || !runeEqualFold(sr, wr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// runeEqualFold reports whether two runes are equal under simple Unicode
// case-folding, the same relation strings.EqualFold uses.
func runeEqualFold(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// wordBoundary reports whether s[start:end] is not flanked by letters.
func wordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
