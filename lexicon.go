package termpairs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoInflection is returned when a lemma has no surface form for a
// requested grammatical combination. Callers are expected to skip the
// affected pairing and continue; it is never fatal to a run.
var ErrNoInflection = errors.New("no inflected form available")

// Form is a single inflected surface form of a noun together with the
// grammatical combination it realizes.
type Form struct {
	Text     string
	Case     Case
	Number   Number
	Definite bool
}

// entryKey identifies a noun in the lexicon: the same lemma spelling may
// exist in more than one gender.
type entryKey struct {
	lemma  string
	gender Gender
}

// Lexicon is an in-memory morphological lexicon for Icelandic nouns,
// loaded from a BÍN-style form list. It answers the single question the
// rest of the package needs: which surface form does a lemma take under
// a given case, number and definiteness.
type Lexicon struct {
	forms map[entryKey][]Form
}

// NewLexicon loads a lexicon from a file on disk.
func NewLexicon(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()
	lx, err := LoadLexicon(f)
	if err != nil {
		return nil, fmt.Errorf("load lexicon %s: %w", path, err)
	}
	return lx, nil
}

// LoadLexicon reads a BÍN-style form list into memory. Each line holds
// six semicolon-separated fields:
//
//	lemma;id;category;domain;form;tag
//
// e.g. "eldflaug;12345;kvk;alm;eldflauginni;ÞGFETgr". Lines starting
// with '#' and blank lines are ignored. Entries for word classes other
// than nouns, and idiosyncratic variant forms (tag containing a variant
// digit), are skipped. A lemma spelled with a hyphen is indexed under
// both spellings.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	lx := &Lexicon{forms: make(map[entryKey][]Form)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 6 {
			return nil, fmt.Errorf("lexicon line %d: want 6 fields, got %d", lineNum, len(fields))
		}
		gender, ok := ParseGender(fields[2])
		if !ok {
			// Not a noun entry
			continue
		}
		tag := fields[5]
		if strings.ContainsAny(tag, "23") {
			// Idiosyncratic variant form
			continue
		}
		c, n, definite, ok := parseBinTag(tag)
		if !ok {
			continue
		}
		form := Form{Text: fields[4], Case: c, Number: n, Definite: definite}
		lemma := fields[0]
		lx.add(lemma, gender, form)
		if strings.Contains(lemma, "-") {
			lx.add(strings.ReplaceAll(lemma, "-", ""), gender, form)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lx, nil
}

func (lx *Lexicon) add(lemma string, g Gender, f Form) {
	key := entryKey{lemma, g}
	lx.forms[key] = append(lx.forms[key], f)
}

// Has reports whether the lexicon holds any form for lemma under the
// given gender.
func (lx *Lexicon) Has(lemma string, g Gender) bool {
	return len(lx.NounForms(lemma, g)) > 0
}

// NounForms returns every surface form of lemma under the given gender.
// When the lemma itself is unknown, a lemma written with an explicit
// hyphen ("rauð-dvergur") is treated as a compound: the part before the
// last hyphen is a fixed prefix attached to each inflected form of the
// remainder.
func (lx *Lexicon) NounForms(lemma string, g Gender) []Form {
	if forms, ok := lx.forms[entryKey{lemma, g}]; ok {
		return forms
	}
	prefix, base := splitCompound(lemma)
	if prefix == "" {
		return nil
	}
	forms := lx.forms[entryKey{base, g}]
	out := make([]Form, len(forms))
	for i, f := range forms {
		f.Text = prefix + f.Text
		out[i] = f
	}
	return out
}

// Inflect returns the surface form of lemma under the given grammatical
// combination, or an error wrapping ErrNoInflection when the lexicon has
// no such form.
func (lx *Lexicon) Inflect(lemma string, g Gender, c Case, n Number, definite bool) (string, error) {
	for _, f := range lx.NounForms(lemma, g) {
		if f.Case == c && f.Number == n && f.Definite == definite {
			return f.Text, nil
		}
	}
	return "", fmt.Errorf("inflect %s/%s as %s %s definite=%t: %w",
		lemma, g, c, n, definite, ErrNoInflection)
}

// splitCompound splits an explicitly hyphenated compound lemma into its
// fixed prefix and the inflecting base.
func splitCompound(lemma string) (prefix, base string) {
	if i := strings.LastIndexByte(lemma, '-'); i > 0 {
		return lemma[:i], lemma[i+1:]
	}
	return "", lemma
}
