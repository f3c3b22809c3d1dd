package termpairs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"
)

// Equivalent is one English rendering of a glossary lemma, with its
// plural derived once at load time.
type Equivalent struct {
	Singular string
	Plural   string
}

// Entry is one common-noun glossary entry: an Icelandic lemma with its
// gender and a priority-ordered list of English equivalents.
type Entry struct {
	Lemma       string
	Gender      Gender
	Equivalents []Equivalent

	// matchOrder holds indices into Equivalents sorted longest phrase
	// first (stable), so "large corporation" is tried before
	// "corporation" regardless of listing order.
	matchOrder []int
}

// Glossary is an ordered collection of common-noun entries. Order
// matters: the matcher tries entries in file order and stops at the
// first that yields a template.
type Glossary struct {
	Entries []*Entry
}

// LoadGlossaryFile loads a common-noun glossary from a file on disk.
func LoadGlossaryFile(path string) (*Glossary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open glossary: %w", err)
	}
	defer f.Close()
	g, err := LoadGlossary(f)
	if err != nil {
		return nil, fmt.Errorf("glossary %s: %w", path, err)
	}
	return g, nil
}

// LoadGlossary reads a common-noun glossary. Each line holds
//
//	lemma/category, equivalent1[, equivalent2, ...]
//
// with category one of kk, kvk, hk. Lines starting with '#' and blank
// lines are ignored. A malformed line is an error: a corrupted glossary
// silently producing wrong pairs is worse than stopping.
func LoadGlossary(r io.Reader) (*Glossary, error) {
	g := &Glossary{}
	err := eachDataLine(r, func(lineNum int, line string) error {
		fields := splitTrim(line)
		if len(fields) < 2 {
			return fmt.Errorf("glossary line %d: want lemma and at least one equivalent: %q", lineNum, line)
		}
		lemma, gender, err := parseLemmaField(fields[0])
		if err != nil {
			return fmt.Errorf("glossary line %d: %w", lineNum, err)
		}
		e := &Entry{Lemma: lemma, Gender: gender}
		for _, eq := range fields[1:] {
			if eq == "" {
				return fmt.Errorf("glossary line %d: empty equivalent: %q", lineNum, line)
			}
			e.Equivalents = append(e.Equivalents, Equivalent{
				Singular: eq,
				Plural:   EnglishPlural(eq),
			})
		}
		e.matchOrder = longestFirst(e.Equivalents)
		g.Entries = append(g.Entries, e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// PruneMissing removes entries whose lemma has no forms in the lexicon
// and returns the removed lemmas so the caller can report them.
func (g *Glossary) PruneMissing(lx *Lexicon) []string {
	var dropped []string
	kept := g.Entries[:0]
	for _, e := range g.Entries {
		if lx.Has(e.Lemma, e.Gender) {
			kept = append(kept, e)
		} else {
			dropped = append(dropped, e.Lemma+"/"+string(e.Gender))
		}
	}
	g.Entries = kept
	return dropped
}

// Term is one rare-term entry: an Icelandic lemma with its gender and
// its English singular and plural forms.
type Term struct {
	Lemma    string
	Gender   Gender
	Singular string
	Plural   string
}

// LoadTermsFile loads a rare-term glossary from a file on disk.
func LoadTermsFile(path string) ([]*Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terms: %w", err)
	}
	defer f.Close()
	terms, err := LoadTerms(f)
	if err != nil {
		return nil, fmt.Errorf("terms %s: %w", path, err)
	}
	return terms, nil
}

// LoadTerms reads a rare-term glossary. Each line holds
//
//	lemma/category, english-singular[, english-plural]
//
// When the plural is absent it is derived by rule and cached on the
// entry. Comment and blank lines as in LoadGlossary; malformed lines are
// errors.
func LoadTerms(r io.Reader) ([]*Term, error) {
	var terms []*Term
	err := eachDataLine(r, func(lineNum int, line string) error {
		fields := splitTrim(line)
		if len(fields) < 2 || len(fields) > 3 {
			return fmt.Errorf("terms line %d: want lemma, singular and optional plural: %q", lineNum, line)
		}
		lemma, gender, err := parseLemmaField(fields[0])
		if err != nil {
			return fmt.Errorf("terms line %d: %w", lineNum, err)
		}
		if fields[1] == "" {
			return fmt.Errorf("terms line %d: empty English singular: %q", lineNum, line)
		}
		t := &Term{Lemma: lemma, Gender: gender, Singular: fields[1]}
		if len(fields) == 3 && fields[2] != "" {
			t.Plural = fields[2]
		} else {
			t.Plural = EnglishPlural(t.Singular)
		}
		terms = append(terms, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return terms, nil
}

// eachDataLine scans r line by line, skipping blanks and '#' comments,
// and calls fn with the 1-based line number of each remaining line.
func eachDataLine(r io.Reader, fn func(lineNum int, line string) error) error {
	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(lineNum, line); err != nil {
			return err
		}
	}
	return sc.Err()
}

// splitTrim splits a glossary line on commas and trims each field.
func splitTrim(line string) []string {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseLemmaField parses a "lemma/category" head field.
func parseLemmaField(field string) (string, Gender, error) {
	lemma, cat, found := strings.Cut(field, "/")
	if !found || lemma == "" {
		return "", "", fmt.Errorf("malformed lemma field %q: want lemma/category", field)
	}
	gender, ok := ParseGender(cat)
	if !ok {
		return "", "", fmt.Errorf("lemma field %q: unknown category %q (want kk, kvk or hk)", field, cat)
	}
	return lemma, gender, nil
}

// longestFirst returns the indices of eqs ordered by descending singular
// length (in runes), stable for equal lengths.
func longestFirst(eqs []Equivalent) []int {
	order := make([]int, len(eqs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return utf8.RuneCountInString(eqs[order[a]].Singular) >
			utf8.RuneCountInString(eqs[order[b]].Singular)
	})
	return order
}
