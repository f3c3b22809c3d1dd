package termpairs

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// Collection holds loaded templates segregated by the gender of the
// noun they abstract, so that a rare term is only substituted into
// templates whose surrounding agreement was built for its gender.
type Collection struct {
	byGender map[Gender][]*Template
}

// NewCollection returns an empty template collection.
func NewCollection() *Collection {
	return &Collection{byGender: make(map[Gender][]*Template)}
}

// Add files a template under its recorded gender.
func (c *Collection) Add(t *Template) {
	c.byGender[t.Gender()] = append(c.byGender[t.Gender()], t)
}

// Len returns the total number of templates held.
func (c *Collection) Len() int {
	n := 0
	for _, ts := range c.byGender {
		n += len(ts)
	}
	return n
}

// Templates returns the templates recorded for gender g.
func (c *Collection) Templates(g Gender) []*Template {
	return c.byGender[g]
}

// ReadFrom loads templates from a template file (one Line-format record
// per line, blank lines ignored) and returns how many were added.
// Template files are machine-written, so a line that fails to parse is
// an error, not a skip.
func (c *Collection) ReadFrom(r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum, added := 0, 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := ParseTemplate(line)
		if err != nil {
			return added, fmt.Errorf("template file line %d: %w", lineNum, err)
		}
		c.Add(t)
		added++
	}
	if err := sc.Err(); err != nil {
		return added, err
	}
	return added, nil
}

// Generate substitutes term into up to count randomly chosen distinct
// templates of the term's gender and returns the synthetic pairs plus
// the number of pairings skipped because the required inflection does
// not exist. When fewer than count templates are available, all of them
// are used. It is an error for the gender to have no templates at all.
func (c *Collection) Generate(term *Term, lx *Lexicon, count int, rng *rand.Rand) ([]SentencePair, int, error) {
	templates := c.byGender[term.Gender]
	if len(templates) == 0 {
		return nil, 0, fmt.Errorf("no template available for gender %s (term %s)", term.Gender, term.Lemma)
	}
	if count > len(templates) {
		count = len(templates)
	}

	pairs := make([]SentencePair, 0, count)
	skipped := 0
	for _, i := range rng.Perm(len(templates))[:count] {
		pair, err := templates[i].Substitute(term, lx)
		if err != nil {
			// Typically a noun that exists only in one number
			skipped++
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs, skipped, nil
}
