package termpairs

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// Stats summarizes one pipeline pass for the caller to report.
type Stats struct {
	// Lines is the number of input records consumed.
	Lines int
	// Written is the number of output records produced.
	Written int
	// Skipped counts records dropped along the way: corpus lines that
	// yielded no match in phase 1, or pairings without a valid
	// inflection and terms without templates in phase 2.
	Skipped int
}

// CollectTemplates reads tab-separated sentence pairs (English first)
// from r, abstracts at most one noun occurrence per pair using m, and
// writes the resulting template lines to w. Unmatched and malformed
// corpus lines are filtered, not errors: the corpus is noisy by nature.
// When maxLines is positive, at most that many input lines are consumed.
func CollectTemplates(r io.Reader, w io.Writer, m *Matcher, maxLines int) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(w)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Lines++

		english, icelandic, found := strings.Cut(line, "\t")
		if !found {
			stats.Skipped++
			continue
		}
		t, ok := m.MatchAndAbstract(english, icelandic)
		if !ok {
			stats.Skipped++
			continue
		}
		if _, err := fmt.Fprintln(bw, t.Line()); err != nil {
			return stats, err
		}
		stats.Written++

		if maxLines > 0 && stats.Lines >= maxLines {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}
	return stats, bw.Flush()
}

// GeneratePairs substitutes every term into count randomly sampled
// templates of its gender and writes the synthetic pairs to w as
// tab-separated lines (English first). Terms whose gender has no
// templates, and pairings without a valid inflection, are counted as
// skips rather than aborting the run.
func GeneratePairs(c *Collection, terms []*Term, lx *Lexicon, count int, rng *rand.Rand, w io.Writer) (Stats, error) {
	var stats Stats
	bw := bufio.NewWriter(w)

	for _, term := range terms {
		stats.Lines++
		pairs, skipped, err := c.Generate(term, lx, count, rng)
		if err != nil {
			stats.Skipped++
			continue
		}
		stats.Skipped += skipped
		for _, pair := range pairs {
			if _, err := fmt.Fprintf(bw, "%s\t%s\n", pair.English, pair.Icelandic); err != nil {
				return stats, err
			}
			stats.Written++
		}
	}
	return stats, bw.Flush()
}
