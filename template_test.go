package termpairs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateRoundTrip(t *testing.T) {
	lines := []string{
		"The {0:sg_eq0} showed results.\t{0:kvk_nf_et_gr_cap} sýndi árangur.",
		"{0:pl_eq1} grew fast.\tHann sá {0:hk_þf_ft}.",
		"THE {0:sg_eq0} WAS LOST.\t{0:kk_nf_et_gr_caps} TÝNDIST.",
	}
	for _, line := range lines {
		tmpl, err := ParseTemplate(line)
		require.NoError(t, err, "line %q", line)
		assert.Equal(t, line, tmpl.Line(), "line %q", line)
	}
}

func TestParseTemplateErrors(t *testing.T) {
	for _, line := range []string{
		"no tab here",
		"no placeholder\there either",
		"one {0:sg_eq0} here\tnone here",
		"none here\tone {0:kvk_nf_et} here",
		"{0:sg_eq0} and {0:sg_eq0}\t{0:kvk_nf_et}",
		"{0:sg_eq0}\t{0:kvk_nf_et} og {0:kvk_nf_et}",
		"{0:bogus}\t{0:kvk_nf_et}",
		"{0:sg_eq0}\t{0:bogus_nf_et}",
		// number disagreement between the two sides
		"{0:pl_eq0} grew.\t{0:kvk_nf_et} óx.",
	} {
		_, err := ParseTemplate(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestSubstituteBasic(t *testing.T) {
	lx := testLexicon(t)
	m := NewMatcher(lx, testGlossary(t, "rannsókn/kvk, study, investigation"))

	tmpl, ok := m.MatchAndAbstract("The study showed results.", "Rannsóknin sýndi árangur.")
	require.True(t, ok)

	rocket := &Term{Lemma: "eldflaug", Gender: Feminine, Singular: "rocket", Plural: "rockets"}
	pair, err := tmpl.Substitute(rocket, lx)
	require.NoError(t, err)
	assert.Equal(t, "The rocket showed results.", pair.English)
	assert.Equal(t, "Eldflaugin sýndi árangur.", pair.Icelandic)
}

func TestSubstituteRoundTripIdempotence(t *testing.T) {
	lx := testLexicon(t)
	m := NewMatcher(lx, testGlossary(t, "rannsókn/kvk, study"))

	english := "The conclusion of the study was clear."
	icelandic := "Niðurstaða rannsóknarinnar var skýr."
	tmpl, ok := m.MatchAndAbstract(english, icelandic)
	require.True(t, ok)

	// substituting the matched lemma itself reproduces the original pair
	study := &Term{Lemma: "rannsókn", Gender: Feminine, Singular: "study", Plural: "studies"}
	pair, err := tmpl.Substitute(study, lx)
	require.NoError(t, err)
	assert.Equal(t, english, pair.English)
	assert.Equal(t, icelandic, pair.Icelandic)
}

func TestSubstituteNumberAgreement(t *testing.T) {
	lx := testLexicon(t)
	m := NewMatcher(lx, testGlossary(t, "fyrirtæki/hk, company"))

	tmpl, ok := m.MatchAndAbstract("The companies grew fast.", "Fyrirtækin uxu hratt.")
	require.True(t, ok)
	require.Equal(t, Plural, tmpl.Features.Number)

	// a neuter rare term gets plural forms on both sides
	moss := &Term{Lemma: "fyrirtæki", Gender: Neuter, Singular: "company", Plural: "companies"}
	pair, err := tmpl.Substitute(moss, lx)
	require.NoError(t, err)
	assert.Equal(t, "The companies grew fast.", pair.English)
	assert.Equal(t, "Fyrirtækin uxu hratt.", pair.Icelandic)
}

func TestSubstituteSentenceInitialEnglish(t *testing.T) {
	lx := testLexicon(t)
	m := NewMatcher(lx, testGlossary(t, "rannsókn/kvk, study"))

	tmpl, ok := m.MatchAndAbstract("Studies showed results.", "Rannsóknir sýndu árangur.")
	require.True(t, ok)

	rocket := &Term{Lemma: "eldflaug", Gender: Feminine, Singular: "rocket", Plural: "rockets"}
	pair, err := tmpl.Substitute(rocket, lx)
	require.NoError(t, err)
	// sentence-initial English placeholder gets capitalized even though
	// the inserted word differs from the original
	assert.Equal(t, "Rockets showed results.", pair.English)
	assert.Equal(t, "Eldflaugar sýndu árangur.", pair.Icelandic)
}

func TestSubstituteMidSentenceEnglishStaysLower(t *testing.T) {
	lx := testLexicon(t)
	tmpl, err := ParseTemplate("He saw the {0:sg_eq0}.\tHann sá {0:kvk_þf_et_gr}.")
	require.NoError(t, err)

	term := &Term{Lemma: "eldflaug", Gender: Feminine, Singular: "rocket", Plural: "rockets"}
	pair, err := tmpl.Substitute(term, lx)
	require.NoError(t, err)
	assert.Equal(t, "He saw the rocket.", pair.English)
	assert.Equal(t, "Hann sá eldflaugina.", pair.Icelandic)
}

func TestSubstituteAllCaps(t *testing.T) {
	lx := testLexicon(t)
	tmpl, err := ParseTemplate("THE {0:sg_eq0} WAS SEEN.\t{0:kvk_nf_et_gr_caps} SÁST.")
	require.NoError(t, err)

	term := &Term{Lemma: "eldflaug", Gender: Feminine, Singular: "rocket", Plural: "rockets"}
	pair, err := tmpl.Substitute(term, lx)
	require.NoError(t, err)
	assert.Equal(t, "ELDFLAUGIN SÁST.", pair.Icelandic)
	// English casing is positional, not copied from the Icelandic flags
	assert.Equal(t, "THE rocket WAS SEEN.", pair.English)
}

func TestSubstituteTermGenderGovernsInflection(t *testing.T) {
	lx := testLexicon(t)
	// template abstracted from a feminine noun, term is masculine: the
	// term's own gender drives the lexicon lookup
	tmpl, err := ParseTemplate("He saw the {0:sg_eq0}.\tHann sá {0:kvk_þf_et_gr}.")
	require.NoError(t, err)

	dwarf := &Term{Lemma: "rauð-dvergur", Gender: Masculine, Singular: "red dwarf", Plural: "red dwarfs"}
	pair, err := tmpl.Substitute(dwarf, lx)
	require.NoError(t, err)
	assert.Equal(t, "He saw the red dwarf.", pair.English)
	assert.Equal(t, "Hann sá rauðdverginn.", pair.Icelandic)
}

func TestSubstituteNoInflection(t *testing.T) {
	lx := testLexicon(t)
	tmpl, err := ParseTemplate("The {0:pl_eq0} grew.\t{0:hk_nf_ft_gr_cap} uxu.")
	require.NoError(t, err)

	// vetni has no plural forms
	hydrogen := &Term{Lemma: "vetni", Gender: Neuter, Singular: "hydrogen", Plural: "hydrogen"}
	_, err = tmpl.Substitute(hydrogen, lx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInflection)
}
