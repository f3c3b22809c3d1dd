package termpairs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLexiconData is a small BÍN-style form list covering the nouns the
// tests need: two feminine nouns, two neuter nouns (one a compound), a
// masculine noun, a singular-only neuter noun, a hyphenated lemma, one
// idiosyncratic variant form and one non-noun entry.
const testLexiconData = `
# test lexicon
rannsókn;1001;kvk;alm;rannsókn;NFET
rannsókn;1001;kvk;alm;rannsóknin;NFETgr
rannsókn;1001;kvk;alm;rannsókn;ÞFET
rannsókn;1001;kvk;alm;rannsóknina;ÞFETgr
rannsókn;1001;kvk;alm;rannsókn;ÞGFET
rannsókn;1001;kvk;alm;rannsókninni;ÞGFETgr
rannsókn;1001;kvk;alm;rannsóknar;EFET
rannsókn;1001;kvk;alm;rannsóknarinnar;EFETgr
rannsókn;1001;kvk;alm;rannsóknir;NFFT
rannsókn;1001;kvk;alm;rannsóknirnar;NFFTgr
rannsókn;1001;kvk;alm;rannsóknir;ÞFFT
rannsókn;1001;kvk;alm;rannsóknirnar;ÞFFTgr
rannsókn;1001;kvk;alm;rannsóknum;ÞGFFT
rannsókn;1001;kvk;alm;rannsóknunum;ÞGFFTgr
rannsókn;1001;kvk;alm;rannsóknu;ÞGFET2
rannsókn;1001;kvk;alm;rannsókna;EFFT
rannsókn;1001;kvk;alm;rannsóknanna;EFFTgr
eldflaug;1002;kvk;alm;eldflaug;NFET
eldflaug;1002;kvk;alm;eldflaugin;NFETgr
eldflaug;1002;kvk;alm;eldflaug;ÞFET
eldflaug;1002;kvk;alm;eldflaugina;ÞFETgr
eldflaug;1002;kvk;alm;eldflaug;ÞGFET
eldflaug;1002;kvk;alm;eldflauginni;ÞGFETgr
eldflaug;1002;kvk;alm;eldflaugar;EFET
eldflaug;1002;kvk;alm;eldflaugarinnar;EFETgr
eldflaug;1002;kvk;alm;eldflaugar;NFFT
eldflaug;1002;kvk;alm;eldflaugarnar;NFFTgr
eldflaug;1002;kvk;alm;eldflaugar;ÞFFT
eldflaug;1002;kvk;alm;eldflaugarnar;ÞFFTgr
eldflaug;1002;kvk;alm;eldflaugum;ÞGFFT
eldflaug;1002;kvk;alm;eldflaugunum;ÞGFFTgr
eldflaug;1002;kvk;alm;eldflauga;EFFT
eldflaug;1002;kvk;alm;eldflauganna;EFFTgr
fyrirtæki;1003;hk;alm;fyrirtæki;NFET
fyrirtæki;1003;hk;alm;fyrirtækið;NFETgr
fyrirtæki;1003;hk;alm;fyrirtæki;ÞFET
fyrirtæki;1003;hk;alm;fyrirtækið;ÞFETgr
fyrirtæki;1003;hk;alm;fyrirtæki;ÞGFET
fyrirtæki;1003;hk;alm;fyrirtækinu;ÞGFETgr
fyrirtæki;1003;hk;alm;fyrirtækis;EFET
fyrirtæki;1003;hk;alm;fyrirtækisins;EFETgr
fyrirtæki;1003;hk;alm;fyrirtæki;NFFT
fyrirtæki;1003;hk;alm;fyrirtækin;NFFTgr
fyrirtæki;1003;hk;alm;fyrirtæki;ÞFFT
fyrirtæki;1003;hk;alm;fyrirtækin;ÞFFTgr
fyrirtæki;1003;hk;alm;fyrirtækjum;ÞGFFT
fyrirtæki;1003;hk;alm;fyrirtækjunum;ÞGFFTgr
fyrirtæki;1003;hk;alm;fyrirtækja;EFFT
fyrirtæki;1003;hk;alm;fyrirtækjanna;EFFTgr
stórfyrirtæki;1004;hk;alm;stórfyrirtæki;NFET
stórfyrirtæki;1004;hk;alm;stórfyrirtækið;NFETgr
stórfyrirtæki;1004;hk;alm;stórfyrirtæki;ÞFET
stórfyrirtæki;1004;hk;alm;stórfyrirtækið;ÞFETgr
stórfyrirtæki;1004;hk;alm;stórfyrirtæki;ÞGFET
stórfyrirtæki;1004;hk;alm;stórfyrirtækinu;ÞGFETgr
stórfyrirtæki;1004;hk;alm;stórfyrirtækis;EFET
stórfyrirtæki;1004;hk;alm;stórfyrirtækisins;EFETgr
stórfyrirtæki;1004;hk;alm;stórfyrirtæki;NFFT
stórfyrirtæki;1004;hk;alm;stórfyrirtækin;NFFTgr
stórfyrirtæki;1004;hk;alm;stórfyrirtæki;ÞFFT
stórfyrirtæki;1004;hk;alm;stórfyrirtækin;ÞFFTgr
stórfyrirtæki;1004;hk;alm;stórfyrirtækjum;ÞGFFT
stórfyrirtæki;1004;hk;alm;stórfyrirtækjunum;ÞGFFTgr
stórfyrirtæki;1004;hk;alm;stórfyrirtækja;EFFT
stórfyrirtæki;1004;hk;alm;stórfyrirtækjanna;EFFTgr
dvergur;1005;kk;alm;dvergur;NFET
dvergur;1005;kk;alm;dvergurinn;NFETgr
dvergur;1005;kk;alm;dverg;ÞFET
dvergur;1005;kk;alm;dverginn;ÞFETgr
dvergur;1005;kk;alm;dvergi;ÞGFET
dvergur;1005;kk;alm;dvergnum;ÞGFETgr
dvergur;1005;kk;alm;dvergs;EFET
dvergur;1005;kk;alm;dvergsins;EFETgr
dvergur;1005;kk;alm;dvergar;NFFT
dvergur;1005;kk;alm;dvergarnir;NFFTgr
dvergur;1005;kk;alm;dverga;ÞFFT
dvergur;1005;kk;alm;dvergana;ÞFFTgr
dvergur;1005;kk;alm;dvergum;ÞGFFT
dvergur;1005;kk;alm;dvergunum;ÞGFFTgr
dvergur;1005;kk;alm;dverga;EFFT
dvergur;1005;kk;alm;dverganna;EFFTgr
vetni;1006;hk;alm;vetni;NFET
vetni;1006;hk;alm;vetnið;NFETgr
vetni;1006;hk;alm;vetni;ÞFET
vetni;1006;hk;alm;vetnið;ÞFETgr
vetni;1006;hk;alm;vetni;ÞGFET
vetni;1006;hk;alm;vetninu;ÞGFETgr
vetni;1006;hk;alm;vetnis;EFET
vetni;1006;hk;alm;vetnisins;EFETgr
hug-mynd;1007;kvk;alm;hugmynd;NFET
hug-mynd;1007;kvk;alm;hugmyndin;NFETgr
hlaupa;2001;so;alm;hleyp;GM-FH-NT-1P-ET
`

func testLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lx, err := LoadLexicon(strings.NewReader(testLexiconData))
	require.NoError(t, err)
	return lx
}

func testGlossary(t *testing.T, lines ...string) *Glossary {
	t.Helper()
	g, err := LoadGlossary(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return g
}
