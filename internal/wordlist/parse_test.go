package wordlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuicard/internal/model"
)

func TestParseSectionsAndSeparators(t *testing.T) {
	input := "Section 1\namor - love\nSection 2\ntempus — time\n"

	got := Parse(input)

	assert.Equal(t, []model.Entry{
		{Term: "amor", Definition: "love", Section: 1},
		{Term: "tempus", Definition: "time", Section: 2},
	}, got)
}

func TestParseIgnoresMalformedLines(t *testing.T) {
	got := Parse("no dash here\nSection abc\nx-y")

	assert.Equal(t, []model.Entry{{Term: "x", Definition: "y", Section: 1}}, got)
}

func TestParseHeadersOnlyYieldsEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n   \n", "Section 1\nSECTION [2]\nsection  3"} {
		got := Parse(input)
		require.NotNil(t, got, "input %q", input)
		assert.Empty(t, got, "input %q", input)
	}
}

func TestParseEachSeparator(t *testing.T) {
	for _, sep := range []string{"-", "–", "—"} {
		for _, line := range []string{"lux" + sep + "light", "lux " + sep + " light", "lux\t" + sep + "  light"} {
			got := Parse(line)
			require.Len(t, got, 1, "line %q", line)
			assert.Equal(t, model.Entry{Term: "lux", Definition: "light", Section: 1}, got[0], "line %q", line)
		}
	}
}

func TestParseTrimsTermAndDefinition(t *testing.T) {
	cases := []struct {
		text1 string
		text2 string
	}{
		{"aqua", "water"},
		{"  rēx ", " king "},
		{"Āctum", "procedure/course of action"},
		{"quem", "which (Relative Pronoun)"},
	}
	for _, tc := range cases {
		got := Parse(tc.text1 + " - " + tc.text2)
		require.Len(t, got, 1)
		assert.Equal(t, strings.TrimSpace(tc.text1), got[0].Term)
		assert.Equal(t, strings.TrimSpace(tc.text2), got[0].Definition)
	}
}

func TestParseFirstSeparatorWins(t *testing.T) {
	cases := []struct {
		line       string
		term       string
		definition string
	}{
		{"bellum - war - conflict", "bellum", "war - conflict"},
		{"bellum — war-like struggle", "bellum", "war-like struggle"},
		{"co-op - cooperative", "co", "op - cooperative"},
		{"a–b—c", "a", "b—c"},
		{"Section - 5", "Section", "5"},
	}
	for _, tc := range cases {
		got := Parse(tc.line)
		require.Len(t, got, 1, "line %q", tc.line)
		assert.Equal(t, tc.term, got[0].Term, "line %q", tc.line)
		assert.Equal(t, tc.definition, got[0].Definition, "line %q", tc.line)
	}
}

func TestParseRejectsMissingSide(t *testing.T) {
	for _, line := range []string{"-", "- definition", "term -", "term —   ", "——"} {
		assert.Empty(t, Parse(line), "line %q", line)
	}
}

func TestParseSectionHeaderForms(t *testing.T) {
	cases := []struct {
		header  string
		section int
	}{
		{"Section 1", 1},
		{"SECTION [2]", 2},
		{"section  3", 3},
		{"section[4]", 4},
		{"Section [ 12 ]", 12},
		{"sEcTiOn 7", 7},
	}
	for _, tc := range cases {
		got := Parse(tc.header + "\nverbum - word")
		require.Len(t, got, 1, "header %q", tc.header)
		assert.Equal(t, tc.section, got[0].Section, "header %q", tc.header)
	}
}

func TestParseSectionAssignment(t *testing.T) {
	input := `
ante - before
Section 2
bonus - good
  cado - fall

Section 5
dico - say
`
	got := Parse(input)

	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 2, 2, 5}, sectionsOf(got))
}

func TestParseOverflowingHeaderIsNotAHeader(t *testing.T) {
	got := Parse("Section 99999999999999999999999\nverbum - word")

	assert.Equal(t, []model.Entry{{Term: "verbum", Definition: "word", Section: 1}}, got)
}

func TestParseKeepsOrderAndDuplicates(t *testing.T) {
	input := "via - road\namicus - friend\nvia - road\nSection 3\namicus - friend"

	got := Parse(input)

	assert.Equal(t, []model.Entry{
		{Term: "via", Definition: "road", Section: 1},
		{Term: "amicus", Definition: "friend", Section: 1},
		{Term: "via", Definition: "road", Section: 1},
		{Term: "amicus", Definition: "friend", Section: 3},
	}, got)
}

func TestParseHandlesCRLF(t *testing.T) {
	got := Parse("Section 2\r\nnox - night\r\n")

	assert.Equal(t, []model.Entry{{Term: "nox", Definition: "night", Section: 2}}, got)
}

func TestParseIsRepeatable(t *testing.T) {
	input := "Section 1\namor - love\nSection 2\ntempus — time"

	first := Parse(input)
	second := Parse(input)

	assert.Equal(t, first, second)
	require.NotEmpty(t, first)
	first[0].Term = "changed"
	assert.Equal(t, "amor", second[0].Term)
}

func sectionsOf(entries []model.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Section
	}
	return out
}
