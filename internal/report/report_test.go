package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuicard/internal/session"
	"github.com/verte-zerg/tuicard/internal/wordlist"
)

func TestRenderEntries(t *testing.T) {
	var buf bytes.Buffer
	entries := wordlist.Parse("Section 1\namor - love\nSection 2\ntempus — time")

	require.NoError(t, RenderEntries(&buf, entries, Options{}))

	want := "Section  Term    Definition\n" +
		"      1  amor    love\n" +
		"      2  tempus  time\n" +
		"\n2 words in 2 sections\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderEntries(&buf, nil, Options{}))

	assert.Equal(t, "No words found.\n", buf.String())
}

func TestRenderEntriesSingular(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderEntries(&buf, wordlist.Parse("nox - night"), Options{Width: 80}))

	assert.True(t, strings.HasSuffix(buf.String(), "1 word in 1 section\n"), buf.String())
}

func TestRenderSummaryGroupsUnknown(t *testing.T) {
	s := session.New()
	_, err := s.Begin(wordlist.Parse("amor - love\nSection 3\nrex - king\nSection 2\nlux - light"))
	require.NoError(t, err)
	s.MarkUnknown()
	s.MarkUnknown()
	s.MarkKnown()

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, s.Summary(), Options{}))

	out := buf.String()
	assert.Contains(t, out, "Known        1")
	assert.Contains(t, out, "To Review    2")
	assert.Contains(t, out, "Score      33%")
	assert.Contains(t, out, "Words to Review")
	assert.Contains(t, out, "  amor  —  love")
	assert.Less(t, strings.Index(out, "Section 1"), strings.Index(out, "Section 3"))
	assert.NotContains(t, out, "Section 2")
	assert.NotContains(t, out, "lux")
}

func TestRenderSummaryPerfect(t *testing.T) {
	s := session.New()
	_, err := s.Begin(wordlist.Parse("a - b\nc - d"))
	require.NoError(t, err)
	s.MarkKnown()
	s.MarkKnown()

	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, s.Summary(), Options{}))

	assert.Contains(t, buf.String(), "Perfect score! You knew all 2 words.")
	assert.Contains(t, buf.String(), "Score      100%")
}
