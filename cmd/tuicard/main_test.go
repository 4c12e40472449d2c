package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/session"
)

func writeWordList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheckCmdPrintsEntries(t *testing.T) {
	path := writeWordList(t, "Section 2\nquem - which\nnox — night\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"check", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "quem")
	assert.Contains(t, out.String(), "night")
	assert.True(t, strings.HasSuffix(out.String(), "2 words in 1 section\n"), out.String())
}

func TestCheckCmdFailsWithoutEntries(t *testing.T) {
	path := writeWordList(t, "Section 1\nnot an entry\n")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"check", path})

	err := cmd.Execute()
	require.ErrorIs(t, err, session.ErrNoEntries)
	assert.Contains(t, err.Error(), session.NoEntriesMessage)
	assert.Equal(t, "No words found.\n", out.String())
}

func TestCheckCmdReadsStdin(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader("amor - love\n"))
	cmd.SetArgs([]string{"check", "-"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "amor")
}

func TestApplyConfigKeepsChangedFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.Flags().Set("seed", "7"))

	seed := int64(7)
	fileSeed := int64(42)
	applyInt64Config(cmd, "seed", &seed, &fileSeed)
	assert.Equal(t, int64(7), seed)

	shuffle := false
	fileShuffle := true
	applyBoolConfig(cmd, "shuffle", &shuffle, &fileShuffle)
	assert.True(t, shuffle)

	level := defaultLogLevel
	applyStringConfig(cmd, "log-level", &level, nil)
	assert.Equal(t, defaultLogLevel, level)
}

func TestValidateLogLevel(t *testing.T) {
	assert.NoError(t, validateLogLevel("debug"))
	assert.Error(t, validateLogLevel("verbose"))
}

func TestSessionSourceWithoutFileStartsAtInput(t *testing.T) {
	cmd := newRootCmd()
	logger := slog.New(slog.DiscardHandler)

	opts, err := sessionSource(cmd, nil, model.Config{Shuffle: true, Seed: 1}, logger, nil)
	require.NoError(t, err)

	s := session.New(opts...)
	assert.Equal(t, session.PhaseInput, s.Phase())
	assert.True(t, s.CanReset())

	state, err := s.Submit("a - 1\nb - 2\nc - 3")
	require.NoError(t, err)
	assert.Len(t, state.ActiveDeck, 3)
}

func TestSessionSourceWithFilePresetsDeck(t *testing.T) {
	path := writeWordList(t, "Section 3\namor - love\ntempus - time\n")
	cmd := newRootCmd()
	logger := slog.New(slog.DiscardHandler)

	opts, err := sessionSource(cmd, []string{path}, model.Config{}, logger, nil)
	require.NoError(t, err)

	s := session.New(opts...)
	assert.Equal(t, session.PhaseStart, s.Phase())
	assert.False(t, s.CanReset())
	state := s.Start()
	assert.Equal(t, session.PhaseStudying, state.Phase)
	assert.Equal(t, []model.Entry{
		{Term: "amor", Definition: "love", Section: 3},
		{Term: "tempus", Definition: "time", Section: 3},
	}, state.ActiveDeck)
}

func TestSessionSourceRejectsEmptyFile(t *testing.T) {
	path := writeWordList(t, "\n\n")
	cmd := newRootCmd()

	_, err := sessionSource(cmd, []string{path}, model.Config{}, slog.New(slog.DiscardHandler), nil)
	assert.ErrorIs(t, err, session.ErrNoEntries)
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuicard", "config.toml")
	require.NoError(t, writeDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[study]")
	assert.Contains(t, string(data), "[log]")

	// An existing config is left untouched.
	require.NoError(t, os.WriteFile(path, []byte("[study]\nshuffle = true\n"), 0o644))
	require.NoError(t, writeDefaultConfig(path))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[study]\nshuffle = true\n", string(data))
}
