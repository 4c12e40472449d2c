// Package tui provides the Bubble Tea flashcard interface.
//
// The model owns no study state of its own: it forwards key presses to a
// session.Session and renders whatever session.State the last transition
// returned.
package tui

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuicard/internal/session"
)

const (
	maxContentWidth = 72
	minContentWidth = 20
	inputHeight     = 12
)

// Model implements the Bubble Tea flashcard UI.
type Model struct {
	session *session.Session
	state   session.State
	logger  *slog.Logger

	keys     keyMap
	help     help.Model
	input    textarea.Model
	progress progress.Model
	review   viewport.Model

	errMsg string

	width  int
	height int
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	termStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	knownStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	badgeStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a flashcard TUI model driving s.
func NewModel(s *session.Session, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	input := textarea.New()
	input.Placeholder = "Paste your word list here..."
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.MaxHeight = 0
	input.SetHeight(inputHeight)
	input.SetWidth(maxContentWidth)

	m := &Model{
		session:  s,
		logger:   logger,
		keys:     newKeyMap(),
		help:     help.New(),
		input:    input,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		review:   viewport.New(maxContentWidth, 10),
	}
	m.setState(s.State())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.state.Phase == session.PhaseInput {
		return m.input.Focus()
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.state.Phase {
		case session.PhaseInput:
			return m.updateInput(msg)
		case session.PhaseStart:
			return m.updateStart(msg)
		case session.PhaseStudying:
			return m.updateStudying(msg)
		case session.PhaseComplete:
			return m.updateComplete(msg)
		}
		return m, nil
	default:
		if m.state.Phase == session.PhaseInput {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Submit) {
		m.submit()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.errMsg = ""
	}
	return m, cmd
}

func (m *Model) submit() {
	if strings.TrimSpace(m.input.Value()) == "" {
		return
	}
	state, err := m.session.Submit(m.input.Value())
	if err != nil {
		if errors.Is(err, session.ErrNoEntries) {
			m.errMsg = session.NoEntriesMessage
		} else {
			m.errMsg = err.Error()
		}
		m.logger.Debug("word list rejected", "error", err)
		return
	}
	m.errMsg = ""
	m.input.Blur()
	m.setState(state)
}

func (m *Model) updateStart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Begin):
		m.setState(m.session.Start())
	}
	return m, nil
}

func (m *Model) updateStudying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Know):
		m.setState(m.session.MarkKnown())
	case key.Matches(msg, m.keys.DontKnow):
		m.setState(m.session.MarkUnknown())
	}
	return m, nil
}

func (m *Model) updateComplete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.setState(m.session.Restart())
	case key.Matches(msg, m.keys.StudyUnknown):
		m.setState(m.session.StudyUnknownOnly())
	case key.Matches(msg, m.keys.NewWords):
		m.setState(m.session.Reset())
		if m.state.Phase == session.PhaseInput {
			m.input.Reset()
			return m, m.input.Focus()
		}
	default:
		var cmd tea.Cmd
		m.review, cmd = m.review.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setState records the state returned by a transition and refreshes the
// bindings and review content that depend on it.
func (m *Model) setState(state session.State) {
	m.state = state
	m.keys.phase = state.Phase
	m.keys.Submit.SetEnabled(state.Phase == session.PhaseInput)
	m.keys.Begin.SetEnabled(state.Phase == session.PhaseStart)
	m.keys.StudyUnknown.SetEnabled(state.Phase == session.PhaseComplete && len(state.Unknown) > 0)
	m.keys.NewWords.SetEnabled(state.Phase == session.PhaseComplete && m.session.CanReset())
	if state.Phase == session.PhaseComplete {
		m.review.SetContent(m.renderReviewList())
		m.review.GotoTop()
	}
}

func (m *Model) updateLayout() {
	width := m.contentWidth()
	m.input.SetWidth(width)
	m.progress.Width = width
	m.review.Width = width
	m.help.Width = m.width

	// Title, stats, actions and footer take roughly twelve rows.
	reviewHeight := m.height - 12
	if reviewHeight < 3 {
		reviewHeight = 3
	}
	m.review.Height = reviewHeight
	if m.state.Phase == session.PhaseComplete {
		m.review.SetContent(m.renderReviewList())
	}
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return maxContentWidth
	}
	width := int(float64(m.width) * 0.80)
	if width > maxContentWidth {
		width = maxContentWidth
	}
	if width < minContentWidth {
		width = minContentWidth
	}
	return width
}

// Summary returns the summary of the current pass.
func (m *Model) Summary() session.Summary {
	return m.session.Summary()
}

// Phase returns the phase the UI is showing.
func (m *Model) Phase() session.Phase {
	return m.state.Phase
}
