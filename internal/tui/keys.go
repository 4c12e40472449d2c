package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/verte-zerg/tuicard/internal/session"
)

type keyMap struct {
	Submit       key.Binding
	Begin        key.Binding
	Know         key.Binding
	DontKnow     key.Binding
	Restart      key.Binding
	StudyUnknown key.Binding
	NewWords     key.Binding
	Scroll       key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding

	phase session.Phase
}

func newKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "start studying"),
		),
		Begin: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "begin study"),
		),
		Know: key.NewBinding(
			key.WithKeys("y", "right", "l"),
			key.WithHelp("y/→", "yes"),
		),
		DontKnow: key.NewBinding(
			key.WithKeys("n", "left", "h"),
			key.WithHelp("n/←", "no"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "start over"),
		),
		StudyUnknown: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "study unknown"),
		),
		NewWords: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "new words"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown", "k", "j"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap for the bindings usable in the current phase.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.phase {
	case session.PhaseInput:
		return []key.Binding{k.Submit, k.ForceQuit}
	case session.PhaseStart:
		return []key.Binding{k.Begin, k.Quit}
	case session.PhaseStudying:
		return []key.Binding{k.DontKnow, k.Know, k.Quit}
	case session.PhaseComplete:
		bindings := []key.Binding{k.Restart}
		if k.StudyUnknown.Enabled() {
			bindings = append(bindings, k.StudyUnknown)
		}
		if k.NewWords.Enabled() {
			bindings = append(bindings, k.NewWords)
		}
		return append(bindings, k.Scroll, k.Quit)
	default:
		return []key.Binding{k.ForceQuit}
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
