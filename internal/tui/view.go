package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuicard/internal/session"
	"github.com/verte-zerg/tuicard/internal/wordlist"
)

const formatExample = `Section 1
Āctum - procedure/course of action
quem - which (Relative Pronoun)

Section 2
Conquīrendī - to be sought out`

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.state.Phase {
	case session.PhaseInput:
		content = m.renderInput()
	case session.PhaseStart:
		content = m.renderStart()
	case session.PhaseStudying:
		content = m.renderStudying()
	case session.PhaseComplete:
		content = m.renderComplete()
	}
	footer := footerStyle.Render(m.help.View(m.keys))
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderInput() string {
	width := m.contentWidth()
	parts := []string{
		titleStyle.Render("Vocabulary"),
		mutedStyle.Render("Paste your word list below"),
		"",
		mutedStyle.Render("Expected format:"),
		textStyle.Render(formatExample),
		"",
		m.input.View(),
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Width(width).Render(m.errMsg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderStart() string {
	deck := m.state.MasterDeck
	stats := fmt.Sprintf("%s  %s   %s  %s",
		termStyle.Render(fmt.Sprint(len(deck))), mutedStyle.Render("Words"),
		termStyle.Render(fmt.Sprint(len(wordlist.Sections(deck)))), mutedStyle.Render("Sections"),
	)
	howTo := strings.Join([]string{
		"• Each card shows a word with its definition",
		"• Press y if you know it, n if you don't",
		"• At the end, review all the words you didn't know",
	}, "\n")
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Vocabulary"),
		"",
		stats,
		"",
		textStyle.Render(howTo),
	)
	return cardStyle.Width(m.contentWidth()).Align(lipgloss.Center).Render(body)
}

func (m *Model) renderStudying() string {
	entry, ok := m.state.Current()
	if !ok {
		return ""
	}
	width := m.contentWidth()
	inner := width - 6
	if inner < 1 {
		inner = 1
	}
	total := len(m.state.ActiveDeck)

	percent := 0.0
	if total > 0 {
		percent = float64(m.state.Position) / float64(total)
	}
	progressLine := lipgloss.JoinVertical(lipgloss.Left,
		mutedStyle.Render(fmt.Sprintf("Progress %d%%", int(percent*100+0.5))),
		m.progress.ViewAs(percent),
	)

	badge := badgeStyle.Render(fmt.Sprintf("Section %d", entry.Section))
	counter := mutedStyle.Render(fmt.Sprintf("%d of %d", m.state.Position+1, total))
	gap := inner - lipgloss.Width(badge) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, badge, strings.Repeat(" ", gap), counter)

	definition := strings.Join(wrapText(entry.Definition, inner), "\n")
	card := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		termStyle.Render(strings.Join(wrapText(entry.Term, inner), "\n")),
		mutedStyle.Render(strings.Repeat("─", min(inner, 12))),
		"",
		textStyle.Render(definition),
		"",
		mutedStyle.Italic(true).Render("Do you know this word?"),
		unknownStyle.Render("[n] No")+"    "+knownStyle.Render("[y] Yes"),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		progressLine,
		"",
		cardStyle.Width(width).Align(lipgloss.Center).Render(card),
	)
}

func (m *Model) renderComplete() string {
	summary := m.session.Summary()
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		statBlock(knownStyle, summary.Known, "Known"),
		"   ",
		statBlock(unknownStyle, len(summary.Unknown), "To Review"),
		"   ",
		statBlock(titleStyle, fmt.Sprintf("%d%%", summary.ScorePercent), "Score"),
	)
	head := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Study Complete!"),
		"",
		stats,
	)
	return lipgloss.JoinVertical(lipgloss.Center,
		cardStyle.Width(m.contentWidth()).Align(lipgloss.Center).Render(head),
		"",
		m.review.View(),
	)
}

func statBlock(style lipgloss.Style, value any, label string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(fmt.Sprint(value)),
		mutedStyle.Render(label),
	)
}

// renderReviewList builds the scrollable list of unknown entries grouped by section.
func (m *Model) renderReviewList() string {
	summary := m.session.Summary()
	width := m.contentWidth()
	if summary.Perfect() {
		return lipgloss.JoinVertical(lipgloss.Center,
			knownStyle.Render("Perfect Score!"),
			mutedStyle.Render(fmt.Sprintf("You knew all %d words. Excellent work!", summary.Total)),
		)
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Words to Review"))
	b.WriteString("\n")
	for _, group := range summary.Groups {
		b.WriteString("\n")
		b.WriteString(badgeStyle.Render(fmt.Sprintf("Section %d", group.Section)))
		b.WriteString("\n")
		for _, entry := range group.Entries {
			line := entry.Term + " — " + entry.Definition
			for i, wrapped := range wrapText(line, width-2) {
				if i == 0 {
					b.WriteString("  " + termStyle.Render(wrapped))
				} else {
					b.WriteString("  " + textStyle.Render(wrapped))
				}
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
