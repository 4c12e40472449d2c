package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/session"
	"github.com/verte-zerg/tuicard/internal/wordlist"
)

// Options controls plain-text rendering.
type Options struct {
	// Width caps the line width in display cells. Zero disables truncation.
	Width int
}

// RenderEntries prints parsed entries as a Section/Term/Definition table
// followed by a word and section count.
func RenderEntries(w io.Writer, entries []model.Entry, opts Options) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{strconv.Itoa(entry.Section), entry.Term, entry.Definition})
	}
	lines := formatTable([]string{"Section", "Term", "Definition"}, rows, map[int]bool{0: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, truncate(line, opts.Width)); err != nil {
			return err
		}
	}
	sections := len(wordlist.Sections(entries))
	_, err := fmt.Fprintf(w, "\n%s in %s\n", plural(len(entries), "word"), plural(sections, "section"))
	return err
}

// RenderSummary prints the result of a study pass.
func RenderSummary(w io.Writer, summary session.Summary, opts Options) error {
	if _, err := fmt.Fprintln(w, "Study Complete!"); err != nil {
		return err
	}
	stats := formatTable(nil, [][]string{
		{"Known", strconv.Itoa(summary.Known)},
		{"To Review", strconv.Itoa(len(summary.Unknown))},
		{"Score", fmt.Sprintf("%d%%", summary.ScorePercent)},
	}, map[int]bool{1: true})
	for _, line := range stats {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if summary.Perfect() {
		_, err := fmt.Fprintf(w, "\nPerfect score! You knew all %s.\n", plural(summary.Total, "word"))
		return err
	}

	if _, err := fmt.Fprintln(w, "\nWords to Review"); err != nil {
		return err
	}
	for _, group := range summary.Groups {
		if _, err := fmt.Fprintf(w, "\nSection %d\n", group.Section); err != nil {
			return err
		}
		rows := make([][]string, 0, len(group.Entries))
		for _, entry := range group.Entries {
			rows = append(rows, []string{"  " + entry.Term, "—", entry.Definition})
		}
		for _, line := range formatTable(nil, rows, nil) {
			if _, err := fmt.Fprintln(w, truncate(line, opts.Width)); err != nil {
				return err
			}
		}
	}
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
