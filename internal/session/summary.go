package session

import (
	"math"

	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/wordlist"
)

// Summary is the result view of a pass over the active deck.
type Summary struct {
	Total        int
	Known        int
	Unknown      []model.Entry
	ScorePercent int
	// Groups holds the unknown entries bucketed by ascending section.
	Groups []wordlist.Group
}

// Perfect reports whether every entry of the pass was marked known.
func (s Summary) Perfect() bool {
	return len(s.Unknown) == 0
}

func buildSummary(active, unknown []model.Entry) Summary {
	total := len(active)
	known := total - len(unknown)
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(known) / float64(total)))
	}
	return Summary{
		Total:        total,
		Known:        known,
		Unknown:      cloneEntries(unknown),
		ScorePercent: score,
		Groups:       wordlist.GroupBySection(unknown),
	}
}
