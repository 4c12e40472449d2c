package wordlist

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/tuicard/internal/model"
)

// Shuffler reorders decks randomly.
type Shuffler struct {
	rnd *rand.Rand
}

// NewShuffler returns a Shuffler for the given seed. A zero seed uses the current time.
func NewShuffler(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffler{rnd: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a shuffled copy of entries. The input slice is not modified.
func (s *Shuffler) Shuffle(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	s.rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
