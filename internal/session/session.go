// Package session implements the flashcard study session state machine.
//
// A Session owns all mutable study state. The presentation layer reads
// snapshots through State and Summary and drives the session only through
// its transition methods. Transitions whose preconditions do not hold are
// no-ops that return the unchanged state.
package session

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/verte-zerg/tuicard/internal/model"
	"github.com/verte-zerg/tuicard/internal/wordlist"
)

// State is a read-only snapshot of a session.
type State struct {
	SessionID  string
	Pass       int
	Phase      Phase
	Position   int
	ActiveDeck []model.Entry
	MasterDeck []model.Entry
	Unknown    []model.Entry
}

// Current returns the entry at Position while studying.
func (s State) Current() (model.Entry, bool) {
	if s.Phase != PhaseStudying || s.Position < 0 || s.Position >= len(s.ActiveDeck) {
		return model.Entry{}, false
	}
	return s.ActiveDeck[s.Position], true
}

// Observer is notified with the new state after every transition.
type Observer func(State)

// Option configures a Session.
type Option func(*Session)

// WithReset enables the Reset transition, which returns to the input phase
// so a new word list can be entered.
func WithReset() Option {
	return func(s *Session) {
		s.resettable = true
	}
}

// WithPreset seeds the session with a deck known up front. The session
// starts in PhaseStart and Start begins the first pass.
func WithPreset(deck []model.Entry) Option {
	return func(s *Session) {
		s.master = cloneEntries(deck)
		s.phase = PhaseStart
	}
}

// WithDeckOrder rearranges entries parsed by Submit before the first pass,
// e.g. to shuffle them. fn must return a deck of the same entries.
func WithDeckOrder(fn func([]model.Entry) []model.Entry) Option {
	return func(s *Session) {
		s.order = fn
	}
}

// WithObserver subscribes fn to state transitions.
func WithObserver(fn Observer) Option {
	return func(s *Session) {
		if fn != nil {
			s.observers = append(s.observers, fn)
		}
	}
}

// WithLogger sets the logger used for transition logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session tracks the active deck, the position in it and the entries
// marked unknown during the current pass.
type Session struct {
	phase    Phase
	master   []model.Entry
	active   []model.Entry
	unknown  []model.Entry
	position int

	resettable bool
	order      func([]model.Entry) []model.Entry
	id         string
	pass       int

	observers []Observer
	logger    *slog.Logger
}

// New constructs a session. Without WithPreset it starts in PhaseInput.
func New(opts ...Option) *Session {
	s := &Session{
		phase:  PhaseInput,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	return State{
		SessionID:  s.id,
		Pass:       s.pass,
		Phase:      s.phase,
		Position:   s.position,
		ActiveDeck: cloneEntries(s.active),
		MasterDeck: cloneEntries(s.master),
		Unknown:    cloneEntries(s.unknown),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Current returns the entry being reviewed, if any.
func (s *Session) Current() (model.Entry, bool) {
	if s.phase != PhaseStudying || s.position >= len(s.active) {
		return model.Entry{}, false
	}
	return s.active[s.position], true
}

// Progress returns the fraction of the active deck already reviewed.
func (s *Session) Progress() float64 {
	if len(s.active) == 0 {
		return 0
	}
	return float64(s.position) / float64(len(s.active))
}

// Summary derives the result of the current pass.
func (s *Session) Summary() Summary {
	return buildSummary(s.active, s.unknown)
}

// CanReset reports whether the Reset transition is available.
func (s *Session) CanReset() bool {
	return s.resettable
}

// Submit parses text and begins studying the resulting deck. When nothing
// parses it returns ErrNoEntries and the session stays in PhaseInput.
func (s *Session) Submit(text string) (State, error) {
	if s.phase != PhaseInput {
		return s.State(), nil
	}
	entries := wordlist.Parse(text)
	if len(entries) == 0 {
		s.logger.Debug("submitted text has no entries", "bytes", len(text))
		return s.State(), ErrNoEntries
	}
	if s.order != nil {
		entries = s.order(entries)
	}
	return s.Begin(entries)
}

// Begin starts a first pass over deck, replacing any previous deck.
func (s *Session) Begin(deck []model.Entry) (State, error) {
	if len(deck) == 0 {
		return s.State(), ErrNoEntries
	}
	s.master = cloneEntries(deck)
	s.pass = 0
	s.startPass(cloneEntries(deck))
	return s.transition("begin"), nil
}

// Start begins the preset deck. It is a no-op outside PhaseStart.
func (s *Session) Start() State {
	if s.phase != PhaseStart || len(s.master) == 0 {
		return s.State()
	}
	s.pass = 0
	s.startPass(cloneEntries(s.master))
	return s.transition("start")
}

// MarkKnown records the current entry as known and advances.
func (s *Session) MarkKnown() State {
	if s.phase != PhaseStudying {
		return s.State()
	}
	s.advance()
	return s.transition("known")
}

// MarkUnknown records the current entry as unknown and advances.
func (s *Session) MarkUnknown() State {
	if s.phase != PhaseStudying {
		return s.State()
	}
	if s.position < len(s.active) {
		s.unknown = append(s.unknown, s.active[s.position])
	}
	s.advance()
	return s.transition("unknown")
}

// Restart begins a new pass over the full original deck.
func (s *Session) Restart() State {
	if len(s.master) == 0 {
		return s.State()
	}
	s.startPass(cloneEntries(s.master))
	return s.transition("restart")
}

// StudyUnknownOnly begins a new pass over the entries marked unknown in the
// finished pass, in the order they were marked.
func (s *Session) StudyUnknownOnly() State {
	if s.phase != PhaseComplete {
		return s.State()
	}
	s.startPass(s.unknown)
	return s.transition("study-unknown")
}

// Reset clears every deck and returns to PhaseInput. It is a no-op unless
// the session was created WithReset.
func (s *Session) Reset() State {
	if !s.resettable {
		return s.State()
	}
	s.phase = PhaseInput
	s.master = nil
	s.active = nil
	s.unknown = nil
	s.position = 0
	s.pass = 0
	s.id = ""
	return s.transition("reset")
}

func (s *Session) startPass(deck []model.Entry) {
	s.active = deck
	s.unknown = nil
	s.position = 0
	s.phase = PhaseStudying
	s.pass++
	s.id = uuid.NewString()
}

func (s *Session) advance() {
	if s.position < len(s.active)-1 {
		s.position++
		return
	}
	s.phase = PhaseComplete
}

func (s *Session) transition(event string) State {
	state := s.State()
	s.logger.Debug("session transition",
		"event", event,
		"session_id", state.SessionID,
		"pass", state.Pass,
		"phase", state.Phase.String(),
		"position", state.Position,
	)
	if state.Phase == PhaseComplete && (event == "known" || event == "unknown") {
		summary := s.Summary()
		s.logger.Info("pass complete",
			"session_id", state.SessionID,
			"pass", state.Pass,
			"known", summary.Known,
			"total", summary.Total,
			"score_pct", summary.ScorePercent,
		)
	}
	for _, fn := range s.observers {
		fn(state)
	}
	return state
}

func cloneEntries(entries []model.Entry) []model.Entry {
	if entries == nil {
		return nil
	}
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	return out
}
