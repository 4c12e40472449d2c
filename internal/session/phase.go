package session

import (
	"encoding"
	"fmt"
)

// Phase is the screen-level state of a study session.
type Phase int

const (
	PhaseInput    Phase = iota // Waiting for a pasted word list.
	PhaseStart                 // Deck known up front, waiting to begin.
	PhaseStudying              // One entry shown at a time.
	PhaseComplete              // Pass finished, summary shown.
)

var phaseNames = [...]string{
	PhaseInput:    "input",
	PhaseStart:    "start",
	PhaseStudying: "studying",
	PhaseComplete: "complete",
}

var (
	_ fmt.Stringer           = Phase(0)
	_ encoding.TextMarshaler = Phase(0)
)

// String returns the lowercase phase name, or "Phase(n)" for invalid values.
func (p Phase) String() string {
	if p.IsValid() {
		return phaseNames[p]
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// IsValid reports whether p is a known phase.
func (p Phase) IsValid() bool {
	return p >= PhaseInput && p <= PhaseComplete
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("session: invalid phase %d", int(p))
	}
	return []byte(phaseNames[p]), nil
}
