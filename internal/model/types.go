// Package model defines shared data structures.
package model

// Entry is a single vocabulary item parsed from a word list.
type Entry struct {
	Term       string
	Definition string
	Section    int
}

// Config defines study settings.
type Config struct {
	Shuffle bool
	Seed    int64
}
