package session

import "errors"

// ErrNoEntries is returned when a deck or submitted text holds no usable entries.
// Use errors.Is to check: errors.Is(err, session.ErrNoEntries)
var ErrNoEntries = errors.New("session: no words found")

// NoEntriesMessage is the validation message shown for ErrNoEntries.
const NoEntriesMessage = "No words found. Make sure each word follows the format: word - definition"
