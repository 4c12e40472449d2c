package wordlist

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/verte-zerg/tuicard/internal/model"
)

// DefaultSection is assigned to entries that precede any section header.
const DefaultSection = 1

// Whitespace in both patterns also covers Unicode space separators, so
// non-breaking spaces from pasted text split like ordinary ones.
var (
	sectionPattern = regexp.MustCompile(`(?i)^section[\s\p{Z}]*\[?[\s\p{Z}]*(\d+)[\s\p{Z}]*\]?[\s\p{Z}]*$`)
	entryPattern   = regexp.MustCompile(`^(.+?)[\s\p{Z}]*[-\x{2014}\x{2013}][\s\p{Z}]*(.+)$`)
)

// Parse converts free-form text into vocabulary entries.
//
// Each non-blank line is either a section header ("Section 2", "SECTION [3]"),
// which sets the section for the entries that follow, or a "term - definition"
// line split at the first hyphen, en dash or em dash. Anything else is
// ignored. Parse never fails; text without usable lines yields an empty slice.
func Parse(text string) []model.Entry {
	entries := []model.Entry{}
	section := DefaultSection

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if n, ok := parseSectionHeader(line); ok {
			section = n
			continue
		}
		entry, ok := parseEntry(line)
		if !ok {
			continue
		}
		entry.Section = section
		entries = append(entries, entry)
	}
	return entries
}

func parseSectionHeader(line string) (int, bool) {
	match := sectionPattern.FindStringSubmatch(line)
	if match == nil {
		return 0, false
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseEntry(line string) (model.Entry, bool) {
	match := entryPattern.FindStringSubmatch(line)
	if match == nil {
		return model.Entry{}, false
	}
	term := strings.TrimSpace(match[1])
	definition := strings.TrimSpace(match[2])
	if term == "" || definition == "" {
		return model.Entry{}, false
	}
	return model.Entry{Term: term, Definition: definition}, true
}
