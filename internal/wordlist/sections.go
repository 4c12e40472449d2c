package wordlist

import (
	"sort"

	"github.com/verte-zerg/tuicard/internal/model"
)

// Sections returns the distinct section numbers of entries in ascending order.
func Sections(entries []model.Entry) []int {
	seen := map[int]struct{}{}
	out := make([]int, 0)
	for _, entry := range entries {
		if _, ok := seen[entry.Section]; ok {
			continue
		}
		seen[entry.Section] = struct{}{}
		out = append(out, entry.Section)
	}
	sort.Ints(out)
	return out
}

// GroupBySection buckets entries by section, keeping their relative order.
// Groups are returned in ascending section order.
func GroupBySection(entries []model.Entry) []Group {
	buckets := map[int][]model.Entry{}
	for _, entry := range entries {
		buckets[entry.Section] = append(buckets[entry.Section], entry)
	}
	groups := make([]Group, 0, len(buckets))
	for _, section := range Sections(entries) {
		groups = append(groups, Group{Section: section, Entries: buckets[section]})
	}
	return groups
}

// Group is a run of entries sharing a section number.
type Group struct {
	Section int
	Entries []model.Entry
}
