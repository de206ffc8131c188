package cv

import (
	"sort"
	"strings"
)

// SortEntries returns a new sequence ordered descending by effective date
// key: newest first, undated entries last. The sort is stable, so entries
// with equal keys keep their original relative order.
func SortEntries(entries []*Entry) []*Entry {
	sorted := make([]*Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[j]).Before(sortKey(sorted[i]))
	})
	return sorted
}

// SortGroups sorts every category's entries, replacing fetch order with
// date order. Cached snapshots pass through here unchanged otherwise.
func SortGroups(groups Groups) Groups {
	for category, entries := range groups {
		groups[category] = SortEntries(entries)
	}
	return groups
}

// sortKey derives the effective ordering key for one entry. A raw override
// is authoritative: its latest end (falling back to its earliest start) is
// re-derived from the override text with the same multi-range logic used
// at resolution time. Otherwise the end date, then the start date, then
// the zero-key sink.
func sortKey(e *Entry) DateKey {
	if display := strings.TrimSpace(strOrEmpty(e.DateDisplay)); display != "" {
		start, end := ParseOverride(display)
		if end != "" {
			return ParseDateKey(end)
		}
		return ParseDateKey(start)
	}
	if end := strOrEmpty(e.EndDate); end != "" {
		return ParseDateKey(end)
	}
	return ParseDateKey(strOrEmpty(e.StartDate))
}
