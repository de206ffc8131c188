// Package cv builds, filters, dates, and orders CV entries derived from
// Notion database pages.
package cv

import "sort"

// Entry is one derived CV record. It is produced once per source page and
// never mutated afterward, except for being placed into a sorted sequence.
// Nil date pointers serialize as JSON null, matching cached snapshots.
type Entry struct {
	Name         string  `json:"name"`
	Organization string  `json:"organization"`
	Location     string  `json:"location"`
	Category     string  `json:"category"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	DateDisplay  *string `json:"date_display"`
	Body         string  `json:"body"`
}

// Groups maps a category name to its ordered entries. Order is fetch order
// until SortGroups replaces it with date order.
type Groups map[string][]*Entry

// Categories holds the two fixed rendering-mode subsets. Long-form
// categories render entry bodies as compact items for embedding inside an
// existing list environment; short-form (and anything unlisted) render as
// self-contained paragraphs.
type Categories struct {
	Long  []string `yaml:"long"`
	Short []string `yaml:"short"`
}

// DefaultCategories returns the standard CV section split.
func DefaultCategories() Categories {
	return Categories{
		Long:  []string{"Work Experience", "Leadership and Other Experience", "Projects"},
		Short: []string{"Education", "Awards", "Publications"},
	}
}

// IsLong reports whether the category renders in compact-items mode.
func (c Categories) IsLong(name string) bool {
	for _, long := range c.Long {
		if long == name {
			return true
		}
	}
	return false
}

// Ordered returns the category display order: long-form first, then
// short-form, then any remaining keys of groups in sorted order.
func (c Categories) Ordered(groups Groups) []string {
	seen := make(map[string]bool)
	var ordered []string
	for _, name := range append(append([]string{}, c.Long...), c.Short...) {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := groups[name]; ok {
			ordered = append(ordered, name)
		}
	}
	var rest []string
	for name := range groups {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

// optString returns nil for empty strings so absent values serialize as null.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// strOrEmpty dereferences an optional string.
func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
