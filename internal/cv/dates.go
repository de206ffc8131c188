package cv

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// months is the fixed abbreviation table used for display and sorting.
var months = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// presentToken marks an open-ended range, matched case-insensitively.
const presentToken = "present"

// rangeSeparator is the canonical start/end separator after dash
// normalization.
const rangeSeparator = " -- "

// dateLayouts are the ISO-8601 shapes Notion emits for date properties.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"}

// FormatDate converts an ISO-8601 date or date-time string into
// "MonthAbbrev Year". Unparsable input is returned as-is rather than
// erroring; empty input yields "".
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return months[t.Month()-1] + " " + strconv.Itoa(t.Year())
		}
	}
	return iso
}

// DateKey orders display dates by (year, month). "present" sorts after
// every concrete year/month; unparsable strings collapse to the zero key,
// a deliberate sink so malformed entries gather at one end of a sort
// instead of erroring.
type DateKey struct {
	Year  int
	Month int
}

// presentKey sorts after every concrete date.
var presentKey = DateKey{Year: 9999, Month: 12}

// Before reports whether k orders strictly earlier than other.
func (k DateKey) Before(other DateKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// ParseDateKey parses a display string of the form "MonthAbbrev Year" or
// the literal "present" into a sortable key. A recognizable year with an
// unknown month keeps the year and zeroes the month; anything else is the
// zero key.
func ParseDateKey(display string) DateKey {
	display = strings.TrimSpace(display)
	if strings.EqualFold(display, presentToken) {
		return presentKey
	}

	parts := strings.Fields(display)
	if len(parts) != 2 {
		return DateKey{}
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return DateKey{}
	}

	key := DateKey{Year: year}
	for i, m := range months {
		if m == parts[0] {
			key.Month = i + 1
			break
		}
	}
	return key
}

// ResolveDateRange produces the display start and end dates for an entry,
// plus the trimmed raw override when one was supplied. A non-blank override
// is authoritative: start and end are derived from parsing it and the
// structured dates are ignored. Otherwise each structured date is formatted
// independently and the override slot stays empty.
func ResolveDateRange(structStart, structEnd, override string) (start, end, display string) {
	trimmed := strings.TrimSpace(override)
	if trimmed != "" {
		start, end = ParseOverride(trimmed)
		return start, end, trimmed
	}
	return FormatDate(structStart), FormatDate(structEnd), ""
}

// ParseOverride extracts the resolved (start, end) pair from free-text
// override syntax. Em and en dashes are normalized to the canonical
// double-hyphen separator first. Comma-separated text holds multiple
// ranges; a single separator splits once; text with no separator at all is
// a start-only date, not an error.
func ParseOverride(text string) (start, end string) {
	normalized := normalizeDashes(strings.TrimSpace(text))
	if strings.Contains(normalized, ",") {
		return resolveMultiRange(normalized)
	}
	if s, e, ok := strings.Cut(normalized, rangeSeparator); ok {
		return strings.TrimSpace(s), strings.TrimSpace(e)
	}
	return normalized, ""
}

// dashSeparator matches an em or en dash together with any surrounding
// spaces, so "Jan 2020–Dec 2021" splits the same as "Jan 2020 – Dec 2021".
var dashSeparator = regexp.MustCompile(`\s*[—–]\s*`)

// normalizeDashes rewrites em and en dash range separators as " -- ".
func normalizeDashes(s string) string {
	return dashSeparator.ReplaceAllString(s, rangeSeparator)
}

// resolveMultiRange resolves comma-delimited ranges to the earliest start
// and the latest end by year/month ordering. "present" outranks every
// concrete end, so an open-ended range wins. Sub-ranges missing the
// separator are discarded; if nothing survives, the whole text degrades to
// a start-only value.
func resolveMultiRange(normalized string) (start, end string) {
	found := false
	for _, part := range strings.Split(normalized, ",") {
		s, e, ok := strings.Cut(part, rangeSeparator)
		if !ok {
			continue
		}
		s, e = strings.TrimSpace(s), strings.TrimSpace(e)
		if !found {
			start, end = s, e
			found = true
			continue
		}
		if ParseDateKey(s).Before(ParseDateKey(start)) {
			start = s
		}
		if ParseDateKey(end).Before(ParseDateKey(e)) {
			end = e
		}
	}
	if !found {
		return normalized, ""
	}
	return start, end
}
