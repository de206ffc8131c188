package cv

import (
	"strings"

	"github.com/quillcv/quill/internal/notion"
)

// Sentinel heading texts, compared case-insensitively after trimming.
const (
	sentinelStart = "for resume"
	sentinelStop  = "not for resume"
)

// FilterResumeRegion trims a top-level block sequence to the portion that
// belongs on the CV. A level-1 heading "For Resume" starts the inclusion
// region and drops everything seen before it; "Not For Resume" ends
// processing entirely — blocks after it are never inspected, so a later
// "For Resume" cannot re-enable inclusion. With no sentinels at all, every
// block is included. The sentinel headings themselves are never emitted.
func FilterResumeRegion(blocks []notion.Block) []notion.Block {
	var filtered []notion.Block
	inRegion := false

	for _, b := range blocks {
		if b.Type == notion.TypeHeading1 {
			switch headingText(&b) {
			case sentinelStart:
				if !inRegion {
					// Blocks before the region start sit outside it.
					filtered = nil
				}
				inRegion = true
				continue
			case sentinelStop:
				return filtered
			}
		}
		filtered = append(filtered, b)
	}
	return filtered
}

// headingText returns the heading's plain text, trimmed and lowercased for
// sentinel comparison.
func headingText(b *notion.Block) string {
	return strings.ToLower(strings.TrimSpace(notion.PlainText(b.Text())))
}
