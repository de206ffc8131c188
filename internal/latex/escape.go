// Package latex converts Notion content blocks and rich text spans into
// LaTeX source text.
package latex

import "strings"

// escapes maps LaTeX-reserved runes to their literal-rendering sequences.
// Input is always raw text, so a single pass over runes is sufficient;
// already-escaped sequences never occur.
var escapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'#':  `\#`,
	'%':  `\%`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
}

// Escape replaces every LaTeX-reserved character in text with its escape
// sequence. Unrecognized characters pass through unchanged; empty input
// yields empty output.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := escapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
