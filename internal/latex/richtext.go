package latex

import (
	"fmt"

	"github.com/quillcv/quill/internal/notion"
)

// RichText renders a span sequence to LaTeX. Each span is rendered
// independently of its neighbors; adjacent spans are never merged.
//
// Wrapping order is fixed, outermost to innermost:
// link, monospace, bold, italic, underline, strikethrough.
// The literal text is escaped before any wrapping is applied.
func RichText(spans []notion.RichText) string {
	var out string
	for _, span := range spans {
		out += renderSpan(span)
	}
	return out
}

// renderSpan renders one span. Wraps are applied innermost-first so the
// last applied construct ends up outermost.
func renderSpan(span notion.RichText) string {
	t := Escape(span.PlainText)
	ann := span.Annotations
	if ann.Strikethrough {
		t = fmt.Sprintf(`\sout{%s}`, t)
	}
	if ann.Underline {
		t = fmt.Sprintf(`\uline{%s}`, t)
	}
	if ann.Italic {
		t = fmt.Sprintf(`\textit{%s}`, t)
	}
	if ann.Bold {
		t = fmt.Sprintf(`\textbf{%s}`, t)
	}
	if ann.Code {
		t = fmt.Sprintf(`\texttt{%s}`, t)
	}
	if span.Href != "" {
		t = fmt.Sprintf(`\href{%s}{%s}`, span.Href, t)
	}
	return t
}
