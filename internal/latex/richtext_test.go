package latex

import (
	"testing"

	"github.com/quillcv/quill/internal/notion"
)

func span(text string, ann notion.Annotations) notion.RichText {
	return notion.RichText{PlainText: text, Annotations: ann}
}

func TestRichText_SingleAnnotations(t *testing.T) {
	tests := []struct {
		name string
		span notion.RichText
		want string
	}{
		{"plain", span("hello", notion.Annotations{}), "hello"},
		{"bold", span("hello", notion.Annotations{Bold: true}), `\textbf{hello}`},
		{"italic", span("hello", notion.Annotations{Italic: true}), `\textit{hello}`},
		{"underline", span("hello", notion.Annotations{Underline: true}), `\uline{hello}`},
		{"strikethrough", span("hello", notion.Annotations{Strikethrough: true}), `\sout{hello}`},
		{"code", span("ls -la", notion.Annotations{Code: true}), `\texttt{ls -la}`},
		{
			"link",
			notion.RichText{PlainText: "site", Href: "https://example.com"},
			`\href{https://example.com}{site}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RichText([]notion.RichText{tt.span}); got != tt.want {
				t.Errorf("RichText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRichText_NestingOrder(t *testing.T) {
	tests := []struct {
		name string
		span notion.RichText
		want string
	}{
		{
			"bold wraps italic",
			span("x", notion.Annotations{Bold: true, Italic: true}),
			`\textbf{\textit{x}}`,
		},
		{
			"italic wraps underline",
			span("x", notion.Annotations{Italic: true, Underline: true}),
			`\textit{\uline{x}}`,
		},
		{
			"underline wraps strikethrough",
			span("x", notion.Annotations{Underline: true, Strikethrough: true}),
			`\uline{\sout{x}}`,
		},
		{
			"code wraps bold",
			span("x", notion.Annotations{Code: true, Bold: true}),
			`\texttt{\textbf{x}}`,
		},
		{
			"everything at once",
			span("x", notion.Annotations{
				Bold: true, Italic: true, Underline: true, Strikethrough: true, Code: true,
			}),
			`\texttt{\textbf{\textit{\uline{\sout{x}}}}}`,
		},
		{
			"link outermost over code and bold",
			notion.RichText{
				PlainText:   "x",
				Href:        "https://example.com",
				Annotations: notion.Annotations{Code: true, Bold: true},
			},
			`\href{https://example.com}{\texttt{\textbf{x}}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RichText([]notion.RichText{tt.span}); got != tt.want {
				t.Errorf("RichText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRichText_EscapesBeforeWrapping(t *testing.T) {
	got := RichText([]notion.RichText{
		span("R&D", notion.Annotations{Bold: true}),
	})
	want := `\textbf{R\&D}`
	if got != want {
		t.Errorf("RichText() = %q, want %q", got, want)
	}
}

func TestRichText_LinkURLNotEscaped(t *testing.T) {
	// URLs live in the \href address slot, which takes them verbatim.
	got := RichText([]notion.RichText{
		{PlainText: "docs", Href: "https://example.com/a_b#c"},
	})
	want := `\href{https://example.com/a_b#c}{docs}`
	if got != want {
		t.Errorf("RichText() = %q, want %q", got, want)
	}
}

func TestRichText_ConcatenatesSpansIndependently(t *testing.T) {
	got := RichText([]notion.RichText{
		span("plain ", notion.Annotations{}),
		span("bold", notion.Annotations{Bold: true}),
		span(" tail", notion.Annotations{}),
	})
	want := `plain \textbf{bold} tail`
	if got != want {
		t.Errorf("RichText() = %q, want %q", got, want)
	}
}

func TestRichText_AdjacentIdenticalSpansNotMerged(t *testing.T) {
	got := RichText([]notion.RichText{
		span("one", notion.Annotations{Bold: true}),
		span("two", notion.Annotations{Bold: true}),
	})
	want := `\textbf{one}\textbf{two}`
	if got != want {
		t.Errorf("RichText() = %q, want %q", got, want)
	}
}

func TestRichText_Empty(t *testing.T) {
	if got := RichText(nil); got != "" {
		t.Errorf("RichText(nil) = %q, want empty", got)
	}
}
