package latex

import (
	"fmt"
	"strings"

	"github.com/quillcv/quill/internal/notion"
)

// Mode selects how ConvertBlocks emits its output units.
type Mode string

const (
	// ModeItems prefixes every unit with \item and flattens list runs to
	// top-level items. Meant for embedding inside an existing list-like
	// environment.
	ModeItems Mode = "items"

	// ModeParagraphs emits paragraph-like units as-is and wraps list runs
	// in complete itemize/enumerate environments.
	ModeParagraphs Mode = "paragraphs"
)

// ConvertBlocks renders an already-filtered block sequence to LaTeX.
// One unit of output per block, or per run of same-kind list blocks, joined
// by newlines. Headings and unknown kinds are skipped; units whose rendered
// text is empty after trimming are dropped. The function is total: malformed
// block shapes degrade to no output, never an error.
func ConvertBlocks(blocks []notion.Block, mode Mode) string {
	var out []string
	i := 0
	for i < len(blocks) {
		b := blocks[i]

		if text, ok := renderParagraphLike(&b); ok {
			if strings.TrimSpace(text) != "" {
				if mode == ModeItems {
					out = append(out, `\item `+text)
				} else {
					out = append(out, text)
				}
			}
			i++
			continue
		}

		if b.IsListItem() {
			runType := b.Type
			j := i + 1
			for j < len(blocks) && blocks[j].Type == runType {
				j++
			}
			run := blocks[i:j]
			if mode == ModeItems {
				for k := range run {
					out = append(out, renderListItem(&run[k], mode))
				}
			} else {
				env := listEnv(runType)
				out = append(out, fmt.Sprintf(`\begin{%s}`, env))
				for k := range run {
					out = append(out, renderListItem(&run[k], mode))
				}
				out = append(out, fmt.Sprintf(`\end{%s}`, env))
			}
			i = j
			continue
		}

		// Headings are region-filter sentinels, never rendered content.
		// Anything else is an unsupported kind; skip without error.
		i++
	}
	return strings.Join(out, "\n")
}

// renderParagraphLike renders paragraph, quote, equation, and code blocks.
// The second return value is false for any other kind.
func renderParagraphLike(b *notion.Block) (string, bool) {
	switch b.Type {
	case notion.TypeParagraph:
		return RichText(b.Text()), true
	case notion.TypeQuote:
		return fmt.Sprintf(`\begin{quote}%s\end{quote}`, RichText(b.Text())), true
	case notion.TypeEquation:
		expr := ""
		if b.Equation != nil {
			expr = b.Equation.Expression
		}
		return fmt.Sprintf(`$ %s $`, Escape(expr)), true
	case notion.TypeCode:
		return "\\begin{verbatim}\n" + RichText(b.Text()) + "\n\\end{verbatim}", true
	}
	return "", false
}

// renderListItem renders one list item and its nested children.
// List-typed children become a nested environment keyed off the first
// list-typed child; mixed kinds are not expected, so that first item
// decides the environment for all of them. Non-list children render through
// the converter in paragraph mode and trail under the item.
func renderListItem(b *notion.Block, mode Mode) string {
	body := `\item ` + RichText(b.Text())
	if len(b.Children) == 0 {
		return body
	}

	var items []notion.Block
	for _, c := range b.Children {
		if c.IsListItem() {
			items = append(items, c)
		}
	}

	if len(items) > 0 {
		env := listEnv(items[0].Type)
		inner := []string{fmt.Sprintf(`\begin{%s}`, env)}
		for k := range items {
			inner = append(inner, renderListItem(&items[k], mode))
		}
		inner = append(inner, fmt.Sprintf(`\end{%s}`, env))
		return body + "\n" + strings.Join(inner, "\n")
	}

	if para := ConvertBlocks(b.Children, ModeParagraphs); strings.TrimSpace(para) != "" {
		return body + "\n" + para
	}
	return body
}

// listEnv maps a list block kind to its LaTeX environment.
func listEnv(blockType string) string {
	if blockType == notion.TypeNumberedItem {
		return "enumerate"
	}
	return "itemize"
}
