// Package notion provides a minimal client for the Notion REST API and the
// wire types the CV pipeline consumes: pages, property bags, and block trees.
package notion

// Annotations holds the inline style flags a rich text span can carry.
type Annotations struct {
	Bold          bool `json:"bold"`
	Italic        bool `json:"italic"`
	Underline     bool `json:"underline"`
	Strikethrough bool `json:"strikethrough"`
	Code          bool `json:"code"`
}

// RichText is a single annotated text span.
type RichText struct {
	PlainText   string      `json:"plain_text"`
	Href        string      `json:"href,omitempty"`
	Annotations Annotations `json:"annotations"`
}

// PlainText concatenates the raw text of a span sequence, ignoring annotations.
func PlainText(spans []RichText) string {
	var out string
	for _, span := range spans {
		out += span.PlainText
	}
	return out
}

// Block kind tags as they appear on the wire.
const (
	TypeParagraph    = "paragraph"
	TypeQuote        = "quote"
	TypeEquation     = "equation"
	TypeCode         = "code"
	TypeBulletedItem = "bulleted_list_item"
	TypeNumberedItem = "numbered_list_item"
	TypeHeading1     = "heading_1"
	TypeHeading2     = "heading_2"
	TypeHeading3     = "heading_3"
)

// TextPayload is the kind-specific payload shared by text-bearing blocks.
type TextPayload struct {
	RichText []RichText `json:"rich_text"`
}

// EquationPayload is the payload of an equation block.
type EquationPayload struct {
	Expression string `json:"expression"`
}

// Block is one content block from a page body. Only the payload matching
// Type is populated; the others stay nil. Children is filled in by
// ResolveChildren for blocks flagged HasChildren — the converter never
// fetches anything itself.
type Block struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	HasChildren bool   `json:"has_children"`

	Paragraph    *TextPayload     `json:"paragraph,omitempty"`
	Quote        *TextPayload     `json:"quote,omitempty"`
	Code         *TextPayload     `json:"code,omitempty"`
	Equation     *EquationPayload `json:"equation,omitempty"`
	BulletedItem *TextPayload     `json:"bulleted_list_item,omitempty"`
	NumberedItem *TextPayload     `json:"numbered_list_item,omitempty"`
	Heading1     *TextPayload     `json:"heading_1,omitempty"`
	Heading2     *TextPayload     `json:"heading_2,omitempty"`
	Heading3     *TextPayload     `json:"heading_3,omitempty"`

	Children []Block `json:"-"`
}

// Text returns the rich text spans for the block's own kind.
// Returns nil for kinds without a text payload (equations, unknown kinds).
func (b *Block) Text() []RichText {
	switch b.Type {
	case TypeParagraph:
		return payloadText(b.Paragraph)
	case TypeQuote:
		return payloadText(b.Quote)
	case TypeCode:
		return payloadText(b.Code)
	case TypeBulletedItem:
		return payloadText(b.BulletedItem)
	case TypeNumberedItem:
		return payloadText(b.NumberedItem)
	case TypeHeading1:
		return payloadText(b.Heading1)
	case TypeHeading2:
		return payloadText(b.Heading2)
	case TypeHeading3:
		return payloadText(b.Heading3)
	}
	return nil
}

func payloadText(p *TextPayload) []RichText {
	if p == nil {
		return nil
	}
	return p.RichText
}

// IsListItem reports whether the block is a bulleted or numbered list item.
func (b *Block) IsListItem() bool {
	return b.Type == TypeBulletedItem || b.Type == TypeNumberedItem
}

// SelectOption is the value of a select property.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is the value of a date property. Start is an ISO-8601 date or
// date-time string. Entry start and end come from two separate date
// properties, so the wire value's own end slot is not decoded.
type DateValue struct {
	Start string `json:"start"`
}

// Property is one entry of a page's property bag. Type selects which value
// field is meaningful; the extraction helpers in properties.go ignore
// anything that does not match.
type Property struct {
	Type     string        `json:"type"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Checkbox bool          `json:"checkbox"`
	Date     *DateValue    `json:"date,omitempty"`
}

// Page is one database row: an identifier plus its property bag.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}
