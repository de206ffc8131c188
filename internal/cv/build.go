package cv

import (
	"context"

	"github.com/quillcv/quill/internal/latex"
	"github.com/quillcv/quill/internal/notion"
)

// Source supplies pages and materialized block trees. The production
// implementation is notion.Source; tests inject fakes.
type Source interface {
	Pages(ctx context.Context) ([]notion.Page, error)
	Blocks(ctx context.Context, pageID string) ([]notion.Block, error)
}

// PropertyNames maps CV fields to the database's property names.
type PropertyNames struct {
	Title        string `yaml:"title"`
	Organization string `yaml:"organization"`
	Location     string `yaml:"location"`
	Category     string `yaml:"category"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date"`
	DateOverride string `yaml:"date_override"`
	Visible      string `yaml:"visible"`
}

// DefaultPropertyNames returns the conventional database schema.
func DefaultPropertyNames() PropertyNames {
	return PropertyNames{
		Title:        "Title",
		Organization: "Organization",
		Location:     "Location",
		Category:     "Type",
		StartDate:    "Start Date",
		EndDate:      "End Date",
		DateOverride: "Dates (CV)",
		Visible:      "Show on CV?",
	}
}

// fallbackCategory groups pages with no category property.
const fallbackCategory = "Other"

// Build fetches every visible page, renders its body, resolves its date
// range, and groups the resulting entries by category in fetch order.
// Callers run SortGroups afterwards; the split keeps cached snapshots
// valid sorter input without re-deriving anything.
func Build(ctx context.Context, src Source, props PropertyNames, cats Categories) (Groups, error) {
	pages, err := src.Pages(ctx)
	if err != nil {
		return nil, err
	}

	groups := Groups{}
	for _, page := range pages {
		// The production query filters on the visible checkbox, but the
		// Source contract does not require pre-filtering. A row whose
		// checkbox reads false is skipped here too; rows without the
		// property pass through.
		if _, ok := page.Properties[props.Visible]; ok && !notion.CheckboxValue(page.Properties, props.Visible) {
			continue
		}
		entry, err := buildEntry(ctx, src, &page, props, cats)
		if err != nil {
			return nil, err
		}
		groups[entry.Category] = append(groups[entry.Category], entry)
	}
	return groups, nil
}

// buildEntry derives one CV entry from a page and its block tree.
func buildEntry(ctx context.Context, src Source, page *notion.Page, props PropertyNames, cats Categories) (*Entry, error) {
	category := notion.TextValue(page.Properties, props.Category)
	if category == "" {
		category = fallbackCategory
	}

	blocks, err := src.Blocks(ctx, page.ID)
	if err != nil {
		return nil, err
	}

	mode := latex.ModeParagraphs
	if cats.IsLong(category) {
		mode = latex.ModeItems
	}
	body := latex.ConvertBlocks(FilterResumeRegion(blocks), mode)

	start, end, display := ResolveDateRange(
		notion.DateStart(page.Properties, props.StartDate),
		notion.DateStart(page.Properties, props.EndDate),
		notion.TextValue(page.Properties, props.DateOverride),
	)

	return &Entry{
		Name:         notion.TextValue(page.Properties, props.Title),
		Organization: notion.TextValue(page.Properties, props.Organization),
		Location:     notion.TextValue(page.Properties, props.Location),
		Category:     category,
		StartDate:    optString(start),
		EndDate:      optString(end),
		DateDisplay:  optString(display),
		Body:         body,
	}, nil
}
