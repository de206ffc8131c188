package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quillcv/quill/internal/cv"
)

// --- Status tool ---

// StatusInput is the input for the status tool (no parameters needed).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	Configured bool   `json:"configured"  jsonschema:"whether NOTION_TOKEN and NOTION_DATABASE_ID are set"`
	Template   string `json:"template"    jsonschema:"template file path"`
	OutFile    string `json:"out_file"    jsonschema:"output file path"`
	CachePath  string `json:"cache_path"  jsonschema:"cache snapshot path"`
	CacheTTL   string `json:"cache_ttl"   jsonschema:"cache freshness window"`
	CacheFresh bool   `json:"cache_fresh" jsonschema:"whether the cache snapshot is fresh"`
}

func handleStatus(pipe Pipeline) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		st, err := pipe.Status(ctx)
		if err != nil {
			return nil, StatusOutput{}, fmt.Errorf("getting status: %w", err)
		}
		return nil, StatusOutput{
			Configured: st.Configured,
			Template:   st.Template,
			OutFile:    st.OutFile,
			CachePath:  st.CachePath,
			CacheTTL:   st.CacheTTL,
			CacheFresh: st.CacheFresh,
		}, nil
	}
}

// --- Preview tool ---

// PreviewInput is the input for the preview tool.
type PreviewInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"bypass the cache and fetch fresh data"`
}

// EntrySummary is a condensed entry for preview output.
type EntrySummary struct {
	Name         string `json:"name"                   jsonschema:"entry title"`
	Organization string `json:"organization,omitempty" jsonschema:"organization name"`
	Location     string `json:"location,omitempty"     jsonschema:"location"`
	Dates        string `json:"dates,omitempty"        jsonschema:"resolved date range"`
}

// SectionSummary is one CV section in display order.
type SectionSummary struct {
	Name    string         `json:"name"    jsonschema:"section name"`
	Long    bool           `json:"long"    jsonschema:"whether the section renders in compact-items mode"`
	Entries []EntrySummary `json:"entries" jsonschema:"entries sorted newest first"`
}

// PreviewOutput is the output for the preview tool.
type PreviewOutput struct {
	Sections  []SectionSummary `json:"sections"   jsonschema:"CV sections in display order"`
	FromCache bool             `json:"from_cache" jsonschema:"whether the data came from the cache snapshot"`
}

func handlePreview(pipe Pipeline) mcp.ToolHandlerFor[PreviewInput, PreviewOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
		groups, cats, fromCache, err := pipe.Groups(ctx, input.Refresh)
		if err != nil {
			return nil, PreviewOutput{}, fmt.Errorf("resolving entries: %w", err)
		}

		out := PreviewOutput{FromCache: fromCache}
		for _, name := range cats.Ordered(groups) {
			section := SectionSummary{Name: name, Long: cats.IsLong(name)}
			for _, e := range groups[name] {
				section.Entries = append(section.Entries, EntrySummary{
					Name:         e.Name,
					Organization: e.Organization,
					Location:     e.Location,
					Dates:        DateRange(e),
				})
			}
			out.Sections = append(out.Sections, section)
		}
		return nil, out, nil
	}
}

// --- Build tool ---

// BuildInput is the input for the build tool.
type BuildInput struct {
	Refresh bool `json:"refresh,omitempty" jsonschema:"bypass the cache and fetch fresh data"`
}

// BuildOutput is the output for the build tool.
type BuildOutput struct {
	OutFile   string `json:"out_file"   jsonschema:"path of the rendered LaTeX file"`
	Sections  int    `json:"sections"   jsonschema:"number of sections rendered"`
	Entries   int    `json:"entries"    jsonschema:"number of entries rendered"`
	FromCache bool   `json:"from_cache" jsonschema:"whether the data came from the cache snapshot"`
}

func handleBuild(pipe Pipeline) mcp.ToolHandlerFor[BuildInput, BuildOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BuildInput) (*mcp.CallToolResult, BuildOutput, error) {
		res, err := pipe.Render(ctx, input.Refresh)
		if err != nil {
			return nil, BuildOutput{}, fmt.Errorf("building CV: %w", err)
		}
		return nil, BuildOutput{
			OutFile:   res.OutFile,
			Sections:  res.Sections,
			Entries:   res.Entries,
			FromCache: res.FromCache,
		}, nil
	}
}

// DateRange formats an entry's resolved dates for display: the raw override
// verbatim when present, otherwise "start -- end" with absent sides dropped.
func DateRange(e *cv.Entry) string {
	if e.DateDisplay != nil && *e.DateDisplay != "" {
		return *e.DateDisplay
	}
	start, end := "", ""
	if e.StartDate != nil {
		start = *e.StartDate
	}
	if e.EndDate != nil {
		end = *e.EndDate
	}
	switch {
	case start != "" && end != "":
		return start + " -- " + end
	case start != "":
		return start
	default:
		return end
	}
}
