// Package main provides the entry point for the quill CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/quillcv/quill/internal/cv"
	"github.com/quillcv/quill/internal/mcp"
	"github.com/quillcv/quill/internal/output"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var refreshFlag bool
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "List resolved entries without rendering",
		Long: `List the resolved CV entries per section, sorted newest first, without
touching the template or the output file.

Examples:
  quill preview             # Show entries, using cache when fresh
  quill preview --refresh   # Force a Notion fetch first
  quill preview --json      # Output sections as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, refreshFlag)
		},
	}
	cmd.Flags().BoolVar(&refreshFlag, "refresh", false, "Bypass the cache and fetch fresh data")
	return cmd
}

// previewSection holds one section's rows for JSON output.
type previewSection struct {
	Name    string         `json:"name"`
	Long    bool           `json:"long"`
	Entries []previewEntry `json:"entries"`
}

// previewEntry is one row of the preview table.
type previewEntry struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
	Dates        string `json:"dates,omitempty"`
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, refresh bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	pipe, err := newPipeline(configFlag(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	groups, cats, fromCache, err := pipe.Groups(cmd.Context(), refresh)
	if err != nil {
		printer.Error(err)
		return err
	}

	sections := collectPreview(groups, cats)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"sections":   sections,
			"from_cache": fromCache,
		})
	}

	for _, section := range sections {
		printer.Section(section.Name)
		rows := make([][]string, 0, len(section.Entries))
		for _, e := range section.Entries {
			rows = append(rows, []string{e.Name, e.Organization, e.Location, e.Dates})
		}
		printer.Table([]string{"Name", "Organization", "Location", "Dates"}, rows)
	}
	if fromCache {
		printer.Stderr("\n(from cache; use --refresh to fetch)\n")
	}
	return nil
}

// collectPreview flattens sorted groups into display-ordered sections.
func collectPreview(groups cv.Groups, cats cv.Categories) []previewSection {
	var sections []previewSection
	for _, name := range cats.Ordered(groups) {
		entries := groups[name]
		if len(entries) == 0 {
			continue
		}
		section := previewSection{Name: name, Long: cats.IsLong(name)}
		for _, e := range entries {
			section.Entries = append(section.Entries, previewEntry{
				Name:         e.Name,
				Organization: e.Organization,
				Location:     e.Location,
				Dates:        mcp.DateRange(e),
			})
		}
		sections = append(sections, section)
	}
	return sections
}
