// Package main provides the entry point for the quill CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/quillcv/quill/internal/output"
)

// buildFlags holds the build command's flag values.
type buildFlags struct {
	refresh  bool
	template string
	out      string
}

// newBuildCmd creates the build command.
func newBuildCmd() *cobra.Command {
	var flags buildFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the LaTeX CV",
		Long: `Fetch the CV entries from Notion (or the local cache), convert them to
LaTeX, fill the template, and write the output file.

The Notion snapshot is cached; a rebuild within the freshness window skips
the network entirely. Use --refresh to force a fetch.

Examples:
  quill build                       # Render using cache when fresh
  quill build --refresh             # Force a Notion fetch
  quill build --template my.tex     # Use a different template
  quill build --json                # Output build summary as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "Bypass the cache and fetch fresh data")
	cmd.Flags().StringVar(&flags.template, "template", "", "Template file (overrides config)")
	cmd.Flags().StringVar(&flags.out, "out", "", "Output file (overrides config)")
	return cmd
}

// runBuild executes the build command.
func runBuild(cmd *cobra.Command, flags buildFlags) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	pipe, err := newPipeline(configFlag(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}
	if flags.template != "" {
		pipe.cfg.Template = flags.template
	}
	if flags.out != "" {
		pipe.cfg.OutFile = flags.out
	}

	result, err := pipe.Render(cmd.Context(), flags.refresh)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"out_file":   result.OutFile,
			"sections":   result.Sections,
			"entries":    result.Entries,
			"from_cache": result.FromCache,
		})
	}

	source := "Notion"
	if result.FromCache {
		source = "cache"
	}
	printer.Print("Wrote %s (%d sections, %d entries, from %s)\n",
		result.OutFile, result.Sections, result.Entries, source)
	return nil
}
