// Package main provides the entry point for the quill CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/quillcv/quill/internal/output"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and cache state",
		Long: `Show the resolved configuration: whether credentials are set, which
template and output paths are in use, and whether the cache snapshot is
fresh.

Examples:
  quill status          # Show human-readable status
  quill status --json   # Output status as JSON for scripting`,
		RunE: runStatus,
	}
}

// runStatus executes the status command.
func runStatus(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	pipe, err := newPipeline(configFlag(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	st, err := pipe.Status(cmd.Context())
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"configured":  st.Configured,
			"template":    st.Template,
			"out_file":    st.OutFile,
			"cache_path":  st.CachePath,
			"cache_ttl":   st.CacheTTL,
			"cache_fresh": st.CacheFresh,
		})
	}

	printer.Section("Configuration")
	printer.KeyValue("Credentials", formatBool(st.Configured))
	printer.KeyValue("Template", st.Template)
	printer.KeyValue("Output", st.OutFile)

	printer.Section("Cache")
	printer.KeyValue("Snapshot", st.CachePath)
	printer.KeyValue("TTL", st.CacheTTL)
	printer.KeyValue("Fresh", formatBool(st.CacheFresh))

	if !st.Configured {
		printer.Warn("NOTION_TOKEN and NOTION_DATABASE_ID are not set; builds will only work from the cache")
	}
	return nil
}

// formatBool returns a human-readable boolean string.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
