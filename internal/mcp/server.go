// Package mcp provides a Model Context Protocol server for quill.
// It exposes the CV pipeline as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quillcv/quill/internal/cv"
)

// Status describes the pipeline configuration and cache state.
type Status struct {
	Configured bool   // token and database id present
	Template   string // template file path
	OutFile    string // output file path
	CachePath  string // cache snapshot path
	CacheTTL   string // freshness window
	CacheFresh bool   // snapshot exists and is within the window
}

// Result summarizes a completed build.
type Result struct {
	OutFile   string
	Sections  int
	Entries   int
	FromCache bool
}

// Pipeline is the seam between the MCP tools and the CLI's build logic.
type Pipeline interface {
	Status(ctx context.Context) (Status, error)
	Groups(ctx context.Context, refresh bool) (cv.Groups, cv.Categories, bool, error)
	Render(ctx context.Context, refresh bool) (Result, error)
}

// NewServer creates an MCP server with all quill tools registered.
func NewServer(version string, pipe Pipeline) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "quill",
		Version: version,
	}, nil)
	registerTools(server, pipe)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// buildAnnotations returns annotations for the build tool, which writes the
// output file and refreshes the cache but destroys nothing.
func buildAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true), // reaches the Notion API on cache miss
	}
}

// registerTools adds all quill tools to the server.
func registerTools(server *mcp.Server, pipe Pipeline) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show pipeline configuration and cache state: template, output path, cache freshness.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(pipe))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "List the resolved CV entries per section, sorted newest first, without rendering the document.",
		Annotations: readOnlyAnnotations(),
	}, handlePreview(pipe))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build",
		Description: "Render the LaTeX CV: fetch from Notion (or the cache), sort, and write the output file.",
		Annotations: buildAnnotations(),
	}, handleBuild(pipe))
}
