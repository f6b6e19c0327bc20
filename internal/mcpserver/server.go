// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the schema explorer as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemalens"
	"github.com/erraggy/schemalens/explorer"
	"github.com/erraggy/schemalens/store"
)

const serverInstructions = `schemalens MCP server — browses a single AsyncAPI/OpenAPI schema document.

The document is loaded once at startup from the path given on the command line.

Tools:
- schema_get: full de-referenced attribute tree for one schema, with references / referencedBy edges
- schema_tree: list every schema as a lightweight node (id, display text, tag, type, field type)
- schema_search: case-insensitive substring search across name/title/description/tag/field-type
- schema_versions: distinct x-since-version markers, version-aware sorted

Reference expansion is bounded: two named-schema hops expand, deeper references collapse
into "(ref) Name" placeholders, and cycles are annotated with their full back-reference path.`

// Server holds the loaded document and its query surface for the session.
type Server struct {
	explorer *explorer.Explorer
}

// Run loads the document at docPath, then serves the MCP protocol over stdio
// until the client disconnects or the context is cancelled.
func Run(ctx context.Context, docPath string) error {
	st, err := store.Load(store.WithFilePath(docPath))
	if err != nil {
		return err
	}

	s := &Server{explorer: explorer.New(st)}
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schemalens", Version: schemalens.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	s.registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_get",
		Description: "Get the fully de-referenced attribute tree for one named schema, augmented with references, referencedBy, and a relationship summary. Expansion is depth-bounded; collapsed references appear as '(ref) Name' leaves and cycles carry their full back-reference path in the description.",
	}, s.handleSchemaGet)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_tree",
		Description: "List every schema in the document as a lightweight node (id, display text, tag, type, field type), sorted by display text. Use this first to discover schema names.",
	}, s.handleSchemaTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_search",
		Description: "Search schemas by case-insensitive substring across name, title, description, tag, and field type. Returns matching ids and display texts.",
	}, s.handleSchemaSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_versions",
		Description: "Enumerate the distinct x-since-version markers across all schemas (plus the document-level info.version), sorted with a version-aware comparator.",
	}, s.handleSchemaVersions)
}

// errResult wraps an error as a tool-level failure result.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
