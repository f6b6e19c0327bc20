package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/schemalens/explorer"
	"github.com/erraggy/schemalens/resolver"
)

type schemaGetInput struct {
	Name string `json:"name" jsonschema:"The schema name (the key under components.schemas)"`
}

type schemaGetOutput struct {
	Schema *resolver.ResolvedSchema `json:"schema"`
}

func (s *Server) handleSchemaGet(_ context.Context, _ *mcp.CallToolRequest, input schemaGetInput) (*mcp.CallToolResult, schemaGetOutput, error) {
	detail, err := s.explorer.Describe(input.Name)
	if err != nil {
		return errResult(err), schemaGetOutput{}, nil
	}
	return nil, schemaGetOutput{Schema: detail}, nil
}

type schemaTreeInput struct{}

type schemaTreeOutput struct {
	Count   int             `json:"count"`
	Schemas []explorer.Node `json:"schemas"`
}

func (s *Server) handleSchemaTree(_ context.Context, _ *mcp.CallToolRequest, _ schemaTreeInput) (*mcp.CallToolResult, schemaTreeOutput, error) {
	nodes := s.explorer.Tree()
	return nil, schemaTreeOutput{Count: len(nodes), Schemas: nodes}, nil
}

type schemaSearchInput struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring to search for"`
}

type schemaSearchOutput struct {
	Count   int                     `json:"count"`
	Results []explorer.SearchResult `json:"results"`
}

func (s *Server) handleSchemaSearch(_ context.Context, _ *mcp.CallToolRequest, input schemaSearchInput) (*mcp.CallToolResult, schemaSearchOutput, error) {
	results := s.explorer.Search(input.Query)
	return nil, schemaSearchOutput{Count: len(results), Results: results}, nil
}

type schemaVersionsInput struct{}

type schemaVersionsOutput struct {
	Versions []string `json:"versions"`
}

func (s *Server) handleSchemaVersions(_ context.Context, _ *mcp.CallToolRequest, _ schemaVersionsInput) (*mcp.CallToolResult, schemaVersionsOutput, error) {
	return nil, schemaVersionsOutput{Versions: s.explorer.Versions()}, nil
}
