package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemalens/explorer"
	"github.com/erraggy/schemalens/store"
)

const sampleDoc = `{
	"info": {"version": "2.0"},
	"components": {"schemas": {
		"User": {
			"title": "User",
			"x-since-version": "1.1",
			"properties": {"address": {"$ref": "#/components/schemas/Address"}}
		},
		"Address": {"properties": {"city": {"type": "string"}}}
	}}
}`

func newServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Load(store.WithBytes([]byte(sampleDoc)))
	require.NoError(t, err)
	return &Server{explorer: explorer.New(st)}
}

func TestHandleSchemaGet(t *testing.T) {
	s := newServer(t)

	t.Run("known schema", func(t *testing.T) {
		result, output, err := s.handleSchemaGet(context.Background(), nil, schemaGetInput{Name: "User"})
		require.NoError(t, err)
		assert.Nil(t, result)
		require.NotNil(t, output.Schema)
		assert.Equal(t, "User", output.Schema.Title)
		assert.Equal(t, []string{"Address"}, output.Schema.References)
	})

	t.Run("unknown schema is a tool error, not a protocol error", func(t *testing.T) {
		result, _, err := s.handleSchemaGet(context.Background(), nil, schemaGetInput{Name: "Ghost"})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}

func TestHandleSchemaTree(t *testing.T) {
	s := newServer(t)

	_, output, err := s.handleSchemaTree(context.Background(), nil, schemaTreeInput{})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)
	require.Len(t, output.Schemas, 2)
	assert.Equal(t, "Address", output.Schemas[0].ID)
}

func TestHandleSchemaSearch(t *testing.T) {
	s := newServer(t)

	_, output, err := s.handleSchemaSearch(context.Background(), nil, schemaSearchInput{Query: "user"})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)

	_, output, err = s.handleSchemaSearch(context.Background(), nil, schemaSearchInput{Query: ""})
	require.NoError(t, err)
	assert.Zero(t, output.Count)
}

func TestHandleSchemaVersions(t *testing.T) {
	s := newServer(t)

	_, output, err := s.handleSchemaVersions(context.Background(), nil, schemaVersionsInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1.1", "2.0"}, output.Versions)
}
