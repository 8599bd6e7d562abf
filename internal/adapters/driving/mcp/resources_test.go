package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

func TestExtractCollectionID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid collection tree URI",
			uri:      "arbor://collections/menu-1/tree",
			expected: "menu-1",
		},
		{
			name:     "invalid prefix",
			uri:      "file://collections/menu-1/tree",
			expected: "",
		},
		{
			name:     "missing tree suffix",
			uri:      "arbor://collections/menu-1",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractCollectionID(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleCollectionsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil collection service returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Tree: &mockTreeService{}})
		require.NoError(t, err)

		result, err := server.handleCollectionsResource(ctx, makeReadResourceRequest("arbor://collections"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns collections successfully", func(t *testing.T) {
		collections := &mockCollectionService{collections: []domain.Collection{
			{ID: "menu", Name: "Main menu", Description: "top navigation"},
		}}
		server, err := NewServer(&Ports{Tree: &mockTreeService{}, Collection: collections})
		require.NoError(t, err)

		result, err := server.handleCollectionsResource(ctx, makeReadResourceRequest("arbor://collections"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
		assert.Contains(t, result.Contents[0].Text, `"id": "menu"`)
		assert.Contains(t, result.Contents[0].Text, `"name": "Main menu"`)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		collections := &mockCollectionService{err: errors.New("database error")}
		server, err := NewServer(&Ports{Tree: &mockTreeService{}, Collection: collections})
		require.NoError(t, err)

		_, err = server.handleCollectionsResource(ctx, makeReadResourceRequest("arbor://collections"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing collections")
	})
}

func TestServer_handleTreeResource(t *testing.T) {
	ctx := context.Background()

	t.Run("renders plain text without paging", func(t *testing.T) {
		tree := &mockTreeService{result: &domain.RenderResult{Output: "Home\n"}}
		settings := &mockSettingsService{settings: domain.RenderSettings{
			Format: domain.RenderFormatHTML, PerPage: 5, IndentSize: 3,
		}}
		server, err := NewServer(&Ports{Tree: tree, Settings: settings})
		require.NoError(t, err)

		result, err := server.handleTreeResource(ctx, makeReadResourceRequest("arbor://collections/menu/tree"))

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "Home\n", result.Contents[0].Text)
		assert.Equal(t, "menu", tree.collectionID)
		assert.Equal(t, domain.RenderFormatText, tree.opts.Format)
		assert.Zero(t, tree.opts.PerPage)
		assert.Equal(t, 3, tree.opts.IndentSize)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Tree: &mockTreeService{}})
		require.NoError(t, err)

		_, err = server.handleTreeResource(ctx, makeReadResourceRequest("arbor://collections/menu"))

		require.Error(t, err)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Tree: &mockTreeService{err: errors.New("render failed")}})
		require.NoError(t, err)

		_, err = server.handleTreeResource(ctx, makeReadResourceRequest("arbor://collections/menu/tree"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rendering tree")
	})
}
