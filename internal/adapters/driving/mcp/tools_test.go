package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

func TestServer_handleRenderTree(t *testing.T) {
	ctx := context.Background()

	t.Run("returns rendered output", func(t *testing.T) {
		tree := &mockTreeService{
			result: &domain.RenderResult{
				Output:    "Home\n  About\n",
				Format:    domain.RenderFormatText,
				Page:      1,
				MaxPages:  3,
				TotalTop:  5,
				NodeCount: 9,
			},
		}
		server, err := NewServer(&Ports{Tree: tree})
		require.NoError(t, err)

		_, output, err := server.handleRenderTree(ctx, nil, RenderTreeInput{Collection: "menu", PerPage: 2})

		require.NoError(t, err)
		assert.Equal(t, "menu", tree.collectionID)
		assert.Equal(t, "Home\n  About\n", output.Output)
		assert.Equal(t, "text", output.Format)
		assert.Equal(t, 3, output.MaxPages)
		assert.Equal(t, 5, output.TotalTop)
		assert.Equal(t, 9, output.NodeCount)
	})

	t.Run("input overrides defaults", func(t *testing.T) {
		tree := &mockTreeService{}
		settings := &mockSettingsService{settings: domain.RenderSettings{
			Depth: 3, Format: domain.RenderFormatHTML, IndentSize: 4, PerPage: 10,
		}}
		server, err := NewServer(&Ports{Tree: tree, Settings: settings})
		require.NoError(t, err)

		flat := domain.DepthFlat
		_, _, err = server.handleRenderTree(ctx, nil, RenderTreeInput{
			Collection:      "menu",
			Depth:           &flat,
			Format:          "markdown",
			Page:            2,
			Reverse:         true,
			ReverseChildren: true,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.DepthFlat, tree.opts.MaxDepth)
		assert.Equal(t, domain.RenderFormatMarkdown, tree.opts.Format)
		assert.Equal(t, 4, tree.opts.IndentSize)
		assert.Equal(t, 10, tree.opts.PerPage)
		assert.Equal(t, 2, tree.opts.Page)
		assert.True(t, tree.opts.ReverseTopLevel)
		assert.True(t, tree.opts.ReverseChildren)
	})

	t.Run("settings defaults apply", func(t *testing.T) {
		tree := &mockTreeService{}
		settings := &mockSettingsService{settings: domain.RenderSettings{
			Depth: 2, Format: domain.RenderFormatJSON,
		}}
		server, err := NewServer(&Ports{Tree: tree, Settings: settings})
		require.NoError(t, err)

		_, _, err = server.handleRenderTree(ctx, nil, RenderTreeInput{Collection: "menu"})

		require.NoError(t, err)
		assert.Equal(t, 2, tree.opts.MaxDepth)
		assert.Equal(t, domain.RenderFormatJSON, tree.opts.Format)
		assert.Equal(t, 1, tree.opts.Page)
	})

	t.Run("settings failure falls back to built-in defaults", func(t *testing.T) {
		tree := &mockTreeService{}
		server, err := NewServer(&Ports{Tree: tree, Settings: &mockSettingsService{err: errors.New("boom")}})
		require.NoError(t, err)

		_, _, err = server.handleRenderTree(ctx, nil, RenderTreeInput{Collection: "menu"})

		require.NoError(t, err)
		assert.Equal(t, domain.RenderFormatText, tree.opts.Format)
	})

	t.Run("missing collection", func(t *testing.T) {
		server, err := NewServer(&Ports{Tree: &mockTreeService{}})
		require.NoError(t, err)

		_, _, err = server.handleRenderTree(ctx, nil, RenderTreeInput{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Tree: &mockTreeService{err: domain.ErrUnsupportedFormat}})
		require.NoError(t, err)

		_, _, err = server.handleRenderTree(ctx, nil, RenderTreeInput{Collection: "menu", Format: "pdf"})

		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestServer_handleListNodes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nodes", func(t *testing.T) {
		nodes := &mockNodeService{nodes: []domain.Node{
			{ID: "home", Title: "Home", URI: "/"},
			{ID: "about", ParentID: "home", Title: "About", Position: 2},
		}}
		server, err := NewServer(&Ports{Tree: &mockTreeService{}, Node: nodes})
		require.NoError(t, err)

		_, output, err := server.handleListNodes(ctx, nil, ListNodesInput{Collection: "menu"})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, NodeOutput{ID: "home", Title: "Home", URI: "/"}, output.Nodes[0])
		assert.Equal(t, "home", output.Nodes[1].ParentID)
		assert.Equal(t, 2, output.Nodes[1].Position)
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		nodes := &mockNodeService{err: errors.New("list failed")}
		server, err := NewServer(&Ports{Tree: &mockTreeService{}, Node: nodes})
		require.NoError(t, err)

		_, _, err = server.handleListNodes(ctx, nil, ListNodesInput{Collection: "menu"})

		assert.ErrorContains(t, err, "list failed")
	})
}
