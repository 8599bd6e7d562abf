package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// RenderTreeInput is the input schema for the render_tree tool.
type RenderTreeInput struct {
	Collection      string `json:"collection" jsonschema:"the collection ID to render"`
	Depth           *int   `json:"depth,omitempty" jsonschema:"maximum depth: -1 flat, 0 unlimited, N levels"`
	Format          string `json:"format,omitempty" jsonschema:"output format: text, html, markdown or json"`
	Page            int    `json:"page,omitempty" jsonschema:"1-based page of top-level nodes"`
	PerPage         int    `json:"per_page,omitempty" jsonschema:"top-level nodes per page (0 disables paging)"`
	Reverse         bool   `json:"reverse,omitempty" jsonschema:"reverse top-level nodes within the page"`
	ReverseChildren bool   `json:"reverse_children,omitempty" jsonschema:"reverse siblings below every parent"`
}

// RenderTreeOutput is the output schema for the render_tree tool.
type RenderTreeOutput struct {
	Output    string `json:"output"`
	Format    string `json:"format"`
	Page      int    `json:"page"`
	MaxPages  int    `json:"max_pages"`
	TotalTop  int    `json:"total_top"`
	NodeCount int    `json:"node_count"`
}

// ListNodesInput is the input schema for the list_nodes tool.
type ListNodesInput struct {
	Collection string `json:"collection" jsonschema:"the collection ID whose nodes to list"`
}

// ListNodesOutput is the output schema for the list_nodes tool.
type ListNodesOutput struct {
	Nodes []NodeOutput `json:"nodes"`
	Count int          `json:"count"`
}

// NodeOutput represents a single node.
type NodeOutput struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id,omitempty"`
	Title    string `json:"title"`
	URI      string `json:"uri,omitempty"`
	Position int    `json:"position"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_tree",
		Description: "Render the node hierarchy of a collection as text, HTML, Markdown or JSON",
	}, s.handleRenderTree)

	if s.ports.Node != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_nodes",
			Description: "List the nodes of a collection in render order",
		}, s.handleListNodes)
	}
}

// handleRenderTree handles the render_tree tool invocation.
func (s *Server) handleRenderTree(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderTreeInput,
) (*mcp.CallToolResult, RenderTreeOutput, error) {
	if input.Collection == "" {
		return nil, RenderTreeOutput{}, fmt.Errorf("%w: collection is required", domain.ErrInvalidInput)
	}

	opts := s.defaultOptions()
	if input.Depth != nil {
		opts.MaxDepth = *input.Depth
	}
	if input.Format != "" {
		opts.Format = domain.RenderFormat(input.Format)
	}
	if input.PerPage > 0 {
		opts.PerPage = input.PerPage
	}
	opts.Page = max(input.Page, 1)
	opts.ReverseTopLevel = input.Reverse
	opts.ReverseChildren = input.ReverseChildren

	result, err := s.ports.Tree.Render(ctx, input.Collection, opts)
	if err != nil {
		return nil, RenderTreeOutput{}, err
	}

	return nil, RenderTreeOutput{
		Output:    result.Output,
		Format:    result.Format.String(),
		Page:      result.Page,
		MaxPages:  result.MaxPages,
		TotalTop:  result.TotalTop,
		NodeCount: result.NodeCount,
	}, nil
}

// handleListNodes handles the list_nodes tool invocation.
func (s *Server) handleListNodes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListNodesInput,
) (*mcp.CallToolResult, ListNodesOutput, error) {
	nodes, err := s.ports.Node.List(ctx, input.Collection)
	if err != nil {
		return nil, ListNodesOutput{}, err
	}

	output := ListNodesOutput{
		Nodes: make([]NodeOutput, len(nodes)),
		Count: len(nodes),
	}
	for i := range nodes {
		output.Nodes[i] = NodeOutput{
			ID:       nodes[i].ID,
			ParentID: nodes[i].ParentID,
			Title:    nodes[i].Title,
			URI:      nodes[i].URI,
			Position: nodes[i].Position,
		}
	}

	return nil, output, nil
}

// defaultOptions returns the stored render defaults, or the built-in ones
// when no settings service is wired or it fails.
func (s *Server) defaultOptions() domain.RenderOptions {
	if s.ports.Settings == nil {
		return domain.DefaultRenderSettings().Options()
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return domain.DefaultRenderSettings().Options()
	}
	return settings.Options()
}
