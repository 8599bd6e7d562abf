package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for arbor resources.
	uriScheme = "arbor://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing collections.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "collections",
		Name:        "collections",
		Description: "List of all collections",
		MIMEType:    "application/json",
	}, s.handleCollectionsResource)

	// Template for the rendered tree of a collection.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "collections/{collectionId}/tree",
		Name:        "collection-tree",
		Description: "Plain-text tree of a collection rendered with the default settings",
		MIMEType:    "text/plain",
	}, s.handleTreeResource)
}

// handleCollectionsResource returns a list of all collections.
func (s *Server) handleCollectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Collection == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	collections, err := s.ports.Collection.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	type collectionInfo struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
	}

	infos := make([]collectionInfo, len(collections))
	for i, c := range collections {
		infos[i] = collectionInfo{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling collections: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTreeResource renders a collection as plain text.
func (s *Server) handleTreeResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract collectionId from URI: arbor://collections/{collectionId}/tree
	collectionID := extractCollectionID(req.Params.URI)
	if collectionID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	opts := s.defaultOptions()
	opts.Format = domain.RenderFormatText
	opts.PerPage = 0

	result, err := s.ports.Tree.Render(ctx, collectionID, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering tree: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     result.Output,
		}},
	}, nil
}

// extractCollectionID extracts the collection ID from a URI like arbor://collections/{collectionId}/tree.
func extractCollectionID(uri string) string {
	const prefix = uriScheme + "collections/"
	const suffix = "/tree"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
