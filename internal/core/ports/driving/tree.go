package driving

import (
	"context"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// TreeService renders node hierarchies.
type TreeService interface {
	// Render renders the nodes of a stored collection.
	Render(ctx context.Context, collectionID string, opts domain.RenderOptions) (*domain.RenderResult, error)

	// RenderNodes renders nodes that are not persisted, in the given order.
	RenderNodes(nodes []domain.Node, opts domain.RenderOptions) (*domain.RenderResult, error)

	// RootCount returns the number of top-level nodes in a collection.
	RootCount(ctx context.Context, collectionID string) (int, error)

	// Formats returns the available render formats.
	Formats() []domain.RenderFormat
}
