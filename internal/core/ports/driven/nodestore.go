package driven

import (
	"context"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// NodeStore persists nodes. A node is identified by its collection and ID;
// the same ID may appear in several collections.
type NodeStore interface {
	// Save stores or updates a node.
	Save(ctx context.Context, node *domain.Node) error

	// SaveBatch stores or updates many nodes atomically.
	SaveBatch(ctx context.Context, nodes []domain.Node) error

	// Get retrieves a node by collection and ID.
	// Returns domain.ErrNotFound if the node does not exist.
	Get(ctx context.Context, collectionID, id string) (*domain.Node, error)

	// Delete removes a node. Children are left in place and become orphans.
	Delete(ctx context.Context, collectionID, id string) error

	// DeleteCollection removes every node in a collection.
	DeleteCollection(ctx context.Context, collectionID string) error

	// List returns the nodes of a collection ordered by position,
	// then by insertion order.
	List(ctx context.Context, collectionID string) ([]domain.Node, error)
}
