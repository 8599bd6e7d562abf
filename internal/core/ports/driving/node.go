package driving

import (
	"context"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// NodeService manages nodes within collections.
type NodeService interface {
	// Add stores a node, assigning an ID when it has none.
	Add(ctx context.Context, node domain.Node) (*domain.Node, error)

	// Get retrieves a node of a collection by ID.
	Get(ctx context.Context, collectionID, id string) (*domain.Node, error)

	// List returns the nodes of a collection.
	List(ctx context.Context, collectionID string) ([]domain.Node, error)

	// Remove deletes a node. With recursive set, its descendants go too.
	// Returns the number of nodes removed.
	Remove(ctx context.Context, collectionID, id string, recursive bool) (int, error)

	// Import loads nodes from a file into a collection.
	// Returns the number of nodes imported.
	Import(ctx context.Context, collectionID, path string) (int, error)
}

// CollectionService manages collections.
type CollectionService interface {
	// Create adds a new collection.
	Create(ctx context.Context, name, description string) (*domain.Collection, error)

	// Get retrieves a collection by ID.
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// List returns all collections.
	List(ctx context.Context) ([]domain.Collection, error)

	// Remove deletes a collection. Unless force is set, a collection that
	// still holds nodes is rejected with domain.ErrCollectionNotEmpty.
	Remove(ctx context.Context, id string, force bool) error
}
