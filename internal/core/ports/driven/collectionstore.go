package driven

import (
	"context"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// CollectionStore persists collections.
type CollectionStore interface {
	// Save stores or updates a collection.
	Save(ctx context.Context, collection domain.Collection) error

	// Get retrieves a collection by ID.
	// Returns domain.ErrNotFound if the collection does not exist.
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// List returns all collections ordered by name.
	List(ctx context.Context) ([]domain.Collection, error)

	// Delete removes a collection.
	Delete(ctx context.Context, id string) error
}
