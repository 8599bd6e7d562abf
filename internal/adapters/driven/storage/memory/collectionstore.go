package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]domain.Collection
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[string]domain.Collection),
	}
}

// Save stores or updates a collection.
func (s *CollectionStore) Save(_ context.Context, collection domain.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection.ID] = collection
	return nil
}

// Get retrieves a collection by ID.
func (s *CollectionStore) Get(_ context.Context, id string) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	collection, ok := s.collections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &collection, nil
}

// Delete removes a collection.
func (s *CollectionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, id)
	return nil
}

// List returns all collections ordered by name.
func (s *CollectionStore) List(_ context.Context) ([]domain.Collection, error) {
	s.mu.RLock()
	result := make([]domain.Collection, 0, len(s.collections))
	for _, collection := range s.collections {
		result = append(result, collection)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}
