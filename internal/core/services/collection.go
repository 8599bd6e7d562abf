package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService manages collections.
type CollectionService struct {
	collectionStore driven.CollectionStore
	nodeStore       driven.NodeStore
}

// NewCollectionService creates a new collection service.
func NewCollectionService(collectionStore driven.CollectionStore, nodeStore driven.NodeStore) *CollectionService {
	return &CollectionService{
		collectionStore: collectionStore,
		nodeStore:       nodeStore,
	}
}

// Create adds a new collection.
func (s *CollectionService) Create(ctx context.Context, name, description string) (*domain.Collection, error) {
	if s.collectionStore == nil {
		return nil, domain.ErrNotImplemented
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: collection name is required", domain.ErrInvalidInput)
	}

	collection := domain.Collection{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.collectionStore.Save(ctx, collection); err != nil {
		return nil, fmt.Errorf("saving collection: %w", err)
	}
	return &collection, nil
}

// Get retrieves a collection by ID.
func (s *CollectionService) Get(ctx context.Context, id string) (*domain.Collection, error) {
	if s.collectionStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.collectionStore.Get(ctx, id)
}

// List returns all collections.
func (s *CollectionService) List(ctx context.Context) ([]domain.Collection, error) {
	if s.collectionStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.collectionStore.List(ctx)
}

// Remove deletes a collection and, with force, the nodes it holds.
func (s *CollectionService) Remove(ctx context.Context, id string, force bool) error {
	if s.collectionStore == nil || s.nodeStore == nil {
		return domain.ErrNotImplemented
	}

	if _, err := s.collectionStore.Get(ctx, id); err != nil {
		return err
	}

	nodes, err := s.nodeStore.List(ctx, id)
	if err != nil {
		return fmt.Errorf("listing nodes: %w", err)
	}
	if len(nodes) > 0 && !force {
		return fmt.Errorf("%w: %d node(s) remain", domain.ErrCollectionNotEmpty, len(nodes))
	}

	if err := s.nodeStore.DeleteCollection(ctx, id); err != nil {
		return fmt.Errorf("deleting nodes: %w", err)
	}
	if err := s.collectionStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}
