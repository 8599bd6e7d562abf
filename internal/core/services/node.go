package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
	"github.com/custodia-labs/arbor/internal/logger"
)

// Ensure NodeService implements the interface.
var _ driving.NodeService = (*NodeService)(nil)

// NodeService manages nodes within collections.
type NodeService struct {
	nodeStore       driven.NodeStore
	collectionStore driven.CollectionStore
	loader          driven.RecordLoader
}

// NewNodeService creates a new node service.
// collectionStore and loader may be nil; collection checks and imports
// are then skipped or disabled respectively.
func NewNodeService(
	nodeStore driven.NodeStore,
	collectionStore driven.CollectionStore,
	loader driven.RecordLoader,
) *NodeService {
	return &NodeService{
		nodeStore:       nodeStore,
		collectionStore: collectionStore,
		loader:          loader,
	}
}

// Add stores a node, assigning an ID when it has none.
func (s *NodeService) Add(ctx context.Context, node domain.Node) (*domain.Node, error) {
	if s.nodeStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if node.CollectionID == "" {
		return nil, fmt.Errorf("%w: collection is required", domain.ErrInvalidInput)
	}
	if err := s.ensureCollection(ctx, node.CollectionID); err != nil {
		return nil, err
	}

	if node.ID == "" {
		node.ID = uuid.New().String()
	}
	if node.ParentID == node.ID {
		return nil, fmt.Errorf("%w: node %s cannot be its own parent", domain.ErrInvalidInput, node.ID)
	}

	now := time.Now().UTC()
	if node.CreatedAt.IsZero() {
		node.CreatedAt = now
	}
	node.UpdatedAt = now

	if err := s.nodeStore.Save(ctx, &node); err != nil {
		return nil, fmt.Errorf("saving node: %w", err)
	}
	return &node, nil
}

// Get retrieves a node of a collection by ID.
func (s *NodeService) Get(ctx context.Context, collectionID, id string) (*domain.Node, error) {
	if s.nodeStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.nodeStore.Get(ctx, collectionID, id)
}

// List returns the nodes of a collection.
func (s *NodeService) List(ctx context.Context, collectionID string) ([]domain.Node, error) {
	if s.nodeStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.nodeStore.List(ctx, collectionID)
}

// Remove deletes a node. With recursive set, its descendants go too;
// otherwise they stay behind as orphans.
func (s *NodeService) Remove(ctx context.Context, collectionID, id string, recursive bool) (int, error) {
	if s.nodeStore == nil {
		return 0, domain.ErrNotImplemented
	}

	node, err := s.nodeStore.Get(ctx, collectionID, id)
	if err != nil {
		return 0, err
	}

	ids := []string{node.ID}
	if recursive {
		nodes, err := s.nodeStore.List(ctx, node.CollectionID)
		if err != nil {
			return 0, fmt.Errorf("listing nodes: %w", err)
		}
		ids = descendantsOf(node.ID, nodes)
	}

	for _, nodeID := range ids {
		if err := s.nodeStore.Delete(ctx, collectionID, nodeID); err != nil {
			return 0, fmt.Errorf("deleting node %s: %w", nodeID, err)
		}
	}

	logger.Debug("Removed %d node(s) from %s starting at %s", len(ids), collectionID, id)
	return len(ids), nil
}

// Import loads nodes from a file into a collection.
func (s *NodeService) Import(ctx context.Context, collectionID, path string) (int, error) {
	if s.nodeStore == nil || s.loader == nil {
		return 0, domain.ErrNotImplemented
	}
	if !s.loader.Supports(path) {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, path)
	}
	if err := s.ensureCollection(ctx, collectionID); err != nil {
		return 0, err
	}

	logger.Section("Import")
	logger.Debug("File: %s", path)

	nodes, err := s.loader.Load(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}

	now := time.Now().UTC()
	for i := range nodes {
		nodes[i].CollectionID = collectionID
		if nodes[i].ID == "" {
			nodes[i].ID = uuid.New().String()
		}
		if nodes[i].CreatedAt.IsZero() {
			nodes[i].CreatedAt = now
		}
		nodes[i].UpdatedAt = now
	}

	if err := s.nodeStore.SaveBatch(ctx, nodes); err != nil {
		return 0, fmt.Errorf("saving nodes: %w", err)
	}

	logger.Debug("Imported %d node(s) into %s", len(nodes), collectionID)
	return len(nodes), nil
}

func (s *NodeService) ensureCollection(ctx context.Context, collectionID string) error {
	if s.collectionStore == nil {
		return nil
	}
	if _, err := s.collectionStore.Get(ctx, collectionID); err != nil {
		return fmt.Errorf("collection %s: %w", collectionID, err)
	}
	return nil
}

// descendantsOf returns rootID followed by every node below it, breadth first.
// Each ID appears once even when parent links form a cycle.
func descendantsOf(rootID string, nodes []domain.Node) []string {
	children := make(map[string][]string)
	for i := range nodes {
		if nodes[i].ParentID != "" {
			children[nodes[i].ParentID] = append(children[nodes[i].ParentID], nodes[i].ID)
		}
	}

	seen := map[string]bool{rootID: true}
	ids := []string{rootID}
	for i := 0; i < len(ids); i++ {
		for _, child := range children[ids[i]] {
			if !seen[child] {
				seen[child] = true
				ids = append(ids, child)
			}
		}
	}
	return ids
}
