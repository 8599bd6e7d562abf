package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Ensure NodeStore implements the interface.
var _ driven.NodeStore = (*NodeStore)(nil)

// storedNode keeps the sequence number assigned on first save so List can
// break position ties by insertion order.
type storedNode struct {
	node domain.Node
	seq  int64
}

// nodeKey identifies a node within its collection.
type nodeKey struct {
	collectionID string
	id           string
}

// NodeStore is an in-memory implementation of driven.NodeStore.
type NodeStore struct {
	mu    sync.RWMutex
	nodes map[nodeKey]storedNode
	seq   int64
}

// NewNodeStore creates a new in-memory node store.
func NewNodeStore() *NodeStore {
	return &NodeStore{
		nodes: make(map[nodeKey]storedNode),
	}
}

// Save stores or updates a node.
func (s *NodeStore) Save(_ context.Context, node *domain.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(*node)
	return nil
}

// SaveBatch stores or updates several nodes, preserving their order.
func (s *NodeStore) SaveBatch(_ context.Context, nodes []domain.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range nodes {
		s.put(nodes[i])
	}
	return nil
}

// put stores a node (caller must hold lock).
func (s *NodeStore) put(node domain.Node) {
	key := nodeKey{collectionID: node.CollectionID, id: node.ID}
	if existing, ok := s.nodes[key]; ok {
		s.nodes[key] = storedNode{node: cloneNode(node), seq: existing.seq}
		return
	}
	s.seq++
	s.nodes[key] = storedNode{node: cloneNode(node), seq: s.seq}
}

// Get retrieves a node by collection and ID.
func (s *NodeStore) Get(_ context.Context, collectionID, id string) (*domain.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.nodes[nodeKey{collectionID: collectionID, id: id}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	node := cloneNode(stored.node)
	return &node, nil
}

// Delete removes a node. Its children are left in place.
func (s *NodeStore) Delete(_ context.Context, collectionID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, nodeKey{collectionID: collectionID, id: id})
	return nil
}

// DeleteCollection removes every node in a collection.
func (s *NodeStore) DeleteCollection(_ context.Context, collectionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.nodes {
		if key.collectionID == collectionID {
			delete(s.nodes, key)
		}
	}
	return nil
}

// List returns the nodes of a collection ordered by position, then by
// insertion order.
func (s *NodeStore) List(_ context.Context, collectionID string) ([]domain.Node, error) {
	s.mu.RLock()
	var matched []storedNode
	for _, stored := range s.nodes {
		if stored.node.CollectionID == collectionID {
			matched = append(matched, stored)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].node.Position != matched[j].node.Position {
			return matched[i].node.Position < matched[j].node.Position
		}
		return matched[i].seq < matched[j].seq
	})

	result := make([]domain.Node, len(matched))
	for i := range matched {
		result[i] = cloneNode(matched[i].node)
	}
	return result, nil
}

// cloneNode copies the metadata map so callers cannot mutate stored state.
func cloneNode(node domain.Node) domain.Node {
	if node.Metadata != nil {
		meta := make(map[string]any, len(node.Metadata))
		for k, v := range node.Metadata {
			meta[k] = v
		}
		node.Metadata = meta
	}
	return node
}
