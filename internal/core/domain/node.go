package domain

import "time"

// Node is a record in a hierarchy. Nodes reference their parent by ID;
// an empty ParentID marks a top-level node.
type Node struct {
	// ID is the unique identifier for the node.
	ID string

	// CollectionID links to the Collection the node belongs to.
	CollectionID string

	// ParentID links to the parent node. Empty means top-level.
	// It may reference a node that does not exist, which makes the node an orphan.
	ParentID string

	// Title is the human-readable label.
	Title string

	// URI is an optional link rendered alongside the title.
	URI string

	// Position orders siblings. Ties keep insertion order.
	Position int

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the node was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the node was last updated.
	UpdatedAt time.Time
}

// Label returns the title, falling back to the ID.
func (n Node) Label() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// IsTopLevel reports whether the node has no parent.
func (n Node) IsTopLevel() bool {
	return n.ParentID == ""
}

// Collection is a named group of nodes rendered together.
type Collection struct {
	// ID is the unique identifier for the collection.
	ID string

	// Name is the human-readable name.
	Name string

	// Description is optional free text.
	Description string

	// CreatedAt is when the collection was created.
	CreatedAt time.Time
}
