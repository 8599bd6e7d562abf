package mcp

import (
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tree renders collections.
	Tree driving.TreeService

	// Node lists the nodes of a collection.
	Node driving.NodeService

	// Collection lists collections.
	Collection driving.CollectionService

	// Settings supplies render defaults for arguments the caller omits.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Tree == nil {
		return ErrMissingTreeService
	}
	// Node, Collection and Settings are optional
	return nil
}
