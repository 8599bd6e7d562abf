// Package tui provides an interactive terminal user interface for arbor.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Tree renders collections. Required.
	Tree driving.TreeService

	// Collection lists the collections to browse. Without it the TUI can
	// only show the collection it was started with.
	Collection driving.CollectionService

	// Settings supplies the render defaults.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	tree driving.TreeService,
	collection driving.CollectionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Tree:       tree,
		Collection: collection,
		Settings:   settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Tree == nil {
		return ErrMissingTreeService
	}
	return nil
}
