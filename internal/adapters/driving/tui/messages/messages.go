// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/arbor/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCollections lists the collections.
	ViewCollections ViewType = iota
	// ViewTree shows the rendered tree of one collection.
	ViewTree
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCollections:
		return "collections"
	case ViewTree:
		return "tree"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CollectionsLoaded carries the collection list back to the model.
type CollectionsLoaded struct {
	Collections []domain.Collection
	Err         error
}

// CollectionSelected is sent when a collection is chosen for rendering.
type CollectionSelected struct {
	Collection domain.Collection
}

// TreeRendered carries a render result back to the model.
type TreeRendered struct {
	Result *domain.RenderResult
	Err    error
}

// ErrorOccurred is sent when an error needs to be displayed.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
