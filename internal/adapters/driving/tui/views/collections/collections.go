// Package collections provides the collection list view for the TUI.
package collections

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
)

// errNoService is reported when the view has no collection service.
var errNoService = errors.New("collection service not available")

// View lists collections and opens one for rendering.
type View struct {
	styles            *styles.Styles
	keymap            *keymap.KeyMap
	collectionService driving.CollectionService
	ctx               context.Context

	collections []domain.Collection
	selected    int
	width       int
	height      int
	ready       bool
	err         error
	loading     bool
}

// NewView creates a new collections view.
func NewView(s *styles.Styles, km *keymap.KeyMap, collectionService driving.CollectionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:            s,
		keymap:            km,
		collectionService: collectionService,
		ctx:               context.Background(),
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view and loads collections.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadCollections()
}

// loadCollections returns a command that loads collections from the service.
func (v *View) loadCollections() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		if v.collectionService == nil {
			return messages.CollectionsLoaded{Err: errNoService}
		}
		collections, err := v.collectionService.List(ctx)
		return messages.CollectionsLoaded{Collections: collections, Err: err}
	}
}

// Update handles messages for the collections view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.CollectionsLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.collections = msg.Collections
		v.err = nil
		if v.selected >= len(v.collections) {
			v.selected = max(len(v.collections)-1, 0)
		}
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(k, v.keymap.Down):
		if v.selected < len(v.collections)-1 {
			v.selected++
		}
	case keymap.Matches(k, v.keymap.Select):
		if v.selected < len(v.collections) {
			collection := v.collections[v.selected]
			return v, func() tea.Msg {
				return messages.CollectionSelected{Collection: collection}
			}
		}
	case keymap.Matches(k, v.keymap.Reload):
		return v, v.Init()
	}

	return v, nil
}

// View renders the collections view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Collections"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading collections..."))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case len(v.collections) == 0:
		b.WriteString(v.styles.Muted.Render("No collections. Create one with: arbor collection add <name>"))
		b.WriteString("\n")
	default:
		for i := range v.collections {
			b.WriteString(v.renderCollection(i, &v.collections[i]))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[enter] open  [r] reload  [?] help  [q] quit"))

	return b.String()
}

// renderCollection renders a single collection line.
func (v *View) renderCollection(index int, c *domain.Collection) string {
	name := c.Name
	if name == "" {
		name = c.ID
	}

	maxNameLen := max(v.width-8, 10)
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render("> " + name)
	}
	line := v.styles.Normal.Render("  " + name)
	if c.Description != "" {
		line += v.styles.Muted.Render("  " + c.Description)
	}
	return line
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Collections returns the current list of collections.
func (v *View) Collections() []domain.Collection {
	return v.collections
}

// SelectedIndex returns the currently selected collection index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
