package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/views/collections"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/views/tree"
	"github.com/custodia-labs/arbor/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap

	// statusBar shows render statistics and key hints.
	statusBar *status.Bar

	// collectionsView lists the collections.
	collectionsView *collections.View

	// treeView shows the rendered collection.
	treeView *tree.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// returnView is restored when help is closed.
	returnView messages.ViewType

	// initialCollection is opened directly on start when set.
	initialCollection string

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		keymap:          km,
		statusBar:       status.NewBar(s, km),
		collectionsView: collections.NewView(s, km, ports.Collection),
		treeView:        tree.NewView(s, km, ports.Tree, ports.Settings),
		currentView:     messages.ViewCollections,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.collectionsView.WithContext(ctx)
	a.treeView.WithContext(ctx)
	return a
}

// WithCollection opens the given collection on start instead of the list.
func (a *App) WithCollection(id string) *App {
	a.initialCollection = id
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	title := tea.SetWindowTitle("arbor")
	if a.initialCollection == "" {
		return tea.Batch(title, a.collectionsView.Init())
	}
	return tea.Batch(title, a.openInitial())
}

// openInitial resolves the start collection. The bare id is used when the
// collection service is missing or cannot find it.
func (a *App) openInitial() tea.Cmd {
	ctx := a.ctx
	id := a.initialCollection
	svc := a.ports.Collection
	return func() tea.Msg {
		collection := domain.Collection{ID: id}
		if svc != nil {
			if c, err := svc.Get(ctx, id); err == nil && c != nil {
				collection = *c
			}
		}
		return messages.CollectionSelected{Collection: collection}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.CollectionsLoaded:
		a.collectionsView, cmd = a.collectionsView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
		}
		return a, cmd

	case messages.CollectionSelected:
		a.currentView = messages.ViewTree
		a.err = nil
		a.statusBar.Clear()
		a.statusBar.SetState(status.StateLoading)
		return a, a.treeView.SetCollection(msg.Collection)

	case messages.TreeRendered:
		a.treeView, cmd = a.treeView.Update(msg)
		if msg.Err != nil {
			a.setError(msg.Err)
			return a, cmd
		}
		a.err = nil
		a.statusBar.SetState(status.StateTree)
		a.statusBar.SetResult(msg.Result)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewCollections {
			a.statusBar.Clear()
			return a, a.collectionsView.Init()
		}
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKeyMsg applies global keys and forwards the rest to the active view.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	if k == "ctrl+c" {
		return a, tea.Quit
	}

	if a.currentView == messages.ViewHelp {
		if keymap.Matches(k, a.keymap.Back) || keymap.Matches(k, a.keymap.Help) {
			a.closeHelp()
		} else if keymap.Matches(k, a.keymap.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keymap.Help):
		a.returnView = a.currentView
		a.currentView = messages.ViewHelp
		return a, nil
	}

	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewCollections:
		a.collectionsView, cmd = a.collectionsView.Update(msg)
	case messages.ViewTree:
		a.treeView, cmd = a.treeView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) closeHelp() {
	a.currentView = a.returnView
}

func (a *App) setError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewTree:
		body = a.treeView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.collectionsView.View()
	}

	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Collections:
  j/k, up/down  Move selection
  enter         Render collection
  r             Reload list

Tree:
  +/-           More or fewer levels
  f             Next format
  n/p           Next or previous page
  r             Reverse top-level order
  R             Reverse child order
  j/k           Scroll
  esc           Back to collections

Global:
  ?             Toggle help
  q, ctrl+c     Quit

[esc] close help`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions. One line is kept for the
// status bar.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.statusBar.SetWidth(width)
	a.collectionsView.SetDimensions(width, height-1)
	a.treeView.SetDimensions(width, height-1)
}
