// Package tree provides the rendered tree view for the TUI.
package tree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
	"github.com/custodia-labs/arbor/internal/logger"
)

// errNoService is reported when the view has no tree service.
var errNoService = errors.New("tree service not available")

// chrome is the number of lines used around the viewport.
const chrome = 5

// View renders one collection and lets the user adjust the render options.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	treeService     driving.TreeService
	settingsService driving.SettingsService
	ctx             context.Context

	collection domain.Collection
	opts       domain.RenderOptions
	result     *domain.RenderResult
	err        error
	loading    bool

	viewport viewport.Model
	markdown *glamour.TermRenderer
	width    int
	height   int
}

// NewView creates a new tree view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	treeService driving.TreeService,
	settingsService driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:          s,
		keymap:          km,
		treeService:     treeService,
		settingsService: settingsService,
		ctx:             context.Background(),
		opts:            domain.DefaultRenderSettings().Options(),
		viewport:        viewport.New(80, 20),
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// SetCollection switches to a collection and renders it with the stored
// settings.
func (v *View) SetCollection(c domain.Collection) tea.Cmd {
	v.collection = c
	v.opts = v.defaultOptions()
	v.result = nil
	v.err = nil
	v.viewport.SetContent("")
	v.viewport.GotoTop()
	return v.render()
}

func (v *View) defaultOptions() domain.RenderOptions {
	if v.settingsService != nil {
		if settings, err := v.settingsService.Get(); err == nil && settings != nil {
			return settings.Options()
		}
	}
	return domain.DefaultRenderSettings().Options()
}

// render returns a command that renders the current collection.
func (v *View) render() tea.Cmd {
	v.loading = true
	ctx := v.ctx
	id := v.collection.ID
	opts := v.opts
	return func() tea.Msg {
		if v.treeService == nil {
			return messages.TreeRendered{Err: errNoService}
		}
		result, err := v.treeService.Render(ctx, id, opts)
		return messages.TreeRendered{Result: result, Err: err}
	}
}

// Update handles messages for the tree view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TreeRendered:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			v.result = nil
			v.viewport.SetContent("")
			return v, nil
		}
		v.err = nil
		v.result = msg.Result
		v.viewport.SetContent(v.display(msg.Result))
		v.viewport.GotoTop()
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses. Keys not bound to a render option
// scroll the viewport.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewCollections}
		}
	case keymap.Matches(k, v.keymap.Deeper):
		v.opts.MaxDepth = deeper(v.opts.MaxDepth)
		v.opts.Page = 1
		return v, v.render()
	case keymap.Matches(k, v.keymap.Shallower):
		v.opts.MaxDepth = shallower(v.opts.MaxDepth)
		v.opts.Page = 1
		return v, v.render()
	case keymap.Matches(k, v.keymap.Format):
		if next, ok := v.nextFormat(); ok {
			v.opts.Format = next
			return v, v.render()
		}
		return v, nil
	case keymap.Matches(k, v.keymap.NextPage):
		if v.result != nil && v.opts.PerPage > 0 && v.opts.Page < v.result.MaxPages {
			v.opts.Page++
			return v, v.render()
		}
		return v, nil
	case keymap.Matches(k, v.keymap.PrevPage):
		if v.opts.PerPage > 0 && v.opts.Page > 1 {
			v.opts.Page--
			return v, v.render()
		}
		return v, nil
	case keymap.Matches(k, v.keymap.ReverseChildren):
		v.opts.ReverseChildren = !v.opts.ReverseChildren
		return v, v.render()
	case keymap.Matches(k, v.keymap.Reverse):
		v.opts.ReverseTopLevel = !v.opts.ReverseTopLevel
		return v, v.render()
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// deeper steps towards more levels. Flat becomes one level and unlimited
// stays unlimited.
func deeper(depth int) int {
	switch {
	case depth == domain.DepthFlat:
		return 1
	case depth == domain.DepthUnlimited:
		return depth
	default:
		return depth + 1
	}
}

// shallower steps towards fewer levels. Unlimited drops to one level and
// one level drops to flat.
func shallower(depth int) int {
	switch {
	case depth == domain.DepthUnlimited:
		return 1
	case depth > 1:
		return depth - 1
	default:
		return domain.DepthFlat
	}
}

func (v *View) nextFormat() (domain.RenderFormat, bool) {
	if v.treeService == nil {
		return "", false
	}
	formats := v.treeService.Formats()
	if len(formats) == 0 {
		return "", false
	}
	for i, f := range formats {
		if f == v.opts.Format {
			return formats[(i+1)%len(formats)], true
		}
	}
	return formats[0], true
}

// display returns the viewport content for a result. Markdown is styled
// for the terminal; other formats are shown as produced.
func (v *View) display(result *domain.RenderResult) string {
	if result.Format != domain.RenderFormatMarkdown || v.markdown == nil {
		return result.Output
	}
	out, err := v.markdown.Render(result.Output)
	if err != nil {
		logger.Debug("Markdown styling failed: %v", err)
		return result.Output
	}
	return out
}

// View renders the tree view.
func (v *View) View() string {
	var b strings.Builder

	name := v.collection.Name
	if name == "" {
		name = v.collection.ID
	}
	b.WriteString(v.styles.Title.Render(name))
	b.WriteString("\n")
	b.WriteString(v.styles.Subtitle.Render(v.describeOptions()))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	case v.loading && v.result == nil:
		b.WriteString(v.styles.Muted.Render("Rendering..."))
		b.WriteString("\n")
	case v.result != nil && v.result.Output == "":
		b.WriteString(v.styles.Muted.Render("Nothing to render"))
		b.WriteString("\n")
	default:
		b.WriteString(v.viewport.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) describeOptions() string {
	parts := []string{
		"depth " + describeDepth(v.opts.MaxDepth),
		"format " + v.opts.Format.String(),
	}
	if v.opts.ReverseTopLevel {
		parts = append(parts, "reversed")
	}
	if v.opts.ReverseChildren {
		parts = append(parts, "children reversed")
	}
	return strings.Join(parts, " · ")
}

func describeDepth(depth int) string {
	switch depth {
	case domain.DepthFlat:
		return "flat"
	case domain.DepthUnlimited:
		return "unlimited"
	default:
		return fmt.Sprintf("%d", depth)
	}
}

// SetDimensions sets the view dimensions and resizes the viewport.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = max(height-chrome, 1)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		logger.Debug("Markdown renderer unavailable: %v", err)
		return
	}
	v.markdown = r
}

// Collection returns the collection being shown.
func (v *View) Collection() domain.Collection {
	return v.collection
}

// Options returns the current render options.
func (v *View) Options() domain.RenderOptions {
	return v.opts
}

// Result returns the last render result.
func (v *View) Result() *domain.RenderResult {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
