package driven

import (
	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/walker"
)

// RenderSession is the hook set for a single render call.
// Sessions may keep state between hooks and must not be reused.
type RenderSession interface {
	walker.Hooks[domain.Node]

	// Finish turns the accumulated walker output into the final document.
	Finish(output string) (string, error)
}

// Renderer produces sessions for one output format.
type Renderer interface {
	// Format returns the format this renderer produces.
	Format() domain.RenderFormat

	// NewSession creates the hooks for one render call.
	NewSession(opts domain.RenderOptions) RenderSession
}

// RendererRegistry looks up renderers by format.
type RendererRegistry interface {
	// Get returns the renderer for format.
	// Returns domain.ErrUnsupportedFormat for unknown formats.
	Get(format domain.RenderFormat) (Renderer, error)

	// Formats returns the registered formats.
	Formats() []domain.RenderFormat
}
