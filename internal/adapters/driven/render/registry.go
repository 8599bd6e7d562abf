package render

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.RendererRegistry = (*Registry)(nil)

// Registry maps formats to renderers.
type Registry struct {
	mu        sync.RWMutex
	renderers map[domain.RenderFormat]driven.Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[domain.RenderFormat]driven.Renderer),
	}
}

// NewDefaultRegistry creates a registry holding every built-in renderer.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewText())
	r.Register(NewHTML())
	r.Register(NewMarkdown())
	r.Register(NewJSON())
	return r
}

// Register adds a renderer, replacing any existing one for its format.
func (r *Registry) Register(renderer driven.Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[renderer.Format()] = renderer
}

// Get returns the renderer for format.
func (r *Registry) Get(format domain.RenderFormat) (driven.Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
	}
	return renderer, nil
}

// Formats returns the registered formats in their canonical order.
func (r *Registry) Formats() []domain.RenderFormat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var formats []domain.RenderFormat
	for _, f := range domain.AllRenderFormats() {
		if _, ok := r.renderers[f]; ok {
			formats = append(formats, f)
		}
	}
	return formats
}
