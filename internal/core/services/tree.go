package services

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
	"github.com/custodia-labs/arbor/internal/core/walker"
	"github.com/custodia-labs/arbor/internal/logger"
)

// Ensure TreeService implements the interface.
var _ driving.TreeService = (*TreeService)(nil)

// TreeService renders node hierarchies through the walker.
type TreeService struct {
	nodeStore driven.NodeStore
	renderers driven.RendererRegistry
	templates driven.TemplateStore
	walker    *walker.Walker[domain.Node, string]
}

// NewTreeService creates a new tree service.
func NewTreeService(nodeStore driven.NodeStore, renderers driven.RendererRegistry) *TreeService {
	return &TreeService{
		nodeStore: nodeStore,
		renderers: renderers,
		walker:    NodeWalker(),
	}
}

// NodeWalker returns a walker keyed by node ID. Nodes without an ID cannot
// be grouped and abort the walk; an empty parent ID marks a top-level node.
func NodeWalker() *walker.Walker[domain.Node, string] {
	return walker.New(
		func(n domain.Node) (string, bool) { return n.ID, n.ID != "" },
		func(n domain.Node) (string, bool) { return n.ParentID, true },
	)
}

// Render renders the nodes of a stored collection.
func (s *TreeService) Render(
	ctx context.Context,
	collectionID string,
	opts domain.RenderOptions,
) (*domain.RenderResult, error) {
	if s.nodeStore == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Render")
	logger.Debug("Collection: %s", collectionID)

	nodes, err := s.nodeStore.List(ctx, collectionID)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	return s.RenderNodes(nodes, opts)
}

// RenderNodes renders nodes in the given order.
func (s *TreeService) RenderNodes(nodes []domain.Node, opts domain.RenderOptions) (*domain.RenderResult, error) {
	if s.renderers == nil {
		return nil, domain.ErrNotImplemented
	}
	if opts.Format == "" {
		opts.Format = domain.RenderFormatText
	}

	renderer, err := s.renderers.Get(opts.Format)
	if err != nil {
		return nil, err
	}

	logger.Debug("Nodes: %d, Depth: %d, Format: %s", len(nodes), opts.MaxDepth, opts.Format)
	if opts.MaxDepth < domain.DepthFlat {
		logger.Warn("Depth %d is below %d, nothing will be rendered", opts.MaxDepth, domain.DepthFlat)
	}

	session := renderer.NewSession(opts)
	page, err := s.walker.PagedWalk(nodes, opts.MaxDepth, walker.PageOptions{
		Page:            opts.Page,
		PerPage:         opts.PerPage,
		ReverseTopLevel: opts.ReverseTopLevel,
		ReverseChildren: opts.ReverseChildren,
	}, session)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	output, err := session.Finish(page.Output)
	if err != nil {
		return nil, fmt.Errorf("finishing %s output: %w", opts.Format, err)
	}
	if opts.Standalone {
		output, err = s.wrapPage(output, opts)
		if err != nil {
			return nil, err
		}
	}

	result := &domain.RenderResult{
		Output:    output,
		Format:    opts.Format,
		MaxPages:  page.MaxPages,
		TotalTop:  page.TotalTop,
		NodeCount: len(nodes),
	}
	if opts.Page >= 1 && opts.PerPage >= 1 {
		result.Page = opts.Page
	}

	logger.Debug("Top-level: %d, Pages: %d", result.TotalTop, result.MaxPages)
	return result, nil
}

// SetTemplateStore enables standalone page output.
func (s *TreeService) SetTemplateStore(store driven.TemplateStore) {
	s.templates = store
}

// wrapPage places output inside the page template for its format.
// Formats without a page template are returned unchanged.
func (s *TreeService) wrapPage(output string, opts domain.RenderOptions) (string, error) {
	var name, title string
	switch opts.Format {
	case domain.RenderFormatHTML:
		name = driven.TemplateHTMLPage
		title = html.EscapeString(pageTitle(opts))
	case domain.RenderFormatMarkdown:
		name = driven.TemplateMarkdownPage
		title = pageTitle(opts)
	default:
		return output, nil
	}

	if s.templates == nil {
		logger.Warn("No template store configured, standalone output skipped")
		return output, nil
	}

	tmpl, err := s.templates.Load(name)
	if err != nil {
		return "", fmt.Errorf("loading page template: %w", err)
	}

	r := strings.NewReplacer(
		driven.PlaceholderTitle, title,
		driven.PlaceholderTree, strings.TrimRight(output, "\n"),
	)
	return r.Replace(tmpl) + "\n", nil
}

func pageTitle(opts domain.RenderOptions) string {
	if opts.Title != "" {
		return opts.Title
	}
	return domain.DefaultPageTitle
}

// RootCount returns the number of top-level nodes in a collection.
func (s *TreeService) RootCount(ctx context.Context, collectionID string) (int, error) {
	if s.nodeStore == nil {
		return 0, domain.ErrNotImplemented
	}

	nodes, err := s.nodeStore.List(ctx, collectionID)
	if err != nil {
		return 0, fmt.Errorf("listing nodes: %w", err)
	}

	n, err := s.walker.RootCount(nodes)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return n, nil
}

// Formats returns the available render formats.
func (s *TreeService) Formats() []domain.RenderFormat {
	if s.renderers == nil {
		return nil
	}
	return s.renderers.Formats()
}
