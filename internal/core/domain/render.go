package domain

// Depth limits understood by RenderOptions.MaxDepth.
const (
	// DepthFlat renders every node at the top level, ignoring hierarchy.
	DepthFlat = -1

	// DepthUnlimited renders every level and appends orphans.
	DepthUnlimited = 0
)

// RenderOptions controls a single render call.
type RenderOptions struct {
	// MaxDepth is -1 for flat output, 0 for unlimited, or the number of levels.
	// Values below -1 produce empty output.
	MaxDepth int

	// Format selects the renderer.
	Format RenderFormat

	// IndentSize is the number of spaces per level (text format only).
	IndentSize int

	// Page is 1-based. Paging is disabled when Page < 1 or PerPage < 1.
	Page int

	// PerPage is the number of top-level nodes per page.
	PerPage int

	// ReverseTopLevel reverses top-level nodes within the page.
	ReverseTopLevel bool

	// ReverseChildren reverses siblings below every parent.
	ReverseChildren bool

	// Standalone wraps HTML and Markdown output in a page template.
	Standalone bool

	// Title is the page title used when Standalone is set.
	Title string
}

// DefaultPageTitle is used for standalone output when no title is given.
const DefaultPageTitle = "Tree"

// RenderResult is the output of a render call.
type RenderResult struct {
	// Output is the rendered tree.
	Output string

	// Format is the format that produced Output.
	Format RenderFormat

	// Page is the page that was rendered (0 when paging is disabled).
	Page int

	// MaxPages is the number of pages available.
	MaxPages int

	// TotalTop is the number of top-level nodes paged over.
	TotalTop int

	// NodeCount is the number of nodes fed to the renderer.
	NodeCount int
}
