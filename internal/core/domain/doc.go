// Package domain defines the core entities for arbor.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Node: A record in a hierarchy, linked to its parent by ID
//   - Collection: A named group of nodes rendered together
//   - RenderOptions: Per-call depth, format and paging controls
//   - RenderSettings: Persisted rendering defaults
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
