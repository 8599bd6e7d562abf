// Package walker renders flat collections of parent-linked records as nested output.
//
// A Walker reads records only through a pair of key-extraction functions and
// delegates all output to a Hooks implementation. It owns traversal, never
// formatting:
//
//	w := walker.New(
//		func(n domain.Node) (string, bool) { return n.ID, n.ID != "" },
//		func(n domain.Node) (string, bool) { return n.ParentID, true },
//	)
//	out, err := w.Walk(nodes, 0, hooks)
//
// # Depth
//
//   - -1 renders every record flat, in input order, ignoring hierarchy
//   - 0 renders all levels, then appends orphans
//   - N > 0 renders at most N levels
//
// Any depth below -1, or an empty record slice, yields empty output and no error.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package walker
