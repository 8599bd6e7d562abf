package walker

import "strings"

// Hooks receives traversal events and appends output to out.
// Calls arrive sequentially, in depth-first input order.
type Hooks[R any] interface {
	// StartLevel opens a group of children below a node at depth.
	StartLevel(out *strings.Builder, depth int)

	// EndLevel closes the group opened by the matching StartLevel.
	EndLevel(out *strings.Builder, depth int)

	// StartNode emits a record. hasChildren is true when the record has
	// children in the input, even if depth limits keep them from rendering.
	StartNode(out *strings.Builder, rec R, depth int, hasChildren bool)

	// EndNode closes a record after its children, if any, were emitted.
	EndNode(out *strings.Builder, rec R, depth int)
}

// HookFuncs adapts plain functions to Hooks. Nil fields are no-ops, so callers
// only supply the callbacks their format needs.
type HookFuncs[R any] struct {
	OnLevelStart func(out *strings.Builder, depth int)
	OnLevelEnd   func(out *strings.Builder, depth int)
	OnNodeStart  func(out *strings.Builder, rec R, depth int, hasChildren bool)
	OnNodeEnd    func(out *strings.Builder, rec R, depth int)
}

var _ Hooks[struct{}] = HookFuncs[struct{}]{}

// StartLevel calls OnLevelStart if set.
func (h HookFuncs[R]) StartLevel(out *strings.Builder, depth int) {
	if h.OnLevelStart != nil {
		h.OnLevelStart(out, depth)
	}
}

// EndLevel calls OnLevelEnd if set.
func (h HookFuncs[R]) EndLevel(out *strings.Builder, depth int) {
	if h.OnLevelEnd != nil {
		h.OnLevelEnd(out, depth)
	}
}

// StartNode calls OnNodeStart if set.
func (h HookFuncs[R]) StartNode(out *strings.Builder, rec R, depth int, hasChildren bool) {
	if h.OnNodeStart != nil {
		h.OnNodeStart(out, rec, depth, hasChildren)
	}
}

// EndNode calls OnNodeEnd if set.
func (h HookFuncs[R]) EndNode(out *strings.Builder, rec R, depth int) {
	if h.OnNodeEnd != nil {
		h.OnNodeEnd(out, rec, depth)
	}
}
