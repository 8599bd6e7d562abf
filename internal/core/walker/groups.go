package walker

// entry is a record with its keys already extracted.
type entry[R any, K comparable] struct {
	rec    R
	id     K
	parent K
}

// groups maps parent ids to their children, remembering the order in which
// parents were first seen so leftovers can be emitted deterministically.
// A groups value is owned by a single walk and never shared.
type groups[R any, K comparable] struct {
	order    []K
	byParent map[K][]entry[R, K]
}

func newGroups[R any, K comparable]() *groups[R, K] {
	return &groups[R, K]{byParent: make(map[K][]entry[R, K])}
}

func (g *groups[R, K]) add(parent K, e entry[R, K]) {
	if _, ok := g.byParent[parent]; !ok {
		g.order = append(g.order, parent)
	}
	g.byParent[parent] = append(g.byParent[parent], e)
}

func (g *groups[R, K]) has(parent K) bool {
	return len(g.byParent[parent]) > 0
}

// take detaches and returns the children of parent. A detached group cannot
// be visited again, which keeps cyclic input from recursing forever.
func (g *groups[R, K]) take(parent K) ([]entry[R, K], bool) {
	children, ok := g.byParent[parent]
	if ok {
		delete(g.byParent, parent)
	}
	return children, ok
}

func (g *groups[R, K]) len() int {
	return len(g.byParent)
}

// reverse flips the order of children inside every group.
func (g *groups[R, K]) reverse() {
	for parent, children := range g.byParent {
		g.byParent[parent] = reversed(children)
	}
}

// remaining returns the groups that were never visited, in first-seen order.
func (g *groups[R, K]) remaining() [][]entry[R, K] {
	var out [][]entry[R, K]
	for _, parent := range g.order {
		if children, ok := g.byParent[parent]; ok {
			out = append(out, children)
		}
	}
	return out
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
