package walker

import "strings"

// Depth values with special meaning.
const (
	// DepthFlat renders every record at depth 0, ignoring hierarchy.
	DepthFlat = -1

	// DepthUnlimited renders all levels and appends orphans.
	DepthUnlimited = 0
)

// Walker traverses parent-linked records of type R keyed by K.
// The zero value of K as a parent id marks a top-level record.
//
// A Walker holds no per-call state and is safe for concurrent use as long as
// each call gets its own hooks.
type Walker[R any, K comparable] struct {
	id     func(R) (K, bool)
	parent func(R) (K, bool)
}

// New creates a Walker. id and parent report false when the record lacks the
// field, which aborts the walk with a *MissingFieldError.
func New[R any, K comparable](id, parent func(R) (K, bool)) *Walker[R, K] {
	return &Walker[R, K]{id: id, parent: parent}
}

// Walk renders records up to maxDepth levels and returns the accumulated output.
//
// An invalid depth (below DepthFlat) or empty input returns "" without calling
// any hook. On error the partial output is discarded.
func (w *Walker[R, K]) Walk(records []R, maxDepth int, hooks Hooks[R]) (string, error) {
	page, err := w.PagedWalk(records, maxDepth, PageOptions{}, hooks)
	if err != nil {
		return "", err
	}
	return page.Output, nil
}

// collect extracts keys for every record. The parent is only read when the
// walk is hierarchical.
func (w *Walker[R, K]) collect(records []R, withParent bool) ([]entry[R, K], error) {
	entries := make([]entry[R, K], len(records))
	for i, rec := range records {
		id, ok := w.id(rec)
		if !ok {
			return nil, &MissingFieldError{Field: FieldID, Index: i}
		}
		e := entry[R, K]{rec: rec, id: id}
		if withParent {
			parent, ok := w.parent(rec)
			if !ok {
				return nil, &MissingFieldError{Field: FieldParent, Index: i}
			}
			e.parent = parent
		}
		entries[i] = e
	}
	return entries, nil
}

// partition splits entries into top-level records and child groups.
//
// When no entry has a zero parent, the first entry's parent is taken as the
// top-level marker instead, so a subtree fetched without its root still renders.
func partition[R any, K comparable](entries []entry[R, K]) ([]entry[R, K], *groups[R, K]) {
	var zero K
	top, children := split(entries, zero)
	if len(top) == 0 {
		top, children = split(entries, entries[0].parent)
	}
	return top, children
}

func split[R any, K comparable](entries []entry[R, K], marker K) ([]entry[R, K], *groups[R, K]) {
	var top []entry[R, K]
	children := newGroups[R, K]()
	for _, e := range entries {
		if e.parent == marker {
			top = append(top, e)
		} else {
			children.add(e.parent, e)
		}
	}
	return top, children
}

// display emits e and, depth permitting, its descendants.
func display[R any, K comparable](
	out *strings.Builder,
	e entry[R, K],
	children *groups[R, K],
	maxDepth, depth int,
	hooks Hooks[R],
) {
	hooks.StartNode(out, e.rec, depth, children.has(e.id))

	if maxDepth == DepthUnlimited || maxDepth > depth+1 {
		if kids, ok := children.take(e.id); ok {
			hooks.StartLevel(out, depth)
			for _, kid := range kids {
				display(out, kid, children, maxDepth, depth+1, hooks)
			}
			hooks.EndLevel(out, depth)
		}
	}

	hooks.EndNode(out, e.rec, depth)
}

// displayFlat emits e at depth 0 with no children.
func displayFlat[R any, K comparable](out *strings.Builder, e entry[R, K], hooks Hooks[R]) {
	hooks.StartNode(out, e.rec, 0, false)
	hooks.EndNode(out, e.rec, 0)
}

// unsetChildren drops every descendant of e from children.
func unsetChildren[R any, K comparable](e entry[R, K], children *groups[R, K]) {
	kids, ok := children.take(e.id)
	if !ok {
		return
	}
	for _, kid := range kids {
		unsetChildren(kid, children)
	}
}
