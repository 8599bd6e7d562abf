package walker

import "strings"

// PageOptions controls PagedWalk. The zero value disables paging.
type PageOptions struct {
	// Page is 1-based. Values below 1 disable paging.
	Page int

	// PerPage is the number of top-level records per page.
	// Values below 1 disable paging.
	PerPage int

	// ReverseTopLevel reverses the order of top-level records within the page.
	ReverseTopLevel bool

	// ReverseChildren reverses the order of siblings below every parent.
	ReverseChildren bool
}

func (o PageOptions) paging() bool {
	return o.Page >= 1 && o.PerPage >= 1
}

// Page is the result of a PagedWalk.
type Page struct {
	// Output is the accumulated hook output.
	Output string

	// MaxPages is the number of pages available at the requested page size.
	// It is 1 when paging is disabled.
	MaxPages int

	// TotalTop is the number of records paged over: every record in flat
	// mode, top-level records otherwise.
	TotalTop int
}

// PagedWalk renders one page of top-level records with their descendants.
//
// On the last page, and only with unlimited depth, records whose parent was
// never rendered on any page are appended flat, the same way Walk does.
func (w *Walker[R, K]) PagedWalk(records []R, maxDepth int, opts PageOptions, hooks Hooks[R]) (Page, error) {
	result := Page{MaxPages: 1}
	if maxDepth < DepthFlat || len(records) == 0 {
		return result, nil
	}

	var out strings.Builder

	if maxDepth == DepthFlat {
		entries, err := w.collect(records, false)
		if err != nil {
			return Page{}, err
		}
		result.TotalTop = len(entries)
		start, end := bounds(opts, len(entries))
		if opts.paging() {
			result.MaxPages = ceilDiv(len(entries), opts.PerPage)
		}

		page := entries[start:end]
		if opts.ReverseTopLevel {
			page = reversed(page)
		}
		for _, e := range page {
			displayFlat(&out, e, hooks)
		}
		result.Output = out.String()
		return result, nil
	}

	entries, err := w.collect(records, true)
	if err != nil {
		return Page{}, err
	}

	top, children := partition(entries)
	result.TotalTop = len(top)
	if opts.paging() {
		result.MaxPages = ceilDiv(len(top), opts.PerPage)
	}
	if opts.ReverseChildren {
		children.reverse()
	}

	start, end := bounds(opts, len(top))
	lastPage := !opts.paging() || (opts.Page-1)*opts.PerPage+opts.PerPage >= len(top)

	// Descendants of earlier pages must not resurface as orphans.
	if lastPage {
		for _, e := range top[:start] {
			unsetChildren(e, children)
		}
	}

	page := top[start:end]
	if opts.ReverseTopLevel {
		page = reversed(page)
	}
	for _, e := range page {
		display(&out, e, children, maxDepth, 0, hooks)
	}

	if lastPage && maxDepth == DepthUnlimited && children.len() > 0 {
		for _, orphans := range children.remaining() {
			for _, e := range orphans {
				displayFlat(&out, e, hooks)
			}
		}
	}

	result.Output = out.String()
	return result, nil
}

// RootCount returns the number of records whose parent is the zero key.
func (w *Walker[R, K]) RootCount(records []R) (int, error) {
	entries, err := w.collect(records, true)
	if err != nil {
		return 0, err
	}
	var zero K
	n := 0
	for _, e := range entries {
		if e.parent == zero {
			n++
		}
	}
	return n, nil
}

// bounds clamps the page window to [0, total].
func bounds(opts PageOptions, total int) (int, int) {
	if !opts.paging() {
		return 0, total
	}
	start := (opts.Page - 1) * opts.PerPage
	end := start + opts.PerPage
	return min(start, total), min(end, total)
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
