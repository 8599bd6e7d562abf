package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedRecords returns five roots (1..5), each with one child (11..15).
func pagedRecords() []testRecord {
	var records []testRecord
	for i := 1; i <= 5; i++ {
		records = append(records, rec(i, 0), rec(10+i, i))
	}
	return records
}

func TestPagedWalk_Pages(t *testing.T) {
	tests := []struct {
		name string
		opts PageOptions
		want string
	}{
		{
			name: "first page",
			opts: PageOptions{Page: 1, PerPage: 2},
			want: "(1@0*[(11@1)])(2@0*[(12@1)])",
		},
		{
			name: "middle page",
			opts: PageOptions{Page: 2, PerPage: 2},
			want: "(3@0*[(13@1)])(4@0*[(14@1)])",
		},
		{
			name: "last partial page",
			opts: PageOptions{Page: 3, PerPage: 2},
			want: "(5@0*[(15@1)])",
		},
		{
			name: "page past the end",
			opts: PageOptions{Page: 9, PerPage: 2},
			want: "",
		},
		{
			name: "reverse top level within page",
			opts: PageOptions{Page: 1, PerPage: 2, ReverseTopLevel: true},
			want: "(2@0*[(12@1)])(1@0*[(11@1)])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := newTestWalker().PagedWalk(pagedRecords(), DepthUnlimited, tt.opts, &traceHooks{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Output)
			assert.Equal(t, 3, page.MaxPages)
			assert.Equal(t, 5, page.TotalTop)
		})
	}
}

func TestPagedWalk_NoPagingMatchesWalk(t *testing.T) {
	records := append(pagedRecords(), rec(42, 77))
	w := newTestWalker()

	for _, opts := range []PageOptions{{}, {Page: 0, PerPage: 3}, {Page: 2, PerPage: 0}} {
		page, err := w.PagedWalk(records, DepthUnlimited, opts, &traceHooks{})
		require.NoError(t, err)

		out, err := w.Walk(records, DepthUnlimited, &traceHooks{})
		require.NoError(t, err)

		assert.Equal(t, out, page.Output)
		assert.Equal(t, 1, page.MaxPages)
	}
}

func TestPagedWalk_OrphansOnlyOnLastPage(t *testing.T) {
	records := append(pagedRecords(), rec(42, 77))
	w := newTestWalker()

	first, err := w.PagedWalk(records, DepthUnlimited, PageOptions{Page: 1, PerPage: 2}, &traceHooks{})
	require.NoError(t, err)
	assert.NotContains(t, first.Output, "(42@")

	last, err := w.PagedWalk(records, DepthUnlimited, PageOptions{Page: 3, PerPage: 2}, &traceHooks{})
	require.NoError(t, err)
	assert.Equal(t, "(5@0*[(15@1)])(42@0)", last.Output)
}

func TestPagedWalk_EarlierPagesDoNotLeakAsOrphans(t *testing.T) {
	records := []testRecord{
		rec(1, 0), rec(2, 0), rec(3, 1), rec(4, 3),
	}

	page, err := newTestWalker().PagedWalk(records, DepthUnlimited, PageOptions{Page: 2, PerPage: 1}, &traceHooks{})

	require.NoError(t, err)
	assert.Equal(t, "(2@0)", page.Output)
	assert.Equal(t, 2, page.MaxPages)
}

func TestPagedWalk_ReverseChildren(t *testing.T) {
	page, err := newTestWalker().PagedWalk(
		sampleRecords(), DepthUnlimited, PageOptions{ReverseChildren: true}, &traceHooks{})

	require.NoError(t, err)
	assert.Equal(t, "(1@0*[(3@1)(2@1)])", page.Output)
}

func TestPagedWalk_Flat(t *testing.T) {
	w := newTestWalker()

	page, err := w.PagedWalk(pagedRecords(), DepthFlat, PageOptions{Page: 2, PerPage: 4}, &traceHooks{})
	require.NoError(t, err)
	assert.Equal(t, "(3@0)(13@0)(4@0)(14@0)", page.Output)
	assert.Equal(t, 3, page.MaxPages)
	assert.Equal(t, 10, page.TotalTop)

	page, err = w.PagedWalk(pagedRecords(), DepthFlat, PageOptions{Page: 1, PerPage: 3, ReverseTopLevel: true}, &traceHooks{})
	require.NoError(t, err)
	assert.Equal(t, "(2@0)(11@0)(1@0)", page.Output)
}

func TestPagedWalk_InvalidInput(t *testing.T) {
	w := newTestWalker()

	page, err := w.PagedWalk(nil, DepthUnlimited, PageOptions{Page: 1, PerPage: 2}, &traceHooks{})
	require.NoError(t, err)
	assert.Empty(t, page.Output)

	page, err = w.PagedWalk(pagedRecords(), -5, PageOptions{Page: 1, PerPage: 2}, &traceHooks{})
	require.NoError(t, err)
	assert.Empty(t, page.Output)
}

func TestPagedWalk_MissingField(t *testing.T) {
	records := pagedRecords()
	records[3].missingParent = true

	_, err := newTestWalker().PagedWalk(records, DepthUnlimited, PageOptions{Page: 1, PerPage: 2}, &traceHooks{})

	assert.ErrorIs(t, err, ErrMissingField)
}

func TestRootCount(t *testing.T) {
	w := newTestWalker()

	n, err := w.RootCount(pagedRecords())
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = w.RootCount([]testRecord{rec(1, 99)})
	require.NoError(t, err)
	assert.Zero(t, n, "fallback roots are not counted")

	_, err = w.RootCount([]testRecord{{ID: 1, missingParent: true}})
	assert.ErrorIs(t, err, ErrMissingField)
}
