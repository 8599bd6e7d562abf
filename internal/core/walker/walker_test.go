package walker

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID            int
	Parent        int
	missingID     bool
	missingParent bool
}

func rec(id, parent int) testRecord {
	return testRecord{ID: id, Parent: parent}
}

func newTestWalker() *Walker[testRecord, int] {
	return New(
		func(r testRecord) (int, bool) { return r.ID, !r.missingID },
		func(r testRecord) (int, bool) { return r.Parent, !r.missingParent },
	)
}

// traceHooks renders "(id@depth" for a node start, "*" when it has children,
// ")" for a node end and "[" / "]" around child levels.
type traceHooks struct {
	calls int
}

func (h *traceHooks) StartLevel(out *strings.Builder, _ int) {
	h.calls++
	out.WriteString("[")
}

func (h *traceHooks) EndLevel(out *strings.Builder, _ int) {
	h.calls++
	out.WriteString("]")
}

func (h *traceHooks) StartNode(out *strings.Builder, r testRecord, depth int, hasChildren bool) {
	h.calls++
	fmt.Fprintf(out, "(%d@%d", r.ID, depth)
	if hasChildren {
		out.WriteString("*")
	}
}

func (h *traceHooks) EndNode(out *strings.Builder, _ testRecord, _ int) {
	h.calls++
	out.WriteString(")")
}

func sampleRecords() []testRecord {
	return []testRecord{rec(1, 0), rec(2, 1), rec(3, 1)}
}

func TestWalk_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		records  []testRecord
		maxDepth int
		want     string
	}{
		{
			name:     "unlimited depth nests children in one level",
			records:  sampleRecords(),
			maxDepth: DepthUnlimited,
			want:     "(1@0*[(2@1)(3@1)])",
		},
		{
			name:     "depth one suppresses children",
			records:  sampleRecords(),
			maxDepth: 1,
			want:     "(1@0*)",
		},
		{
			name:     "flat keeps input order without levels",
			records:  sampleRecords(),
			maxDepth: DepthFlat,
			want:     "(1@0)(2@0)(3@0)",
		},
		{
			name:     "fallback treats shared missing parent as top level",
			records:  []testRecord{rec(1, 99), rec(2, 99), rec(3, 99)},
			maxDepth: DepthUnlimited,
			want:     "(1@0)(2@0)(3@0)",
		},
		{
			name:     "fallback uses first record parent as marker",
			records:  []testRecord{rec(2, 1), rec(3, 2), rec(4, 1)},
			maxDepth: DepthUnlimited,
			want:     "(2@0*[(3@1)])(4@0)",
		},
		{
			name:     "orphans appended after main tree",
			records:  []testRecord{rec(1, 0), rec(5, 99), rec(6, 5)},
			maxDepth: DepthUnlimited,
			want:     "(1@0)(5@0)(6@0)",
		},
		{
			name:     "orphans skipped when depth is limited",
			records:  []testRecord{rec(1, 0), rec(5, 99)},
			maxDepth: 3,
			want:     "(1@0)",
		},
		{
			name:     "depth two stops at second level",
			records:  []testRecord{rec(1, 0), rec(2, 1), rec(3, 2)},
			maxDepth: 2,
			want:     "(1@0*[(2@1*)])",
		},
		{
			name:     "children follow input order not id order",
			records:  []testRecord{rec(1, 0), rec(9, 1), rec(4, 1), rec(7, 1)},
			maxDepth: DepthUnlimited,
			want:     "(1@0*[(9@1)(4@1)(7@1)])",
		},
		{
			name:     "children declared before parent",
			records:  []testRecord{rec(2, 1), rec(1, 0)},
			maxDepth: DepthUnlimited,
			want:     "(1@0*[(2@1)])",
		},
		{
			name:     "two node cycle with a root renders each once",
			records:  []testRecord{rec(1, 2), rec(2, 1), rec(3, 0)},
			maxDepth: DepthUnlimited,
			want:     "(3@0)(1@0)(2@0)",
		},
		{
			name:     "two node cycle without a root",
			records:  []testRecord{rec(1, 2), rec(2, 1)},
			maxDepth: DepthUnlimited,
			want:     "(1@0*[(2@1)])",
		},
		{
			name:     "self parent becomes orphan",
			records:  []testRecord{rec(1, 0), rec(2, 2)},
			maxDepth: DepthUnlimited,
			want:     "(1@0)(2@0)",
		},
		{
			name:     "duplicate id does not recurse forever",
			records:  []testRecord{rec(1, 0), rec(2, 1), rec(1, 2)},
			maxDepth: DepthUnlimited,
			want:     "(1@0*[(2@1*[(1@2)])])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newTestWalker().Walk(tt.records, tt.maxDepth, &traceHooks{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestWalk_EmptyInputCallsNoHooks(t *testing.T) {
	hooks := &traceHooks{}

	out, err := newTestWalker().Walk(nil, DepthUnlimited, hooks)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, hooks.calls)
}

func TestWalk_InvalidDepthCallsNoHooks(t *testing.T) {
	hooks := &traceHooks{}

	out, err := newTestWalker().Walk(sampleRecords(), -2, hooks)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Zero(t, hooks.calls)
}

func TestWalk_MissingID(t *testing.T) {
	records := sampleRecords()
	records[1].missingID = true

	for _, depth := range []int{DepthFlat, DepthUnlimited, 2} {
		t.Run(fmt.Sprintf("depth %d", depth), func(t *testing.T) {
			out, err := newTestWalker().Walk(records, depth, &traceHooks{})

			require.Error(t, err)
			assert.Empty(t, out)
			assert.True(t, errors.Is(err, ErrMissingField))

			var mfe *MissingFieldError
			require.True(t, errors.As(err, &mfe))
			assert.Equal(t, FieldID, mfe.Field)
			assert.Equal(t, 1, mfe.Index)
		})
	}
}

func TestWalk_MissingParent(t *testing.T) {
	records := sampleRecords()
	records[2].missingParent = true

	_, err := newTestWalker().Walk(records, DepthUnlimited, &traceHooks{})

	var mfe *MissingFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, FieldParent, mfe.Field)
	assert.Equal(t, 2, mfe.Index)
	assert.Contains(t, err.Error(), `missing field "parent"`)
}

func TestWalk_FlatIgnoresMissingParent(t *testing.T) {
	records := sampleRecords()
	records[2].missingParent = true

	out, err := newTestWalker().Walk(records, DepthFlat, &traceHooks{})

	require.NoError(t, err)
	assert.Equal(t, "(1@0)(2@0)(3@0)", out)
}

func TestWalk_EveryRecordRenderedOnce(t *testing.T) {
	// Parents point all over the place, including at ids that do not exist
	// and back into cycles.
	var records []testRecord
	for i := 1; i <= 200; i++ {
		records = append(records, rec(i, (i*31+7)%250))
	}
	records = append(records, rec(201, 0))

	seen := make(map[int]int)
	hooks := HookFuncs[testRecord]{
		OnNodeStart: func(_ *strings.Builder, r testRecord, _ int, _ bool) {
			seen[r.ID]++
		},
	}

	_, err := newTestWalker().Walk(records, DepthUnlimited, hooks)
	require.NoError(t, err)

	require.Len(t, seen, len(records))
	for id, n := range seen {
		assert.Equal(t, 1, n, "record %d rendered %d times", id, n)
	}
}

func TestWalk_DepthNeverExceedsLimit(t *testing.T) {
	var records []testRecord
	records = append(records, rec(1, 0))
	for i := 2; i <= 20; i++ {
		records = append(records, rec(i, i-1))
	}

	deepest := -1
	hooks := HookFuncs[testRecord]{
		OnNodeStart: func(_ *strings.Builder, _ testRecord, depth int, _ bool) {
			deepest = max(deepest, depth)
		},
	}

	_, err := newTestWalker().Walk(records, 5, hooks)
	require.NoError(t, err)
	assert.Equal(t, 4, deepest)
}

func TestWalk_LevelHooksBalanced(t *testing.T) {
	records := []testRecord{
		rec(1, 0), rec(2, 1), rec(3, 2), rec(4, 1), rec(5, 0), rec(6, 5),
	}
	open := 0
	hooks := HookFuncs[testRecord]{
		OnLevelStart: func(_ *strings.Builder, _ int) { open++ },
		OnLevelEnd: func(_ *strings.Builder, _ int) {
			open--
			assert.GreaterOrEqual(t, open, 0)
		},
	}

	_, err := newTestWalker().Walk(records, DepthUnlimited, hooks)
	require.NoError(t, err)
	assert.Zero(t, open)
}

func TestWalk_StringKeys(t *testing.T) {
	type node struct{ id, parent, title string }
	w := New(
		func(n node) (string, bool) { return n.id, n.id != "" },
		func(n node) (string, bool) { return n.parent, true },
	)
	nodes := []node{
		{id: "a", title: "Home"},
		{id: "b", parent: "a", title: "About"},
	}
	hooks := HookFuncs[node]{
		OnNodeStart: func(out *strings.Builder, n node, depth int, _ bool) {
			out.WriteString(strings.Repeat("-", depth) + n.title + "\n")
		},
	}

	out, err := w.Walk(nodes, DepthUnlimited, hooks)

	require.NoError(t, err)
	assert.Equal(t, "Home\n-About\n", out)
}

func TestWalk_ConcurrentCalls(t *testing.T) {
	w := newTestWalker()
	var wg sync.WaitGroup
	results := make([]string, 16)

	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := w.Walk(sampleRecords(), DepthUnlimited, &traceHooks{})
			assert.NoError(t, err)
			results[i] = out
		}(i)
	}
	wg.Wait()

	for _, out := range results {
		assert.Equal(t, "(1@0*[(2@1)(3@1)])", out)
	}
}

func TestHookFuncs_NilFieldsAreNoOps(t *testing.T) {
	out, err := newTestWalker().Walk(sampleRecords(), DepthUnlimited, HookFuncs[testRecord]{})

	require.NoError(t, err)
	assert.Empty(t, out)
}
