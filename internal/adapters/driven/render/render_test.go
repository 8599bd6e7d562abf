package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/core/walker"
)

func nodeWalker() *walker.Walker[domain.Node, string] {
	return walker.New(
		func(n domain.Node) (string, bool) { return n.ID, n.ID != "" },
		func(n domain.Node) (string, bool) { return n.ParentID, true },
	)
}

// sampleNodes is a small site menu:
//
//	Home
//	  About
//	    Team
//	  Contact
func sampleNodes() []domain.Node {
	return []domain.Node{
		{ID: "1", Title: "Home", URI: "/"},
		{ID: "2", ParentID: "1", Title: "About"},
		{ID: "3", ParentID: "2", Title: "Team"},
		{ID: "4", ParentID: "1", Title: "Contact"},
	}
}

func render(t *testing.T, r driven.Renderer, nodes []domain.Node, opts domain.RenderOptions) string {
	t.Helper()
	session := r.NewSession(opts)
	out, err := nodeWalker().Walk(nodes, opts.MaxDepth, session)
	require.NoError(t, err)
	final, err := session.Finish(out)
	require.NoError(t, err)
	return final
}

func TestText(t *testing.T) {
	out := render(t, NewText(), sampleNodes(), domain.RenderOptions{IndentSize: 2})

	assert.Equal(t, "Home\n  About\n    Team\n  Contact\n", out)
}

func TestText_IndentAndDepth(t *testing.T) {
	out := render(t, NewText(), sampleNodes(), domain.RenderOptions{IndentSize: 4, MaxDepth: 2})
	assert.Equal(t, "Home\n    About\n    Contact\n", out)

	out = render(t, NewText(), sampleNodes(), domain.RenderOptions{IndentSize: -3, MaxDepth: domain.DepthFlat})
	assert.Equal(t, "Home\nAbout\nTeam\nContact\n", out)
}

func TestText_LabelFallsBackToID(t *testing.T) {
	out := render(t, NewText(), []domain.Node{{ID: "untitled"}}, domain.RenderOptions{})

	assert.Equal(t, "untitled\n", out)
}

func TestHTML(t *testing.T) {
	out := render(t, NewHTML(), sampleNodes(), domain.RenderOptions{})

	want := "<ul class=\"tree\">\n" +
		"<li class=\"node has-children\" data-id=\"1\"><a href=\"/\">Home</a>\n" +
		"\t<ul class=\"children\">\n" +
		"\t<li class=\"node has-children\" data-id=\"2\">About\n" +
		"\t\t<ul class=\"children\">\n" +
		"\t\t<li class=\"node\" data-id=\"3\">Team</li>\n" +
		"\t\t</ul>\n" +
		"</li>\n" +
		"\t<li class=\"node\" data-id=\"4\">Contact</li>\n" +
		"\t</ul>\n" +
		"</li>\n" +
		"</ul>\n"
	assert.Equal(t, want, out)
}

func TestHTML_Escapes(t *testing.T) {
	nodes := []domain.Node{{ID: "x\"y", Title: "<b>Tom & Jerry</b>", URI: "/a?b=1&c=2"}}

	out := render(t, NewHTML(), nodes, domain.RenderOptions{})

	assert.Contains(t, out, "&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;")
	assert.Contains(t, out, "href=\"/a?b=1&amp;c=2\"")
	assert.Contains(t, out, "data-id=\"x&#34;y\"")
	assert.NotContains(t, out, "<b>")
}

func TestHTML_DepthLimitKeepsHasChildren(t *testing.T) {
	out := render(t, NewHTML(), sampleNodes(), domain.RenderOptions{MaxDepth: 1})

	assert.Equal(t, "<ul class=\"tree\">\n<li class=\"node has-children\" data-id=\"1\"><a href=\"/\">Home</a></li>\n</ul>\n", out)
}

func TestHTML_EmptyInput(t *testing.T) {
	assert.Empty(t, render(t, NewHTML(), nil, domain.RenderOptions{}))
}

func TestMarkdown(t *testing.T) {
	out := render(t, NewMarkdown(), sampleNodes(), domain.RenderOptions{})

	assert.Equal(t, "- [Home](/)\n  - About\n    - Team\n  - Contact\n", out)
}

func TestMarkdown_EscapesLabels(t *testing.T) {
	out := render(t, NewMarkdown(), []domain.Node{{ID: "1", Title: "[draft] *new*"}}, domain.RenderOptions{})

	assert.Equal(t, "- \\[draft\\] \\*new\\*\n", out)
}

func TestJSON(t *testing.T) {
	out := render(t, NewJSON(), sampleNodes(), domain.RenderOptions{})

	var tree []jsonNode
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	require.Len(t, tree, 1)

	home := tree[0]
	assert.Equal(t, "1", home.ID)
	assert.Equal(t, "/", home.URI)
	assert.Equal(t, 0, home.Depth)
	require.Len(t, home.Children, 2)
	assert.Equal(t, "About", home.Children[0].Title)
	assert.Equal(t, 1, home.Children[0].Depth)
	require.Len(t, home.Children[0].Children, 1)
	assert.Equal(t, "Team", home.Children[0].Children[0].Title)
	assert.Equal(t, 2, home.Children[0].Children[0].Depth)
	assert.Equal(t, "Contact", home.Children[1].Title)
	assert.Empty(t, home.Children[1].Children)
}

func TestJSON_OrphansAreRoots(t *testing.T) {
	nodes := append(sampleNodes(), domain.Node{ID: "9", ParentID: "missing", Title: "Lost"})

	out := render(t, NewJSON(), nodes, domain.RenderOptions{})

	var tree []jsonNode
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	require.Len(t, tree, 2)
	assert.Equal(t, "Lost", tree[1].Title)
}

func TestJSON_EmptyInputIsEmptyArray(t *testing.T) {
	out := render(t, NewJSON(), nil, domain.RenderOptions{})

	assert.Equal(t, "[]\n", out)
}

func TestSessionsAreIndependent(t *testing.T) {
	r := NewJSON()
	first := render(t, r, sampleNodes(), domain.RenderOptions{})
	second := render(t, r, sampleNodes(), domain.RenderOptions{})

	assert.Equal(t, first, second)
}

func TestRegistry(t *testing.T) {
	r := NewDefaultRegistry()

	assert.Equal(t, domain.AllRenderFormats(), r.Formats())

	for _, f := range domain.AllRenderFormats() {
		renderer, err := r.Get(f)
		require.NoError(t, err)
		assert.Equal(t, f, renderer.Format())
	}

	_, err := r.Get("yaml")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Formats())

	r.Register(NewText())
	assert.Equal(t, []domain.RenderFormat{domain.RenderFormatText}, r.Formats())
}
