package render

import (
	"html"
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// HTML renders nested <ul>/<li> lists. Nested lists carry class "children"
// and items with children carry class "has-children".
type HTML struct{}

// NewHTML creates an HTML renderer.
func NewHTML() *HTML {
	return &HTML{}
}

// Format returns domain.RenderFormatHTML.
func (*HTML) Format() domain.RenderFormat {
	return domain.RenderFormatHTML
}

// NewSession starts an HTML render.
func (*HTML) NewSession(domain.RenderOptions) driven.RenderSession {
	return &htmlSession{}
}

type htmlSession struct{}

func (s *htmlSession) StartLevel(out *strings.Builder, depth int) {
	out.WriteByte('\n')
	out.WriteString(tabs(depth + 1))
	out.WriteString("<ul class=\"children\">\n")
}

func (s *htmlSession) EndLevel(out *strings.Builder, depth int) {
	out.WriteString(tabs(depth + 1))
	out.WriteString("</ul>\n")
}

func (s *htmlSession) StartNode(out *strings.Builder, node domain.Node, depth int, hasChildren bool) {
	class := "node"
	if hasChildren {
		class += " has-children"
	}

	out.WriteString(tabs(depth))
	out.WriteString("<li class=\"" + class + "\" data-id=\"" + html.EscapeString(node.ID) + "\">")
	if node.URI != "" {
		out.WriteString("<a href=\"" + html.EscapeString(node.URI) + "\">")
		out.WriteString(html.EscapeString(node.Label()))
		out.WriteString("</a>")
	} else {
		out.WriteString(html.EscapeString(node.Label()))
	}
}

func (s *htmlSession) EndNode(out *strings.Builder, _ domain.Node, _ int) {
	out.WriteString("</li>\n")
}

// Finish wraps the items in the outer list.
func (s *htmlSession) Finish(output string) (string, error) {
	if output == "" {
		return "", nil
	}
	return "<ul class=\"tree\">\n" + output + "</ul>\n", nil
}

func tabs(n int) string {
	return strings.Repeat("\t", n)
}
