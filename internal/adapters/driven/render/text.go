package render

import (
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Text renders one line per node, indented by depth.
type Text struct{}

// NewText creates a text renderer.
func NewText() *Text {
	return &Text{}
}

// Format returns domain.RenderFormatText.
func (*Text) Format() domain.RenderFormat {
	return domain.RenderFormatText
}

// NewSession starts a text render.
func (*Text) NewSession(opts domain.RenderOptions) driven.RenderSession {
	return &textSession{indent: strings.Repeat(" ", max(opts.IndentSize, 0))}
}

type textSession struct {
	indent string
}

func (s *textSession) StartLevel(*strings.Builder, int) {}

func (s *textSession) EndLevel(*strings.Builder, int) {}

func (s *textSession) StartNode(out *strings.Builder, node domain.Node, depth int, _ bool) {
	out.WriteString(strings.Repeat(s.indent, depth))
	out.WriteString(node.Label())
	out.WriteByte('\n')
}

func (s *textSession) EndNode(*strings.Builder, domain.Node, int) {}

func (s *textSession) Finish(output string) (string, error) {
	return output, nil
}
