package render

import (
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// markdownIndent is the nesting step CommonMark needs for "- " items.
const markdownIndent = "  "

var markdownEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"[", "\\[",
	"]", "\\]",
	"*", "\\*",
	"_", "\\_",
)

// Markdown renders a nested bullet list. Nodes with a URI become links.
type Markdown struct{}

// NewMarkdown creates a Markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Format returns domain.RenderFormatMarkdown.
func (*Markdown) Format() domain.RenderFormat {
	return domain.RenderFormatMarkdown
}

// NewSession starts a Markdown render.
func (*Markdown) NewSession(domain.RenderOptions) driven.RenderSession {
	return &markdownSession{}
}

type markdownSession struct{}

func (s *markdownSession) StartLevel(*strings.Builder, int) {}

func (s *markdownSession) EndLevel(*strings.Builder, int) {}

func (s *markdownSession) StartNode(out *strings.Builder, node domain.Node, depth int, _ bool) {
	out.WriteString(strings.Repeat(markdownIndent, depth))
	out.WriteString("- ")
	label := markdownEscaper.Replace(node.Label())
	if node.URI != "" {
		out.WriteString("[" + label + "](" + node.URI + ")")
	} else {
		out.WriteString(label)
	}
	out.WriteByte('\n')
}

func (s *markdownSession) EndNode(*strings.Builder, domain.Node, int) {}

func (s *markdownSession) Finish(output string) (string, error) {
	return output, nil
}
