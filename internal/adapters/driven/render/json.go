package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// JSON renders a nested array of node objects. Nothing is written while
// walking; the tree is built on a stack and marshalled in Finish.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Format returns domain.RenderFormatJSON.
func (*JSON) Format() domain.RenderFormat {
	return domain.RenderFormatJSON
}

// NewSession starts a JSON render.
func (*JSON) NewSession(domain.RenderOptions) driven.RenderSession {
	return &jsonSession{roots: []*jsonNode{}}
}

// jsonNode is the serialised form of a rendered node.
type jsonNode struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	URI      string         `json:"uri,omitempty"`
	Depth    int            `json:"depth"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Children []*jsonNode    `json:"children"`
}

type jsonSession struct {
	roots []*jsonNode
	stack []*jsonNode
}

func (s *jsonSession) StartLevel(*strings.Builder, int) {}

func (s *jsonSession) EndLevel(*strings.Builder, int) {}

func (s *jsonSession) StartNode(_ *strings.Builder, node domain.Node, depth int, _ bool) {
	n := &jsonNode{
		ID:       node.ID,
		Title:    node.Title,
		URI:      node.URI,
		Depth:    depth,
		Metadata: node.Metadata,
		Children: []*jsonNode{},
	}
	if len(s.stack) == 0 {
		s.roots = append(s.roots, n)
	} else {
		parent := s.stack[len(s.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	s.stack = append(s.stack, n)
}

func (s *jsonSession) EndNode(*strings.Builder, domain.Node, int) {
	s.stack = s.stack[:len(s.stack)-1]
}

// Finish ignores the walker output and returns the marshalled tree.
func (s *jsonSession) Finish(string) (string, error) {
	data, err := json.MarshalIndent(s.roots, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshalling tree: %w", err)
	}
	return string(data) + "\n", nil
}
