package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.RecordLoader = (*Registry)(nil)

// DecodeFunc turns raw file content into generic records.
type DecodeFunc func(data []byte) ([]map[string]any, error)

// Registry maps file extensions to decoders.
type Registry struct {
	decoders map[string]DecodeFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		decoders: make(map[string]DecodeFunc),
	}
}

// Register adds a decoder for an extension such as ".json".
func (r *Registry) Register(ext string, decode DecodeFunc) {
	r.decoders[strings.ToLower(ext)] = decode
}

// Supports reports whether a decoder is registered for the file's extension.
func (r *Registry) Supports(path string) bool {
	_, ok := r.decoders[extension(path)]
	return ok
}

// Extensions returns the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.decoders))
	for ext := range r.decoders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load reads and decodes the file at path.
// Records keep their file order.
func (r *Registry) Load(ctx context.Context, path string) ([]domain.Node, error) {
	decode, ok := r.decoders[extension(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, path)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	return toNodes(records)
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
