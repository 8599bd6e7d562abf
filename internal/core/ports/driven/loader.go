package driven

import (
	"context"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// RecordLoader reads nodes from a file.
type RecordLoader interface {
	// Supports reports whether the loader understands the file at path.
	Supports(path string) bool

	// Load parses the file and returns its nodes in file order.
	// Returns domain.ErrUnsupportedFileType for files it does not support.
	Load(ctx context.Context, path string) ([]domain.Node, error)
}

// FileWatcher reports changes to a file.
type FileWatcher interface {
	// Watch emits on the returned channel every time the file is written.
	// The channel is closed when ctx is cancelled.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
