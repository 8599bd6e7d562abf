package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateStore = (*TemplateStore)(nil)

// TemplateStore loads page templates from user-editable files on disk,
// falling back to embedded defaults.
//
// The directory and default files are created lazily on the first Load.
type TemplateStore struct {
	mu       sync.RWMutex
	dir      string
	cache    map[string]string
	initOnce sync.Once
	initErr  error
}

var defaultTemplates = map[string]string{
	driven.TemplateHTMLPage: `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{title}}</title>
</head>
<body>
<h1>{{title}}</h1>
{{tree}}
</body>
</html>`,

	driven.TemplateMarkdownPage: `# {{title}}

{{tree}}`,
}

// NewTemplateStore creates a new file-based template store.
// If dir is empty, defaults to ~/.arbor/templates/.
func NewTemplateStore(dir string) (*TemplateStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".arbor", "templates")
	}

	return &TemplateStore{
		dir:   dir,
		cache: make(map[string]string),
	}, nil
}

// Load returns the named template. Files on disk win over the defaults.
func (s *TemplateStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if tmpl, ok := defaultTemplates[name]; ok {
			return tmpl, nil
		}
		return "", fmt.Errorf("template store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if tmpl, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return tmpl, nil
	}
	s.mu.RUnlock()

	tmpl, err := s.loadFromFile(name)
	if err != nil {
		if fallback, ok := defaultTemplates[name]; ok {
			return fallback, nil
		}
		return "", fmt.Errorf("load template %q: %w", name, err)
	}

	s.mu.Lock()
	if cached, ok := s.cache[name]; ok {
		tmpl = cached
	} else {
		s.cache[name] = tmpl
	}
	s.mu.Unlock()

	return tmpl, nil
}

// Reload clears the template cache, forcing fresh loads from disk.
func (s *TemplateStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the template directory path.
func (s *TemplateStore) Dir() string {
	return s.dir
}

// initialise creates the template directory and writes any missing defaults.
func (s *TemplateStore) initialise() {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		s.initErr = fmt.Errorf("create template directory: %w", err)
		return
	}

	for name, content := range defaultTemplates {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content+"\n"), 0600); err != nil {
				s.initErr = fmt.Errorf("create default template %q: %w", name, err)
				return
			}
		}
	}
}

func (s *TemplateStore) loadFromFile(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
