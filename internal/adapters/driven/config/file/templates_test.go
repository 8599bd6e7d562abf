package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

func TestTemplateStore_ImplementsInterface(t *testing.T) {
	var _ driven.TemplateStore = (*TemplateStore)(nil)
}

func TestNewTemplateStore_WithCustomDir(t *testing.T) {
	dir := t.TempDir()

	store, err := NewTemplateStore(dir)

	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}

func TestNewTemplateStore_DefaultDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("cannot determine home directory")
	}

	store, err := NewTemplateStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".arbor", "templates"), store.Dir())
}

func TestTemplateStore_Load_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTemplateStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.TemplateHTMLPage)
	require.NoError(t, err)

	for _, f := range []string{driven.TemplateHTMLPage, driven.TemplateMarkdownPage} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, "expected file %s to exist", f)
	}
}

func TestTemplateStore_Load_DefaultsHavePlaceholders(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{driven.TemplateHTMLPage, driven.TemplateMarkdownPage} {
		tmpl, err := store.Load(name)
		require.NoError(t, err)
		assert.Contains(t, tmpl, driven.PlaceholderTitle)
		assert.Contains(t, tmpl, driven.PlaceholderTree)
	}
}

func TestTemplateStore_Load_ReturnsCustomContent(t *testing.T) {
	dir := t.TempDir()
	custom := "<main>{{tree}}</main>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.TemplateHTMLPage), []byte(custom), 0600))

	store, err := NewTemplateStore(dir)
	require.NoError(t, err)

	tmpl, err := store.Load(driven.TemplateHTMLPage)

	require.NoError(t, err)
	assert.Equal(t, custom, tmpl)
}

func TestTemplateStore_Load_FallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTemplateStore(dir)
	require.NoError(t, err)

	_, _ = store.Load(driven.TemplateMarkdownPage)
	require.NoError(t, os.Remove(filepath.Join(dir, driven.TemplateMarkdownPage)))
	store.Reload()

	tmpl, err := store.Load(driven.TemplateMarkdownPage)

	require.NoError(t, err)
	assert.Equal(t, defaultTemplates[driven.TemplateMarkdownPage], tmpl)
}

func TestTemplateStore_Load_UnknownTemplate(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("page.rst")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "page.rst")
}

func TestTemplateStore_Reload_ClearsCache(t *testing.T) {
	dir := t.TempDir()
	store, err := NewTemplateStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.TemplateHTMLPage)
	require.NoError(t, err)

	modified := "<div>{{tree}}</div>"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.TemplateHTMLPage), []byte(modified), 0600))

	cached, err := store.Load(driven.TemplateHTMLPage)
	require.NoError(t, err)
	assert.NotEqual(t, modified, cached)

	store.Reload()
	fresh, err := store.Load(driven.TemplateHTMLPage)
	require.NoError(t, err)
	assert.Equal(t, modified, fresh)
}

func TestTemplateStore_Load_ConcurrentAccess(t *testing.T) {
	store, err := NewTemplateStore(t.TempDir())
	require.NoError(t, err)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]string, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tmpl, err := store.Load(driven.TemplateHTMLPage)
			assert.NoError(t, err)
			results[i] = tmpl
		}(i)
	}
	wg.Wait()

	for _, tmpl := range results {
		assert.Equal(t, results[0], tmpl)
	}
}

func TestTemplateStore_DoesNotOverwriteExistingFiles(t *testing.T) {
	dir := t.TempDir()
	custom := "pre-existing {{tree}}"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.TemplateMarkdownPage), []byte(custom), 0600))

	store, err := NewTemplateStore(dir)
	require.NoError(t, err)
	_, _ = store.Load(driven.TemplateHTMLPage)

	data, err := os.ReadFile(filepath.Join(dir, driven.TemplateMarkdownPage))
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}
