package collections

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/arbor/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/arbor/internal/core/domain"
)

// MockCollectionService implements driving.CollectionService for testing.
type MockCollectionService struct {
	ListFunc func(ctx context.Context) ([]domain.Collection, error)
}

func (m *MockCollectionService) Create(_ context.Context, name, _ string) (*domain.Collection, error) {
	return &domain.Collection{ID: name, Name: name}, nil
}

func (m *MockCollectionService) Get(_ context.Context, id string) (*domain.Collection, error) {
	return &domain.Collection{ID: id}, nil
}

func (m *MockCollectionService) List(ctx context.Context) ([]domain.Collection, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Collection{}, nil
}

func (m *MockCollectionService) Remove(_ context.Context, _ string, _ bool) error {
	return nil
}

func sampleCollections() []domain.Collection {
	return []domain.Collection{
		{ID: "footer", Name: "Footer"},
		{ID: "menu", Name: "Main menu", Description: "top navigation"},
	}
}

func loadedView(t *testing.T) *View {
	t.Helper()
	view := NewView(nil, nil, &MockCollectionService{})
	view.Update(messages.CollectionsLoaded{Collections: sampleCollections()})
	return view
}

func TestNewView(t *testing.T) {
	view := NewView(nil, nil, nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.NotNil(t, view.keymap)
	assert.False(t, view.ready)
	assert.Empty(t, view.Collections())
}

func TestView_Init(t *testing.T) {
	mock := &MockCollectionService{
		ListFunc: func(context.Context) ([]domain.Collection, error) {
			return sampleCollections(), nil
		},
	}
	view := NewView(nil, nil, mock)

	cmd := view.Init()

	require.NotNil(t, cmd)
	assert.True(t, view.loading)
	loaded, ok := cmd().(messages.CollectionsLoaded)
	require.True(t, ok)
	assert.Len(t, loaded.Collections, 2)
	assert.NoError(t, loaded.Err)
}

func TestView_Init_NilService(t *testing.T) {
	view := NewView(nil, nil, nil)

	loaded, ok := view.Init()().(messages.CollectionsLoaded)

	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, errNoService)
}

func TestView_Update_CollectionsLoaded(t *testing.T) {
	view := loadedView(t)

	assert.False(t, view.loading)
	assert.Len(t, view.Collections(), 2)
	assert.Contains(t, view.View(), "Main menu")
	assert.Contains(t, view.View(), "Footer")
}

func TestView_Update_LoadError(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.Update(messages.CollectionsLoaded{Err: errors.New("database locked")})

	assert.EqualError(t, view.Err(), "database locked")
	assert.Contains(t, view.View(), "Error: database locked")
}

func TestView_Update_Empty(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.Update(messages.CollectionsLoaded{})

	assert.Contains(t, view.View(), "No collections")
}

func TestView_Navigation(t *testing.T) {
	view := loadedView(t)

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.SelectedIndex())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, view.SelectedIndex())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.SelectedIndex())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_Select(t *testing.T) {
	view := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	selected, ok := cmd().(messages.CollectionSelected)
	require.True(t, ok)
	assert.Equal(t, "menu", selected.Collection.ID)
}

func TestView_Select_Empty(t *testing.T) {
	view := NewView(nil, nil, nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Reload(t *testing.T) {
	view := loadedView(t)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	require.NotNil(t, cmd)
	assert.True(t, view.loading)
	_, ok := cmd().(messages.CollectionsLoaded)
	assert.True(t, ok)
}

func TestView_ReloadClampsSelection(t *testing.T) {
	view := loadedView(t)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	view.Update(messages.CollectionsLoaded{Collections: sampleCollections()[:1]})

	assert.Equal(t, 0, view.SelectedIndex())
}

func TestView_SetDimensions(t *testing.T) {
	view := NewView(nil, nil, nil)

	view.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 30, view.height)
}
