package mcp

import (
	"context"

	"github.com/custodia-labs/arbor/internal/core/domain"
)

// mockTreeService is a mock implementation of driving.TreeService.
type mockTreeService struct {
	result       *domain.RenderResult
	err          error
	collectionID string
	opts         domain.RenderOptions
}

func (m *mockTreeService) Render(
	_ context.Context,
	collectionID string,
	opts domain.RenderOptions,
) (*domain.RenderResult, error) {
	m.collectionID = collectionID
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.RenderResult{Format: opts.Format, MaxPages: 1}, nil
	}
	return m.result, nil
}

func (m *mockTreeService) RenderNodes(_ []domain.Node, opts domain.RenderOptions) (*domain.RenderResult, error) {
	m.opts = opts
	return m.result, m.err
}

func (m *mockTreeService) RootCount(_ context.Context, _ string) (int, error) {
	return 0, m.err
}

func (m *mockTreeService) Formats() []domain.RenderFormat {
	return domain.AllRenderFormats()
}

// mockNodeService is a mock implementation of driving.NodeService.
type mockNodeService struct {
	nodes []domain.Node
	node  *domain.Node
	err   error
}

func (m *mockNodeService) Add(_ context.Context, node domain.Node) (*domain.Node, error) {
	return &node, m.err
}

func (m *mockNodeService) Get(_ context.Context, _, _ string) (*domain.Node, error) {
	return m.node, m.err
}

func (m *mockNodeService) List(_ context.Context, _ string) ([]domain.Node, error) {
	return m.nodes, m.err
}

func (m *mockNodeService) Remove(_ context.Context, _, _ string, _ bool) (int, error) {
	return 1, m.err
}

func (m *mockNodeService) Import(_ context.Context, _, _ string) (int, error) {
	return len(m.nodes), m.err
}

// mockCollectionService is a mock implementation of driving.CollectionService.
type mockCollectionService struct {
	collections []domain.Collection
	err         error
}

func (m *mockCollectionService) Create(_ context.Context, name, description string) (*domain.Collection, error) {
	return &domain.Collection{ID: name, Name: name, Description: description}, m.err
}

func (m *mockCollectionService) Get(_ context.Context, id string) (*domain.Collection, error) {
	for i := range m.collections {
		if m.collections[i].ID == id {
			return &m.collections[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCollectionService) List(_ context.Context) ([]domain.Collection, error) {
	return m.collections, m.err
}

func (m *mockCollectionService) Remove(_ context.Context, _ string, _ bool) error {
	return m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.RenderSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.RenderSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsService) Save(settings *domain.RenderSettings) error {
	m.settings = *settings
	return m.err
}

func (m *mockSettingsService) Set(_, _ string) error {
	return m.err
}

func (m *mockSettingsService) Reset() error {
	return m.err
}

func (m *mockSettingsService) GetDefaults() domain.RenderSettings {
	return domain.DefaultRenderSettings()
}
