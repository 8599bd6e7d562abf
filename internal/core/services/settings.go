package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
	"github.com/custodia-labs/arbor/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyRenderDepth   = "render.depth"
	keyRenderFormat  = "render.format"
	keyRenderIndent  = "render.indent"
	keyRenderPerPage = "render.per_page"
)

// maxIndentSize bounds the indent width accepted by Set.
const maxIndentSize = 16

// SettingsService manages render defaults.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current render settings, falling back to defaults for
// missing or invalid values.
func (s *SettingsService) Get() (*domain.RenderSettings, error) {
	defaults := domain.DefaultRenderSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	settings := &domain.RenderSettings{
		Depth:      s.getInt(keyRenderDepth, defaults.Depth),
		Format:     s.getFormat(defaults.Format),
		IndentSize: s.getInt(keyRenderIndent, defaults.IndentSize),
		PerPage:    s.getInt(keyRenderPerPage, defaults.PerPage),
	}
	if settings.Depth < domain.DepthFlat {
		settings.Depth = defaults.Depth
	}
	if settings.IndentSize < 0 || settings.IndentSize > maxIndentSize {
		settings.IndentSize = defaults.IndentSize
	}
	if settings.PerPage < 0 {
		settings.PerPage = defaults.PerPage
	}

	return settings, nil
}

// Save persists render settings.
func (s *SettingsService) Save(settings *domain.RenderSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := validateSettings(settings); err != nil {
		return err
	}

	if err := s.configStore.Set(keyRenderDepth, settings.Depth); err != nil {
		return fmt.Errorf("save render depth: %w", err)
	}
	if err := s.configStore.Set(keyRenderFormat, settings.Format.String()); err != nil {
		return fmt.Errorf("save render format: %w", err)
	}
	if err := s.configStore.Set(keyRenderIndent, settings.IndentSize); err != nil {
		return fmt.Errorf("save render indent: %w", err)
	}
	if err := s.configStore.Set(keyRenderPerPage, settings.PerPage); err != nil {
		return fmt.Errorf("save render per_page: %w", err)
	}
	return nil
}

// Set updates a single setting from its string form. The key may be given
// with or without the "render." prefix.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch strings.TrimPrefix(key, "render.") {
	case "depth":
		settings.Depth, err = parseSettingInt(key, value)
	case "format":
		settings.Format = domain.RenderFormat(strings.ToLower(value))
	case "indent":
		settings.IndentSize, err = parseSettingInt(key, value)
	case "per_page":
		settings.PerPage, err = parseSettingInt(key, value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Reset removes every stored render setting.
func (s *SettingsService) Reset() error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	for _, key := range []string{keyRenderDepth, keyRenderFormat, keyRenderIndent, keyRenderPerPage} {
		if err := s.configStore.Unset(key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.RenderSettings {
	return domain.DefaultRenderSettings()
}

func validateSettings(settings *domain.RenderSettings) error {
	if settings.Depth < domain.DepthFlat {
		return fmt.Errorf("%w: depth must be %d or greater", domain.ErrInvalidInput, domain.DepthFlat)
	}
	if !settings.Format.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, settings.Format)
	}
	if settings.IndentSize < 0 || settings.IndentSize > maxIndentSize {
		return fmt.Errorf("%w: indent must be between 0 and %d", domain.ErrInvalidInput, maxIndentSize)
	}
	if settings.PerPage < 0 {
		return fmt.Errorf("%w: per_page cannot be negative", domain.ErrInvalidInput)
	}
	return nil
}

func parseSettingInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects an integer, got %q", domain.ErrInvalidInput, key, value)
	}
	return n, nil
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFormat(defaultVal domain.RenderFormat) domain.RenderFormat {
	val := s.configStore.GetString(keyRenderFormat)
	if val == "" {
		return defaultVal
	}
	format := domain.RenderFormat(val)
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
