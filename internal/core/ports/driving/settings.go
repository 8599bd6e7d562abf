package driving

import "github.com/custodia-labs/arbor/internal/core/domain"

// SettingsService manages the render defaults used when a caller does not
// pass explicit options.
type SettingsService interface {
	// Get returns the effective settings. Missing or invalid stored values
	// fall back to defaults.
	Get() (*domain.RenderSettings, error)

	// Save validates and persists settings.
	Save(settings *domain.RenderSettings) error

	// Set updates one setting from its string form.
	// Keys: depth, format, indent, per_page (optionally prefixed "render.").
	Set(key, value string) error

	// Reset removes every stored render setting so defaults apply again.
	Reset() error

	// GetDefaults returns the built-in defaults.
	GetDefaults() domain.RenderSettings
}
