package driven

// ConfigStore provides access to persisted configuration as flat
// dot-separated keys such as "render.depth".
type ConfigStore interface {
	// Get retrieves a raw value and reports whether the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key is missing or not a string.
	GetString(key string) string

	// GetInt returns 0 if the key is missing or not numeric.
	GetInt(key string) int

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Unset removes a key and persists the change. Removing a missing key
	// is not an error.
	Unset(key string) error

	// Keys returns every stored key in sorted order.
	Keys() []string

	// Save persists the current configuration.
	Save() error

	// Load reads configuration from storage, replacing what is in memory.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
