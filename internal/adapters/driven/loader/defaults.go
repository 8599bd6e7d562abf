package loader

// RegisterDefaults registers the JSON, YAML and TOML decoders.
func RegisterDefaults(r *Registry) {
	r.Register(".json", decodeJSON)
	r.Register(".yaml", decodeYAML)
	r.Register(".yml", decodeYAML)
	r.Register(".toml", decodeTOML)
}

// New creates a registry with the default decoders.
func New() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
