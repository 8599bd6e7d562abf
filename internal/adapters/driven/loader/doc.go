// Package loader reads node records from JSON, YAML and TOML files.
//
// Every format describes the same record shape:
//
//	id        string or integer, required for rendering
//	parent    string or integer, empty or 0 for top-level records
//	title     string
//	uri       string
//	position  integer sort key
//	metadata  free-form table
//
// JSON and YAML files hold either a list of records or a table with a
// "nodes" list. TOML files use [[nodes]] tables.
package loader
