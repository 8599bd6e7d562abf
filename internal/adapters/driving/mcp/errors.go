// Package mcp provides an MCP (Model Context Protocol) server adapter for arbor.
// It lets AI assistants render stored node hierarchies and browse collections.
package mcp

import "errors"

// ErrMissingTreeService is returned when the tree service is not provided.
var ErrMissingTreeService = errors.New("mcp: tree service is required")
