package tui

import "errors"

// ErrMissingTreeService is returned when the tree service is not provided.
var ErrMissingTreeService = errors.New("tui: tree service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
