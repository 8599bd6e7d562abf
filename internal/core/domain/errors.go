package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedFormat indicates an unknown render format.
	ErrUnsupportedFormat = errors.New("unsupported render format")

	// ErrUnsupportedFileType indicates a record file the loaders cannot read.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrCollectionNotEmpty indicates a collection still holds nodes.
	ErrCollectionNotEmpty = errors.New("collection is not empty")
)
