package store

import "errors"

var (
	// ErrDimensionMismatch is returned when a vector's length disagrees
	// with the store's established dimensionality.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmptyTitle is returned when a document is created without a title.
	ErrEmptyTitle = errors.New("document title must not be empty")

	// ErrEmptyChunk is returned when a chunk is inserted without content.
	ErrEmptyChunk = errors.New("chunk content must not be empty")

	// ErrInvalidLimit is returned when a negative neighbor count is requested.
	ErrInvalidLimit = errors.New("neighbor count must not be negative")

	// ErrDocumentNotFound is returned when the referenced document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
)
