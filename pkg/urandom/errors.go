package urandom

import "errors"

var (
	// ErrInvalidSize is returned for negative sizes.
	ErrInvalidSize = errors.New("size must not be negative")
	// ErrRandomSource is joined with the reader error when reading fails.
	ErrRandomSource = errors.New("failed to read random bytes")
)
