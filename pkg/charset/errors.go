package charset

import "errors"

var (
	ErrEmptyAlphabet = errors.New("alphabet must not be empty")
	ErrNoClasses     = errors.New("at least one character class is required")
	ErrTooShort      = errors.New("length is shorter than the number of mandatory classes")
	ErrRandomSource  = errors.New("failed to read from random source")
)
