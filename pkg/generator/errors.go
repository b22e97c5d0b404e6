package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is wrapped by every LengthError.
var ErrInvalidLength = errors.New("invalid length")

// LengthError reports a length below the minimum a generator accepts.
type LengthError struct {
	Generator string
	Min       int
	Got       int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: the length must be at least %d, got %d", e.Generator, e.Min, e.Got)
}

func (e *LengthError) Unwrap() error {
	return ErrInvalidLength
}

func checkLength(name string, length, minimum int) error {
	if length < minimum {
		return &LengthError{Generator: name, Min: minimum, Got: length}
	}
	return nil
}
