package urandom

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"io"
)

// DefaultSize is the number of bytes used by callers that do not pick one.
const DefaultSize = 128

// Generator reads random bytes from a single source.
type Generator struct {
	r io.Reader
}

// New returns a Generator reading from r, or from crypto/rand.Reader if r is nil.
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{r: r}
}

var std = New(nil)

// Generate returns size random bytes.
func (g *Generator) Generate(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	b := make([]byte, size)
	if _, err := io.ReadFull(g.r, b); err != nil {
		return nil, errors.Join(ErrRandomSource, err)
	}
	return b, nil
}

// GenerateString returns size random bytes encoded as 2*size hex characters.
func (g *Generator) GenerateString(size int) (string, error) {
	b, err := g.Generate(size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Generate returns size bytes from crypto/rand.
func Generate(size int) ([]byte, error) {
	return std.Generate(size)
}

// GenerateString returns size bytes from crypto/rand as hex.
func GenerateString(size int) (string, error) {
	return std.GenerateString(size)
}
