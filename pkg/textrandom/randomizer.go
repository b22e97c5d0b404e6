package textrandom

import (
	"io"
	"regexp"
	"strings"

	"github.com/dmitrymomot/smartrandom/pkg/charset"
)

var placeholder = regexp.MustCompile(`\{(.+?)\}`)

// Randomizer expands placeholders using a single random source.
type Randomizer struct {
	src *charset.Source
}

// New returns a Randomizer reading from r, or from crypto/rand.Reader if r is nil.
func New(r io.Reader) *Randomizer {
	return &Randomizer{src: charset.New(r)}
}

var std = &Randomizer{src: charset.Default()}

// Randomize replaces every placeholder in text with one of its alternatives.
func (r *Randomizer) Randomize(text string) (string, error) {
	var firstErr error
	out := placeholder.ReplaceAllStringFunc(text, func(match string) string {
		if firstErr != nil {
			return match
		}
		options := strings.Split(match[1:len(match)-1], "|")
		i, err := r.src.Intn(len(options))
		if err != nil {
			firstErr = err
			return match
		}
		return options[i]
	})
	if firstErr != nil {
		return "", firstErr
	}
	return out, nil
}

// Randomize expands placeholders using crypto/rand.
func Randomize(text string) (string, error) {
	return std.Randomize(text)
}

// HasPlaceholders reports whether text contains at least one placeholder.
func HasPlaceholders(text string) bool {
	return placeholder.MatchString(text)
}
