package charset

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"strings"
)

// Source draws uniformly distributed values from an io.Reader.
type Source struct {
	r io.Reader
}

// New returns a Source reading from r. A nil reader falls back to crypto/rand.Reader.
func New(r io.Reader) *Source {
	if r == nil {
		r = rand.Reader
	}
	return &Source{r: r}
}

var std = New(nil)

// Default returns the Source backed by crypto/rand.Reader.
func Default() *Source {
	return std
}

// Intn returns a uniform value in [0, n). It panics if n <= 0.
//
// Values are taken from 8 bytes of the reader at a time; draws falling into the
// incomplete last bucket are rejected so no residue gets a higher weight than
// the others.
func (s *Source) Intn(n int) (int, error) {
	if n <= 0 {
		panic("charset: invalid argument to Intn")
	}
	un := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%un

	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return 0, errors.Join(ErrRandomSource, err)
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % un), nil
		}
	}
}

// Pick returns one character of alphabet chosen uniformly.
func (s *Source) Pick(alphabet string) (rune, error) {
	chars := []rune(alphabet)
	if len(chars) == 0 {
		return 0, ErrEmptyAlphabet
	}
	i, err := s.Intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

// String returns length characters drawn uniformly from alphabet.
// A non-positive length yields an empty string.
func (s *Source) String(alphabet string, length int) (string, error) {
	chars := []rune(alphabet)
	if len(chars) == 0 {
		return "", ErrEmptyAlphabet
	}
	if length <= 0 {
		return "", nil
	}

	out, err := s.fill(make([]rune, 0, length), chars, length)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Shuffle permutes runes in place with the Fisher-Yates algorithm.
func (s *Source) Shuffle(runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := s.Intn(i + 1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}

// Compose returns a string of the given length holding at least one character
// from every class. The rest is drawn from the union of the classes and the
// result is shuffled.
func (s *Source) Compose(length int, classes ...string) (string, error) {
	if len(classes) == 0 {
		return "", ErrNoClasses
	}
	if length < len(classes) {
		return "", ErrTooShort
	}

	out := make([]rune, 0, length)
	for _, class := range classes {
		if class == "" {
			return "", ErrEmptyAlphabet
		}
		c, err := s.Pick(class)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}

	union := []rune(strings.Join(classes, ""))
	out, err := s.fill(out, union, length-len(classes))
	if err != nil {
		return "", err
	}

	if err := s.Shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *Source) fill(dst, chars []rune, n int) ([]rune, error) {
	for range n {
		i, err := s.Intn(len(chars))
		if err != nil {
			return nil, err
		}
		dst = append(dst, chars[i])
	}
	return dst, nil
}

// String draws length characters from alphabet using crypto/rand.
func String(alphabet string, length int) (string, error) {
	return std.String(alphabet, length)
}

// Compose builds a string with one character per class using crypto/rand.
func Compose(length int, classes ...string) (string, error) {
	return std.Compose(length, classes...)
}
