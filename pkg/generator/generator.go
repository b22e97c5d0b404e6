package generator

import (
	"io"

	"github.com/dmitrymomot/smartrandom/pkg/charset"
)

// DefaultLength is the length the command falls back to when none is configured.
const DefaultLength = 10

// Minimum lengths per generator.
const (
	MinLettersLength      = 2
	MinDigitsLength       = 1
	MinSymbolsLength      = 1
	MinSecretCodeLength   = 3
	MinPasswordLength     = 4
	MinBasePasswordLength = 4
)

// Generator produces random strings from a single random source.
type Generator struct {
	src *charset.Source
}

// New returns a Generator reading from r, or from crypto/rand.Reader if r is nil.
func New(r io.Reader) *Generator {
	return &Generator{src: charset.New(r)}
}

var std = &Generator{src: charset.Default()}

// Letters returns upper- and lowercase letters with at least one of each.
func (g *Generator) Letters(length int) (string, error) {
	if err := checkLength("letters", length, MinLettersLength); err != nil {
		return "", err
	}
	return g.src.Compose(length, charset.Upper, charset.Lower)
}

// Digits returns decimal digits.
func (g *Generator) Digits(length int) (string, error) {
	if err := checkLength("digits", length, MinDigitsLength); err != nil {
		return "", err
	}
	return g.src.String(charset.Digits, length)
}

// Symbols returns characters from charset.Symbols.
func (g *Generator) Symbols(length int) (string, error) {
	if err := checkLength("symbols", length, MinSymbolsLength); err != nil {
		return "", err
	}
	return g.src.String(charset.Symbols, length)
}

// SecretCode returns an alphanumeric code with at least one uppercase letter,
// one lowercase letter and one digit.
func (g *Generator) SecretCode(length int) (string, error) {
	if err := checkLength("secret code", length, MinSecretCodeLength); err != nil {
		return "", err
	}
	return g.src.Compose(length, charset.Upper, charset.Lower, charset.Digits)
}

// Password returns a password with at least one uppercase letter, one
// lowercase letter, one digit and one symbol.
func (g *Generator) Password(length int) (string, error) {
	if err := checkLength("password", length, MinPasswordLength); err != nil {
		return "", err
	}
	return g.src.Compose(length, charset.Upper, charset.Lower, charset.Digits, charset.Symbols)
}

// BasePassword draws every character from charset.All without class guarantees.
func (g *Generator) BasePassword(length int) (string, error) {
	if err := checkLength("base password", length, MinBasePasswordLength); err != nil {
		return "", err
	}
	return g.src.String(charset.All, length)
}

// Custom returns a string holding at least one character of every class.
// The minimum length is the number of classes.
func (g *Generator) Custom(length int, classes ...string) (string, error) {
	if len(classes) == 0 {
		return "", charset.ErrNoClasses
	}
	if err := checkLength("custom", length, len(classes)); err != nil {
		return "", err
	}
	return g.src.Compose(length, classes...)
}

// Letters calls Generator.Letters on a crypto/rand backed generator.
func Letters(length int) (string, error) { return std.Letters(length) }

// Digits calls Generator.Digits on a crypto/rand backed generator.
func Digits(length int) (string, error) { return std.Digits(length) }

// Symbols calls Generator.Symbols on a crypto/rand backed generator.
func Symbols(length int) (string, error) { return std.Symbols(length) }

// SecretCode calls Generator.SecretCode on a crypto/rand backed generator.
func SecretCode(length int) (string, error) { return std.SecretCode(length) }

// Password calls Generator.Password on a crypto/rand backed generator.
func Password(length int) (string, error) { return std.Password(length) }

// BasePassword calls Generator.BasePassword on a crypto/rand backed generator.
func BasePassword(length int) (string, error) { return std.BasePassword(length) }

// Custom calls Generator.Custom on a crypto/rand backed generator.
func Custom(length int, classes ...string) (string, error) {
	return std.Custom(length, classes...)
}
