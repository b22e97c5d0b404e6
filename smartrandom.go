package smartrandom

import (
	"crypto/rand"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/smartrandom/pkg/generator"
	"github.com/dmitrymomot/smartrandom/pkg/hash"
	"github.com/dmitrymomot/smartrandom/pkg/logger"
	"github.com/dmitrymomot/smartrandom/pkg/smartpassword"
	"github.com/dmitrymomot/smartrandom/pkg/textrandom"
	"github.com/dmitrymomot/smartrandom/pkg/urandom"
)

// Random exposes every generator of the module behind one value.
// It holds no mutable state and is safe for concurrent use as long as its
// reader is.
type Random struct {
	reader io.Reader
	log    *slog.Logger

	gen   *generator.Generator
	bytes *urandom.Generator
	text  *textrandom.Randomizer
}

// Option configures a Random.
type Option func(*Random)

// WithReader sets the random source. Nil readers are ignored.
func WithReader(r io.Reader) Option {
	return func(rnd *Random) {
		if r != nil {
			rnd.reader = r
		}
	}
}

// WithLogger sets the logger used to trace operations at debug level.
// Generated values are never logged.
func WithLogger(l *slog.Logger) Option {
	return func(rnd *Random) {
		if l != nil {
			rnd.log = l
		}
	}
}

// New returns a Random backed by crypto/rand unless WithReader is given.
func New(opts ...Option) *Random {
	rnd := &Random{
		reader: rand.Reader,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(rnd)
	}

	rnd.gen = generator.New(rnd.reader)
	rnd.bytes = urandom.New(rnd.reader)
	rnd.text = textrandom.New(rnd.reader)
	return rnd
}

var std = New()

// Default returns the shared crypto/rand backed instance.
func Default() *Random {
	return std
}

// Letters returns length upper and lower case letters, at least one of each.
func (r *Random) Letters(length int) (string, error) {
	return r.run("letters", length, r.gen.Letters)
}

// Digits returns length decimal digits.
func (r *Random) Digits(length int) (string, error) {
	return r.run("digits", length, r.gen.Digits)
}

// Symbols returns length characters from charset.Symbols.
func (r *Random) Symbols(length int) (string, error) {
	return r.run("symbols", length, r.gen.Symbols)
}

// SecretCode returns a code with at least one upper case letter, lower case letter and digit.
func (r *Random) SecretCode(length int) (string, error) {
	return r.run("secret_code", length, r.gen.SecretCode)
}

// Password returns a password containing every character class.
func (r *Random) Password(length int) (string, error) {
	return r.run("password", length, r.gen.Password)
}

// BasePassword returns length characters from charset.All with no class guarantee.
func (r *Random) BasePassword(length int) (string, error) {
	return r.run("base_password", length, r.gen.BasePassword)
}

// Custom returns a string with at least one character from every class.
func (r *Random) Custom(length int, classes ...string) (string, error) {
	return r.run("custom", length, func(n int) (string, error) {
		return r.gen.Custom(n, classes...)
	})
}

// SmartPassword derives a password from seed; see pkg/smartpassword.
func (r *Random) SmartPassword(seed string, length int) (string, error) {
	return r.run("smart_password", length, func(n int) (string, error) {
		return smartpassword.Generate(seed, n)
	})
}

// Hash returns the SHA3-512 hex digest of text.
func (r *Random) Hash(text string) string {
	r.log.Debug("hashed", logger.Generator("hash"), logger.Length(len(text)))
	return hash.Generate(text)
}

// HashAny hashes the default string form of v.
func (r *Random) HashAny(v any) string {
	r.log.Debug("hashed", logger.Generator("hash"))
	return hash.Any(v)
}

// Bytes returns size random bytes.
func (r *Random) Bytes(size int) ([]byte, error) {
	b, err := r.bytes.Generate(size)
	r.trace("bytes", size, err)
	return b, err
}

// HexString returns size random bytes as 2*size hex characters.
func (r *Random) HexString(size int) (string, error) {
	return r.run("hex", size, r.bytes.GenerateString)
}

// RandomizeText fills "{a|b}" placeholders; see pkg/textrandom.
func (r *Random) RandomizeText(text string) (string, error) {
	s, err := r.text.Randomize(text)
	r.trace("text", len(text), err)
	return s, err
}

// UUID returns a random (version 4) UUID drawn from the configured reader.
func (r *Random) UUID() (string, error) {
	id, err := uuid.NewRandomFromReader(r.reader)
	r.trace("uuid", 16, err)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (r *Random) run(name string, n int, fn func(int) (string, error)) (string, error) {
	s, err := fn(n)
	r.trace(name, n, err)
	if err != nil {
		return "", err
	}
	return s, nil
}

func (r *Random) trace(name string, n int, err error) {
	if err != nil {
		r.log.Warn("generation failed", logger.Generator(name), logger.Length(n), logger.Error(err))
		return
	}
	r.log.Debug("generated", logger.Generator(name), logger.Length(n))
}
