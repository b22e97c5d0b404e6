package smartpassword

import (
	"errors"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/sha3"

	"github.com/dmitrymomot/smartrandom/pkg/generator"
	"github.com/dmitrymomot/smartrandom/pkg/urandom"
)

const (
	// MaxLength is the longest password that can be derived from one seed.
	MaxLength = 512

	// SeedSize is the number of random bytes used when no seed is given.
	SeedSize = 32

	// info provides domain separation for the HKDF stream.
	info = "smartrandom-smart-password-v1"
)

// Generate returns a password of the given length derived from seed.
// An empty seed yields a random password.
func Generate(seed string, length int) (string, error) {
	if length > MaxLength {
		return "", ErrLengthTooLong
	}
	if length < generator.MinPasswordLength {
		return "", &generator.LengthError{Generator: "smart password", Min: generator.MinPasswordLength, Got: length}
	}

	secret := []byte(seed)
	if seed == "" {
		b, err := urandom.Generate(SeedSize)
		if err != nil {
			return "", errors.Join(ErrFailedToGenerateSeed, err)
		}
		secret = b
	}

	stream := hkdf.New(sha3.New512, secret, nil, []byte(info))
	return generator.New(stream).Password(length)
}
