// Package urandom returns cryptographically secure random bytes from the
// operating system, either raw or hex encoded.
//
//	b, err := urandom.Generate(32)       // 32 random bytes
//	s, err := urandom.GenerateString(16) // 32 lowercase hex characters
//
// A zero size yields an empty value; a negative size returns ErrInvalidSize.
package urandom
