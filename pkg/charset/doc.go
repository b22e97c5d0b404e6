// Package charset holds the immutable alphabets used by the generators and a
// Source that draws uniformly distributed characters from them.
//
// A Source reads from an io.Reader. The package-level helpers use
// crypto/rand.Reader, so they are safe for concurrent use and suitable for
// secrets. A Source built with New over a deterministic reader (for example an
// HKDF stream) yields reproducible output, which is how seeded passwords are
// produced.
//
// # Composition
//
// Compose implements the "mandatory classes" pattern shared by every composite
// generator: one character is drawn from each class, the remainder is filled
// from the union of all classes and the whole result is shuffled with
// Fisher-Yates so the mandatory characters do not sit at fixed positions.
//
// # Usage
//
//	import "github.com/dmitrymomot/smartrandom/pkg/charset"
//
//	s, err := charset.Compose(12, charset.Upper, charset.Lower, charset.Digits)
//	if err != nil {
//		// handle error
//	}
//
// # Error Handling
//
// Reader failures are reported as ErrRandomSource joined with the cause.
// Empty alphabets return ErrEmptyAlphabet. Compose returns ErrTooShort when the
// length cannot hold one character per class.
package charset
