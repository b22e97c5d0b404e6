// Package generator produces random strings from fixed character classes:
// letters, digits, symbols, secret codes and passwords.
//
// Every generator returns exactly the requested number of characters, drawn
// with crypto/rand through pkg/charset. Generators that promise a mix of
// classes (Letters, SecretCode, Password, Custom) seed one character from each
// mandatory class, fill the remainder from the union and shuffle the result.
//
// # Usage
//
//	import "github.com/dmitrymomot/smartrandom/pkg/generator"
//
//	pwd, err := generator.Password(16)   // e.g. "q7&XbT_e2mJr!9aZ"
//	code, err := generator.SecretCode(6) // e.g. "h4TqZ1"
//	pin, err := generator.Digits(4)      // e.g. "0729"
//
// A Generator bound to a custom io.Reader is created with New. This is how the
// seeded passwords in pkg/smartpassword are built on top of an HKDF stream.
//
// # Error Handling
//
// A length below the generator minimum returns a *LengthError that wraps
// ErrInvalidLength:
//
//	_, err := generator.Password(3)
//	if errors.Is(err, generator.ErrInvalidLength) {
//		var lerr *generator.LengthError
//		errors.As(err, &lerr) // lerr.Min == 4
//	}
package generator
