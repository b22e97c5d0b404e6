// Package smartpassword derives passwords from a seed phrase.
//
// The same seed and length always produce the same password, so a user can
// regenerate a password from something they remember instead of storing it.
// Different seeds produce unrelated passwords.
//
// # Architecture
//
// The seed is expanded with HKDF (golang.org/x/crypto/hkdf) over SHA3-512
// into a deterministic byte stream. That stream is handed to
// generator.New as its random source and the regular Password composition runs
// on top of it, so a derived password has the same shape as a random one: at
// least one uppercase letter, one lowercase letter, one digit and one symbol.
//
// HKDF can emit at most 255 blocks of output, which bounds the length of a
// derived password to MaxLength characters.
//
// An empty seed is replaced by 32 bytes from crypto/rand, which makes the
// result a plain random password.
//
// # Usage
//
//	pwd, err := smartpassword.Generate("correct horse battery staple", 16)
//
// # Error Handling
//
// A length below generator.MinPasswordLength returns a *generator.LengthError
// (errors.Is(err, generator.ErrInvalidLength)). A length above MaxLength
// returns ErrLengthTooLong.
package smartpassword
