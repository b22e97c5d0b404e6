// Package smartrandom generates random data for applications: letters,
// digits, symbols, secret codes, passwords, seeded passwords, random bytes,
// UUIDs and randomized template text, plus SHA3-512 digests of text.
//
// The root package is a facade over the packages in pkg/. A Random value
// bundles them behind one set of methods and package-level shortcuts use a
// shared crypto/rand backed instance:
//
//	pwd, err := smartrandom.Password(16)
//	code, err := smartrandom.SecretCode(6)
//	msg, err := smartrandom.RandomizeText("Hello, {Alice|Bob}!")
//	digest := smartrandom.Hash("Hello, World!")
//
// # Options
//
//   - WithReader replaces crypto/rand as the random source. Output is exactly
//     as unpredictable as the reader, so only use it for tests or derived
//     streams.
//   - WithLogger traces every call at debug level with the generator name and
//     requested length. Generated values are never logged.
//
// # Packages
//
//   - pkg/charset: alphabets, uniform selection, shuffling and composition.
//   - pkg/generator: letters, digits, symbols, secret codes and passwords.
//   - pkg/smartpassword: passwords derived from a seed phrase with HKDF.
//   - pkg/hash: SHA3-512 hex digests.
//   - pkg/urandom: raw and hex encoded random bytes.
//   - pkg/textrandom: "{a|b|c}" template expansion.
//   - pkg/qrcode: QR code images of generated secrets.
//   - pkg/logger, pkg/config, pkg/environment: ambient helpers used by the
//     command in cmd/smartrandom.
//
// # Error Handling
//
// Generators reject lengths below their minimum with a
// *generator.LengthError that wraps generator.ErrInvalidLength. Failures of
// the random source wrap charset.ErrRandomSource or urandom.ErrRandomSource.
// Use errors.Is and errors.As to inspect them.
package smartrandom
