// Package hash computes SHA3-512 digests of text and returns them as lowercase
// hex strings of Size characters.
//
// Generate hashes the raw UTF-8 bytes of a string. GenerateNormalized applies
// Unicode NFC normalization first, so visually identical input typed with
// composed or decomposed characters yields the same digest. Any accepts an
// arbitrary value and hashes its fmt.Sprint form. Verify compares a text
// against a stored digest in constant time.
//
//	digest := hash.Generate("Hello, World!")
//	ok := hash.Verify("Hello, World!", digest) // true
package hash
