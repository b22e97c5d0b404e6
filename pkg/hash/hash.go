package hash

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
	"golang.org/x/text/unicode/norm"
)

// Size is the length of a hex encoded digest.
const Size = 128

// Generate returns the SHA3-512 digest of text as lowercase hex.
func Generate(text string) string {
	sum := sha3.Sum512([]byte(text))
	return hex.EncodeToString(sum[:])
}

// GenerateNormalized hashes the NFC normalized form of text.
func GenerateNormalized(text string) string {
	return Generate(norm.NFC.String(text))
}

// Any hashes the default string representation of v.
func Any(v any) string {
	return Generate(fmt.Sprint(v))
}

// Verify reports whether digest is the hex SHA3-512 digest of text.
func Verify(text, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Generate(text)), []byte(digest)) == 1
}
