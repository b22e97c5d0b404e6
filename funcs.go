package smartrandom

// Letters calls Default().Letters.
func Letters(length int) (string, error) { return std.Letters(length) }

// Digits calls Default().Digits.
func Digits(length int) (string, error) { return std.Digits(length) }

// Symbols calls Default().Symbols.
func Symbols(length int) (string, error) { return std.Symbols(length) }

// SecretCode calls Default().SecretCode.
func SecretCode(length int) (string, error) { return std.SecretCode(length) }

// Password calls Default().Password.
func Password(length int) (string, error) { return std.Password(length) }

// BasePassword calls Default().BasePassword.
func BasePassword(length int) (string, error) { return std.BasePassword(length) }

// SmartPassword calls Default().SmartPassword.
func SmartPassword(seed string, length int) (string, error) {
	return std.SmartPassword(seed, length)
}

// Hash calls Default().Hash.
func Hash(text string) string { return std.Hash(text) }

// HashAny calls Default().HashAny.
func HashAny(v any) string { return std.HashAny(v) }

// Bytes calls Default().Bytes.
func Bytes(size int) ([]byte, error) { return std.Bytes(size) }

// HexString calls Default().HexString.
func HexString(size int) (string, error) { return std.HexString(size) }

// RandomizeText calls Default().RandomizeText.
func RandomizeText(text string) (string, error) { return std.RandomizeText(text) }

// UUID calls Default().UUID.
func UUID() (string, error) { return std.UUID() }
