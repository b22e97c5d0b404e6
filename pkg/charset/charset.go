package charset

// Built-in alphabets.
const (
	Upper        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower        = "abcdefghijklmnopqrstuvwxyz"
	Letters      = Upper + Lower
	Digits       = "0123456789"
	Symbols      = "!@#$%&^_"
	Alphanumeric = Letters + Digits
	All          = Letters + Digits + Symbols
)
