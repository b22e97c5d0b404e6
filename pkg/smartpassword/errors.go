package smartpassword

import "errors"

var (
	// ErrLengthTooLong is returned for lengths above MaxLength.
	ErrLengthTooLong = errors.New("length exceeds the maximum derivable password length")
	// ErrFailedToGenerateSeed is returned when no random seed could be drawn for an empty seed.
	ErrFailedToGenerateSeed = errors.New("failed to generate random seed")
)
