package qrcode

import (
	"errors"
	"os"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	ErrEmptyContent           = errors.New("content cannot be empty")
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
	ErrFailedToWriteFile      = errors.New("failed to write QR code file")
)

// DefaultSize is the image size in pixels used for non-positive sizes.
const DefaultSize = 256

// Encode returns a PNG image of size x size pixels encoding content.
func Encode(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// WriteFile encodes content and writes the PNG to path with mode 0600.
func WriteFile(path, content string, size int) error {
	png, err := Encode(content, size)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}
	return nil
}
