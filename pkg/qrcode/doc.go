// Package qrcode renders generated secrets as QR code PNG images so they can
// be transferred to a phone or password manager without retyping.
//
// It is a thin wrapper around github.com/skip2/go-qrcode with input validation
// and a default size. WriteFile stores the image with 0600 permissions because
// the encoded content is usually a password or secret code.
//
//	png, err := qrcode.Encode(password, 256)
//	err = qrcode.WriteFile("password.png", password, 0) // default size
//
// Empty or whitespace-only content returns ErrEmptyContent; failures of the
// underlying encoder are joined with ErrFailedToGenerateQRCode.
package qrcode
